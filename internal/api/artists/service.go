package artists

import (
	"errors"

	"artmarket-api/config"
	"artmarket-api/internal/domain/profiles"
	"artmarket-api/internal/domain/users"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("artist profile not found")
	ErrUserNotFound = errors.New("referenced user not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateArtistRequest) (*profiles.ArtistProfile, error) {
	if config.VALIDATE_USER_ON_CREATE {
		var user users.User
		if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	artist := profiles.ArtistProfile{
		Bio:     req.Bio,
		Website: req.Website,
		UserID:  req.UserID,
	}
	if err := s.db.Create(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *Service) GetByID(id string) (*profiles.ArtistProfile, error) {
	var artist profiles.ArtistProfile
	err := s.db.Preload("User").First(&artist, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *Service) GetAll() ([]profiles.ArtistProfile, error) {
	var artists []profiles.ArtistProfile
	if err := s.db.Preload("User").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *Service) Update(id string, req UpdateArtistRequest) (*profiles.ArtistProfile, error) {
	var artist profiles.ArtistProfile
	if err := s.db.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
		artist.Bio = req.Bio
	}
	if req.Website != nil {
		updates["website"] = *req.Website
		artist.Website = req.Website
	}
	if len(updates) == 0 {
		return &artist, nil
	}

	if err := s.db.Model(&artist).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *Service) Delete(id string) (*profiles.ArtistProfile, error) {
	var artist profiles.ArtistProfile
	if err := s.db.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}
