package galleries

import (
	"errors"

	"artmarket-api/config"
	"artmarket-api/internal/domain/profiles"
	"artmarket-api/internal/domain/users"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("gallery profile not found")
	ErrUserNotFound = errors.New("referenced user not found")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateGalleryRequest) (*profiles.GalleryProfile, error) {
	if config.VALIDATE_USER_ON_CREATE {
		var user users.User
		if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	gallery := profiles.GalleryProfile{
		Name:     req.Name,
		Bio:      req.Bio,
		Website:  req.Website,
		Location: req.Location,
		UserID:   req.UserID,
	}
	if err := s.db.Create(&gallery).Error; err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (s *Service) GetByID(id string) (*profiles.GalleryProfile, error) {
	var gallery profiles.GalleryProfile
	err := s.db.Preload("User").First(&gallery, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (s *Service) GetAll() ([]profiles.GalleryProfile, error) {
	var galleries []profiles.GalleryProfile
	if err := s.db.Preload("User").Find(&galleries).Error; err != nil {
		return nil, err
	}
	return galleries, nil
}

func (s *Service) Update(id string, req UpdateGalleryRequest) (*profiles.GalleryProfile, error) {
	var gallery profiles.GalleryProfile
	if err := s.db.First(&gallery, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		gallery.Name = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
		gallery.Bio = req.Bio
	}
	if req.Website != nil {
		updates["website"] = *req.Website
		gallery.Website = req.Website
	}
	if req.Location != nil {
		updates["location"] = *req.Location
		gallery.Location = *req.Location
	}
	if len(updates) == 0 {
		return &gallery, nil
	}

	if err := s.db.Model(&gallery).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (s *Service) Delete(id string) (*profiles.GalleryProfile, error) {
	var gallery profiles.GalleryProfile
	if err := s.db.First(&gallery, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&gallery).Error; err != nil {
		return nil, err
	}
	return &gallery, nil
}
