package collectors

import (
	"errors"

	"artmarket-api/config"
	"artmarket-api/internal/domain/profiles"
	"artmarket-api/internal/domain/users"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("collector profile not found")
	ErrUserNotFound = errors.New("referenced user not found")
)

// Service performs the collector store operations. Update and Delete probe
// for existence first, so a concurrent delete between the probe and the
// mutation can still surface as a store error; nothing above the store
// serializes those.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateCollectorRequest) (*profiles.CollectorProfile, error) {
	if config.VALIDATE_USER_ON_CREATE {
		var user users.User
		if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	collector := profiles.CollectorProfile{
		Name:   req.Name,
		Email:  req.Email,
		UserID: req.UserID,
	}
	if err := s.db.Create(&collector).Error; err != nil {
		return nil, err
	}
	return &collector, nil
}

func (s *Service) GetByID(id string) (*profiles.CollectorProfile, error) {
	var collector profiles.CollectorProfile
	err := s.db.
		Preload("User").
		Preload("Purchases").
		First(&collector, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &collector, nil
}

func (s *Service) GetAll() ([]profiles.CollectorProfile, error) {
	var collectors []profiles.CollectorProfile
	err := s.db.
		Preload("User").
		Preload("Purchases").
		Find(&collectors).Error
	if err != nil {
		return nil, err
	}
	return collectors, nil
}

func (s *Service) Update(id string, req UpdateCollectorRequest) (*profiles.CollectorProfile, error) {
	var collector profiles.CollectorProfile
	if err := s.db.First(&collector, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
		collector.Bio = req.Bio
	}
	if req.Website != nil {
		updates["website"] = *req.Website
		collector.Website = req.Website
	}
	if len(updates) == 0 {
		return &collector, nil
	}

	if err := s.db.Model(&collector).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &collector, nil
}

// Delete removes the row and returns its former state. A second delete on
// the same id fails with ErrNotFound.
func (s *Service) Delete(id string) (*profiles.CollectorProfile, error) {
	var collector profiles.CollectorProfile
	if err := s.db.First(&collector, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&collector).Error; err != nil {
		return nil, err
	}
	return &collector, nil
}
