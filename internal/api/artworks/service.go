package artworks

import (
	"errors"

	"artmarket-api/internal/domain/works"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("artwork not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateArtworkRequest) (*works.Artwork, error) {
	artwork := works.Artwork{
		Title:       req.Title,
		Description: req.Description,
		Tags:        pq.StringArray(req.Tags),
		Type:        pq.StringArray(req.Type),
		Location:    req.Location,
		Weight:      req.Weight,
		Height:      req.Height,
		Width:       req.Width,
		Depth:       req.Depth,
		ArtistID:    req.ArtistID,
		GalleryID:   req.GalleryID,
	}
	if err := s.db.Create(&artwork).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (s *Service) GetByID(id string) (*works.Artwork, error) {
	var artwork works.Artwork
	err := s.db.First(&artwork, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (s *Service) GetAll() ([]works.Artwork, error) {
	var artworks []works.Artwork
	if err := s.db.Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (s *Service) Update(id string, req UpdateArtworkRequest) (*works.Artwork, error) {
	var artwork works.Artwork
	if err := s.db.First(&artwork, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		artwork.Title = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		artwork.Description = *req.Description
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
		artwork.Tags = pq.StringArray(req.Tags)
	}
	if req.Location != nil {
		updates["location"] = *req.Location
		artwork.Location = *req.Location
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
		artwork.Weight = *req.Weight
	}
	if req.Height != nil {
		updates["height"] = *req.Height
		artwork.Height = *req.Height
	}
	if req.Width != nil {
		updates["width"] = *req.Width
		artwork.Width = *req.Width
	}
	if req.Depth != nil {
		updates["depth"] = *req.Depth
		artwork.Depth = *req.Depth
	}
	if len(updates) == 0 {
		return &artwork, nil
	}

	if err := s.db.Model(&artwork).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (s *Service) Delete(id string) (*works.Artwork, error) {
	var artwork works.Artwork
	if err := s.db.First(&artwork, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&artwork).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}
