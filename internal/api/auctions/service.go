package auctions

import (
	"errors"

	"artmarket-api/internal/domain/auctions"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("auction not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateAuctionRequest) (*auctions.Auction, error) {
	status := req.Status
	if status == "" {
		status = auctions.StatusUpcoming
	}

	auction := auctions.Auction{
		ArtworkID:   req.ArtworkID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartingBid: req.StartingBid,
		Status:      status,
	}
	if err := s.db.Create(&auction).Error; err != nil {
		return nil, err
	}
	return &auction, nil
}

func (s *Service) GetByID(id string) (*auctions.Auction, error) {
	var auction auctions.Auction
	err := s.db.
		Preload("Artwork").
		Preload("Bids").
		First(&auction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &auction, nil
}

func (s *Service) GetAll() ([]auctions.Auction, error) {
	var list []auctions.Auction
	err := s.db.
		Preload("Artwork").
		Preload("Bids").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) Update(id string, req UpdateAuctionRequest) (*auctions.Auction, error) {
	var auction auctions.Auction
	if err := s.db.First(&auction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
		auction.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
		auction.EndDate = *req.EndDate
	}
	if req.StartingBid != nil {
		updates["starting_bid"] = *req.StartingBid
		auction.StartingBid = *req.StartingBid
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		auction.Status = *req.Status
	}
	if len(updates) == 0 {
		return &auction, nil
	}

	if err := s.db.Model(&auction).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &auction, nil
}

func (s *Service) Delete(id string) (*auctions.Auction, error) {
	var auction auctions.Auction
	if err := s.db.First(&auction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&auction).Error; err != nil {
		return nil, err
	}
	return &auction, nil
}
