package bids

import (
	"errors"

	"artmarket-api/internal/domain/auctions"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("bid not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateBidRequest) (*auctions.Bid, error) {
	bid := auctions.Bid{
		Amount:    req.Amount,
		BidderID:  req.BidderID,
		AuctionID: req.AuctionID,
	}
	if err := s.db.Create(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (s *Service) GetByID(id string) (*auctions.Bid, error) {
	var bid auctions.Bid
	err := s.db.First(&bid, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (s *Service) GetAll() ([]auctions.Bid, error) {
	var bids []auctions.Bid
	if err := s.db.Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

func (s *Service) Update(id string, req UpdateBidRequest) (*auctions.Bid, error) {
	var bid auctions.Bid
	if err := s.db.First(&bid, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Amount == nil {
		return &bid, nil
	}

	bid.Amount = *req.Amount
	if err := s.db.Model(&bid).Updates(map[string]interface{}{"amount": *req.Amount}).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

func (s *Service) Delete(id string) (*auctions.Bid, error) {
	var bid auctions.Bid
	if err := s.db.First(&bid, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}
