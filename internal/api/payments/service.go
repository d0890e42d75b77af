package payments

import (
	"errors"

	"artmarket-api/internal/domain/billing"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("payment not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreatePaymentRequest) (*billing.Payment, error) {
	status := req.Status
	if status == "" {
		status = billing.StatusPending
	}

	payment := billing.Payment{
		Status:            status,
		RefID:             req.RefID,
		IsSuccessful:      req.IsSuccessful,
		Amount:            req.Amount,
		CommissionAmount:  req.CommissionAmount,
		CuratorCommission: req.CuratorCommission,
		ArtworkID:         req.ArtworkID,
		CollectorID:       req.CollectorID,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) GetByID(id string) (*billing.Payment, error) {
	var payment billing.Payment
	err := s.db.Preload("Artwork").First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) GetAll() ([]billing.Payment, error) {
	var payments []billing.Payment
	if err := s.db.Preload("Artwork").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Service) Update(id string, req UpdatePaymentRequest) (*billing.Payment, error) {
	var payment billing.Payment
	if err := s.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
		payment.Status = *req.Status
	}
	if req.IsSuccessful != nil {
		updates["is_successful"] = *req.IsSuccessful
		payment.IsSuccessful = *req.IsSuccessful
	}
	if len(updates) == 0 {
		return &payment, nil
	}

	if err := s.db.Model(&payment).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) Delete(id string) (*billing.Payment, error) {
	var payment billing.Payment
	if err := s.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkPaidByRefID flips a payment to PAID by its provider reference. Used by
// the checkout webhook, not by the HTTP CRUD surface.
func (s *Service) MarkPaidByRefID(refID string) (*billing.Payment, error) {
	var payment billing.Payment
	if err := s.db.First(&payment, "ref_id = ?", refID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"status":        billing.StatusPaid,
		"is_successful": true,
	}
	if err := s.db.Model(&payment).Updates(updates).Error; err != nil {
		return nil, err
	}
	payment.Status = billing.StatusPaid
	payment.IsSuccessful = true
	return &payment, nil
}
