package users

import (
	"errors"

	"artmarket-api/internal/domain/users"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(req CreateUserRequest) (*users.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	password := string(hashed)

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{"USER"}
	}

	user := users.User{
		Email:        req.Email,
		Password:     &password,
		Phone:        req.Phone,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Avatar:       req.Avatar,
		Roles:        pq.StringArray(roles),
		AuthProvider: "local",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetByID(id string) (*users.User, error) {
	var user users.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetByEmail(email string) (*users.User, error) {
	var user users.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetAll() ([]users.User, error) {
	var list []users.User
	if err := s.db.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) Update(id string, req UpdateUserRequest) (*users.User, error) {
	var user users.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
		user.Phone = *req.Phone
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
		user.LastName = *req.LastName
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
		user.Avatar = *req.Avatar
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) Delete(id string) (*users.User, error) {
	var user users.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
