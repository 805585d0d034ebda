package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/auth"
	"github.com/skillconnect/skillconnect-backend/internal/dtos"
	"github.com/skillconnect/skillconnect-backend/internal/models"
	"github.com/skillconnect/skillconnect-backend/pkg/apierr"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates the account and its role-matching profile row in one
// transaction. The role is fixed for the lifetime of the account.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	if !req.Role.Valid() {
		return nil, apierr.ErrBadRequest("role must be recruiter or freelancer")
	}

	var count int64
	s.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count)
	if count > 0 {
		return nil, apierr.ErrConflict("email or username already taken")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apierr.ErrBadRequest(err.Error())
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		switch user.Role {
		case models.RoleRecruiter:
			return tx.Create(&models.RecruiterProfile{UserID: user.ID}).Error
		case models.RoleFreelancer:
			return tx.Create(&models.FreelancerProfile{UserID: user.ID}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns the user.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.ErrUnauthorized("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apierr.ErrUnauthorized("invalid credentials")
	}
	return &user, nil
}

// Get fetches a user with both profile associations.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.
		Preload("RecruiterProfile").
		Preload("FreelancerProfile").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
