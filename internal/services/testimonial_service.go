package services

import (
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

type TestimonialService struct {
	DB *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{DB: db}
}

// Submit stores a testimonial awaiting moderation. It stays out of the
// public listing until approved.
func (s *TestimonialService) Submit(userID uint, content string) (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		UserID:  userID,
		Content: content,
	}
	if err := s.DB.Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// ListApproved returns approved testimonials, newest-first, with the user
// and profiles needed for display projections.
func (s *TestimonialService) ListApproved() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.DB.
		Preload("User").
		Preload("User.RecruiterProfile").
		Preload("User.FreelancerProfile").
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error
	return testimonials, err
}
