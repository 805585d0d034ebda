package services

import (
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// ListForUser returns the user's notifications, newest-first.
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flips a notification to read, scoped to its owner. Someone
// else's notification reads as not found.
func (s *NotificationService) MarkRead(userID, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := s.DB.Where("user_id = ?", userID).First(&notification, id).Error
	if err != nil {
		return nil, err
	}

	if !notification.IsRead {
		if err := s.DB.Model(&notification).Update("is_read", true).Error; err != nil {
			return nil, err
		}
		notification.IsRead = true
	}
	return &notification, nil
}
