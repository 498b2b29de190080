package services

import (
	"context"

	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NotificationService interface {
	List(ctx context.Context, db *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, db *gorm.DB, notificationID string) error
	UnreadCount(ctx context.Context, db *gorm.DB, userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(ctx context.Context, db *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindUserNotifications(db, userID, unreadOnly)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, db *gorm.DB, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(db, notificationID); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.PersistenceError(err)
	}
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(db, userID)
	if err != nil {
		return 0, apperrors.PersistenceError(err)
	}
	return count, nil
}
