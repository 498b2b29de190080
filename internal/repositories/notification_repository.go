package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mentorlink_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Константы типов уведомлений
const (
	NotificationTypeMatchRequest  = "match_request"
	NotificationTypeMatchDecision = "match_decision"
)

type NotificationRepository interface {
	CreateNotification(db *gorm.DB, notification *models.Notification) error
	FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(db *gorm.DB, notificationID string) error
	GetUnreadCount(db *gorm.DB, userID string) (int64, error)

	// Factory methods for common notification types
	CreateMatchRequestNotification(db *gorm.DB, mentorID, matchID, menteeName string) error
	CreateMatchDecisionNotification(db *gorm.DB, menteeID, matchID string, status models.MatchStatus) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) CreateNotification(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindUserNotifications(db *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error) {
	query := db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, notificationID string) error {
	now := time.Now()
	result := db.Model(&models.Notification{}).Where("id = ?", notificationID).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": &now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetUnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) CreateMatchRequestNotification(db *gorm.DB, mentorID, matchID, menteeName string) error {
	data, _ := json.Marshal(map[string]string{"match_id": matchID})

	return r.CreateNotification(db, &models.Notification{
		UserID:  mentorID,
		Type:    NotificationTypeMatchRequest,
		Title:   "New mentorship request",
		Message: fmt.Sprintf("%s sent you a mentorship request", menteeName),
		Data:    datatypes.JSON(data),
	})
}

func (r *NotificationRepositoryImpl) CreateMatchDecisionNotification(db *gorm.DB, menteeID, matchID string, status models.MatchStatus) error {
	data, _ := json.Marshal(map[string]string{"match_id": matchID})

	return r.CreateNotification(db, &models.Notification{
		UserID:  menteeID,
		Type:    NotificationTypeMatchDecision,
		Title:   "Mentorship request update",
		Message: fmt.Sprintf("Your mentorship request was %s", status),
		Data:    datatypes.JSON(data),
	})
}
