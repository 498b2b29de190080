package services

import (
	"context"
	"strings"

	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Типы событий identity provider
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// WebhookService обрабатывает уже верифицированные события identity
// provider. Проверка подписи - ответственность хендлера.
type WebhookService interface {
	HandleEvent(ctx context.Context, db *gorm.DB, event *dto.ClerkEvent) error
}

type webhookService struct {
	profileService ProfileService
}

func NewWebhookService(profileService ProfileService) WebhookService {
	return &webhookService{profileService: profileService}
}

func (s *webhookService) HandleEvent(ctx context.Context, db *gorm.DB, event *dto.ClerkEvent) error {
	switch event.Type {
	case EventUserCreated:
		return s.handleUserCreated(ctx, db, &event.Data)
	case EventUserUpdated:
		return s.handleUserUpdated(ctx, db, &event.Data)
	case EventUserDeleted:
		// Удаление подтверждаем, но не выполняем: записи пользователей
		// и матчей сохраняются.
		logger.CtxInfo(ctx, "user deletion acknowledged", "clerk_user_id", event.Data.ID)
		return nil
	default:
		logger.CtxInfo(ctx, "unhandled webhook event type", "type", event.Type)
		return nil
	}
}

func (s *webhookService) handleUserCreated(ctx context.Context, db *gorm.DB, data *dto.ClerkUserData) error {
	if data.ID == "" {
		return apperrors.NewBadRequestError("Webhook payload missing user id")
	}

	fullName := joinName(data.FirstName, data.LastName)

	if err := s.profileService.EnsureUser(ctx, db, data.ID, data.PrimaryEmail(), fullName); err != nil {
		return err
	}

	// Ошибка создания профиля не должна ронять синхронизацию
	// пользователя: provisioning профиля best-effort.
	if err := s.profileService.EnsureProfile(ctx, db, data.ID, fullName); err != nil {
		logger.CtxWarn(ctx, "default profile creation failed", "error", err.Error(), "clerk_user_id", data.ID)
	}

	logger.CtxInfo(ctx, "user synced from webhook", "clerk_user_id", data.ID)
	return nil
}

func (s *webhookService) handleUserUpdated(ctx context.Context, db *gorm.DB, data *dto.ClerkUserData) error {
	if data.ID == "" {
		return apperrors.NewBadRequestError("Webhook payload missing user id")
	}

	// Обновляются только identity-поля; профиль не трогаем.
	return s.profileService.EnsureUser(ctx, db, data.ID, data.PrimaryEmail(), joinName(data.FirstName, data.LastName))
}

func joinName(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(p))
		}
	}
	return strings.Join(nonEmpty, " ")
}
