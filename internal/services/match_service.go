package services

import (
	"context"

	"mentorlink_backend/internal/email"
	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MatchService - единственная точка записи в хранилище матчей.
// Инварианты, которые хранилище само не обеспечивает, живут здесь:
// ментор != менти, ментор mentor-capable, начальный статус всегда pending.
type MatchService interface {
	// RequestMatch создает запрос менторства от menteeID к mentorID.
	// menteeID - аутентифицированный пользователь (проверено выше по стеку).
	RequestMatch(ctx context.Context, db *gorm.DB, menteeID, mentorID string) (*models.Match, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, matchID string, status models.MatchStatus) (*models.Match, error)
	// RefreshMatches - явный pull матчей пользователя с обеих сторон.
	// Вызывается приложением на навигации или явном действии, а не
	// на каждом рендере.
	RefreshMatches(ctx context.Context, db *gorm.DB, userID string) ([]models.Match, error)
}

type matchService struct {
	matchRepo        repositories.MatchRepository
	profileRepo      repositories.ProfileRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) MatchService {
	return &matchService{
		matchRepo:        matchRepo,
		profileRepo:      profileRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

func (s *matchService) RequestMatch(ctx context.Context, db *gorm.DB, menteeID, mentorID string) (*models.Match, error) {
	if menteeID == mentorID {
		return nil, apperrors.ErrSelfMatch
	}

	mentorProfile, err := s.profileRepo.FindByUserID(db, mentorID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	if !mentorProfile.Role.CanMentor() {
		return nil, apperrors.ErrNotMentorCapable
	}

	// Дедупликации нет: повторный запрос к той же паре создает
	// вторую pending запись. См. DESIGN.md.
	match := &models.Match{
		MentorID: mentorID,
		MenteeID: menteeID,
		Status:   models.MatchStatusPending,
	}
	if err := s.matchRepo.Create(db, match); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	s.notifyMentor(ctx, db, match)

	return match, nil
}

func (s *matchService) UpdateStatus(ctx context.Context, db *gorm.DB, matchID string, status models.MatchStatus) (*models.Match, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus("match", "Unknown match status: "+string(status))
	}

	match, err := s.matchRepo.UpdateStatus(db, matchID, status)
	if err != nil {
		if err == repositories.ErrMatchNotFound {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	if status == models.MatchStatusAccepted || status == models.MatchStatusRejected {
		s.notifyMentee(ctx, db, match)
	}

	return match, nil
}

func (s *matchService) RefreshMatches(ctx context.Context, db *gorm.DB, userID string) ([]models.Match, error) {
	matches, err := s.matchRepo.ListForUser(db, userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return matches, nil
}

// notifyMentor - best-effort уведомление ментора о новом запросе.
// Ошибки логируются, на результат RequestMatch не влияют.
func (s *matchService) notifyMentor(ctx context.Context, db *gorm.DB, match *models.Match) {
	menteeName := match.MenteeID
	if menteeProfile, err := s.profileRepo.FindByUserID(db, match.MenteeID); err == nil && menteeProfile.Name != "" {
		menteeName = menteeProfile.Name
	}

	if err := s.notificationRepo.CreateMatchRequestNotification(db, match.MentorID, match.ID, menteeName); err != nil {
		logger.CtxWarn(ctx, "failed to create match request notification", "error", err.Error(), "match_id", match.ID)
	}

	mentor, err := s.userRepo.FindByID(db, match.MentorID)
	if err != nil || mentor.Email == "" {
		return
	}
	if err := s.emailProvider.SendMatchRequest(mentor.Email, menteeName); err != nil {
		logger.CtxWarn(ctx, "failed to send match request email", "error", err.Error(), "match_id", match.ID)
	}
}

func (s *matchService) notifyMentee(ctx context.Context, db *gorm.DB, match *models.Match) {
	if err := s.notificationRepo.CreateMatchDecisionNotification(db, match.MenteeID, match.ID, match.Status); err != nil {
		logger.CtxWarn(ctx, "failed to create match decision notification", "error", err.Error(), "match_id", match.ID)
	}

	mentee, err := s.userRepo.FindByID(db, match.MenteeID)
	if err != nil || mentee.Email == "" {
		return
	}
	if err := s.emailProvider.SendMatchDecision(mentee.Email, string(match.Status)); err != nil {
		logger.CtxWarn(ctx, "failed to send match decision email", "error", err.Error(), "match_id", match.ID)
	}
}
