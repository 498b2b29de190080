package services

import (
	"context"
	"strings"

	"mentorlink_backend/internal/cache"
	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProfileService отвечает за provisioning и редактирование профилей.
// Provisioning идемпотентен: повторные вызовы не трогают поля,
// отредактированные владельцем.
type ProfileService interface {
	EnsureUser(ctx context.Context, db *gorm.DB, id, email, fullName string) error
	// EnsureProfile создает профиль с дефолтами, если его еще нет.
	// Существующий профиль не изменяется.
	EnsureProfile(ctx context.Context, db *gorm.DB, userID, name string) error
	GetOwnProfile(ctx context.Context, db *gorm.DB, userID, email, fullName string) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	matchCache  cache.MatchCache
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	matchCache cache.MatchCache,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		matchCache:  matchCache,
	}
}

// defaultProfile - единственное место, где определены дефолты нового профиля.
func defaultProfile(userID, name string) *models.Profile {
	p := &models.Profile{
		UserID:       userID,
		Name:         name,
		Role:         models.ProfileRoleMentee,
		Availability: models.AvailabilityAvailable,
	}
	p.SetSkills([]string{})
	p.SetInterests([]string{})
	return p
}

func (s *ProfileServiceImpl) EnsureUser(ctx context.Context, db *gorm.DB, id, email, fullName string) error {
	user := &models.User{
		ID:       id,
		Email:    email,
		FullName: fullName,
	}
	if err := s.userRepo.Upsert(db, user); err != nil {
		return apperrors.PersistenceError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) EnsureProfile(ctx context.Context, db *gorm.DB, userID, name string) error {
	_, err := s.profileRepo.FindByUserID(db, userID)
	if err == nil {
		// Профиль уже есть - пользовательские поля не трогаем.
		return nil
	}
	if err != repositories.ErrProfileNotFound {
		return apperrors.PersistenceError(err)
	}

	if err := s.profileRepo.CreateProfile(db, defaultProfile(userID, name)); err != nil {
		if err == repositories.ErrProfileAlreadyExists {
			// Гонка двух сессий provisioning - обе считаются успешными.
			return nil
		}
		return apperrors.PersistenceError(err)
	}

	logger.CtxInfo(ctx, "default profile provisioned", "profile_user_id", userID)
	return nil
}

func (s *ProfileServiceImpl) GetOwnProfile(ctx context.Context, db *gorm.DB, userID, email, fullName string) (*dto.ProfileResponse, error) {
	// Ensure-on-read: страница пользователя не должна падать из-за
	// отсутствия provisioning. Ошибки ensure не фатальны.
	if err := s.EnsureUser(ctx, db, userID, email, fullName); err != nil {
		logger.CtxWarn(ctx, "ensure user failed, continuing", "error", err.Error())
	}
	if err := s.EnsureProfile(ctx, db, userID, fullName); err != nil {
		logger.CtxWarn(ctx, "ensure profile failed, continuing", "error", err.Error())
	}

	return s.GetProfile(ctx, db, userID)
}

func (s *ProfileServiceImpl) GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &models.Profile{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		Title:        req.Title,
		Bio:          req.Bio,
		Location:     req.Location,
		Role:         models.ProfileRole(req.Role),
		Availability: models.Availability(req.Availability),
	}
	profile.SetSkills(req.Skills)
	profile.SetInterests(req.Interests)

	if err := s.profileRepo.UpdateOwned(db, profile); err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	// Интересы владельца изменились - его ранжирование устарело.
	// Для остальных пользователей кэш истекает по TTL.
	if err := s.matchCache.Delete(ctx, cache.RankKey(userID)); err != nil {
		logger.CtxWarn(ctx, "failed to invalidate match cache", "error", err.Error())
	}

	return s.GetProfile(ctx, db, userID)
}
