package services

import (
	"context"
	"time"

	"mentorlink_backend/internal/algorithms"
	"mentorlink_backend/internal/cache"
	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"
	"mentorlink_backend/internal/services/dto"
	"mentorlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MatchingService ранжирует менторов относительно профиля пользователя.
// Сам расчет - чистая функция в internal/algorithms; сервис добавляет
// загрузку кандидатов, кэширование и fallback для пустого профиля.
type MatchingService interface {
	FindMentorsForUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]dto.MentorMatch, error)
	Compatibility(ctx context.Context, db *gorm.DB, menteeUserID, mentorUserID string) (*dto.CompatibilityResult, error)
}

type matchingService struct {
	profileRepo repositories.ProfileRepository
	matchCache  cache.MatchCache
	cacheTTL    time.Duration
}

func NewMatchingService(profileRepo repositories.ProfileRepository, matchCache cache.MatchCache, cacheTTL time.Duration) MatchingService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &matchingService{
		profileRepo: profileRepo,
		matchCache:  matchCache,
		cacheTTL:    cacheTTL,
	}
}

func (s *matchingService) FindMentorsForUser(ctx context.Context, db *gorm.DB, userID string, limit int) ([]dto.MentorMatch, error) {
	key := cache.RankKey(userID)

	var cached []dto.MentorMatch
	if hit, err := s.matchCache.GetJSON(ctx, key, &cached); err == nil && hit {
		return limitMatches(cached, limit), nil
	} else if err != nil {
		logger.CtxWarn(ctx, "match cache read failed, recomputing", "error", err.Error())
	}

	viewer, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if err != repositories.ErrProfileNotFound {
			return nil, apperrors.PersistenceError(err)
		}
		// Профиль еще не создан: ранжируем по пустому профилю,
		// все кандидаты получат score 0, но список не пустеет.
		viewer = &models.Profile{UserID: userID}
	}

	candidates, err := s.profileRepo.FindMentorCandidates(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	ranked := algorithms.RankMentors(viewer, candidates)

	matches := make([]dto.MentorMatch, 0, len(ranked))
	for _, rm := range ranked {
		matches = append(matches, dto.MentorMatch{
			Profile: dto.NewProfileResponse(rm.Profile),
			Score:   rm.Score,
			Reasons: rm.Reasons,
		})
	}

	if err := s.matchCache.SetJSON(ctx, key, matches, s.cacheTTL); err != nil {
		logger.CtxWarn(ctx, "match cache write failed", "error", err.Error())
	}

	return limitMatches(matches, limit), nil
}

func (s *matchingService) Compatibility(ctx context.Context, db *gorm.DB, menteeUserID, mentorUserID string) (*dto.CompatibilityResult, error) {
	mentee, err := s.profileRepo.FindByUserID(db, menteeUserID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			mentee = &models.Profile{UserID: menteeUserID}
		} else {
			return nil, apperrors.PersistenceError(err)
		}
	}

	mentor, err := s.profileRepo.FindByUserID(db, mentorUserID)
	if err != nil {
		if err == repositories.ErrProfileNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.PersistenceError(err)
	}

	score, reasons := algorithms.MatchScore(mentee, mentor)

	return &dto.CompatibilityResult{
		MenteeID: menteeUserID,
		MentorID: mentorUserID,
		Score:    score,
		Reasons:  reasons,
	}, nil
}

func limitMatches(matches []dto.MentorMatch, limit int) []dto.MentorMatch {
	if limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}
