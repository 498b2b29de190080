package services

import (
	"context"
	"testing"
	"time"

	"mentorlink_backend/internal/cache"
	"mentorlink_backend/internal/models"
	"mentorlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchingServiceFixture struct {
	service     MatchingService
	profileRepo *fakeProfileRepo
	cache       *fakeMatchCache
}

func newMatchingServiceFixture(t *testing.T) *matchingServiceFixture {
	t.Helper()

	f := &matchingServiceFixture{
		profileRepo: newFakeProfileRepo(),
		cache:       newFakeMatchCache(),
	}
	f.service = NewMatchingService(f.profileRepo, f.cache, time.Minute)
	return f
}

func (f *matchingServiceFixture) addProfile(userID string, role models.ProfileRole, skills, interests []string) {
	p := &models.Profile{UserID: userID, Name: userID, Role: role}
	p.SetSkills(skills)
	p.SetInterests(interests)
	if err := f.profileRepo.CreateProfile(nil, p); err != nil {
		panic(err)
	}
}

func TestMatchingService_FindMentorsForUser(t *testing.T) {
	t.Parallel()

	t.Run("ranks mentor candidates best first", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentee-1", models.ProfileRoleMentee, nil, []string{"AI", "Design"})
		f.addProfile("mentor-a", models.ProfileRoleMentor, []string{"AI"}, nil)
		f.addProfile("mentor-b", models.ProfileRoleMentor, nil, []string{"Design", "AI"})

		matches, err := f.service.FindMentorsForUser(context.Background(), nil, "mentee-1", 0)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "mentor-b", matches[0].Profile.UserID)
		assert.Equal(t, 2, matches[0].Score)
		assert.Equal(t, "mentor-a", matches[1].Profile.UserID)
		assert.Equal(t, 1, matches[1].Score)
	})

	t.Run("mentee-only profiles are not candidates", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentee-1", models.ProfileRoleMentee, nil, []string{"AI"})
		f.addProfile("mentee-2", models.ProfileRoleMentee, []string{"AI"}, nil)
		f.addProfile("dual-1", models.ProfileRoleBoth, []string{"AI"}, nil)

		matches, err := f.service.FindMentorsForUser(context.Background(), nil, "mentee-1", 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "dual-1", matches[0].Profile.UserID)
	})

	t.Run("viewer without profile gets zero-score list", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentor-a", models.ProfileRoleMentor, []string{"AI"}, nil)

		matches, err := f.service.FindMentorsForUser(context.Background(), nil, "ghost", 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 0, matches[0].Score)
	})

	t.Run("limit truncates the ranking", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentee-1", models.ProfileRoleMentee, nil, []string{"AI"})
		f.addProfile("mentor-a", models.ProfileRoleMentor, []string{"AI"}, nil)
		f.addProfile("mentor-b", models.ProfileRoleMentor, nil, nil)
		f.addProfile("mentor-c", models.ProfileRoleMentor, nil, nil)

		matches, err := f.service.FindMentorsForUser(context.Background(), nil, "mentee-1", 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "mentor-a", matches[0].Profile.UserID)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentee-1", models.ProfileRoleMentee, nil, []string{"AI"})
		f.addProfile("mentor-a", models.ProfileRoleMentor, []string{"AI"}, nil)

		first, err := f.service.FindMentorsForUser(context.Background(), nil, "mentee-1", 0)
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Contains(t, f.cache.entries, cache.RankKey("mentee-1"))

		// Новый кандидат не виден, пока кэш не истек или не сброшен
		f.addProfile("mentor-b", models.ProfileRoleMentor, []string{"AI"}, nil)

		second, err := f.service.FindMentorsForUser(context.Background(), nil, "mentee-1", 0)
		require.NoError(t, err)
		assert.Len(t, second, 1)

		require.NoError(t, f.cache.Delete(context.Background(), cache.RankKey("mentee-1")))

		third, err := f.service.FindMentorsForUser(context.Background(), nil, "mentee-1", 0)
		require.NoError(t, err)
		assert.Len(t, third, 2)
	})
}

func TestMatchingService_Compatibility(t *testing.T) {
	t.Parallel()

	t.Run("returns score and reasons for a pair", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentee-1", models.ProfileRoleMentee, nil, []string{"AI", "Design"})
		f.addProfile("mentor-a", models.ProfileRoleMentor, []string{"AI"}, []string{"Design"})

		result, err := f.service.Compatibility(context.Background(), nil, "mentee-1", "mentor-a")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Score)
		assert.Len(t, result.Reasons, 2)
	})

	t.Run("missing mentor profile is an error", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentee-1", models.ProfileRoleMentee, nil, []string{"AI"})

		_, err := f.service.Compatibility(context.Background(), nil, "mentee-1", "ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})

	t.Run("missing mentee profile falls back to empty profile", func(t *testing.T) {
		f := newMatchingServiceFixture(t)
		f.addProfile("mentor-a", models.ProfileRoleMentor, []string{"AI"}, nil)

		result, err := f.service.Compatibility(context.Background(), nil, "ghost", "mentor-a")
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
	})
}
