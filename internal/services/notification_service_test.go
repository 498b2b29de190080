package services

import (
	"context"
	"testing"

	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService(t *testing.T) {
	t.Parallel()

	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo)
	ctx := context.Background()

	require.NoError(t, repo.CreateMatchRequestNotification(nil, "mentor-1", "match-1", "Alice"))
	require.NoError(t, repo.CreateMatchDecisionNotification(nil, "mentee-1", "match-1", models.MatchStatusAccepted))

	t.Run("lists only own notifications", func(t *testing.T) {
		notifications, err := service.List(ctx, nil, "mentor-1", false)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, repositories.NotificationTypeMatchRequest, notifications[0].Type)
	})

	t.Run("unread count and mark read", func(t *testing.T) {
		count, err := service.UnreadCount(ctx, nil, "mentor-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		notifications, err := service.List(ctx, nil, "mentor-1", true)
		require.NoError(t, err)
		require.Len(t, notifications, 1)

		require.NoError(t, service.MarkRead(ctx, nil, notifications[0].ID))

		count, err = service.UnreadCount(ctx, nil, "mentor-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		unread, err := service.List(ctx, nil, "mentor-1", true)
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("marking unknown notification is not found", func(t *testing.T) {
		err := service.MarkRead(ctx, nil, "missing")
		assert.Error(t, err)
	})
}
