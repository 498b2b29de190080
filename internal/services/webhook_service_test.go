package services

import (
	"context"
	"testing"

	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type webhookServiceFixture struct {
	service     WebhookService
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
}

func newWebhookServiceFixture(t *testing.T) *webhookServiceFixture {
	t.Helper()

	f := &webhookServiceFixture{
		userRepo:    newFakeUserRepo(),
		profileRepo: newFakeProfileRepo(),
	}
	profileService := NewProfileService(f.userRepo, f.profileRepo, newFakeMatchCache())
	f.service = NewWebhookService(profileService)
	return f
}

func userCreatedEvent(id, firstName, lastName, email string) *dto.ClerkEvent {
	return &dto.ClerkEvent{
		Type: EventUserCreated,
		Data: dto.ClerkUserData{
			ID:        id,
			FirstName: firstName,
			LastName:  lastName,
			EmailAddresses: []dto.ClerkEmailAddress{
				{EmailAddress: email},
			},
		},
	}
}

func TestWebhookService_HandleEvent(t *testing.T) {
	t.Parallel()

	t.Run("user.created provisions user and default profile", func(t *testing.T) {
		f := newWebhookServiceFixture(t)

		err := f.service.HandleEvent(context.Background(), nil, userCreatedEvent("clerk-1", "Alice", "Smith", "alice@test.com"))
		require.NoError(t, err)

		user, err := f.userRepo.FindByID(nil, "clerk-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@test.com", user.Email)
		assert.Equal(t, "Alice Smith", user.FullName)

		profile, err := f.profileRepo.FindByUserID(nil, "clerk-1")
		require.NoError(t, err)
		assert.Equal(t, models.ProfileRoleMentee, profile.Role)
		assert.Equal(t, models.AvailabilityAvailable, profile.Availability)
	})

	t.Run("user.created is idempotent", func(t *testing.T) {
		f := newWebhookServiceFixture(t)
		event := userCreatedEvent("clerk-1", "Alice", "Smith", "alice@test.com")

		require.NoError(t, f.service.HandleEvent(context.Background(), nil, event))

		// Пользователь успевает отредактировать профиль
		edited := &models.Profile{UserID: "clerk-1", Name: "Alice S.", Role: models.ProfileRoleMentor, Availability: models.AvailabilityBusy}
		edited.SetSkills([]string{"Go"})
		edited.SetInterests(nil)
		require.NoError(t, f.profileRepo.UpdateOwned(nil, edited))

		// Повторная доставка события не откатывает правки
		require.NoError(t, f.service.HandleEvent(context.Background(), nil, event))

		profile, err := f.profileRepo.FindByUserID(nil, "clerk-1")
		require.NoError(t, err)
		assert.Equal(t, "Alice S.", profile.Name)
		assert.Equal(t, models.ProfileRoleMentor, profile.Role)
	})

	t.Run("user.updated refreshes identity fields only", func(t *testing.T) {
		f := newWebhookServiceFixture(t)
		require.NoError(t, f.service.HandleEvent(context.Background(), nil, userCreatedEvent("clerk-1", "Alice", "Smith", "alice@test.com")))

		edited := &models.Profile{UserID: "clerk-1", Name: "Custom", Role: models.ProfileRoleMentee, Availability: models.AvailabilityAvailable}
		require.NoError(t, f.profileRepo.UpdateOwned(nil, edited))

		update := userCreatedEvent("clerk-1", "Alicia", "Smith", "alicia@test.com")
		update.Type = EventUserUpdated
		require.NoError(t, f.service.HandleEvent(context.Background(), nil, update))

		user, err := f.userRepo.FindByID(nil, "clerk-1")
		require.NoError(t, err)
		assert.Equal(t, "alicia@test.com", user.Email)
		assert.Equal(t, "Alicia Smith", user.FullName)

		profile, err := f.profileRepo.FindByUserID(nil, "clerk-1")
		require.NoError(t, err)
		assert.Equal(t, "Custom", profile.Name)
	})

	t.Run("user.deleted keeps stored records", func(t *testing.T) {
		f := newWebhookServiceFixture(t)
		require.NoError(t, f.service.HandleEvent(context.Background(), nil, userCreatedEvent("clerk-1", "Alice", "Smith", "alice@test.com")))

		deleted := &dto.ClerkEvent{Type: EventUserDeleted, Data: dto.ClerkUserData{ID: "clerk-1"}}
		require.NoError(t, f.service.HandleEvent(context.Background(), nil, deleted))

		_, err := f.userRepo.FindByID(nil, "clerk-1")
		assert.NoError(t, err)
		_, err = f.profileRepo.FindByUserID(nil, "clerk-1")
		assert.NoError(t, err)
	})

	t.Run("unknown event type is acknowledged", func(t *testing.T) {
		f := newWebhookServiceFixture(t)

		err := f.service.HandleEvent(context.Background(), nil, &dto.ClerkEvent{Type: "session.created"})
		assert.NoError(t, err)
	})

	t.Run("missing user id is rejected", func(t *testing.T) {
		f := newWebhookServiceFixture(t)

		err := f.service.HandleEvent(context.Background(), nil, &dto.ClerkEvent{Type: EventUserCreated})
		assert.Error(t, err)
	})
}
