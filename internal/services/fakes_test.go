package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorlink_backend/internal/email"
	"mentorlink_backend/internal/models"
	"mentorlink_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory реализации репозиториев для unit-тестов сервисов.
// Аргумент db игнорируется: сервисы пробрасывают его как есть.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Upsert(_ *gorm.DB, user *models.User) error {
	if existing, ok := r.users[user.ID]; ok {
		existing.Email = user.Email
		existing.FullName = user.FullName
		existing.UpdatedAt = time.Now()
		return nil
	}
	copied := *user
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateIdentity(_ *gorm.DB, id, email, fullName string) error {
	user, ok := r.users[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Email = email
	user.FullName = fullName
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile // key: user_id
	order    []string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) CreateProfile(_ *gorm.DB, profile *models.Profile) error {
	if _, ok := r.profiles[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	copied := *profile
	copied.ID = fmt.Sprintf("profile-%d", len(r.order)+1)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.profiles[profile.UserID] = &copied
	r.order = append(r.order, profile.UserID)
	return nil
}

func (r *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) UpdateOwned(_ *gorm.DB, profile *models.Profile) error {
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	existing.Name = profile.Name
	existing.Title = profile.Title
	existing.Bio = profile.Bio
	existing.Location = profile.Location
	existing.Role = profile.Role
	existing.Availability = profile.Availability
	existing.Skills = profile.Skills
	existing.Interests = profile.Interests
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProfileRepo) ListByRole(_ *gorm.DB, role models.ProfileRole) ([]models.Profile, error) {
	var result []models.Profile
	for _, userID := range r.order {
		if r.profiles[userID].Role == role {
			result = append(result, *r.profiles[userID])
		}
	}
	return result, nil
}

func (r *fakeProfileRepo) FindMentorCandidates(_ *gorm.DB) ([]models.Profile, error) {
	var result []models.Profile
	for _, userID := range r.order {
		if r.profiles[userID].Role.CanMentor() {
			result = append(result, *r.profiles[userID])
		}
	}
	return result, nil
}

type fakeMatchRepo struct {
	matches []*models.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{}
}

func (r *fakeMatchRepo) Create(_ *gorm.DB, match *models.Match) error {
	match.ID = fmt.Sprintf("match-%d", len(r.matches)+1)
	match.CreatedAt = time.Now()
	match.UpdatedAt = match.CreatedAt
	copied := *match
	r.matches = append(r.matches, &copied)
	return nil
}

func (r *fakeMatchRepo) FindByID(_ *gorm.DB, id string) (*models.Match, error) {
	for _, m := range r.matches {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) UpdateStatus(_ *gorm.DB, id string, status models.MatchStatus) (*models.Match, error) {
	for _, m := range r.matches {
		if m.ID == id {
			m.Status = status
			m.UpdatedAt = time.Now()
			copied := *m
			return &copied, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListForUser(_ *gorm.DB, userID string) ([]models.Match, error) {
	var result []models.Match
	for i := len(r.matches) - 1; i >= 0; i-- {
		m := r.matches[i]
		if m.MentorID == userID || m.MenteeID == userID {
			result = append(result, *m)
		}
	}
	return result, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) CreateNotification(_ *gorm.DB, notification *models.Notification) error {
	notification.ID = fmt.Sprintf("notification-%d", len(r.notifications)+1)
	notification.CreatedAt = time.Now()
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) FindUserNotifications(_ *gorm.DB, userID string, unreadOnly bool) ([]models.Notification, error) {
	var result []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		result = append(result, *n)
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ *gorm.DB, notificationID string) error {
	for _, n := range r.notifications {
		if n.ID == notificationID {
			now := time.Now()
			n.IsRead = true
			n.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) GetUnreadCount(_ *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) CreateMatchRequestNotification(db *gorm.DB, mentorID, matchID, menteeName string) error {
	return r.CreateNotification(db, &models.Notification{
		UserID:  mentorID,
		Type:    repositories.NotificationTypeMatchRequest,
		Title:   "New mentorship request",
		Message: menteeName + " sent you a mentorship request",
	})
}

func (r *fakeNotificationRepo) CreateMatchDecisionNotification(db *gorm.DB, menteeID, matchID string, status models.MatchStatus) error {
	return r.CreateNotification(db, &models.Notification{
		UserID:  menteeID,
		Type:    repositories.NotificationTypeMatchDecision,
		Title:   "Mentorship request update",
		Message: "Your mentorship request was " + string(status),
	})
}

// fakeMatchCache - in-memory кэш без TTL-логики.
type fakeMatchCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeMatchCache() *fakeMatchCache {
	return &fakeMatchCache{entries: make(map[string][]byte)}
}

func (c *fakeMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, out)
}

func (c *fakeMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeMatchCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type sentEmail struct {
	kind string
	to   string
	body string
}

type fakeEmailProvider struct {
	sent []sentEmail
	fail bool
}

func (p *fakeEmailProvider) Send(msg *email.Email) error {
	if p.fail {
		return fmt.Errorf("smtp unavailable")
	}
	p.sent = append(p.sent, sentEmail{kind: "plain", to: msg.To[0], body: msg.Body})
	return nil
}

func (p *fakeEmailProvider) SendMatchRequest(to, menteeName string) error {
	if p.fail {
		return fmt.Errorf("smtp unavailable")
	}
	p.sent = append(p.sent, sentEmail{kind: "match_request", to: to, body: menteeName})
	return nil
}

func (p *fakeEmailProvider) SendMatchDecision(to, decision string) error {
	if p.fail {
		return fmt.Errorf("smtp unavailable")
	}
	p.sent = append(p.sent, sentEmail{kind: "match_decision", to: to, body: decision})
	return nil
}
