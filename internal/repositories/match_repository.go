package repositories

import (
	"errors"
	"time"

	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound = errors.New("match not found")
)

type MatchRepository interface {
	// Create вставляет новую запись. Дедупликации по паре нет намеренно.
	Create(db *gorm.DB, match *models.Match) error
	FindByID(db *gorm.DB, id string) (*models.Match, error)
	// UpdateStatus меняет статус и обновляет updated_at, возвращает
	// обновленную запись.
	UpdateStatus(db *gorm.DB, id string, status models.MatchStatus) (*models.Match, error)
	ListForUser(db *gorm.DB, userID string) ([]models.Match, error)
}

type MatchRepositoryImpl struct{}

func NewMatchRepository() MatchRepository {
	return &MatchRepositoryImpl{}
}

func (r *MatchRepositoryImpl) Create(db *gorm.DB, match *models.Match) error {
	return db.Create(match).Error
}

func (r *MatchRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Match, error) {
	var match models.Match
	err := db.First(&match, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.MatchStatus) (*models.Match, error) {
	result := db.Model(&models.Match{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrMatchNotFound
	}
	return r.FindByID(db, id)
}

func (r *MatchRepositoryImpl) ListForUser(db *gorm.DB, userID string) ([]models.Match, error) {
	var matches []models.Match
	err := db.Where("mentor_id = ? OR mentee_id = ?", userID, userID).
		Order("created_at DESC").Find(&matches).Error
	return matches, err
}
