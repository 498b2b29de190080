package repositories

import (
	"errors"

	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	// Upsert вставляет зеркало пользователя или обновляет только
	// identity-поля (email, full_name) при конфликте по id.
	Upsert(db *gorm.DB, user *models.User) error
	UpdateIdentity(db *gorm.DB, id, email, fullName string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Upsert(db *gorm.DB, user *models.User) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "updated_at"}),
	}).Create(user).Error
}

func (r *UserRepositoryImpl) UpdateIdentity(db *gorm.DB, id, email, fullName string) error {
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":     email,
		"full_name": fullName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
