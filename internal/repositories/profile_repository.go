package repositories

import (
	"errors"

	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	CreateProfile(db *gorm.DB, profile *models.Profile) error
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	// UpdateOwned обновляет только поля, принадлежащие владельцу профиля.
	// Identity-поля сюда не входят - ими владеет provisioning.
	UpdateOwned(db *gorm.DB, profile *models.Profile) error
	ListByRole(db *gorm.DB, role models.ProfileRole) ([]models.Profile, error)
	// FindMentorCandidates возвращает все профили, способные выступать
	// ментором (role = mentor или both), в стабильном порядке создания.
	FindMentorCandidates(db *gorm.DB) ([]models.Profile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateProfile(db *gorm.DB, profile *models.Profile) error {
	var existing models.Profile
	if err := db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateOwned(db *gorm.DB, profile *models.Profile) error {
	result := db.Model(&models.Profile{}).Where("user_id = ?", profile.UserID).Updates(map[string]interface{}{
		"name":         profile.Name,
		"title":        profile.Title,
		"bio":          profile.Bio,
		"location":     profile.Location,
		"role":         profile.Role,
		"availability": profile.Availability,
		"skills":       profile.Skills,
		"interests":    profile.Interests,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ListByRole(db *gorm.DB, role models.ProfileRole) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Where("role = ?", role).Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) FindMentorCandidates(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Where("role IN ?", []models.ProfileRole{models.ProfileRoleMentor, models.ProfileRoleBoth}).
		Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}
