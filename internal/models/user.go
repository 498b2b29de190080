package models

import "time"

// User - зеркало учетной записи из внешнего identity provider (Clerk).
// ID приходит от провайдера и используется как первичный ключ, поэтому
// здесь нет uuid_generate_v4. Запись создается и обновляется только
// provisioning-потоком, пароль и сессии живут на стороне провайдера.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index" json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
