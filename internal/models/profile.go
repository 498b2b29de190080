package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile - менторские атрибуты пользователя. Одна запись на user_id.
type Profile struct {
	BaseModel
	UserID       string         `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string         `json:"name"`
	Title        string         `json:"title"`
	Bio          string         `json:"bio"`
	Location     string         `json:"location"`
	Role         ProfileRole    `gorm:"type:varchar(20);default:'mentee'" json:"role"`
	Availability Availability   `gorm:"type:varchar(20);default:'Available'" json:"availability"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`    // ["Go", "SQL"]
	Interests    datatypes.JSON `gorm:"type:jsonb" json:"interests"` // ["AI", "Design"]
}

// GetSkills возвращает навыки профиля как slice строк
func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// GetInterests возвращает интересы профиля как slice строк
func (p *Profile) GetInterests() []string {
	var interests []string
	if len(p.Interests) > 0 {
		_ = json.Unmarshal(p.Interests, &interests)
	}
	return interests
}

// SetSkills устанавливает навыки профиля
func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

// SetInterests устанавливает интересы профиля
func (p *Profile) SetInterests(interests []string) {
	data, _ := json.Marshal(interests)
	p.Interests = datatypes.JSON(data)
}
