package models

// Match - запрос на менторство между ментором и менти.
// Создается всегда в статусе pending, терминальные состояния -
// accepted и rejected. Записи никогда не удаляются.
//
// Уникальности по паре (mentor_id, mentee_id) намеренно нет:
// повторные pending запросы допустимы, см. DESIGN.md.
type Match struct {
	BaseModel
	MentorID string      `gorm:"not null;index" json:"mentor_id"`
	MenteeID string      `gorm:"not null;index" json:"mentee_id"`
	Status   MatchStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
