package dto

// MentorMatch - кандидат-ментор с рассчитанным score.
// Порядок в списке - ранжирование по score по убыванию, стабильное на равных.
type MentorMatch struct {
	Profile *ProfileResponse `json:"profile"`
	Score   int              `json:"score"`
	Reasons []string         `json:"reasons"`
}

// CompatibilityResult - score одной пары менти/ментор.
type CompatibilityResult struct {
	MenteeID string   `json:"mentee_id"`
	MentorID string   `json:"mentor_id"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}
