package dto

// CreateMatchRequest - запрос менти на менторство.
// Статус клиентом не передается: запись всегда создается как pending.
type CreateMatchRequest struct {
	MentorID string `json:"mentor_id" binding:"required"`
}

// UpdateMatchStatusRequest - смена статуса записи о менторстве.
type UpdateMatchStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}
