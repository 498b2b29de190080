package dto

import "mentorlink_backend/internal/models"

// UpdateProfileRequest - поля профиля, которыми владеет пользователь.
// Identity-поля (email) сюда не входят.
type UpdateProfileRequest struct {
	Name         string   `json:"name" binding:"required"`
	Title        string   `json:"title"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Role         string   `json:"role" validate:"required,oneof=mentee mentor both"`
	Availability string   `json:"availability" validate:"required,oneof=Available Busy 'Not Available'"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
}

type ProfileResponse struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Role         string   `json:"role"`
	Availability string   `json:"availability"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
}

func NewProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:       p.UserID,
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Location:     p.Location,
		Role:         string(p.Role),
		Availability: string(p.Availability),
		Skills:       p.GetSkills(),
		Interests:    p.GetInterests(),
	}
}
