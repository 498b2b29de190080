package models

type ProfileRole string
type Availability string
type MatchStatus string

const (
	// Роль профиля в менторстве. "both" может выступать обеими сторонами.
	ProfileRoleMentee ProfileRole = "mentee"
	ProfileRoleMentor ProfileRole = "mentor"
	ProfileRoleBoth   ProfileRole = "both"

	// Availability - только для отображения, кандидатов не фильтрует.
	AvailabilityAvailable    Availability = "Available"
	AvailabilityBusy         Availability = "Busy"
	AvailabilityNotAvailable Availability = "Not Available"

	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// CanMentor сообщает, может ли роль выступать ментором.
func (r ProfileRole) CanMentor() bool {
	return r == ProfileRoleMentor || r == ProfileRoleBoth
}

// Valid проверяет, что статус входит в множество известных состояний.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return true
	}
	return false
}
