package dto

// ClerkEvent - событие жизненного цикла пользователя от identity provider.
type ClerkEvent struct {
	Type string        `json:"type"`
	Data ClerkUserData `json:"data"`
}

type ClerkEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type ClerkUserData struct {
	ID             string              `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	EmailAddresses []ClerkEmailAddress `json:"email_addresses"`
}

// PrimaryEmail возвращает первый email из payload, если он есть.
func (d *ClerkUserData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
