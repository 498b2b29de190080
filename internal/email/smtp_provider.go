package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider - реализация Provider поверх gomail
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if config.SMTPHost == "" || config.FromEmail == "" {
		return nil, fmt.Errorf("invalid email config: smtp_host and from_email are required")
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendMatchRequest(to, menteeName string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "New mentorship request",
		Body:    fmt.Sprintf("%s sent you a mentorship request. Sign in to respond.", menteeName),
	})
}

func (p *SMTPProvider) SendMatchDecision(to, decision string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Mentorship request update",
		Body:    fmt.Sprintf("Your mentorship request was %s.", decision),
	})
}
