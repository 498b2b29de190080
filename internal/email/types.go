package email

// Email - простое исходящее сообщение
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Config - настройки SMTP провайдера
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
