package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendMatchRequest уведомляет ментора о новом запросе
	SendMatchRequest(to, menteeName string) error

	// SendMatchDecision уведомляет менти о решении по запросу
	SendMatchDecision(to, decision string) error
}
