package handlers

// AppHandlers - контейнер всех HTTP хендлеров приложения.
type AppHandlers struct {
	ProfileHandler      *ProfileHandler
	MatchingHandler     *MatchingHandler
	MatchHandler        *MatchHandler
	WebhookHandler      *WebhookHandler
	NotificationHandler *NotificationHandler
}
