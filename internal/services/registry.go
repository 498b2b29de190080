package services

// ServiceContainer - контейнер всех сервисов приложения для DI.
type ServiceContainer struct {
	ProfileService      ProfileService
	MatchingService     MatchingService
	MatchService        MatchService
	WebhookService      WebhookService
	NotificationService NotificationService
}
