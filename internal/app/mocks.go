package app

import "mentorlink_backend/internal/email"

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(email *email.Email) error { return nil }

func (m *MockEmailProvider) SendMatchRequest(to, menteeName string) error { return nil }

func (m *MockEmailProvider) SendMatchDecision(to, decision string) error { return nil }
