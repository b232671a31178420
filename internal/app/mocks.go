package app

// MockMailer is used for tests and local development without SMTP.
type MockMailer struct{}

func (m *MockMailer) SendContactMessage(name, replyTo, subject, body string) error { return nil }
