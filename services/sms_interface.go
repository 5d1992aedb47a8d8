package services

// SMSClient is an interface for SMS service providers
type SMSClient interface {
	SendMessage(phone string, message string) error
}
