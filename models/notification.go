package models

// Notification is an out-of-band message sent to an account owner.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	To      string           `json:"to"`
	Name    string           `json:"name"`
	Subject string           `json:"subject"`
	Link    string           `json:"link,omitempty"`
}

// NotificationKind selects the email template.
type NotificationKind string

const (
	NotificationEmailVerification NotificationKind = "emailVerification"
	NotificationPasswordReset     NotificationKind = "passwordReset"
	NotificationWelcome           NotificationKind = "welcomeEmail"
)
