package models

// ContactFormData is the one-shot payload of a contact inquiry.
type ContactFormData struct {
	PropertyID int64  `json:"property_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message" validate:"required"`
}

// ContactStatus is the state of one contact sub-flow.
type ContactStatus string

const (
	ContactStatusIdle    ContactStatus = "idle"
	ContactStatusSending ContactStatus = "sending"
	ContactStatusSent    ContactStatus = "sent"
	ContactStatusError   ContactStatus = "error"
)
