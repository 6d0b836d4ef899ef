package validators

import (
	"premier-properties/internal/models"
)

// ContactValidator enforces the required fields of a contact inquiry before
// it may be submitted.
type ContactValidator interface {
	ValidateContact(data *models.ContactFormData) error
}
