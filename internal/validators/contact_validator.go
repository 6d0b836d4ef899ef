package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"premier-properties/internal/models"
)

// FieldErrors maps a form field name to a message for the visitor.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range []string{"name", "email", "message", "property_id"} {
		if msg, ok := fe[field]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

type contactValidator struct {
	validate *validator.Validate
}

func NewContactValidator() ContactValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &contactValidator{validate: v}
}

func (v *contactValidator) ValidateContact(data *models.ContactFormData) error {
	trimmed := *data
	trimmed.Name = strings.TrimSpace(data.Name)
	trimmed.Email = strings.TrimSpace(data.Email)
	trimmed.Message = strings.TrimSpace(data.Message)

	err := v.validate.Struct(&trimmed)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := FieldErrors{}
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			fe[e.Field()] = "This field is required."
		case "email":
			fe[e.Field()] = "Please enter a valid email address."
		default:
			fe[e.Field()] = "This value is not valid."
		}
	}
	return fe
}
