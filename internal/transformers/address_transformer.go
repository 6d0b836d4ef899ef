package transformers

import (
	"strings"

	"premier-properties/internal/models"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// FormatAddress renders "address, city, state zip".
func (t *addressTransformer) FormatAddress(p models.Property) string {
	return strings.TrimSpace(p.Address + ", " + p.City + ", " + p.State + " " + p.ZipCode)
}

// FormatLocality renders "city, state" as shown in map popups.
func (t *addressTransformer) FormatLocality(p models.Property) string {
	return p.City + ", " + p.State
}
