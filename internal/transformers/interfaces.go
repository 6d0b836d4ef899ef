package transformers

import (
	"premier-properties/internal/models"
)

type CardTransformer interface {
	ToCard(p models.Property) CardView
	ToCards(props []models.Property) []CardView
}

type MapTransformer interface {
	ToMap(props []models.Property) MapView
}

type DetailTransformer interface {
	ToDetail(p models.Property, photoIndex int) DetailView
}

type AddressTransformer interface {
	FormatAddress(p models.Property) string
	FormatLocality(p models.Property) string
}
