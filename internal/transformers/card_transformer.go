package transformers

import (
	"premier-properties/internal/models"
)

// CardView is one summary card of the result grid.
type CardView struct {
	ID            int64
	Title         string
	Price         string
	Address       string
	Thumbnail     string
	Status        string
	StatusClass   string
	Bedrooms      string
	Bathrooms     string
	SquareFootage string
	PropertyType  string
}

type cardTransformer struct {
	addr AddressTransformer
}

func NewCardTransformer(addr AddressTransformer) CardTransformer {
	return &cardTransformer{addr: addr}
}

func (t *cardTransformer) ToCard(p models.Property) CardView {
	card := CardView{
		ID:            p.ID,
		Title:         p.Title,
		Price:         FormatPrice(p.Price),
		Address:       t.addr.FormatAddress(p),
		Thumbnail:     PlaceholderPhoto,
		Status:        p.ListingStatus,
		StatusClass:   StatusClass(p.ListingStatus),
		SquareFootage: FormatCount(p.SquareFootage) + " sqft",
		PropertyType:  p.PropertyType,
	}
	if len(p.Photos) > 0 && p.Photos[0] != "" {
		card.Thumbnail = p.Photos[0]
	}
	if p.Bedrooms > 0 {
		card.Bedrooms = FormatCount(p.Bedrooms) + " bd"
	}
	if p.Bathrooms > 0 {
		card.Bathrooms = FormatBathrooms(p.Bathrooms) + " ba"
	}
	return card
}

// ToCards keeps backend order.
func (t *cardTransformer) ToCards(props []models.Property) []CardView {
	cards := make([]CardView, 0, len(props))
	for _, p := range props {
		cards = append(cards, t.ToCard(p))
	}
	return cards
}
