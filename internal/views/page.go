package views

import (
	"strconv"

	"premier-properties/internal/models"
	"premier-properties/internal/services"
	"premier-properties/internal/transformers"
)

const (
	PageTemplate  = "page"
	ErrorTemplate = "error"

	LeafletVersion = "1.9.4"
	// backend rejects longer search terms
	SearchMaxLength = 200
)

// Option is one entry of a filter select.
type Option struct {
	Value    string
	Selected bool
}

// Page is the data the main page template renders.
type Page struct {
	Snapshot        services.Snapshot
	Cards           []transformers.CardView
	Detail          *transformers.DetailView
	Contact         *services.ContactSnapshot
	BedroomOptions  []Option
	PropertyTypes   []Option
	LeafletVersion  string
	SearchMaxLength int
	Year            int
}

// NewPage assembles the page from a session snapshot.
func NewPage(snap services.Snapshot, cards transformers.CardTransformer, details transformers.DetailTransformer, year int) Page {
	page := Page{
		Snapshot:        snap,
		BedroomOptions:  bedroomOptions(snap.Filters.Bedrooms),
		PropertyTypes:   typeOptions(snap.Filters.PropertyType),
		LeafletVersion:  LeafletVersion,
		SearchMaxLength: SearchMaxLength,
		Year:            year,
	}
	if snap.ShowGrid() {
		page.Cards = cards.ToCards(snap.Properties)
	}
	if snap.Detail != nil {
		d := details.ToDetail(snap.Detail.Property, snap.Detail.PhotoIndex)
		page.Detail = &d
		page.Contact = snap.Detail.Contact
	}
	return page
}

func bedroomOptions(selected string) []Option {
	opts := make([]Option, 0, len(models.BedroomOptions))
	for _, n := range models.BedroomOptions {
		v := strconv.Itoa(n)
		opts = append(opts, Option{Value: v, Selected: v == selected})
	}
	return opts
}

func typeOptions(selected string) []Option {
	opts := make([]Option, 0, len(models.PropertyTypes))
	for _, t := range models.PropertyTypes {
		opts = append(opts, Option{Value: t, Selected: t == selected})
	}
	return opts
}

// ErrorPage is rendered by the error handler for browser requests.
type ErrorPage struct {
	Status  int
	Title   string
	Message string
}
