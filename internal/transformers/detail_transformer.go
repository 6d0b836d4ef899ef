package transformers

import (
	"fmt"

	"premier-properties/internal/models"
)

// DetailView is the full presentation of one selected property.
type DetailView struct {
	ID          int64
	Title       string
	Price       string
	Address     string
	Status      string
	StatusClass string
	Description string
	MainPhoto   string
	HasPhotos   bool
	Thumbnails  []Thumbnail
	Stats       []Stat
}

type Thumbnail struct {
	Index  int
	URL    string
	Alt    string
	Active bool
}

type Stat struct {
	Value string
	Label string
}

type detailTransformer struct {
	addr AddressTransformer
}

func NewDetailTransformer(addr AddressTransformer) DetailTransformer {
	return &detailTransformer{addr: addr}
}

func (t *detailTransformer) ToDetail(p models.Property, photoIndex int) DetailView {
	view := DetailView{
		ID:          p.ID,
		Title:       p.Title,
		Price:       FormatPrice(p.Price),
		Address:     t.addr.FormatAddress(p),
		Status:      p.ListingStatus,
		StatusClass: StatusClass(p.ListingStatus),
		Description: p.Description,
		HasPhotos:   len(p.Photos) > 0,
	}

	if view.HasPhotos {
		if photoIndex < 0 || photoIndex >= len(p.Photos) {
			photoIndex = 0
		}
		view.MainPhoto = p.Photos[photoIndex]
		// thumbnails only make sense with something to switch to
		if len(p.Photos) > 1 {
			for i, url := range p.Photos {
				view.Thumbnails = append(view.Thumbnails, Thumbnail{
					Index:  i,
					URL:    url,
					Alt:    fmt.Sprintf("%s %d", p.Title, i+1),
					Active: i == photoIndex,
				})
			}
		}
	}

	if p.Bedrooms > 0 {
		view.Stats = append(view.Stats, Stat{Value: FormatCount(p.Bedrooms), Label: "Bedrooms"})
	}
	if p.Bathrooms > 0 {
		view.Stats = append(view.Stats, Stat{Value: FormatBathrooms(p.Bathrooms), Label: "Bathrooms"})
	}
	view.Stats = append(view.Stats,
		Stat{Value: FormatCount(p.SquareFootage), Label: "Sq Ft"},
		Stat{Value: p.PropertyType, Label: "Type"},
	)
	return view
}
