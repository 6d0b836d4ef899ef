package transformers

import (
	"premier-properties/internal/models"
)

// MapOptions is the fixed configuration of the map widget.
type MapOptions struct {
	TileURL     string
	Attribution string
	Zoom        int
	FallbackLat float64
	FallbackLng float64
}

// MapView is everything the Leaflet widget needs to draw the result set.
type MapView struct {
	Center      [2]float64  `json:"center"`
	Zoom        int         `json:"zoom"`
	TileURL     string      `json:"tile_url"`
	Attribution string      `json:"attribution"`
	Markers     []MapMarker `json:"markers"`
}

type MapMarker struct {
	ID       int64      `json:"id"`
	Position [2]float64 `json:"position"`
	Popup    MapPopup   `json:"popup"`
}

type MapPopup struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Locality string `json:"locality"`
}

type mapTransformer struct {
	opts MapOptions
	addr AddressTransformer
}

func NewMapTransformer(opts MapOptions, addr AddressTransformer) MapTransformer {
	return &mapTransformer{opts: opts, addr: addr}
}

// ToMap places every listing that has both coordinates. The view centers
// on the first placed listing, or on the fallback when none can be placed.
func (t *mapTransformer) ToMap(props []models.Property) MapView {
	view := MapView{
		Center:      [2]float64{t.opts.FallbackLat, t.opts.FallbackLng},
		Zoom:        t.opts.Zoom,
		TileURL:     t.opts.TileURL,
		Attribution: t.opts.Attribution,
		Markers:     []MapMarker{},
	}
	for _, p := range props {
		if !p.HasCoordinates() {
			continue
		}
		pos := [2]float64{*p.Latitude, *p.Longitude}
		if len(view.Markers) == 0 {
			view.Center = pos
		}
		view.Markers = append(view.Markers, MapMarker{
			ID:       p.ID,
			Position: pos,
			Popup: MapPopup{
				Title:    p.Title,
				Price:    FormatPrice(p.Price),
				Locality: t.addr.FormatLocality(p),
			},
		})
	}
	return view
}
