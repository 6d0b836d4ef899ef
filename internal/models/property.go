// internal/models/property.go
package models

// Property is one listing as returned by the backend. It is never mutated
// after it has been fetched.
type Property struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFootage int      `json:"square_footage"`
	PropertyType  string   `json:"property_type"`
	ListingStatus string   `json:"listing_status"`
	Photos        []string `json:"photos"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// HasCoordinates reports whether the listing can be placed on the map.
func (p Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// PropertyTypes lists the values offered by the type selector, in display order.
var PropertyTypes = []string{
	"House",
	"Condo",
	"Townhouse",
	"Apartment",
	"Land",
	"Commercial",
}

// BedroomOptions are the "N+" minimums offered by the bedroom selector.
var BedroomOptions = []int{1, 2, 3, 4, 5}

// FindProperty returns the listing with the given id from properties.
func FindProperty(properties []Property, id int64) (Property, bool) {
	for _, p := range properties {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}
