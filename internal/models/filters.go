package models

import (
	"net/url"
	"strconv"
)

// PropertyFilters is a sparse listing query. A nil field places no
// constraint on that dimension.
type PropertyFilters struct {
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Search       *string  `json:"search,omitempty"`
}

// IsEmpty reports whether no dimension is constrained.
func (f PropertyFilters) IsEmpty() bool {
	return len(f.QueryValues()) == 0
}

// QueryValues serializes the present fields only. Numbers are written as
// plain decimal strings.
func (f PropertyFilters) QueryValues() url.Values {
	q := url.Values{}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.City != nil && *f.City != "" {
		q.Set("city", *f.City)
	}
	if f.State != nil && *f.State != "" {
		q.Set("state", *f.State)
	}
	if f.Bedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*f.Bedrooms))
	}
	if f.PropertyType != nil && *f.PropertyType != "" {
		q.Set("property_type", *f.PropertyType)
	}
	if f.Search != nil && *f.Search != "" {
		q.Set("search", *f.Search)
	}
	return q
}
