package services

import (
	"math"
	"strconv"
	"strings"

	"premier-properties/internal/models"
)

// FilterInput is the raw, uncommitted content of the filter bar.
type FilterInput struct {
	Search       string `form:"search"`
	MinPrice     string `form:"min_price"`
	MaxPrice     string `form:"max_price"`
	City         string `form:"city"`
	State        string `form:"state"`
	Bedrooms     string `form:"bedrooms"`
	PropertyType string `form:"property_type"`
}

// FilterControl owns the filter bar fields. Edits stay local until Apply.
type FilterControl struct {
	input FilterInput
}

func NewFilterControl() *FilterControl {
	return &FilterControl{}
}

// Input returns the raw field values.
func (fc *FilterControl) Input() FilterInput {
	return fc.input
}

// Set replaces the raw field values without committing them.
func (fc *FilterControl) Set(in FilterInput) {
	fc.input = in
}

// Apply normalizes the current fields into a query.
func (fc *FilterControl) Apply() models.PropertyFilters {
	return BuildFilters(fc.input)
}

// Reset clears every field and returns the unconstrained query.
func (fc *FilterControl) Reset() models.PropertyFilters {
	fc.input = FilterInput{}
	return models.PropertyFilters{}
}

// BuildFilters converts raw input into a sparse query. Blank fields are
// absent. Text is forwarded as typed. Numeric fields that do not parse, or
// parse to zero, are absent too.
func BuildFilters(in FilterInput) models.PropertyFilters {
	return models.PropertyFilters{
		Search:       text(in.Search),
		MinPrice:     number(in.MinPrice),
		MaxPrice:     number(in.MaxPrice),
		City:         text(in.City),
		State:        text(in.State),
		Bedrooms:     integer(in.Bedrooms),
		PropertyType: text(in.PropertyType),
	}
}

func text(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func number(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func integer(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}
