package views

import (
	"net/http/httptest"
	"strings"
	"testing"

	"premier-properties/internal/models"
	"premier-properties/internal/services"
	"premier-properties/internal/transformers"
)

func renderTemplate(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("Expected templates to parse, got %v", err)
	}
	w := httptest.NewRecorder()
	if err := r.Instance(name, data).Render(w); err != nil {
		t.Fatalf("Expected render to succeed, got %v", err)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected html content type, got %q", ct)
	}
	return w.Body.String()
}

func newPage(snap services.Snapshot) Page {
	addr := transformers.NewAddressTransformer()
	return NewPage(snap, transformers.NewCardTransformer(addr), transformers.NewDetailTransformer(addr), 2026)
}

func listing() models.Property {
	return models.Property{
		ID: 9, Title: "Harbor View", Price: 450000, Address: "1 Pier St", City: "Seattle", State: "WA",
		ZipCode: "98101", Bedrooms: 2, Bathrooms: 1, SquareFootage: 950, PropertyType: "Condo",
		ListingStatus: "Active", Photos: []string{"https://img.test/a.jpg", "https://img.test/b.jpg"},
	}
}

func TestRender_GridPage(t *testing.T) {
	snap := services.Snapshot{
		Properties: []models.Property{listing()},
		ViewMode:   models.ViewModeGrid,
		Filters:    services.FilterInput{City: "Seattle", Bedrooms: "2"},
	}
	out := renderTemplate(t, PageTemplate, newPage(snap))

	for _, want := range []string{"1 property found", "$450,000", "Harbor View", "/properties/9/select", "status-active", "Seattle"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	if !strings.Contains(out, "maxlength") || !strings.Contains(out, "200") {
		t.Error("Expected search input to be length limited")
	}
	if strings.Contains(out, "No properties match") {
		t.Error("Expected no empty state with results")
	}
	if strings.Contains(out, "/map.json") {
		t.Error("Expected map to be hidden in grid view")
	}
}

func TestRender_EmptyAndError(t *testing.T) {
	empty := renderTemplate(t, PageTemplate, newPage(services.Snapshot{ViewMode: models.ViewModeGrid}))
	if !strings.Contains(empty, "No properties match your filters. Try adjusting your search.") {
		t.Error("Expected empty state message")
	}
	if !strings.Contains(empty, "0 properties found") {
		t.Error("Expected zero count label")
	}

	failed := renderTemplate(t, PageTemplate, newPage(services.Snapshot{
		ViewMode: models.ViewModeGrid,
		Error:    "Failed to load properties. Is the backend running?",
	}))
	if !strings.Contains(failed, "Failed to load properties. Is the backend running?") {
		t.Error("Expected load error message")
	}
	if strings.Contains(failed, "No properties match") {
		t.Error("Expected results to be hidden on error")
	}

	loading := renderTemplate(t, PageTemplate, newPage(services.Snapshot{ViewMode: models.ViewModeGrid, Loading: true}))
	if !strings.Contains(loading, "Loading properties...") {
		t.Error("Expected loading message")
	}
}

func TestRender_MapView(t *testing.T) {
	snap := services.Snapshot{Properties: []models.Property{listing()}, ViewMode: models.ViewModeMap}
	out := renderTemplate(t, PageTemplate, newPage(snap))

	if !strings.Contains(out, "/map.json") {
		t.Error("Expected map container wired to the map view endpoint")
	}
	if !strings.Contains(out, "leaflet@1.9.4") {
		t.Error("Expected Leaflet assets")
	}
	if strings.Contains(out, "/properties/9/select") {
		t.Error("Expected cards to be hidden in map view")
	}
}

func TestRender_DetailWithContactError(t *testing.T) {
	snap := services.Snapshot{
		Properties: []models.Property{listing()},
		ViewMode:   models.ViewModeGrid,
		Detail: &services.DetailSnapshot{
			Property:   listing(),
			PhotoIndex: 1,
			Contact: &services.ContactSnapshot{
				PropertyID: 9,
				Status:     models.ContactStatusError,
				Input:      services.ContactInput{Name: "Jo", Email: "jo@example.com", Message: "Still available?"},
			},
		},
	}
	out := renderTemplate(t, PageTemplate, newPage(snap))

	for _, want := range []string{"/detail/close", "/detail/photos/0", `class="thumb-active"`, "Something went wrong. Please try again.", "Still available?", "Bedrooms"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected detail to contain %q", want)
		}
	}
	if strings.Contains(out, "Contact Agent About This Property") {
		t.Error("Expected contact button to be replaced by the form")
	}
}

func TestRender_ContactSent(t *testing.T) {
	snap := services.Snapshot{
		ViewMode: models.ViewModeGrid,
		Detail: &services.DetailSnapshot{
			Property: models.Property{ID: 3, Title: "Bare Lot", ListingStatus: "Sold"},
			Contact:  &services.ContactSnapshot{Status: models.ContactStatusSent},
		},
	}
	out := renderTemplate(t, PageTemplate, newPage(snap))
	if !strings.Contains(out, "Message Sent!") || !strings.Contains(out, "No photos available") {
		t.Error("Expected confirmation and no-photo state")
	}
	if strings.Contains(out, "Send Message") {
		t.Error("Expected form to be replaced by confirmation")
	}
}

func TestRender_ErrorPage(t *testing.T) {
	out := renderTemplate(t, ErrorTemplate, ErrorPage{Status: 404, Title: "Not Found", Message: "gone"})
	if !strings.Contains(out, "Not Found") || !strings.Contains(out, "gone") {
		t.Errorf("Unexpected error page %q", out)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Execute("missing", nil); err == nil {
		t.Error("Expected error for unknown template")
	}
}
