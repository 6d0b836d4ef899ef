package services

import (
	"context"
	"sync"

	"premier-properties/internal/errors"
	"premier-properties/internal/models"
)

type fakeAPI struct {
	mu         sync.Mutex
	properties []models.Property
	fetchErr   error
	submitErr  error
	fetches    []models.PropertyFilters
	inquiries  []models.ContactFormData
	// gated fetches block until a result is sent on their pending channel
	gated     bool
	pending   []chan []models.Property
	submitted chan struct{}
	release   chan struct{}
}

func (f *fakeAPI) FetchProperties(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error) {
	f.mu.Lock()
	f.fetches = append(f.fetches, filters)
	props, err := f.properties, f.fetchErr
	var gate chan []models.Property
	if f.gated {
		gate = make(chan []models.Property)
		f.pending = append(f.pending, gate)
	}
	f.mu.Unlock()

	if gate != nil {
		return <-gate, nil
	}
	if err != nil {
		return nil, err
	}
	return props, nil
}

func (f *fakeAPI) SubmitContactInquiry(ctx context.Context, data models.ContactFormData) error {
	f.mu.Lock()
	f.inquiries = append(f.inquiries, data)
	err := f.submitErr
	submitted, release := f.submitted, f.release
	f.mu.Unlock()

	if submitted != nil {
		submitted <- struct{}{}
		<-release
	}
	return err
}

func (f *fakeAPI) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fetches)
}

func (f *fakeAPI) gateAt(i int) chan []models.Property {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending[i]
}

func fetchFailed() error {
	return errors.NewFetchError("backend returned 500", nil)
}

func ptr[T any](v T) *T { return &v }

func sampleProperties() []models.Property {
	return []models.Property{
		{ID: 1, Title: "Lakeside Cottage", Price: 450000, City: "Austin", State: "TX", Photos: []string{"a.jpg", "b.jpg", "c.jpg"}, Latitude: ptr(30.27), Longitude: ptr(-97.74)},
		{ID: 2, Title: "Downtown Loft", Price: 320000, City: "Denver", State: "CO"},
	}
}
