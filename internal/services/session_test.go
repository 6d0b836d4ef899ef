package services

import (
	"context"
	"testing"
	"time"

	"premier-properties/internal/errors"
	"premier-properties/internal/models"
	"premier-properties/internal/validators"
)

func newTestSession(api *fakeAPI) *Session {
	return NewSession("test", api, validators.NewContactValidator())
}

func TestSession_InitLoadsOnce(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)

	s.Init(context.Background())
	s.Init(context.Background())

	if api.fetchCount() != 1 {
		t.Errorf("Expected 1 fetch, got %d", api.fetchCount())
	}
	if !api.fetches[0].IsEmpty() {
		t.Errorf("Expected unfiltered initial load, got %+v", api.fetches[0])
	}
	snap := s.Snapshot()
	if !snap.ShowResults() || len(snap.Properties) != 2 {
		t.Errorf("Expected 2 visible results, got %+v", snap)
	}
	if snap.CountLabel() != "2 properties found" {
		t.Errorf("Expected plural label, got %q", snap.CountLabel())
	}
	if snap.ViewMode != models.ViewModeGrid {
		t.Errorf("Expected grid by default, got %q", snap.ViewMode)
	}
}

func TestSession_LoadFailureSetsMessage(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	s.Init(context.Background())

	api.fetchErr = fetchFailed()
	s.ApplyFilters(context.Background(), FilterInput{City: "Nowhere"})

	snap := s.Snapshot()
	if snap.Error != "Failed to load properties. Is the backend running?" {
		t.Errorf("Expected load failure message, got %q", snap.Error)
	}
	if snap.Loading {
		t.Error("Expected loading to be false after failure")
	}
	if snap.ShowResults() || snap.ShowGrid() || snap.NoResults() {
		t.Error("Expected results to be hidden in error state")
	}
}

func TestSession_LoadSuccessClearsError(t *testing.T) {
	api := &fakeAPI{fetchErr: fetchFailed()}
	s := newTestSession(api)
	s.Init(context.Background())

	api.fetchErr = nil
	api.properties = []models.Property{}
	s.ResetFilters(context.Background())

	snap := s.Snapshot()
	if snap.Error != "" {
		t.Errorf("Expected error to be cleared, got %q", snap.Error)
	}
	if !snap.NoResults() {
		t.Error("Expected the empty state")
	}
	if snap.CountLabel() != "0 properties found" {
		t.Errorf("Expected plural label for zero, got %q", snap.CountLabel())
	}
}

func TestSession_ApplyFiltersForwardsQuery(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()[:1]}
	s := newTestSession(api)

	s.ApplyFilters(context.Background(), FilterInput{City: "Austin", Bedrooms: "3", MinPrice: "oops"})

	got := api.fetches[0]
	if got.City == nil || *got.City != "Austin" || got.Bedrooms == nil || *got.Bedrooms != 3 {
		t.Errorf("Expected city and bedrooms, got %+v", got)
	}
	if got.MinPrice != nil {
		t.Errorf("Expected unparseable min price to be dropped, got %v", *got.MinPrice)
	}
	snap := s.Snapshot()
	if snap.Filters.MinPrice != "oops" {
		t.Errorf("Expected raw input to be kept, got %q", snap.Filters.MinPrice)
	}
	if snap.CountLabel() != "1 property found" {
		t.Errorf("Expected singular label, got %q", snap.CountLabel())
	}
}

func TestSession_ResetFiltersClearsInput(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	s.ApplyFilters(context.Background(), FilterInput{City: "Austin"})
	s.ResetFilters(context.Background())

	if s.Snapshot().Filters != (FilterInput{}) {
		t.Errorf("Expected cleared filter input, got %+v", s.Snapshot().Filters)
	}
	if !api.fetches[1].IsEmpty() {
		t.Errorf("Expected unconstrained reload, got %+v", api.fetches[1])
	}
}

func TestSession_StaleResponseDiscarded(t *testing.T) {
	api := &fakeAPI{gated: true}
	s := newTestSession(api)

	first := make(chan struct{})
	go func() {
		s.ApplyFilters(context.Background(), FilterInput{City: "Old"})
		close(first)
	}()
	waitFor(t, func() bool { return api.fetchCount() == 1 })

	second := make(chan struct{})
	go func() {
		s.ApplyFilters(context.Background(), FilterInput{City: "New"})
		close(second)
	}()
	waitFor(t, func() bool { return api.fetchCount() == 2 })

	api.gateAt(1) <- []models.Property{{ID: 42, Title: "Newer"}}
	<-second
	api.gateAt(0) <- []models.Property{{ID: 7, Title: "Older"}}
	<-first

	snap := s.Snapshot()
	if snap.Loading {
		t.Error("Expected loading to be finished")
	}
	if len(snap.Properties) != 1 || snap.Properties[0].ID != 42 {
		t.Errorf("Expected the newer result to win, got %+v", snap.Properties)
	}
}

func TestSession_LoadingVisibleWhileInFlight(t *testing.T) {
	api := &fakeAPI{gated: true}
	s := newTestSession(api)

	done := make(chan struct{})
	go func() {
		s.Init(context.Background())
		close(done)
	}()
	waitFor(t, func() bool { return api.fetchCount() == 1 })

	snap := s.Snapshot()
	if !snap.Loading || snap.ShowResults() {
		t.Error("Expected loading state while fetch is pending")
	}
	api.gateAt(0) <- sampleProperties()
	<-done
	if s.Snapshot().Loading {
		t.Error("Expected loading to be finished")
	}
}

func TestSession_SetViewMode(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	s.Init(context.Background())

	if err := s.Dispatch(context.Background(), ToggleViewEvent{Mode: models.ViewModeMap}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	snap := s.Snapshot()
	if !snap.ShowMap() || snap.ShowGrid() {
		t.Error("Expected map view only")
	}
	if api.fetchCount() != 1 {
		t.Errorf("Expected no refetch on view toggle, got %d fetches", api.fetchCount())
	}

	err := s.Dispatch(context.Background(), ToggleViewEvent{Mode: "list"})
	if !errors.HasCode(err, errors.ErrCodeInvalidParameters) {
		t.Errorf("Expected invalid parameters, got %v", err)
	}
}

func TestSession_SelectAndClose(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	s.Init(context.Background())
	ctx := context.Background()

	if err := s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 99}); !errors.HasCode(err, errors.ErrCodePropertyNotInView) {
		t.Errorf("Expected not-in-view error, got %v", err)
	}
	if err := s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 1}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := s.Dispatch(ctx, SelectPhotoEvent{Index: 2}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// selecting another property opens a fresh detail view
	if err := s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 2}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	snap := s.Snapshot()
	if snap.Detail == nil || snap.Detail.Property.ID != 2 || snap.Detail.PhotoIndex != 0 {
		t.Errorf("Expected fresh detail for property 2, got %+v", snap.Detail)
	}

	if err := s.Dispatch(ctx, CloseDetailEvent{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Snapshot().Detail != nil {
		t.Error("Expected detail to be closed")
	}
	if err := s.Dispatch(ctx, SelectPhotoEvent{Index: 0}); !errors.HasCode(err, errors.ErrCodeInvalidState) {
		t.Errorf("Expected invalid state without selection, got %v", err)
	}
}

func TestSession_SelectRejectedWhileNotInView(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	ctx := context.Background()
	s.Init(ctx)

	api.fetchErr = fetchFailed()
	s.ApplyFilters(ctx, FilterInput{City: "Austin"})

	// property 1 is still held from the earlier load but is not displayed
	if err := s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 1}); !errors.HasCode(err, errors.ErrCodePropertyNotInView) {
		t.Errorf("Expected not-in-view error in error state, got %v", err)
	}
	if s.Snapshot().Detail != nil {
		t.Error("Expected no detail to open in error state")
	}
}

func TestSession_SelectRejectedWhileLoading(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	ctx := context.Background()
	s.Init(ctx)

	api.mu.Lock()
	api.gated = true
	api.mu.Unlock()
	done := make(chan struct{})
	go func() {
		s.ResetFilters(ctx)
		close(done)
	}()
	waitFor(t, func() bool { return api.fetchCount() == 2 })

	if err := s.Select(1); !errors.HasCode(err, errors.ErrCodePropertyNotInView) {
		t.Errorf("Expected not-in-view error while loading, got %v", err)
	}

	api.gateAt(0) <- sampleProperties()
	<-done
	if err := s.Select(1); err != nil {
		t.Errorf("Expected select to succeed once loaded, got %v", err)
	}
}

func TestSession_ReloadAfterFailureRefetches(t *testing.T) {
	api := &fakeAPI{fetchErr: fetchFailed()}
	s := newTestSession(api)
	ctx := context.Background()
	s.Init(ctx)
	if s.Snapshot().Error == "" {
		t.Fatal("Expected initial load to fail")
	}

	api.mu.Lock()
	api.fetchErr = nil
	api.properties = sampleProperties()
	api.mu.Unlock()
	s.Reload(ctx)

	if api.fetchCount() != 2 {
		t.Errorf("Expected reload to refetch, got %d fetches", api.fetchCount())
	}
	snap := s.Snapshot()
	if snap.Error != "" || !snap.ShowResults() || len(snap.Properties) != 2 {
		t.Errorf("Expected error cleared and results shown, got %+v", snap)
	}
}

func TestSession_ReloadStartsOver(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	ctx := context.Background()
	s.ApplyFilters(ctx, FilterInput{City: "Austin", Bedrooms: "2"})
	_ = s.Dispatch(ctx, ToggleViewEvent{Mode: models.ViewModeMap})
	_ = s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 1})

	s.Reload(ctx)

	snap := s.Snapshot()
	if snap.Filters != (FilterInput{}) {
		t.Errorf("Expected cleared filters, got %+v", snap.Filters)
	}
	if snap.ViewMode != models.ViewModeGrid {
		t.Errorf("Expected grid view, got %q", snap.ViewMode)
	}
	if snap.Detail != nil {
		t.Errorf("Expected no selection, got %+v", snap.Detail)
	}
	if last := api.fetches[len(api.fetches)-1]; !last.IsEmpty() {
		t.Errorf("Expected unfiltered reload, got %+v", last)
	}

	s.Init(ctx)
	if api.fetchCount() != 2 {
		t.Errorf("Expected Init after Reload not to load again, got %d fetches", api.fetchCount())
	}
}

func TestSession_ContactEndToEnd(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties()}
	s := newTestSession(api)
	ctx := context.Background()
	s.Init(ctx)

	if err := s.Dispatch(ctx, SubmitContactEvent{}); !errors.HasCode(err, errors.ErrCodeInvalidState) {
		t.Errorf("Expected invalid state before selection, got %v", err)
	}
	_ = s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 1})
	if err := s.Dispatch(ctx, SubmitContactEvent{}); !errors.HasCode(err, errors.ErrCodeInvalidState) {
		t.Errorf("Expected invalid state with closed form, got %v", err)
	}
	_ = s.Dispatch(ctx, OpenContactEvent{})

	in := ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Is it available?"}
	if err := s.Dispatch(ctx, SubmitContactEvent{Input: in}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snap := s.Snapshot()
	if snap.Detail.Contact == nil || !snap.Detail.Contact.Sent() {
		t.Fatalf("Expected sent status, got %+v", snap.Detail.Contact)
	}
	if len(api.inquiries) != 1 || api.inquiries[0].PropertyID != 1 {
		t.Errorf("Expected one inquiry for property 1, got %+v", api.inquiries)
	}

	if err := s.Dispatch(ctx, CloseContactEvent{}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Snapshot().Detail.ContactOpen() {
		t.Error("Expected contact form to be closed")
	}
	_ = s.Dispatch(ctx, OpenContactEvent{})
	if got := s.Snapshot().Detail.Contact.Status; got != models.ContactStatusIdle {
		t.Errorf("Expected fresh idle form after reopen, got %q", got)
	}
}

func TestSession_ContactFailureKeepsInput(t *testing.T) {
	api := &fakeAPI{properties: sampleProperties(), submitErr: errors.NewSubmitError("backend returned 500", nil)}
	s := newTestSession(api)
	ctx := context.Background()
	s.Init(ctx)
	_ = s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 2})
	_ = s.Dispatch(ctx, OpenContactEvent{})

	in := ContactInput{Name: "Sam", Email: "sam@example.com", Phone: "555-0100", Message: "Hi"}
	if err := s.Dispatch(ctx, SubmitContactEvent{Input: in}); err != nil {
		t.Fatalf("Expected failure to be absorbed, got %v", err)
	}

	c := s.Snapshot().Detail.Contact
	if !c.Failed() {
		t.Fatalf("Expected error status, got %q", c.Status)
	}
	if c.Input != in {
		t.Errorf("Expected entered values to be retained, got %+v", c.Input)
	}

	api.submitErr = nil
	if err := s.Dispatch(ctx, SubmitContactEvent{Input: in}); err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if !s.Snapshot().Detail.Contact.Sent() {
		t.Error("Expected sent after retry")
	}
}

func TestSession_CloseDetailDuringSend(t *testing.T) {
	api := &fakeAPI{
		properties: sampleProperties(),
		submitted:  make(chan struct{}),
		release:    make(chan struct{}),
	}
	s := newTestSession(api)
	ctx := context.Background()
	s.Init(ctx)
	_ = s.Dispatch(ctx, SelectPropertyEvent{PropertyID: 1})
	_ = s.Dispatch(ctx, OpenContactEvent{})

	done := make(chan error, 1)
	go func() {
		done <- s.Dispatch(ctx, SubmitContactEvent{Input: ContactInput{Name: "A", Email: "a@b.co", Message: "m"}})
	}()
	<-api.submitted

	if !s.Snapshot().Detail.Contact.Sending() {
		t.Error("Expected sending status while in flight")
	}
	if err := s.Dispatch(ctx, CloseContactEvent{}); !errors.HasCode(err, errors.ErrCodeInvalidState) {
		t.Errorf("Expected close to be refused while sending, got %v", err)
	}
	if err := s.Dispatch(ctx, CloseDetailEvent{}); err != nil {
		t.Errorf("Expected detail close to be allowed, got %v", err)
	}

	close(api.release)
	if err := <-done; err != nil {
		t.Errorf("Expected submission to complete, got %v", err)
	}
	if s.Snapshot().Detail != nil {
		t.Error("Expected detail to stay closed")
	}
}

func TestSession_Touch(t *testing.T) {
	s := newTestSession(&fakeAPI{})
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Touch(at)
	if !s.LastSeen().Equal(at) {
		t.Errorf("Expected last seen %v, got %v", at, s.LastSeen())
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}
