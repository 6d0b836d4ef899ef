package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"premier-properties/internal/errors"
	"premier-properties/internal/models"
	"premier-properties/internal/validators"
	"premier-properties/pkg/logger"
	"premier-properties/pkg/metrics"
)

// Session is the browsing state of one visitor. All mutation goes through
// Dispatch or the named operations; presentation reads Snapshot.
type Session struct {
	id        string
	api       ListingsAPI
	validator validators.ContactValidator

	mu          sync.Mutex
	filters     *FilterControl
	properties  []models.Property
	loading     bool
	errMsg      string
	detail      *DetailFlow
	viewMode    models.ViewMode
	seq         uint64
	initialized bool
	lastSeen    time.Time
}

func NewSession(id string, api ListingsAPI, validator validators.ContactValidator) *Session {
	return &Session{
		id:         id,
		api:        api,
		validator:  validator,
		filters:    NewFilterControl(),
		properties: []models.Property{},
		viewMode:   models.ViewModeGrid,
		lastSeen:   time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Touch records activity for idle expiry.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the most recent Touch.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Init runs the initial, unfiltered load. Only the first call loads.
func (s *Session) Init(ctx context.Context) {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = true
	s.mu.Unlock()

	s.Load(ctx, models.PropertyFilters{})
}

// Reload starts the session over as a fresh page load: filters, selection
// and view mode are cleared and an unfiltered load runs.
func (s *Session) Reload(ctx context.Context) {
	s.mu.Lock()
	s.filters.Reset()
	s.detail = nil
	s.viewMode = models.ViewModeGrid
	s.initialized = true
	s.mu.Unlock()

	s.Load(ctx, models.PropertyFilters{})
}

// Load fetches the listings matching filters and replaces the result set.
// A completion that is older than the latest issued load is dropped. The
// fetch is not cancelled when ctx is.
func (s *Session) Load(ctx context.Context, filters models.PropertyFilters) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	logger.GlobalLogger.Debugf("Loading properties: session=%s, seq=%d, filtered=%t", s.id, seq, !filters.IsEmpty())

	props, err := s.api.FetchProperties(context.WithoutCancel(ctx), filters)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		metrics.StaleResponsesDiscarded.Inc()
		logger.GlobalLogger.Debugf("Discarding stale load: session=%s, seq=%d, latest=%d", s.id, seq, s.seq)
		return
	}
	s.loading = false
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to load properties: session=%s, error=%v", s.id, err)
		s.errMsg = errors.MsgLoadFailed
		return
	}
	s.properties = props
	logger.GlobalLogger.Debugf("Loaded properties: session=%s, count=%d", s.id, len(props))
}

// ApplyFilters commits the filter bar input and reloads.
func (s *Session) ApplyFilters(ctx context.Context, in FilterInput) {
	s.mu.Lock()
	s.filters.Set(in)
	filters := s.filters.Apply()
	s.mu.Unlock()

	s.Load(ctx, filters)
}

// ResetFilters clears the filter bar and reloads without constraints.
func (s *Session) ResetFilters(ctx context.Context) {
	s.mu.Lock()
	filters := s.filters.Reset()
	s.mu.Unlock()

	s.Load(ctx, filters)
}

func (s *Session) SetViewMode(mode models.ViewMode) error {
	if _, err := models.ParseViewMode(string(mode)); err != nil {
		return errors.NewInvalidParametersError(err.Error(), err)
	}
	s.mu.Lock()
	s.viewMode = mode
	s.mu.Unlock()
	return nil
}

// Select opens the detail view for a property of the current result set,
// replacing any open selection. Nothing is in view while loading or failed.
func (s *Session) Select(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading || s.errMsg != "" {
		return errors.NewPropertyNotInViewError(id)
	}
	p, ok := models.FindProperty(s.properties, id)
	if !ok {
		return errors.NewPropertyNotInViewError(id)
	}
	s.detail = NewDetailFlow(p, s.newContactFlow)
	return nil
}

// CloseDetail clears the selection. Closing with nothing selected is a no-op.
func (s *Session) CloseDetail() {
	s.mu.Lock()
	s.detail = nil
	s.mu.Unlock()
}

func (s *Session) newContactFlow(propertyID int64) *ContactFlow {
	return NewContactFlow(propertyID, s.api, s.validator)
}

// Dispatch applies one user event.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	logger.GlobalLogger.Debugf("Dispatch: session=%s, event=%s", s.id, ev.Name())

	switch e := ev.(type) {
	case ApplyFiltersEvent:
		s.ApplyFilters(ctx, e.Input)
		return nil
	case ResetFiltersEvent:
		s.ResetFilters(ctx)
		return nil
	case ToggleViewEvent:
		return s.SetViewMode(e.Mode)
	case SelectPropertyEvent:
		return s.Select(e.PropertyID)
	case CloseDetailEvent:
		s.CloseDetail()
		return nil
	case SelectPhotoEvent:
		return s.withDetail(func(d *DetailFlow) error { return d.SelectPhoto(e.Index) })
	case OpenContactEvent:
		return s.withDetail(func(d *DetailFlow) error {
			d.OpenContact()
			return nil
		})
	case CloseContactEvent:
		return s.withDetail(func(d *DetailFlow) error { return d.CloseContact() })
	case SubmitContactEvent:
		var contact *ContactFlow
		if err := s.withDetail(func(d *DetailFlow) error {
			if contact = d.Contact(); contact == nil {
				return errors.NewInvalidStateError("contact form is not open")
			}
			return nil
		}); err != nil {
			return err
		}
		// the session lock is not held while the inquiry is in flight
		return contact.Submit(ctx, e.Input)
	default:
		return errors.NewInvalidParametersError(fmt.Sprintf("unknown event %T", ev), nil)
	}
}

func (s *Session) withDetail(fn func(d *DetailFlow) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return errors.NewInvalidStateError("no property selected")
	}
	return fn(s.detail)
}

// Snapshot is an immutable copy of the session for rendering.
type Snapshot struct {
	Properties []models.Property
	Loading    bool
	Error      string
	ViewMode   models.ViewMode
	Filters    FilterInput
	Detail     *DetailSnapshot
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Properties: append([]models.Property(nil), s.properties...),
		Loading:    s.loading,
		Error:      s.errMsg,
		ViewMode:   s.viewMode,
		Filters:    s.filters.Input(),
	}
	if s.detail != nil {
		d := s.detail.Snapshot()
		snap.Detail = &d
	}
	return snap
}

// ShowResults is true only when the results are neither loading nor failed.
func (s Snapshot) ShowResults() bool {
	return !s.Loading && s.Error == ""
}

func (s Snapshot) ShowGrid() bool {
	return s.ShowResults() && s.ViewMode == models.ViewModeGrid
}

func (s Snapshot) ShowMap() bool {
	return s.ShowResults() && s.ViewMode == models.ViewModeMap
}

// NoResults is the empty grid state, distinct from loading and error.
func (s Snapshot) NoResults() bool {
	return s.ShowGrid() && len(s.Properties) == 0
}

// CountLabel reads "1 property found" or "N properties found".
func (s Snapshot) CountLabel() string {
	if len(s.Properties) == 1 {
		return "1 property found"
	}
	return fmt.Sprintf("%d properties found", len(s.Properties))
}
