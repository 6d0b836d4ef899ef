package services

import "premier-properties/internal/models"

// Event is a user action routed through Session.Dispatch.
type Event interface {
	Name() string
}

type ApplyFiltersEvent struct {
	Input FilterInput
}

type ResetFiltersEvent struct{}

type ToggleViewEvent struct {
	Mode models.ViewMode
}

type SelectPropertyEvent struct {
	PropertyID int64
}

type CloseDetailEvent struct{}

type SelectPhotoEvent struct {
	Index int
}

type OpenContactEvent struct{}

type CloseContactEvent struct{}

type SubmitContactEvent struct {
	Input ContactInput
}

func (ApplyFiltersEvent) Name() string   { return "apply_filters" }
func (ResetFiltersEvent) Name() string   { return "reset_filters" }
func (ToggleViewEvent) Name() string     { return "toggle_view" }
func (SelectPropertyEvent) Name() string { return "select_property" }
func (CloseDetailEvent) Name() string    { return "close_detail" }
func (SelectPhotoEvent) Name() string    { return "select_photo" }
func (OpenContactEvent) Name() string    { return "open_contact" }
func (CloseContactEvent) Name() string   { return "close_contact" }
func (SubmitContactEvent) Name() string  { return "submit_contact" }
