package models

import "fmt"

// ViewMode selects how the result set is presented.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeMap  ViewMode = "map"
)

// ParseViewMode accepts "grid" or "map".
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewModeGrid, ViewModeMap:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("invalid view mode %q", s)
}
