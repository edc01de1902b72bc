package domain

import "strings"

// Station is a named stop referenced by sections.
type Station struct {
	ID   int64
	Name string
}

// NewStation validates and normalizes a station name. The id is assigned by storage.
func NewStation(name string) (Station, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Station{}, ErrEmptyStationName
	}
	return Station{Name: name}, nil
}

// Is reports whether two stations share the same identity.
func (s Station) Is(other Station) bool {
	return s.ID == other.ID
}
