package domain

import (
	"strings"
	"time"
)

// Line is the aggregate root for one metro line and its section path.
type Line struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time

	sections Sections
}

// NewLine creates a line whose path holds exactly the initial section.
func NewLine(name, color string, initial Section) (Line, error) {
	name, color, err := normalizeNameAndColor(name, color)
	if err != nil {
		return Line{}, err
	}
	if initial.LineID != 0 {
		return Line{}, ErrSectionAttached
	}
	sections, err := NewSections(initial)
	if err != nil {
		return Line{}, err
	}
	return Line{
		Name:     name,
		Color:    color,
		sections: sections,
	}, nil
}

// RestoreLine rebuilds a persisted line and validates its stored path.
func RestoreLine(id int64, name, color string, sections []Section, createdAt, updatedAt time.Time) (Line, error) {
	path, err := RestoreSections(id, sections)
	if err != nil {
		return Line{}, err
	}
	path.attach(id)
	return Line{
		ID:        id,
		Name:      name,
		Color:     color,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		sections:  path,
	}, nil
}

// UpdateNameAndColor replaces the descriptive attributes without touching the path.
func (l *Line) UpdateNameAndColor(name, color string) error {
	name, color, err := normalizeNameAndColor(name, color)
	if err != nil {
		return err
	}
	l.Name = name
	l.Color = color
	return nil
}

// AddSection attaches section to this line and appends it at the down terminal.
func (l *Line) AddSection(section Section) error {
	if section.LineID != 0 && section.LineID != l.ID {
		return ErrSectionAttached
	}
	section.LineID = l.ID
	return l.sections.Add(section)
}

// DeleteSection removes the section ending at the down terminal station.
// The returned section is detached and left for the caller to dispose of.
func (l *Line) DeleteSection(station Station) (Section, error) {
	return l.sections.Remove(station)
}

// AssignID sets the identity given by storage and attaches every section to it.
func (l *Line) AssignID(id int64) {
	l.ID = id
	l.sections.attach(id)
}

// Stations returns the line's stations from up terminal to down terminal.
func (l Line) Stations() []Station {
	return l.sections.Stations()
}

// UpStationTerminal returns the first station of the line.
func (l Line) UpStationTerminal() (Station, bool) {
	return l.sections.UpTerminal()
}

// DownStationTerminal returns the last station of the line.
func (l Line) DownStationTerminal() (Station, bool) {
	return l.sections.DownTerminal()
}

// TotalDistance returns the summed distance of the line's sections.
func (l Line) TotalDistance() int {
	return l.sections.TotalDistance()
}

// Sections returns a copy of the line's sections in chain order.
func (l Line) Sections() []Section {
	return l.sections.All()
}

func normalizeNameAndColor(name, color string) (string, string, error) {
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	if name == "" {
		return "", "", ErrEmptyLineName
	}
	if color == "" {
		return "", "", ErrEmptyLineColor
	}
	return name, color, nil
}
