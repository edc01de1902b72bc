package domain

import "fmt"

// minRemovableSections is the smallest path that may lose a section.
const minRemovableSections = 2

// Sections is the ordered path of one line, up terminal first.
//
// The zero value is an empty path.
type Sections struct {
	items []Section
}

// NewSections starts a path from one section.
func NewSections(initial Section) (Sections, error) {
	var s Sections
	if err := s.Add(initial); err != nil {
		return Sections{}, err
	}
	return s, nil
}

// RestoreSections rebuilds chain order from sections loaded in any order.
//
// The up terminal is the only up station that is never a down station; the
// walk then follows each down station to the section starting there. Any
// branch, merge, cycle or gap fails with ErrPathCorrupt.
func RestoreSections(lineID int64, sections []Section) (Sections, error) {
	if len(sections) == 0 {
		return Sections{}, pathCorrupt(lineID, "no sections")
	}

	byUp := make(map[int64]Section, len(sections))
	downs := make(map[int64]struct{}, len(sections))
	for _, section := range sections {
		if section.UpStation.Is(section.DownStation) {
			return Sections{}, pathCorrupt(lineID, fmt.Sprintf("section %d is a loop", section.ID))
		}
		if _, ok := byUp[section.UpStation.ID]; ok {
			return Sections{}, pathCorrupt(lineID, fmt.Sprintf("station %d branches", section.UpStation.ID))
		}
		if _, ok := downs[section.DownStation.ID]; ok {
			return Sections{}, pathCorrupt(lineID, fmt.Sprintf("station %d merges", section.DownStation.ID))
		}
		byUp[section.UpStation.ID] = section
		downs[section.DownStation.ID] = struct{}{}
	}

	var heads []Section
	for _, section := range sections {
		if _, ok := downs[section.UpStation.ID]; !ok {
			heads = append(heads, section)
		}
	}
	if len(heads) != 1 {
		return Sections{}, pathCorrupt(lineID, fmt.Sprintf("%d up terminals", len(heads)))
	}

	ordered := make([]Section, 0, len(sections))
	current, ok := heads[0], true
	for ok {
		ordered = append(ordered, current)
		current, ok = byUp[current.DownStation.ID]
	}
	if len(ordered) != len(sections) {
		return Sections{}, pathCorrupt(lineID, "sections are disconnected")
	}
	return Sections{items: ordered}, nil
}

// Add appends a section at the down terminal.
//
// Rules run in order: an identical up/down pair is a duplicate, the down
// station must be new to the path, and the up station must be the current
// down terminal. An empty path accepts any valid section.
func (s *Sections) Add(section Section) error {
	if section.Distance <= 0 {
		return ErrInvalidDistance
	}
	if section.UpStation.Is(section.DownStation) {
		return ErrSameStations
	}
	for _, existing := range s.items {
		if existing.connects(section.UpStation, section.DownStation) {
			return ErrDuplicateSection
		}
	}
	for _, existing := range s.items {
		if existing.touches(section.DownStation) {
			return downStationExists(section.DownStation)
		}
	}
	if tail, ok := s.DownTerminal(); ok && !tail.Is(section.UpStation) {
		return ErrUpStationNotTerminal
	}

	// Copy on write so Line values never share a backing array.
	items := make([]Section, len(s.items), len(s.items)+1)
	copy(items, s.items)
	s.items = append(items, section)
	return nil
}

// Remove detaches the section ending at station, which must be the down terminal.
func (s *Sections) Remove(station Station) (Section, error) {
	if len(s.items) < minRemovableSections {
		return Section{}, ErrMinimumSections
	}
	if tail, _ := s.DownTerminal(); !tail.Is(station) {
		return Section{}, ErrStationNotTerminal
	}

	last := len(s.items) - 1
	removed := s.items[last]
	s.items = s.items[:last:last]

	removed.LineID = 0
	return removed, nil
}

// Stations returns the stations from up terminal to down terminal.
func (s Sections) Stations() []Station {
	if len(s.items) == 0 {
		return []Station{}
	}
	stations := make([]Station, 0, len(s.items)+1)
	stations = append(stations, s.items[0].UpStation)
	for _, section := range s.items {
		stations = append(stations, section.DownStation)
	}
	return stations
}

// UpTerminal returns the first station of the path.
func (s Sections) UpTerminal() (Station, bool) {
	if len(s.items) == 0 {
		return Station{}, false
	}
	return s.items[0].UpStation, true
}

// DownTerminal returns the last station of the path.
func (s Sections) DownTerminal() (Station, bool) {
	if len(s.items) == 0 {
		return Station{}, false
	}
	return s.items[len(s.items)-1].DownStation, true
}

// TotalDistance sums the distance of every section.
func (s Sections) TotalDistance() int {
	total := 0
	for _, section := range s.items {
		total += section.Distance
	}
	return total
}

// Len returns the number of sections.
func (s Sections) Len() int {
	return len(s.items)
}

// All returns a copy of the sections in chain order.
func (s Sections) All() []Section {
	out := make([]Section, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sections) attach(lineID int64) {
	items := make([]Section, len(s.items))
	for i, section := range s.items {
		section.LineID = lineID
		items[i] = section
	}
	s.items = items
}
