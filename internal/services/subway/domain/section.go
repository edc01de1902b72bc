package domain

// Section is a directed edge between two stations of one line.
type Section struct {
	ID          int64
	LineID      int64 // owning line; zero while detached
	UpStation   Station
	DownStation Station
	Distance    int
}

// NewSection builds a detached section.
func NewSection(up, down Station, distance int) (Section, error) {
	if distance <= 0 {
		return Section{}, ErrInvalidDistance
	}
	if up.Is(down) {
		return Section{}, ErrSameStations
	}
	return Section{
		UpStation:   up,
		DownStation: down,
		Distance:    distance,
	}, nil
}

func (s Section) connects(up, down Station) bool {
	return s.UpStation.Is(up) && s.DownStation.Is(down)
}

func (s Section) touches(station Station) bool {
	return s.UpStation.Is(station) || s.DownStation.Is(station)
}
