package domain

import (
	"errors"
	"testing"

	apperrors "github.com/louisbranch/subway/internal/platform/errors"
)

func TestNewSectionValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		up, down Station
		distance int
		want     error
	}{
		{name: "zero distance", up: gangnam, down: sinnonhyeon, distance: 0, want: ErrInvalidDistance},
		{name: "negative distance", up: gangnam, down: sinnonhyeon, distance: -3, want: ErrInvalidDistance},
		{name: "self loop", up: gangnam, down: gangnam, distance: 5, want: ErrSameStations},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSection(tc.up, tc.down, tc.distance)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
			if !IsInvalidSection(err) {
				t.Fatalf("expected %v to be an invalid section error", err)
			}
		})
	}
}

func TestSectionsAddRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		section Section
		want    error
	}{
		{
			name:    "duplicate pair",
			section: Section{UpStation: sinnonhyeon, DownStation: yangjae, Distance: 4},
			want:    ErrDuplicateSection,
		},
		{
			name:    "down station already on path",
			section: Section{UpStation: yangjae, DownStation: gangnam, Distance: 4},
			want:    ErrDownStationExists,
		},
		{
			name:    "up station not the down terminal",
			section: Section{UpStation: sinnonhyeon, DownStation: suwon, Distance: 4},
			want:    ErrUpStationNotTerminal,
		},
		{
			name:    "zero distance",
			section: Section{UpStation: yangjae, DownStation: suwon},
			want:    ErrInvalidDistance,
		},
		{
			name:    "self loop",
			section: Section{UpStation: yangjae, DownStation: yangjae, Distance: 1},
			want:    ErrSameStations,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := threeStationPath(t)
			err := path.Add(tc.section)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
			if path.Len() != 2 {
				t.Fatalf("len = %d, want 2 after rejected add", path.Len())
			}
		})
	}
}

func TestSectionsDownStationExistsCarriesStation(t *testing.T) {
	t.Parallel()

	path := threeStationPath(t)
	err := path.Add(Section{UpStation: yangjae, DownStation: sinnonhyeon, Distance: 2})
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *apperrors.Error", err)
	}
	if got := appErr.Metadata["StationID"]; got != "2" {
		t.Fatalf("StationID metadata = %q, want 2", got)
	}
}

func TestSectionsRemoveRules(t *testing.T) {
	t.Parallel()

	path := threeStationPath(t)
	if _, err := path.Remove(sinnonhyeon); !errors.Is(err, ErrStationNotTerminal) {
		t.Fatalf("remove middle error = %v, want %v", err, ErrStationNotTerminal)
	}
	if _, err := path.Remove(gangnam); !errors.Is(err, ErrStationNotTerminal) {
		t.Fatalf("remove up terminal error = %v, want %v", err, ErrStationNotTerminal)
	}
	if _, err := path.Remove(suwon); !errors.Is(err, ErrStationNotTerminal) {
		t.Fatalf("remove unknown station error = %v, want %v", err, ErrStationNotTerminal)
	}
	if _, err := path.Remove(yangjae); err != nil {
		t.Fatalf("remove tail: %v", err)
	}
	if _, err := path.Remove(sinnonhyeon); !errors.Is(err, ErrMinimumSections) {
		t.Fatalf("remove last section error = %v, want %v", err, ErrMinimumSections)
	}
	if path.Len() != 1 {
		t.Fatalf("len = %d, want 1", path.Len())
	}
}

func TestSectionsAddThenRemoveRestoresPath(t *testing.T) {
	t.Parallel()

	path := threeStationPath(t)
	before := path.Stations()
	distance := path.TotalDistance()

	if err := path.Add(Section{UpStation: yangjae, DownStation: suwon, Distance: 7}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := path.TotalDistance(); got != distance+7 {
		t.Fatalf("total distance = %d, want %d", got, distance+7)
	}
	removed, err := path.Remove(suwon)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Distance != 7 {
		t.Fatalf("removed distance = %d, want 7", removed.Distance)
	}

	after := path.Stations()
	if len(after) != len(before) {
		t.Fatalf("stations = %v, want %v", after, before)
	}
	for i := range before {
		if !after[i].Is(before[i]) {
			t.Fatalf("stations = %v, want %v", after, before)
		}
	}
	if got := path.TotalDistance(); got != distance {
		t.Fatalf("total distance = %d, want %d", got, distance)
	}
}

func TestSectionsStationsHaveNoDuplicates(t *testing.T) {
	t.Parallel()

	path := threeStationPath(t)
	if err := path.Add(Section{UpStation: yangjae, DownStation: suwon, Distance: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	stations := path.Stations()
	if len(stations) != path.Len()+1 {
		t.Fatalf("stations = %d, want %d", len(stations), path.Len()+1)
	}
	seen := make(map[int64]bool)
	for _, station := range stations {
		if seen[station.ID] {
			t.Fatalf("station %d listed twice in %v", station.ID, stations)
		}
		seen[station.ID] = true
	}
}

func TestEmptySections(t *testing.T) {
	t.Parallel()

	var path Sections
	if got := path.Stations(); len(got) != 0 {
		t.Fatalf("stations = %v, want empty", got)
	}
	if _, ok := path.UpTerminal(); ok {
		t.Fatal("expected no up terminal")
	}
	if _, ok := path.DownTerminal(); ok {
		t.Fatal("expected no down terminal")
	}
	if got := path.TotalDistance(); got != 0 {
		t.Fatalf("total distance = %d, want 0", got)
	}
}

func TestRestoreSectionsRejectsCorruptPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sections []Section
	}{
		{name: "empty"},
		{
			name: "loop section",
			sections: []Section{
				{ID: 1, UpStation: gangnam, DownStation: gangnam, Distance: 1},
			},
		},
		{
			name: "branch",
			sections: []Section{
				{ID: 1, UpStation: gangnam, DownStation: sinnonhyeon, Distance: 1},
				{ID: 2, UpStation: gangnam, DownStation: yangjae, Distance: 1},
			},
		},
		{
			name: "merge",
			sections: []Section{
				{ID: 1, UpStation: gangnam, DownStation: yangjae, Distance: 1},
				{ID: 2, UpStation: sinnonhyeon, DownStation: yangjae, Distance: 1},
			},
		},
		{
			name: "cycle",
			sections: []Section{
				{ID: 1, UpStation: gangnam, DownStation: sinnonhyeon, Distance: 1},
				{ID: 2, UpStation: sinnonhyeon, DownStation: gangnam, Distance: 1},
			},
		},
		{
			name: "disconnected",
			sections: []Section{
				{ID: 1, UpStation: gangnam, DownStation: sinnonhyeon, Distance: 1},
				{ID: 2, UpStation: yangjae, DownStation: suwon, Distance: 1},
			},
		},
		{
			name: "path plus detached cycle",
			sections: []Section{
				{ID: 1, UpStation: gangnam, DownStation: sinnonhyeon, Distance: 1},
				{ID: 2, UpStation: yangjae, DownStation: suwon, Distance: 1},
				{ID: 3, UpStation: suwon, DownStation: yangjae, Distance: 1},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RestoreSections(5, tc.sections)
			if !errors.Is(err, ErrPathCorrupt) {
				t.Fatalf("error = %v, want %v", err, ErrPathCorrupt)
			}
			if IsInvalidSection(err) {
				t.Fatal("path corruption must not be reported as an invalid section")
			}
		})
	}
}

func TestRestoreSectionsWalksFromUpTerminal(t *testing.T) {
	t.Parallel()

	path, err := RestoreSections(5, []Section{
		{ID: 3, UpStation: yangjae, DownStation: suwon, Distance: 3},
		{ID: 1, UpStation: gangnam, DownStation: sinnonhyeon, Distance: 1},
		{ID: 2, UpStation: sinnonhyeon, DownStation: yangjae, Distance: 2},
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	sections := path.All()
	for i, want := range []int64{1, 2, 3} {
		if sections[i].ID != want {
			t.Fatalf("section[%d] = %d, want %d", i, sections[i].ID, want)
		}
	}
	if got := path.TotalDistance(); got != 6 {
		t.Fatalf("total distance = %d, want 6", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	path := threeStationPath(t)
	sections := path.All()
	sections[0].Distance = 999
	if path.All()[0].Distance == 999 {
		t.Fatal("expected All to return a copy")
	}
}

func threeStationPath(t *testing.T) Sections {
	t.Helper()
	path, err := NewSections(Section{UpStation: gangnam, DownStation: sinnonhyeon, Distance: 10})
	if err != nil {
		t.Fatalf("new sections: %v", err)
	}
	if err := path.Add(Section{UpStation: sinnonhyeon, DownStation: yangjae, Distance: 10}); err != nil {
		t.Fatalf("add: %v", err)
	}
	return path
}
