// Package storage defines persistence contracts for subway stations and lines.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/subway/internal/services/subway/domain"
	"github.com/louisbranch/subway/internal/services/subway/storage/filter"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrInUse indicates a record is still referenced by another record.
	ErrInUse = errors.New("record in use")
)

// StationPage is one page of stations ordered by id.
type StationPage struct {
	Stations      []domain.Station
	NextPageToken string
}

// LinePage is one page of lines ordered by id.
type LinePage struct {
	Lines         []domain.Line
	NextPageToken string
}

// LineQuery selects one page of lines.
type LineQuery struct {
	PageSize int
	// AfterID is the keyset cursor; zero starts from the first line.
	AfterID int64
	Filter  filter.SQLCondition
}

// StationStore persists stations.
type StationStore interface {
	CreateStation(ctx context.Context, station domain.Station) (domain.Station, error)
	GetStation(ctx context.Context, id int64) (domain.Station, error)
	ListStations(ctx context.Context, pageSize int, afterID int64) (StationPage, error)
	// DeleteStation returns ErrInUse while a section references the station.
	DeleteStation(ctx context.Context, id int64) error
}

// LineStore persists lines together with their section paths.
type LineStore interface {
	// CreateLine stores line and its initial path, returning it with ids assigned.
	CreateLine(ctx context.Context, line domain.Line) (domain.Line, error)
	GetLine(ctx context.Context, id int64) (domain.Line, error)
	ListLines(ctx context.Context, query LineQuery) (LinePage, error)
	// UpdateLine loads the line, applies mutate, and persists the resulting
	// difference in one transaction. An error from mutate persists nothing.
	UpdateLine(ctx context.Context, id int64, mutate func(*domain.Line) error) (domain.Line, error)
	// DeleteLine removes the line's sections and then the line itself.
	DeleteLine(ctx context.Context, id int64) error
}

// Store is the full persistence surface used by the subway service.
type Store interface {
	StationStore
	LineStore
	Close() error
}
