// Package service orchestrates station and line use cases over storage.
//
// Transports call into Service; it resolves ids to domain values, runs the
// domain rules inside a storage transaction, and maps storage sentinels to
// coded domain errors.
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/subway/internal/platform/errors"
	"github.com/louisbranch/subway/internal/platform/grpc/pagination"
	platformotel "github.com/louisbranch/subway/internal/platform/otel"
	"github.com/louisbranch/subway/internal/services/subway/domain"
	"github.com/louisbranch/subway/internal/services/subway/storage"
	"github.com/louisbranch/subway/internal/services/subway/storage/filter"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/subway/internal/services/subway/service"

var pageSizes = pagination.PageSizeConfig{Default: 20, Max: 100}

// Service implements the subway use cases.
type Service struct {
	store  storage.Store
	tracer trace.Tracer
}

// New builds a Service over store.
func New(store storage.Store) *Service {
	return &Service{
		store:  store,
		tracer: platformotel.Tracer(tracerName),
	}
}

// CreateLineInput describes a new line and its first section.
type CreateLineInput struct {
	Name          string
	Color         string
	UpStationID   int64
	DownStationID int64
	Distance      int
}

// SectionInput describes a section to append.
type SectionInput struct {
	UpStationID   int64
	DownStationID int64
	Distance      int
}

// ListInput selects one page of a listing.
type ListInput struct {
	PageSize  int32
	PageToken string
	// Filter is an AIP-160 expression; only lines support it.
	Filter string
}

// CreateStation registers a station.
func (s *Service) CreateStation(ctx context.Context, name string) (station domain.Station, err error) {
	ctx, span := s.tracer.Start(ctx, "CreateStation")
	defer func() { endSpan(span, err) }()

	station, err = domain.NewStation(name)
	if err != nil {
		return domain.Station{}, err
	}
	station, err = s.store.CreateStation(ctx, station)
	if err != nil {
		return domain.Station{}, fmt.Errorf("create station: %w", err)
	}
	span.SetAttributes(attribute.Int64("subway.station_id", station.ID))
	return station, nil
}

// GetStation returns one station.
func (s *Service) GetStation(ctx context.Context, id int64) (station domain.Station, err error) {
	ctx, span := s.tracer.Start(ctx, "GetStation", trace.WithAttributes(attribute.Int64("subway.station_id", id)))
	defer func() { endSpan(span, err) }()

	return s.station(ctx, id)
}

// ListStations returns one page of stations.
func (s *Service) ListStations(ctx context.Context, in ListInput) (page storage.StationPage, err error) {
	ctx, span := s.tracer.Start(ctx, "ListStations")
	defer func() { endSpan(span, err) }()

	afterID, err := pagination.ParseIDToken(in.PageToken)
	if err != nil {
		return storage.StationPage{}, invalidPageToken(err)
	}
	page, err = s.store.ListStations(ctx, pagination.ClampPageSize(in.PageSize, pageSizes), afterID)
	if err != nil {
		return storage.StationPage{}, fmt.Errorf("list stations: %w", err)
	}
	return page, nil
}

// DeleteStation removes a station no line uses.
func (s *Service) DeleteStation(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteStation", trace.WithAttributes(attribute.Int64("subway.station_id", id)))
	defer func() { endSpan(span, err) }()

	err = s.store.DeleteStation(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return domain.StationNotFound(id)
	case errors.Is(err, storage.ErrInUse):
		return domain.StationInUse(id)
	default:
		return fmt.Errorf("delete station: %w", err)
	}
}

// CreateLine creates a line whose path is the single given section.
func (s *Service) CreateLine(ctx context.Context, in CreateLineInput) (line domain.Line, err error) {
	ctx, span := s.tracer.Start(ctx, "CreateLine")
	defer func() { endSpan(span, err) }()

	section, err := s.section(ctx, SectionInput{
		UpStationID:   in.UpStationID,
		DownStationID: in.DownStationID,
		Distance:      in.Distance,
	})
	if err != nil {
		return domain.Line{}, err
	}
	line, err = domain.NewLine(in.Name, in.Color, section)
	if err != nil {
		return domain.Line{}, err
	}
	line, err = s.store.CreateLine(ctx, line)
	if err != nil {
		return domain.Line{}, fmt.Errorf("create line: %w", err)
	}
	span.SetAttributes(attribute.Int64("subway.line_id", line.ID))
	return line, nil
}

// GetLine returns one line with its ordered stations.
func (s *Service) GetLine(ctx context.Context, id int64) (line domain.Line, err error) {
	ctx, span := s.tracer.Start(ctx, "GetLine", trace.WithAttributes(attribute.Int64("subway.line_id", id)))
	defer func() { endSpan(span, err) }()

	line, err = s.store.GetLine(ctx, id)
	if err != nil {
		return domain.Line{}, lineError(id, err)
	}
	return line, nil
}

// ListLines returns one page of lines matching in.Filter.
func (s *Service) ListLines(ctx context.Context, in ListInput) (page storage.LinePage, err error) {
	ctx, span := s.tracer.Start(ctx, "ListLines")
	defer func() { endSpan(span, err) }()

	afterID, err := pagination.ParseIDToken(in.PageToken)
	if err != nil {
		return storage.LinePage{}, invalidPageToken(err)
	}
	cond, err := filter.ParseLineFilter(in.Filter)
	if err != nil {
		return storage.LinePage{}, apperrors.WithMetadata(
			apperrors.CodeInvalidFilter,
			"invalid filter "+strconv.Quote(strings.TrimSpace(in.Filter)),
			map[string]string{"Reason": err.Error()},
		)
	}
	page, err = s.store.ListLines(ctx, storage.LineQuery{
		PageSize: pagination.ClampPageSize(in.PageSize, pageSizes),
		AfterID:  afterID,
		Filter:   cond,
	})
	if err != nil {
		return storage.LinePage{}, fmt.Errorf("list lines: %w", err)
	}
	return page, nil
}

// UpdateLine replaces a line's name and color.
func (s *Service) UpdateLine(ctx context.Context, id int64, name, color string) (line domain.Line, err error) {
	ctx, span := s.tracer.Start(ctx, "UpdateLine", trace.WithAttributes(attribute.Int64("subway.line_id", id)))
	defer func() { endSpan(span, err) }()

	line, err = s.store.UpdateLine(ctx, id, func(l *domain.Line) error {
		return l.UpdateNameAndColor(name, color)
	})
	if err != nil {
		return domain.Line{}, lineError(id, err)
	}
	return line, nil
}

// DeleteLine removes a line and its sections.
func (s *Service) DeleteLine(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteLine", trace.WithAttributes(attribute.Int64("subway.line_id", id)))
	defer func() { endSpan(span, err) }()

	if err := s.store.DeleteLine(ctx, id); err != nil {
		return lineError(id, err)
	}
	return nil
}

// AddSection appends a section at the line's down terminal.
func (s *Service) AddSection(ctx context.Context, lineID int64, in SectionInput) (line domain.Line, err error) {
	ctx, span := s.tracer.Start(ctx, "AddSection", trace.WithAttributes(
		attribute.Int64("subway.line_id", lineID),
		attribute.Int64("subway.up_station_id", in.UpStationID),
		attribute.Int64("subway.down_station_id", in.DownStationID),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireLine(ctx, lineID); err != nil {
		return domain.Line{}, err
	}
	section, err := s.section(ctx, in)
	if err != nil {
		return domain.Line{}, err
	}
	line, err = s.store.UpdateLine(ctx, lineID, func(l *domain.Line) error {
		return l.AddSection(section)
	})
	if err != nil {
		return domain.Line{}, lineError(lineID, err)
	}
	return line, nil
}

// DeleteSection removes the section ending at the line's down terminal station.
func (s *Service) DeleteSection(ctx context.Context, lineID, stationID int64) (line domain.Line, err error) {
	ctx, span := s.tracer.Start(ctx, "DeleteSection", trace.WithAttributes(
		attribute.Int64("subway.line_id", lineID),
		attribute.Int64("subway.station_id", stationID),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireLine(ctx, lineID); err != nil {
		return domain.Line{}, err
	}
	station, err := s.station(ctx, stationID)
	if err != nil {
		return domain.Line{}, err
	}
	line, err = s.store.UpdateLine(ctx, lineID, func(l *domain.Line) error {
		_, err := l.DeleteSection(station)
		return err
	})
	if err != nil {
		return domain.Line{}, lineError(lineID, err)
	}
	return line, nil
}

// requireLine reports a missing line before any station is resolved.
func (s *Service) requireLine(ctx context.Context, id int64) error {
	if _, err := s.store.GetLine(ctx, id); err != nil {
		return lineError(id, err)
	}
	return nil
}

func (s *Service) station(ctx context.Context, id int64) (domain.Station, error) {
	station, err := s.store.GetStation(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Station{}, domain.StationNotFound(id)
		}
		return domain.Station{}, fmt.Errorf("get station %d: %w", id, err)
	}
	return station, nil
}

// section resolves both stations and validates the edge.
func (s *Service) section(ctx context.Context, in SectionInput) (domain.Section, error) {
	up, err := s.station(ctx, in.UpStationID)
	if err != nil {
		return domain.Section{}, err
	}
	down, err := s.station(ctx, in.DownStationID)
	if err != nil {
		return domain.Section{}, err
	}
	return domain.NewSection(up, down, in.Distance)
}

// lineError keeps coded domain errors and maps a missing row to LINE_NOT_FOUND.
func lineError(lineID int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return domain.LineNotFound(lineID)
	}
	if apperrors.GetCode(err) != apperrors.CodeUnknown {
		return err
	}
	return fmt.Errorf("line %d: %w", lineID, err)
}

func invalidPageToken(err error) error {
	return apperrors.Wrap(apperrors.CodeInvalidPageToken, "invalid page token", err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
	}
	span.End()
}
