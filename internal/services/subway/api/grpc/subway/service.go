// Package subway exposes subway.v1 gRPC operations over the subway service.
package subway

import (
	"context"
	"strconv"
	"strings"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	apperrors "github.com/louisbranch/subway/internal/platform/errors"
	"github.com/louisbranch/subway/internal/platform/i18n"
	"github.com/louisbranch/subway/internal/services/subway/domain"
	"github.com/louisbranch/subway/internal/services/subway/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// LocaleHeader carries the caller's preferred locale.
const LocaleHeader = "accept-language"

// Service exposes subway.v1 gRPC operations.
type Service struct {
	subwayv1.UnimplementedSubwayServiceServer
	subway *service.Service
}

// NewService creates a gRPC service backed by the subway use cases.
func NewService(subway *service.Service) *Service {
	return &Service{subway: subway}
}

// CreateStation registers one station.
func (s *Service) CreateStation(ctx context.Context, in *subwayv1.CreateStationRequest) (*subwayv1.CreateStationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create station request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	station, err := s.subway.CreateStation(ctx, in.GetName())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.CreateStationResponse{Station: StationToProto(station)}, nil
}

// GetStation returns one station by id.
func (s *Service) GetStation(ctx context.Context, in *subwayv1.GetStationRequest) (*subwayv1.GetStationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get station request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	station, err := s.subway.GetStation(ctx, in.GetStationId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.GetStationResponse{Station: StationToProto(station)}, nil
}

// ListStations returns a page of stations ordered by id.
func (s *Service) ListStations(ctx context.Context, in *subwayv1.ListStationsRequest) (*subwayv1.ListStationsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list stations request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	page, err := s.subway.ListStations(ctx, service.ListInput{
		PageSize:  in.GetPageSize(),
		PageToken: strings.TrimSpace(in.GetPageToken()),
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	resp := &subwayv1.ListStationsResponse{
		Stations:      make([]*subwayv1.Station, 0, len(page.Stations)),
		NextPageToken: page.NextPageToken,
	}
	for _, station := range page.Stations {
		resp.Stations = append(resp.Stations, StationToProto(station))
	}
	return resp, nil
}

// DeleteStation removes a station that no line uses.
func (s *Service) DeleteStation(ctx context.Context, in *subwayv1.DeleteStationRequest) (*subwayv1.DeleteStationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete station request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := s.subway.DeleteStation(ctx, in.GetStationId()); err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.DeleteStationResponse{}, nil
}

// CreateLine creates a line with its first section.
func (s *Service) CreateLine(ctx context.Context, in *subwayv1.CreateLineRequest) (*subwayv1.CreateLineResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create line request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	line, err := s.subway.CreateLine(ctx, service.CreateLineInput{
		Name:          in.GetName(),
		Color:         in.GetColor(),
		UpStationID:   in.GetUpStationId(),
		DownStationID: in.GetDownStationId(),
		Distance:      int(in.GetDistance()),
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.CreateLineResponse{Line: LineToProto(line)}, nil
}

// GetLine returns one line with its ordered stations.
func (s *Service) GetLine(ctx context.Context, in *subwayv1.GetLineRequest) (*subwayv1.GetLineResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get line request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validLineID(in.GetLineId()); err != nil {
		return nil, handleError(ctx, err)
	}
	line, err := s.subway.GetLine(ctx, in.GetLineId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.GetLineResponse{Line: LineToProto(line)}, nil
}

// ListLines returns a filtered page of lines ordered by id.
func (s *Service) ListLines(ctx context.Context, in *subwayv1.ListLinesRequest) (*subwayv1.ListLinesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list lines request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	page, err := s.subway.ListLines(ctx, service.ListInput{
		PageSize:  in.GetPageSize(),
		PageToken: strings.TrimSpace(in.GetPageToken()),
		Filter:    in.GetFilter(),
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	resp := &subwayv1.ListLinesResponse{
		Lines:         make([]*subwayv1.Line, 0, len(page.Lines)),
		NextPageToken: page.NextPageToken,
	}
	for _, line := range page.Lines {
		resp.Lines = append(resp.Lines, LineToProto(line))
	}
	return resp, nil
}

// UpdateLine replaces a line's name and color.
func (s *Service) UpdateLine(ctx context.Context, in *subwayv1.UpdateLineRequest) (*subwayv1.UpdateLineResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "update line request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validLineID(in.GetLineId()); err != nil {
		return nil, handleError(ctx, err)
	}
	line, err := s.subway.UpdateLine(ctx, in.GetLineId(), in.GetName(), in.GetColor())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.UpdateLineResponse{Line: LineToProto(line)}, nil
}

// DeleteLine removes a line and all of its sections.
func (s *Service) DeleteLine(ctx context.Context, in *subwayv1.DeleteLineRequest) (*subwayv1.DeleteLineResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete line request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validLineID(in.GetLineId()); err != nil {
		return nil, handleError(ctx, err)
	}
	if err := s.subway.DeleteLine(ctx, in.GetLineId()); err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.DeleteLineResponse{}, nil
}

// AddSection appends a section at the line's down terminal.
func (s *Service) AddSection(ctx context.Context, in *subwayv1.AddSectionRequest) (*subwayv1.AddSectionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "add section request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validLineID(in.GetLineId()); err != nil {
		return nil, handleError(ctx, err)
	}
	line, err := s.subway.AddSection(ctx, in.GetLineId(), service.SectionInput{
		UpStationID:   in.GetUpStationId(),
		DownStationID: in.GetDownStationId(),
		Distance:      int(in.GetDistance()),
	})
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.AddSectionResponse{Line: LineToProto(line)}, nil
}

// DeleteSection removes the line's down terminal station.
func (s *Service) DeleteSection(ctx context.Context, in *subwayv1.DeleteSectionRequest) (*subwayv1.DeleteSectionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete section request is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := validLineID(in.GetLineId()); err != nil {
		return nil, handleError(ctx, err)
	}
	line, err := s.subway.DeleteSection(ctx, in.GetLineId(), in.GetStationId())
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &subwayv1.DeleteSectionResponse{Line: LineToProto(line)}, nil
}

func (s *Service) ready() error {
	if s == nil || s.subway == nil {
		return status.Error(codes.Internal, "subway service is not configured")
	}
	return nil
}

func validLineID(id int64) error {
	if id <= 0 {
		return domain.InvalidLineID(strconv.FormatInt(id, 10))
	}
	return nil
}

// handleError renders err as a status localized for the caller.
func handleError(ctx context.Context, err error) error {
	return apperrors.HandleError(err, LocaleFromContext(ctx))
}

// LocaleFromContext resolves the locale from incoming request metadata.
func LocaleFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return i18n.ResolveLocale("")
	}
	values := md.Get(LocaleHeader)
	if len(values) == 0 {
		return i18n.ResolveLocale("")
	}
	return i18n.ResolveLocale(values[0])
}
