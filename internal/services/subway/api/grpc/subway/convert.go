package subway

import (
	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	"github.com/louisbranch/subway/internal/services/subway/domain"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// StationToProto converts a domain station to its wire form.
func StationToProto(station domain.Station) *subwayv1.Station {
	return &subwayv1.Station{Id: station.ID, Name: station.Name}
}

// LineToProto converts a domain line to its wire form, stations ordered
// from up terminal to down terminal.
func LineToProto(line domain.Line) *subwayv1.Line {
	stations := line.Stations()
	sections := line.Sections()
	out := &subwayv1.Line{
		Id:            line.ID,
		Name:          line.Name,
		Color:         line.Color,
		Stations:      make([]*subwayv1.Station, 0, len(stations)),
		Sections:      make([]*subwayv1.Section, 0, len(sections)),
		TotalDistance: int64(line.TotalDistance()),
		CreatedAt:     timestamppb.New(line.CreatedAt),
		UpdatedAt:     timestamppb.New(line.UpdatedAt),
	}
	for _, station := range stations {
		out.Stations = append(out.Stations, StationToProto(station))
	}
	for _, section := range sections {
		out.Sections = append(out.Sections, &subwayv1.Section{
			Id:          section.ID,
			UpStation:   StationToProto(section.UpStation),
			DownStation: StationToProto(section.DownStation),
			Distance:    int64(section.Distance),
		})
	}
	return out
}
