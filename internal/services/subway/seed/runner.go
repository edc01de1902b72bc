package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	"google.golang.org/grpc"
)

const listPageSize = int32(100)

// Client is the subset of the subway API the runner calls.
type Client interface {
	CreateStation(ctx context.Context, in *subwayv1.CreateStationRequest, opts ...grpc.CallOption) (*subwayv1.CreateStationResponse, error)
	ListStations(ctx context.Context, in *subwayv1.ListStationsRequest, opts ...grpc.CallOption) (*subwayv1.ListStationsResponse, error)
	CreateLine(ctx context.Context, in *subwayv1.CreateLineRequest, opts ...grpc.CallOption) (*subwayv1.CreateLineResponse, error)
	ListLines(ctx context.Context, in *subwayv1.ListLinesRequest, opts ...grpc.CallOption) (*subwayv1.ListLinesResponse, error)
	AddSection(ctx context.Context, in *subwayv1.AddSectionRequest, opts ...grpc.CallOption) (*subwayv1.AddSectionResponse, error)
	DeleteLine(ctx context.Context, in *subwayv1.DeleteLineRequest, opts ...grpc.CallOption) (*subwayv1.DeleteLineResponse, error)
}

// Result counts what a run created.
type Result struct {
	StationsCreated int
	LinesCreated    int
	LinesSkipped    int
	SectionsAdded   int
}

// Runner applies manifests through a Client.
type Runner struct {
	client  Client
	out     io.Writer
	verbose bool
}

// NewRunner builds a runner. Progress goes to out when verbose is set.
func NewRunner(client Client, out io.Writer, verbose bool) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{client: client, out: out, verbose: verbose}
}

// Run creates the manifest's missing stations and lines.
func (r *Runner) Run(ctx context.Context, manifest Manifest) (Result, error) {
	if r == nil || r.client == nil {
		return Result{}, fmt.Errorf("seed client is required")
	}
	if err := ValidateManifest(manifest); err != nil {
		return Result{}, err
	}

	var result Result
	stationIDs, err := r.existingStations(ctx)
	if err != nil {
		return Result{}, err
	}
	for _, name := range manifest.stationNames() {
		if _, ok := stationIDs[name]; ok {
			continue
		}
		resp, err := r.client.CreateStation(ctx, &subwayv1.CreateStationRequest{Name: name})
		if err != nil {
			return result, fmt.Errorf("create station %q: %w", name, err)
		}
		stationIDs[name] = resp.GetStation().GetId()
		result.StationsCreated++
		r.logf("station %s created id=%d", name, stationIDs[name])
	}

	for _, line := range manifest.Lines {
		name := strings.TrimSpace(line.Name)
		exists, err := r.lineExists(ctx, name)
		if err != nil {
			return result, err
		}
		if exists {
			result.LinesSkipped++
			r.logf("line %s exists, skipped", name)
			continue
		}
		added, err := r.createLine(ctx, line, stationIDs)
		result.SectionsAdded += added
		if err != nil {
			return result, err
		}
		result.LinesCreated++
		r.logf("line %s created with %d sections", name, len(line.Sections))
	}
	return result, nil
}

func (r *Runner) createLine(ctx context.Context, line ManifestLine, stationIDs map[string]int64) (int, error) {
	name := strings.TrimSpace(line.Name)
	first := line.Sections[0]
	resp, err := r.client.CreateLine(ctx, &subwayv1.CreateLineRequest{
		Name:          name,
		Color:         strings.TrimSpace(line.Color),
		UpStationId:   stationIDs[strings.TrimSpace(first.Up)],
		DownStationId: stationIDs[strings.TrimSpace(first.Down)],
		Distance:      first.Distance,
	})
	if err != nil {
		return 0, fmt.Errorf("create line %q: %w", name, err)
	}
	lineID := resp.GetLine().GetId()
	added := 0
	for _, section := range line.Sections[1:] {
		if _, err := r.client.AddSection(ctx, &subwayv1.AddSectionRequest{
			LineId:        lineID,
			UpStationId:   stationIDs[strings.TrimSpace(section.Up)],
			DownStationId: stationIDs[strings.TrimSpace(section.Down)],
			Distance:      section.Distance,
		}); err != nil {
			err = fmt.Errorf("line %q: add section %s-%s: %w", name, section.Up, section.Down, err)
			return 0, r.rollbackLine(ctx, name, lineID, err)
		}
		added++
	}
	return added, nil
}

// rollbackLine deletes a partially built line so a rerun starts it fresh
// instead of skipping it by name.
func (r *Runner) rollbackLine(ctx context.Context, name string, lineID int64, cause error) error {
	if _, err := r.client.DeleteLine(ctx, &subwayv1.DeleteLineRequest{LineId: lineID}); err != nil {
		return errors.Join(cause, fmt.Errorf("roll back line %q: %w", name, err))
	}
	r.logf("line %s rolled back", name)
	return cause
}

func (r *Runner) existingStations(ctx context.Context) (map[string]int64, error) {
	ids := make(map[string]int64)
	token := ""
	for {
		resp, err := r.client.ListStations(ctx, &subwayv1.ListStationsRequest{PageSize: listPageSize, PageToken: token})
		if err != nil {
			return nil, fmt.Errorf("list stations: %w", err)
		}
		for _, station := range resp.GetStations() {
			ids[station.GetName()] = station.GetId()
		}
		token = resp.GetNextPageToken()
		if token == "" {
			return ids, nil
		}
	}
}

func (r *Runner) lineExists(ctx context.Context, name string) (bool, error) {
	resp, err := r.client.ListLines(ctx, &subwayv1.ListLinesRequest{
		PageSize: 1,
		Filter:   "name = " + strconv.Quote(name),
	})
	if err != nil {
		return false, fmt.Errorf("find line %q: %w", name, err)
	}
	return len(resp.GetLines()) > 0, nil
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}
