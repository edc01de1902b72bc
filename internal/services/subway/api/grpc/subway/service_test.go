package subway

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	"github.com/louisbranch/subway/internal/services/subway/service"
	"github.com/louisbranch/subway/internal/services/subway/storage/sqlite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "subway.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return NewService(service.New(store))
}

func createStations(t *testing.T, svc *Service, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		resp, err := svc.CreateStation(context.Background(), &subwayv1.CreateStationRequest{Name: name})
		if err != nil {
			t.Fatalf("create station %q: %v", name, err)
		}
		ids = append(ids, resp.Station.GetId())
	}
	return ids
}

func stationNames(line *subwayv1.Line) []string {
	names := make([]string, 0, len(line.GetStations()))
	for _, station := range line.GetStations() {
		names = append(names, station.GetName())
	}
	return names
}

func assertNames(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("stations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stations = %v, want %v", got, want)
		}
	}
}

func TestNilRequests(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)
	ctx := context.Background()
	calls := map[string]func() error{
		"create station": func() error { _, err := svc.CreateStation(ctx, nil); return err },
		"get line":       func() error { _, err := svc.GetLine(ctx, nil); return err },
		"add section":    func() error { _, err := svc.AddSection(ctx, nil); return err },
		"delete section": func() error { _, err := svc.DeleteSection(ctx, nil); return err },
	}
	for name, call := range calls {
		if code := status.Code(call()); code != codes.InvalidArgument {
			t.Fatalf("%s: code = %v, want %v", name, code, codes.InvalidArgument)
		}
	}
}

func TestUnconfiguredService(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil).ListLines(context.Background(), &subwayv1.ListLinesRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Internal)
	}
}

func TestLineLifecycle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	ids := createStations(t, svc, "강남역", "신논현역", "양재역")

	created, err := svc.CreateLine(ctx, &subwayv1.CreateLineRequest{
		Name:          "신분당선",
		Color:         "bg-red-600",
		UpStationId:   ids[0],
		DownStationId: ids[1],
		Distance:      10,
	})
	if err != nil {
		t.Fatalf("create line: %v", err)
	}
	lineID := created.Line.GetId()
	assertNames(t, stationNames(created.Line), "강남역", "신논현역")

	added, err := svc.AddSection(ctx, &subwayv1.AddSectionRequest{
		LineId:        lineID,
		UpStationId:   ids[1],
		DownStationId: ids[2],
		Distance:      5,
	})
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	assertNames(t, stationNames(added.Line), "강남역", "신논현역", "양재역")
	if added.Line.TotalDistance != 15 {
		t.Fatalf("total distance = %d, want 15", added.Line.TotalDistance)
	}
	if len(added.Line.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(added.Line.Sections))
	}

	removed, err := svc.DeleteSection(ctx, &subwayv1.DeleteSectionRequest{LineId: lineID, StationId: ids[2]})
	if err != nil {
		t.Fatalf("delete section: %v", err)
	}
	assertNames(t, stationNames(removed.Line), "강남역", "신논현역")

	updated, err := svc.UpdateLine(ctx, &subwayv1.UpdateLineRequest{LineId: lineID, Name: "2호선", Color: "bg-green-600"})
	if err != nil {
		t.Fatalf("update line: %v", err)
	}
	if updated.Line.Name != "2호선" || updated.Line.Color != "bg-green-600" {
		t.Fatalf("updated line = %+v", updated.Line)
	}

	if _, err := svc.DeleteLine(ctx, &subwayv1.DeleteLineRequest{LineId: lineID}); err != nil {
		t.Fatalf("delete line: %v", err)
	}
	_, err = svc.GetLine(ctx, &subwayv1.GetLineRequest{LineId: lineID})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("get deleted line code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestAddSectionRejections(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	ids := createStations(t, svc, "강남역", "신논현역", "양재역")
	created, err := svc.CreateLine(ctx, &subwayv1.CreateLineRequest{
		Name: "신분당선", Color: "bg-red-600", UpStationId: ids[0], DownStationId: ids[1], Distance: 10,
	})
	if err != nil {
		t.Fatalf("create line: %v", err)
	}
	lineID := created.Line.GetId()

	tests := []struct {
		name string
		req  *subwayv1.AddSectionRequest
		code codes.Code
	}{
		{name: "up not terminal", req: &subwayv1.AddSectionRequest{LineId: lineID, UpStationId: ids[0], DownStationId: ids[2], Distance: 5}, code: codes.InvalidArgument},
		{name: "down already on line", req: &subwayv1.AddSectionRequest{LineId: lineID, UpStationId: ids[1], DownStationId: ids[0], Distance: 5}, code: codes.InvalidArgument},
		{name: "zero distance", req: &subwayv1.AddSectionRequest{LineId: lineID, UpStationId: ids[1], DownStationId: ids[2]}, code: codes.InvalidArgument},
		{name: "missing station", req: &subwayv1.AddSectionRequest{LineId: lineID, UpStationId: ids[1], DownStationId: 999, Distance: 5}, code: codes.NotFound},
		{name: "missing line", req: &subwayv1.AddSectionRequest{LineId: 999, UpStationId: ids[1], DownStationId: ids[2], Distance: 5}, code: codes.NotFound},
		{name: "invalid line id", req: &subwayv1.AddSectionRequest{LineId: 0, UpStationId: ids[1], DownStationId: ids[2], Distance: 5}, code: codes.InvalidArgument},
	}
	for _, tc := range tests {
		_, err := svc.AddSection(ctx, tc.req)
		if status.Code(err) != tc.code {
			t.Fatalf("%s: code = %v, want %v (%v)", tc.name, status.Code(err), tc.code, err)
		}
	}

	got, err := svc.GetLine(ctx, &subwayv1.GetLineRequest{LineId: lineID})
	if err != nil {
		t.Fatalf("get line: %v", err)
	}
	assertNames(t, stationNames(got.Line), "강남역", "신논현역")
}

func TestDeleteOnlySectionFailsPrecondition(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	ids := createStations(t, svc, "강남역", "신논현역")
	created, err := svc.CreateLine(ctx, &subwayv1.CreateLineRequest{
		Name: "신분당선", Color: "bg-red-600", UpStationId: ids[0], DownStationId: ids[1], Distance: 10,
	})
	if err != nil {
		t.Fatalf("create line: %v", err)
	}
	_, err = svc.DeleteSection(ctx, &subwayv1.DeleteSectionRequest{LineId: created.Line.GetId(), StationId: ids[1]})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
}

func TestListStationsPaging(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	createStations(t, svc, "강남역", "신논현역", "양재역")

	first, err := svc.ListStations(ctx, &subwayv1.ListStationsRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("list stations: %v", err)
	}
	if len(first.Stations) != 2 || first.NextPageToken == "" {
		t.Fatalf("first page = %+v", first)
	}
	second, err := svc.ListStations(ctx, &subwayv1.ListStationsRequest{PageSize: 2, PageToken: first.NextPageToken})
	if err != nil {
		t.Fatalf("list stations page 2: %v", err)
	}
	if len(second.Stations) != 1 || second.Stations[0].Name != "양재역" || second.NextPageToken != "" {
		t.Fatalf("second page = %+v", second)
	}

	_, err = svc.ListStations(ctx, &subwayv1.ListStationsRequest{PageToken: "abc"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad token code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestListLinesFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	ids := createStations(t, svc, "강남역", "신논현역", "양재역", "수원역")
	for _, req := range []*subwayv1.CreateLineRequest{
		{Name: "신분당선", Color: "bg-red-600", UpStationId: ids[0], DownStationId: ids[1], Distance: 10},
		{Name: "분당선", Color: "bg-yellow-600", UpStationId: ids[2], DownStationId: ids[3], Distance: 20},
	} {
		if _, err := svc.CreateLine(ctx, req); err != nil {
			t.Fatalf("create line %q: %v", req.Name, err)
		}
	}

	resp, err := svc.ListLines(ctx, &subwayv1.ListLinesRequest{Filter: `color = "bg-yellow-600"`})
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Name != "분당선" {
		t.Fatalf("lines = %+v", resp.Lines)
	}

	_, err = svc.ListLines(ctx, &subwayv1.ListLinesRequest{Filter: `station = "강남역"`})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad filter code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestLocaleFromContext(t *testing.T) {
	t.Parallel()

	if got := LocaleFromContext(context.Background()); got != "en-US" {
		t.Fatalf("locale = %q, want en-US", got)
	}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(LocaleHeader, "ko-KR,ko;q=0.9"))
	if got := LocaleFromContext(ctx); got != "ko-KR" {
		t.Fatalf("locale = %q, want ko-KR", got)
	}
}

func TestRoundTripOverJSONCodec(t *testing.T) {
	t.Parallel()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	subwayv1.RegisterSubwayServiceServer(server, newTestService(t))
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	client := subwayv1.NewSubwayServiceClient(conn)
	ctx := context.Background()

	up, err := client.CreateStation(ctx, &subwayv1.CreateStationRequest{Name: "강남역"})
	if err != nil {
		t.Fatalf("create station: %v", err)
	}
	down, err := client.CreateStation(ctx, &subwayv1.CreateStationRequest{Name: "신논현역"})
	if err != nil {
		t.Fatalf("create station: %v", err)
	}
	line, err := client.CreateLine(ctx, &subwayv1.CreateLineRequest{
		Name: "신분당선", Color: "bg-red-600", UpStationId: up.Station.Id, DownStationId: down.Station.Id, Distance: 10,
	})
	if err != nil {
		t.Fatalf("create line: %v", err)
	}
	assertNames(t, stationNames(line.Line), "강남역", "신논현역")

	koCtx := metadata.AppendToOutgoingContext(ctx, LocaleHeader, "ko-KR")
	_, err = client.DeleteSection(koCtx, &subwayv1.DeleteSectionRequest{LineId: line.Line.Id, StationId: down.Station.Id})
	st := status.Convert(err)
	if st.Code() != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", st.Code(), codes.FailedPrecondition)
	}
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok {
			localized = msg
		}
	}
	if localized == nil || localized.GetLocale() != "ko-KR" {
		t.Fatalf("localized detail = %v", localized)
	}
	if localized.GetMessage() != "지하철 구간이 적어도 2개 이상은 있어야 삭제할 수 있습니다." {
		t.Fatalf("localized message = %q", localized.GetMessage())
	}
}
