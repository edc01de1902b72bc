package server

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	platformgrpc "github.com/louisbranch/subway/internal/platform/grpc"
	"google.golang.org/protobuf/encoding/protojson"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("SUBWAY_DB_PATH", filepath.Join(t.TempDir(), "subway.db"))

	srv, err := NewWithAddr(context.Background(), "127.0.0.1:0", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Errorf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})
	return srv
}

func TestServerRoundTrip(t *testing.T) {
	srv := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := platformgrpc.DialWithHealth(ctx, srv.Addr(), subwayv1.SubwayService_ServiceDesc.ServiceName, 2*time.Second, t.Logf)
	if err != nil {
		t.Fatalf("dial subway server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Errorf("close gRPC connection: %v", closeErr)
		}
	})
	client := subwayv1.NewSubwayServiceClient(conn)

	var ids []int64
	for _, name := range []string{"강남역", "신논현역", "양재역"} {
		resp, err := client.CreateStation(ctx, &subwayv1.CreateStationRequest{Name: name})
		if err != nil {
			t.Fatalf("create station %q: %v", name, err)
		}
		ids = append(ids, resp.GetStation().GetId())
	}
	created, err := client.CreateLine(ctx, &subwayv1.CreateLineRequest{
		Name: "신분당선", Color: "bg-red-600", UpStationId: ids[0], DownStationId: ids[1], Distance: 10,
	})
	if err != nil {
		t.Fatalf("create line: %v", err)
	}
	if _, err := client.AddSection(ctx, &subwayv1.AddSectionRequest{
		LineId: created.Line.GetId(), UpStationId: ids[1], DownStationId: ids[2], Distance: 5,
	}); err != nil {
		t.Fatalf("add section: %v", err)
	}

	resp, err := http.Get("http://" + srv.HTTPAddr() + "/lines/" + strconv.FormatInt(created.Line.GetId(), 10))
	if err != nil {
		t.Fatalf("get line over HTTP: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read line: %v", err)
	}
	line := &subwayv1.Line{}
	if err := protojson.Unmarshal(data, line); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	stations := line.GetStations()
	if len(stations) != 3 || stations[2].GetName() != "양재역" || line.GetTotalDistance() != 15 {
		t.Fatalf("line = %v", line)
	}
	if !line.GetCreatedAt().AsTime().Equal(created.Line.GetCreatedAt().AsTime()) {
		t.Fatalf("created_at = %v, want %v", line.GetCreatedAt(), created.Line.GetCreatedAt())
	}
}

func TestServeNilServer(t *testing.T) {
	var srv *Server
	if err := srv.Serve(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	if srv.Addr() != "" || srv.HTTPAddr() != "" {
		t.Fatal("expected empty addresses for nil server")
	}
}

func TestLoadServerEnvDefault(t *testing.T) {
	t.Setenv("SUBWAY_DB_PATH", "")
	cfg, err := loadServerEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.DBPath != filepath.Join("data", "subway.db") {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
}
