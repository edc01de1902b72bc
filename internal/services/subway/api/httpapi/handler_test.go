package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	"github.com/louisbranch/subway/internal/services/subway/service"
	"github.com/louisbranch/subway/internal/services/subway/storage/sqlite"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "subway.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	server := httptest.NewServer(NewHandler(service.New(store)))
	t.Cleanup(func() {
		server.Close()
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return server
}

func do(t *testing.T, server *httptest.Server, method, path, body string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func decodeMessage[T any, P interface {
	*T
	proto.Message
}](t *testing.T, resp *http.Response) P {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	msg := P(new(T))
	if err := protojson.Unmarshal(data, msg); err != nil {
		t.Fatalf("decode %T: %v", msg, err)
	}
	return msg
}

func decodeMessages[T any, P interface {
	*T
	proto.Message
}](t *testing.T, resp *http.Response) []P {
	t.Helper()
	var raws []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	out := make([]P, 0, len(raws))
	for _, raw := range raws {
		msg := P(new(T))
		if err := protojson.Unmarshal(raw, msg); err != nil {
			t.Fatalf("decode %T: %v", msg, err)
		}
		out = append(out, msg)
	}
	return out
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("%s %s status = %d, want %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, want)
	}
}

func createStation(t *testing.T, server *httptest.Server, name string) int64 {
	t.Helper()
	resp := do(t, server, http.MethodPost, "/stations", `{"name":"`+name+`"}`, nil)
	expectStatus(t, resp, http.StatusCreated)
	return decodeMessage[subwayv1.Station](t, resp).GetId()
}

func createLine(t *testing.T, server *httptest.Server, up, down int64) string {
	t.Helper()
	body := `{"name":"신분당선","color":"bg-red-600","upStationId":` + strconv.FormatInt(up, 10) +
		`,"downStationId":` + strconv.FormatInt(down, 10) + `,"distance":10}`
	resp := do(t, server, http.MethodPost, "/lines", body, nil)
	expectStatus(t, resp, http.StatusCreated)
	location := resp.Header.Get("Location")
	if !strings.HasPrefix(location, "/lines/") {
		t.Fatalf("location = %q", location)
	}
	return location
}

func stationNames(line *subwayv1.Line) []string {
	names := make([]string, 0, len(line.GetStations()))
	for _, station := range line.GetStations() {
		names = append(names, station.GetName())
	}
	return names
}

func TestSectionRoutes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	gangnam := createStation(t, server, "강남역")
	sinnonhyeon := createStation(t, server, "신논현역")
	yangjae := createStation(t, server, "양재역")
	location := createLine(t, server, gangnam, sinnonhyeon)

	body := `{"upStationId":` + strconv.FormatInt(sinnonhyeon, 10) +
		`,"downStationId":` + strconv.FormatInt(yangjae, 10) + `,"distance":5}`
	resp := do(t, server, http.MethodPost, location+"/sections", body, nil)
	expectStatus(t, resp, http.StatusCreated)
	if got, want := resp.Header.Get("Location"), location+"/sections"; got != want {
		t.Fatalf("location = %q, want %q", got, want)
	}
	if data, _ := io.ReadAll(resp.Body); len(data) != 0 {
		t.Fatalf("add section body = %q, want empty", data)
	}

	resp = do(t, server, http.MethodGet, location, "", nil)
	expectStatus(t, resp, http.StatusOK)
	line := decodeMessage[subwayv1.Line](t, resp)
	if got := strings.Join(stationNames(line), ","); got != "강남역,신논현역,양재역" {
		t.Fatalf("stations = %s", got)
	}

	resp = do(t, server, http.MethodDelete, location+"/sections?stationId="+strconv.FormatInt(yangjae, 10), "", nil)
	expectStatus(t, resp, http.StatusNoContent)

	resp = do(t, server, http.MethodGet, location, "", nil)
	line = decodeMessage[subwayv1.Line](t, resp)
	if got := strings.Join(stationNames(line), ","); got != "강남역,신논현역" {
		t.Fatalf("stations after delete = %s", got)
	}
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	gangnam := createStation(t, server, "강남역")
	sinnonhyeon := createStation(t, server, "신논현역")
	location := createLine(t, server, gangnam, sinnonhyeon)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		header   http.Header
		status   int
		code     string
		contains string
	}{
		{
			name:   "delete only section",
			method: http.MethodDelete,
			path:   location + "/sections?stationId=" + strconv.FormatInt(sinnonhyeon, 10),
			status: http.StatusBadRequest,
			code:   "SECTION_MINIMUM_REACHED",
		},
		{
			name:     "korean message",
			method:   http.MethodDelete,
			path:     location + "/sections?stationId=" + strconv.FormatInt(sinnonhyeon, 10),
			header:   http.Header{"Accept-Language": []string{"ko-KR,ko;q=0.9"}},
			status:   http.StatusBadRequest,
			code:     "SECTION_MINIMUM_REACHED",
			contains: "2개 이상",
		},
		{
			name:     "lang query wins",
			method:   http.MethodGet,
			path:     "/lines/999?lang=ko",
			header:   http.Header{"Accept-Language": []string{"en-US"}},
			status:   http.StatusNotFound,
			code:     "LINE_NOT_FOUND",
			contains: "노선",
		},
		{
			name:   "down station already on line",
			method: http.MethodPost,
			path:   location + "/sections",
			body: `{"upStationId":` + strconv.FormatInt(sinnonhyeon, 10) +
				`,"downStationId":` + strconv.FormatInt(gangnam, 10) + `,"distance":5}`,
			status: http.StatusBadRequest,
			code:   "SECTION_DOWN_STATION_EXISTS",
		},
		{
			name:   "malformed line id",
			method: http.MethodGet,
			path:   "/lines/abc",
			status: http.StatusBadRequest,
			code:   "LINE_INVALID_ID",
		},
		{
			name:     "missing station",
			method:   http.MethodGet,
			path:     "/stations/999",
			status:   http.StatusNotFound,
			code:     "STATION_NOT_FOUND",
			contains: "999",
		},
		{
			name:   "station in use",
			method: http.MethodDelete,
			path:   "/stations/" + strconv.FormatInt(gangnam, 10),
			status: http.StatusBadRequest,
			code:   "STATION_IN_USE",
		},
		{
			name:   "bad json",
			method: http.MethodPost,
			path:   "/lines",
			body:   `{"name":`,
			status: http.StatusBadRequest,
			code:   "INVALID_ARGUMENT",
		},
		{
			name:   "bad filter",
			method: http.MethodGet,
			path:   "/lines?filter=" + "station%20%3D%20%22x%22",
			status: http.StatusBadRequest,
			code:   "INVALID_FILTER",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, server, tc.method, tc.path, tc.body, tc.header)
			expectStatus(t, resp, tc.status)
			body := decode[ErrorResponse](t, resp)
			if body.Code != tc.code {
				t.Fatalf("code = %q, want %q", body.Code, tc.code)
			}
			if tc.contains != "" && !strings.Contains(body.Message, tc.contains) {
				t.Fatalf("message = %q, want substring %q", body.Message, tc.contains)
			}
		})
	}
}

func TestLineCRUD(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	gangnam := createStation(t, server, "강남역")
	sinnonhyeon := createStation(t, server, "신논현역")
	location := createLine(t, server, gangnam, sinnonhyeon)

	resp := do(t, server, http.MethodPut, location, `{"name":"2호선","color":"bg-green-600"}`, nil)
	expectStatus(t, resp, http.StatusOK)

	resp = do(t, server, http.MethodGet, "/lines", "", nil)
	expectStatus(t, resp, http.StatusOK)
	lines := decodeMessages[subwayv1.Line](t, resp)
	if len(lines) != 1 || lines[0].GetName() != "2호선" || lines[0].GetColor() != "bg-green-600" {
		t.Fatalf("lines = %v", lines)
	}

	resp = do(t, server, http.MethodDelete, location, "", nil)
	expectStatus(t, resp, http.StatusNoContent)
	resp = do(t, server, http.MethodGet, location, "", nil)
	expectStatus(t, resp, http.StatusNotFound)

	resp = do(t, server, http.MethodDelete, "/stations/"+strconv.FormatInt(gangnam, 10), "", nil)
	expectStatus(t, resp, http.StatusNoContent)
}

func TestLineJSONMapping(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	gangnam := createStation(t, server, "강남역")
	sinnonhyeon := createStation(t, server, "신논현역")

	// int64 fields are accepted as JSON strings as well as numbers.
	body := `{"name":"신분당선","color":"bg-red-600","up_station_id":"` + strconv.FormatInt(gangnam, 10) +
		`","downStationId":"` + strconv.FormatInt(sinnonhyeon, 10) + `","distance":"10","unknown":true}`
	resp := do(t, server, http.MethodPost, "/lines", body, nil)
	expectStatus(t, resp, http.StatusCreated)

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if _, ok := raw["id"].(string); !ok {
		t.Fatalf("id = %#v, want JSON string", raw["id"])
	}
	if got := raw["totalDistance"]; got != "10" {
		t.Fatalf("totalDistance = %#v, want \"10\"", got)
	}
	for _, field := range []string{"createdAt", "updatedAt"} {
		value, _ := raw[field].(string)
		if _, err := time.Parse(time.RFC3339Nano, value); err != nil {
			t.Fatalf("%s = %#v: %v", field, raw[field], err)
		}
	}
	sections, _ := raw["sections"].([]any)
	if len(sections) != 1 {
		t.Fatalf("sections = %#v", raw["sections"])
	}
}

func TestListStationsPaging(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	for _, name := range []string{"강남역", "신논현역", "양재역"} {
		createStation(t, server, name)
	}

	resp := do(t, server, http.MethodGet, "/stations?pageSize=2", "", nil)
	expectStatus(t, resp, http.StatusOK)
	first := decodeMessages[subwayv1.Station](t, resp)
	token := resp.Header.Get(NextPageTokenHeader)
	if len(first) != 2 || token == "" {
		t.Fatalf("first page = %v token=%q", first, token)
	}

	resp = do(t, server, http.MethodGet, "/stations?pageSize=2&pageToken="+token, "", nil)
	second := decodeMessages[subwayv1.Station](t, resp)
	if len(second) != 1 || second[0].GetName() != "양재역" || resp.Header.Get(NextPageTokenHeader) != "" {
		t.Fatalf("second page = %v", second)
	}

	resp = do(t, server, http.MethodGet, "/stations?pageSize=many", "", nil)
	expectStatus(t, resp, http.StatusBadRequest)
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := map[codes.Code]int{
		codes.InvalidArgument:    http.StatusBadRequest,
		codes.FailedPrecondition: http.StatusBadRequest,
		codes.NotFound:           http.StatusNotFound,
		codes.Internal:           http.StatusInternalServerError,
		codes.Unknown:            http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := HTTPStatus(code); got != want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := Chain(panicking, RecoverPanic(), RequestID())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lines", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	Chain(http.NotFoundHandler(), RequestID()).ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "req-1" {
		t.Fatalf("request id = %q, want req-1", got)
	}
}

func TestLogRequests(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}), RequestID(), LogRequests(logger))

	req := httptest.NewRequest(http.MethodGet, "/lines?pageSize=1", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	for _, want := range []string{"GET /lines?pageSize=1", "status=418", "request_id=req-7"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}
