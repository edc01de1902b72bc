// Package httpapi serves the subway REST API over the subway service.
package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	grpcapi "github.com/louisbranch/subway/internal/services/subway/api/grpc/subway"
	"github.com/louisbranch/subway/internal/services/subway/domain"
	"github.com/louisbranch/subway/internal/services/subway/service"
)

// NextPageTokenHeader carries the cursor for the next page of a listing.
const NextPageTokenHeader = "X-Next-Page-Token"

// Handler serves station, line, and section routes.
type Handler struct {
	subway *service.Service
	mux    *http.ServeMux
}

// NewHandler builds the REST handler with its middleware applied.
func NewHandler(subway *service.Service) http.Handler {
	h := &Handler{subway: subway, mux: http.NewServeMux()}
	h.routes()
	return Chain(h.mux, RecoverPanic(), RequestID(), LogRequests(nil))
}

func (h *Handler) routes() {
	h.mux.HandleFunc("POST /stations", h.createStation)
	h.mux.HandleFunc("GET /stations", h.listStations)
	h.mux.HandleFunc("GET /stations/{id}", h.getStation)
	h.mux.HandleFunc("DELETE /stations/{id}", h.deleteStation)

	h.mux.HandleFunc("POST /lines", h.createLine)
	h.mux.HandleFunc("GET /lines", h.listLines)
	h.mux.HandleFunc("GET /lines/{id}", h.getLine)
	h.mux.HandleFunc("PUT /lines/{id}", h.updateLine)
	h.mux.HandleFunc("DELETE /lines/{id}", h.deleteLine)

	h.mux.HandleFunc("POST /lines/{id}/sections", h.addSection)
	h.mux.HandleFunc("DELETE /lines/{id}/sections", h.deleteSection)
}

func (h *Handler) createStation(w http.ResponseWriter, r *http.Request) {
	var req subwayv1.CreateStationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	station, err := h.subway.CreateStation(r.Context(), req.GetName())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/stations/"+strconv.FormatInt(station.ID, 10))
	writeMessage(w, http.StatusCreated, grpcapi.StationToProto(station))
}

func (h *Handler) listStations(w http.ResponseWriter, r *http.Request) {
	input, ok := listInput(w, r)
	if !ok {
		return
	}
	page, err := h.subway.ListStations(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	stations := make([]*subwayv1.Station, 0, len(page.Stations))
	for _, station := range page.Stations {
		stations = append(stations, grpcapi.StationToProto(station))
	}
	if page.NextPageToken != "" {
		w.Header().Set(NextPageTokenHeader, page.NextPageToken)
	}
	writeMessages(w, http.StatusOK, stations)
}

func (h *Handler) getStation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, stationID)
	if !ok {
		return
	}
	station, err := h.subway.GetStation(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, grpcapi.StationToProto(station))
}

func (h *Handler) deleteStation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, stationID)
	if !ok {
		return
	}
	if err := h.subway.DeleteStation(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createLine(w http.ResponseWriter, r *http.Request) {
	var req subwayv1.CreateLineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	line, err := h.subway.CreateLine(r.Context(), service.CreateLineInput{
		Name:          req.GetName(),
		Color:         req.GetColor(),
		UpStationID:   req.GetUpStationId(),
		DownStationID: req.GetDownStationId(),
		Distance:      int(req.GetDistance()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/lines/"+strconv.FormatInt(line.ID, 10))
	writeMessage(w, http.StatusCreated, grpcapi.LineToProto(line))
}

func (h *Handler) listLines(w http.ResponseWriter, r *http.Request) {
	input, ok := listInput(w, r)
	if !ok {
		return
	}
	input.Filter = r.URL.Query().Get("filter")
	page, err := h.subway.ListLines(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	lines := make([]*subwayv1.Line, 0, len(page.Lines))
	for _, line := range page.Lines {
		lines = append(lines, grpcapi.LineToProto(line))
	}
	if page.NextPageToken != "" {
		w.Header().Set(NextPageTokenHeader, page.NextPageToken)
	}
	writeMessages(w, http.StatusOK, lines)
}

func (h *Handler) getLine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, lineID)
	if !ok {
		return
	}
	line, err := h.subway.GetLine(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, grpcapi.LineToProto(line))
}

func (h *Handler) updateLine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, lineID)
	if !ok {
		return
	}
	var req subwayv1.UpdateLineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := h.subway.UpdateLine(r.Context(), id, req.GetName(), req.GetColor()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteLine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, lineID)
	if !ok {
		return
	}
	if err := h.subway.DeleteLine(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, lineID)
	if !ok {
		return
	}
	var req subwayv1.AddSectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	_, err := h.subway.AddSection(r.Context(), id, service.SectionInput{
		UpStationID:   req.GetUpStationId(),
		DownStationID: req.GetDownStationId(),
		Distance:      int(req.GetDistance()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/lines/"+strconv.FormatInt(id, 10)+"/sections")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) deleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, lineID)
	if !ok {
		return
	}
	raw := strings.TrimSpace(r.URL.Query().Get("stationId"))
	station, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, domain.StationNotFound(0))
		return
	}
	if _, err := h.subway.DeleteSection(r.Context(), id, station); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type idKind int

const (
	lineID idKind = iota
	stationID
)

// pathID parses the {id} segment. A malformed station id reads as a
// missing station.
func pathID(w http.ResponseWriter, r *http.Request, kind idKind) (int64, bool) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err == nil && id > 0 {
		return id, true
	}
	if kind == lineID {
		writeError(w, r, domain.InvalidLineID(raw))
	} else {
		writeError(w, r, domain.StationNotFound(0))
	}
	return 0, false
}

func listInput(w http.ResponseWriter, r *http.Request) (service.ListInput, bool) {
	query := r.URL.Query()
	input := service.ListInput{PageToken: strings.TrimSpace(query.Get("pageToken"))}
	if raw := strings.TrimSpace(query.Get("pageSize")); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeStatus(w, http.StatusBadRequest, "INVALID_ARGUMENT", "pageSize must be a number")
			return service.ListInput{}, false
		}
		input.PageSize = int32(size)
	}
	return input, true
}
