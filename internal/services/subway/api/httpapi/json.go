package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	apperrors "github.com/louisbranch/subway/internal/platform/errors"
	"github.com/louisbranch/subway/internal/platform/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// maxBodyBytes bounds request payloads.
const maxBodyBytes = 1 << 20

var (
	marshalOptions   = protojson.MarshalOptions{EmitUnpopulated: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeMessage renders msg with the proto3 JSON mapping (lowerCamel names).
func writeMessage(w http.ResponseWriter, status int, msg proto.Message) {
	data, err := marshalOptions.Marshal(msg)
	if err != nil {
		log.Printf("marshal %T: %v", msg, err)
		writeStatus(w, http.StatusInternalServerError, "INTERNAL", "an unexpected error occurred")
		return
	}
	writeBody(w, status, data)
}

// writeMessages renders items as a JSON array of proto3 JSON objects.
func writeMessages[M proto.Message](w http.ResponseWriter, status int, items []M) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := marshalOptions.Marshal(item)
		if err != nil {
			log.Printf("marshal %T: %v", item, err)
			writeStatus(w, http.StatusInternalServerError, "INTERNAL", "an unexpected error occurred")
			return
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	writeBody(w, status, buf.Bytes())
}

func writeStatus(w http.ResponseWriter, status int, code, message string) {
	data, err := json.Marshal(ErrorResponse{Code: code, Message: message})
	if err != nil {
		log.Printf("marshal error response: %v", err)
		w.WriteHeader(status)
		return
	}
	writeBody(w, status, data)
}

// writeError renders err localized for the request. Uncoded errors are
// logged and reported as internal.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	if code == apperrors.CodeUnknown {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeStatus(w, HTTPStatus(code.GRPCCode()), string(code), apperrors.LocalizedMessage(err, requestLocale(r)))
}

// HTTPStatus maps a gRPC code to the REST status code.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads a proto3 JSON request body into target. Unknown fields
// are ignored; int64 fields accept numbers or strings.
func decodeBody(w http.ResponseWriter, r *http.Request, target proto.Message) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil {
		err = unmarshalOptions.Unmarshal(data, target)
	}
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "INVALID_ARGUMENT", "request body must be valid JSON")
		return false
	}
	return true
}

// requestLocale prefers ?lang over Accept-Language.
func requestLocale(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if tag, ok := i18n.ParseTag(lang); ok {
			return i18n.Locale(tag)
		}
	}
	return i18n.ResolveLocale(r.Header.Get("Accept-Language"))
}
