// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Station errors
	CodeStationNameEmpty Code = "STATION_NAME_EMPTY"
	CodeStationNotFound  Code = "STATION_NOT_FOUND"
	CodeStationInUse     Code = "STATION_IN_USE"

	// Line errors
	CodeLineNameEmpty   Code = "LINE_NAME_EMPTY"
	CodeLineColorEmpty  Code = "LINE_COLOR_EMPTY"
	CodeLineNotFound    Code = "LINE_NOT_FOUND"
	CodeLinePathCorrupt Code = "LINE_PATH_CORRUPT"
	CodeLineInvalidID   Code = "LINE_INVALID_ID"

	// Section errors
	CodeSectionInvalidDistance      Code = "SECTION_INVALID_DISTANCE"
	CodeSectionSameStations         Code = "SECTION_SAME_STATIONS"
	CodeSectionAlreadyAttached      Code = "SECTION_ALREADY_ATTACHED"
	CodeSectionDuplicate            Code = "SECTION_DUPLICATE"
	CodeSectionDownStationExists    Code = "SECTION_DOWN_STATION_EXISTS"
	CodeSectionUpStationNotTerminal Code = "SECTION_UP_STATION_NOT_TERMINAL"
	CodeSectionMinimumReached       Code = "SECTION_MINIMUM_REACHED"
	CodeSectionStationNotTerminal   Code = "SECTION_STATION_NOT_TERMINAL"

	// Listing errors
	CodeInvalidFilter    Code = "INVALID_FILTER"
	CodeInvalidPageToken Code = "INVALID_PAGE_TOKEN"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeStationNameEmpty,
		CodeLineNameEmpty,
		CodeLineColorEmpty,
		CodeLineInvalidID,
		CodeSectionInvalidDistance,
		CodeSectionSameStations,
		CodeSectionAlreadyAttached,
		CodeSectionDuplicate,
		CodeSectionDownStationExists,
		CodeSectionUpStationNotTerminal,
		CodeSectionStationNotTerminal,
		CodeInvalidFilter,
		CodeInvalidPageToken:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeSectionMinimumReached,
		CodeStationInUse:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeStationNotFound,
		CodeLineNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
