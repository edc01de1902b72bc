package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                     = "UNKNOWN"
	CodeStationNameEmpty            = "STATION_NAME_EMPTY"
	CodeStationNotFound             = "STATION_NOT_FOUND"
	CodeStationInUse                = "STATION_IN_USE"
	CodeLineNameEmpty               = "LINE_NAME_EMPTY"
	CodeLineColorEmpty              = "LINE_COLOR_EMPTY"
	CodeLineNotFound                = "LINE_NOT_FOUND"
	CodeLinePathCorrupt             = "LINE_PATH_CORRUPT"
	CodeLineInvalidID               = "LINE_INVALID_ID"
	CodeSectionInvalidDistance      = "SECTION_INVALID_DISTANCE"
	CodeSectionSameStations         = "SECTION_SAME_STATIONS"
	CodeSectionAlreadyAttached      = "SECTION_ALREADY_ATTACHED"
	CodeSectionDuplicate            = "SECTION_DUPLICATE"
	CodeSectionDownStationExists    = "SECTION_DOWN_STATION_EXISTS"
	CodeSectionUpStationNotTerminal = "SECTION_UP_STATION_NOT_TERMINAL"
	CodeSectionMinimumReached       = "SECTION_MINIMUM_REACHED"
	CodeSectionStationNotTerminal   = "SECTION_STATION_NOT_TERMINAL"
	CodeInvalidFilter               = "INVALID_FILTER"
	CodeInvalidPageToken            = "INVALID_PAGE_TOKEN"
)

// enUSMessages holds the en-US message templates.
var enUSMessages = map[Code]string{
	CodeUnknown: "An unexpected error occurred",

	// Station errors
	CodeStationNameEmpty: "Station name is required",
	CodeStationNotFound:  "Station {{.StationID}} was not found",
	CodeStationInUse:     "Station {{.StationID}} is still part of a line",

	// Line errors
	CodeLineNameEmpty:   "Line name is required",
	CodeLineColorEmpty:  "Line color is required",
	CodeLineNotFound:    "Line {{.LineID}} was not found",
	CodeLinePathCorrupt: "Line {{.LineID}} has an invalid section path",
	CodeLineInvalidID:   "Line id must be a positive number",

	// Section errors
	CodeSectionInvalidDistance:      "Section distance must be greater than zero",
	CodeSectionSameStations:         "A section must connect two different stations",
	CodeSectionAlreadyAttached:      "The section already belongs to another line",
	CodeSectionDuplicate:            "The section is already registered on this line",
	CodeSectionDownStationExists:    "Station {{.StationID}} is already on this line",
	CodeSectionUpStationNotTerminal: "A new section must start at the line's last station",
	CodeSectionMinimumReached:       "A line needs at least two sections before one can be removed",
	CodeSectionStationNotTerminal:   "Only the line's last station can be removed",

	// Listing errors
	CodeInvalidFilter:    "Invalid filter: {{.Reason}}",
	CodeInvalidPageToken: "Invalid page token",
}
