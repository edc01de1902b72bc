package domain

import (
	"strconv"

	apperrors "github.com/louisbranch/subway/internal/platform/errors"
)

var (
	// ErrEmptyStationName indicates a missing station name.
	ErrEmptyStationName = apperrors.New(apperrors.CodeStationNameEmpty, "station name is required")
	// ErrEmptyLineName indicates a missing line name.
	ErrEmptyLineName = apperrors.New(apperrors.CodeLineNameEmpty, "line name is required")
	// ErrEmptyLineColor indicates a missing line color.
	ErrEmptyLineColor = apperrors.New(apperrors.CodeLineColorEmpty, "line color is required")

	// ErrInvalidDistance indicates a non-positive section distance.
	ErrInvalidDistance = apperrors.New(apperrors.CodeSectionInvalidDistance, "section distance must be greater than zero")
	// ErrSameStations indicates a section whose up and down stations are equal.
	ErrSameStations = apperrors.New(apperrors.CodeSectionSameStations, "section up and down stations must differ")
	// ErrSectionAttached indicates a section already owned by another line.
	ErrSectionAttached = apperrors.New(apperrors.CodeSectionAlreadyAttached, "section already belongs to a line")
	// ErrDuplicateSection indicates the up/down pair is already on the path.
	ErrDuplicateSection = apperrors.New(apperrors.CodeSectionDuplicate, "section is already registered")
	// ErrDownStationExists indicates the new down station is already on the path.
	ErrDownStationExists = apperrors.New(apperrors.CodeSectionDownStationExists, "down station is already on the line")
	// ErrUpStationNotTerminal indicates the new section does not extend the tail.
	ErrUpStationNotTerminal = apperrors.New(apperrors.CodeSectionUpStationNotTerminal, "up station must be the line's down terminal")
	// ErrMinimumSections indicates removal would leave the line without sections.
	ErrMinimumSections = apperrors.New(apperrors.CodeSectionMinimumReached, "line must keep at least one section")
	// ErrStationNotTerminal indicates removal of a station other than the down terminal.
	ErrStationNotTerminal = apperrors.New(apperrors.CodeSectionStationNotTerminal, "only the down terminal station can be removed")

	// ErrPathCorrupt indicates stored sections do not form a single simple path.
	ErrPathCorrupt = apperrors.New(apperrors.CodeLinePathCorrupt, "sections do not form a single path")
	// ErrLineNotFound indicates a missing line.
	ErrLineNotFound = apperrors.New(apperrors.CodeLineNotFound, "line not found")
	// ErrStationNotFound indicates a missing station.
	ErrStationNotFound = apperrors.New(apperrors.CodeStationNotFound, "station not found")
	// ErrStationInUse indicates a station referenced by a section.
	ErrStationInUse = apperrors.New(apperrors.CodeStationInUse, "station is used by a line")
)

var invalidSectionCodes = map[apperrors.Code]struct{}{
	apperrors.CodeSectionInvalidDistance:      {},
	apperrors.CodeSectionSameStations:         {},
	apperrors.CodeSectionAlreadyAttached:      {},
	apperrors.CodeSectionDuplicate:            {},
	apperrors.CodeSectionDownStationExists:    {},
	apperrors.CodeSectionUpStationNotTerminal: {},
	apperrors.CodeSectionMinimumReached:       {},
	apperrors.CodeSectionStationNotTerminal:   {},
}

// IsInvalidSection reports whether err rejects a section add or delete.
func IsInvalidSection(err error) bool {
	_, ok := invalidSectionCodes[apperrors.GetCode(err)]
	return ok
}

// LineNotFound returns a not-found error carrying the line id.
func LineNotFound(lineID int64) error {
	return apperrors.WithMetadata(
		apperrors.CodeLineNotFound,
		"line "+strconv.FormatInt(lineID, 10)+" not found",
		map[string]string{"LineID": strconv.FormatInt(lineID, 10)},
	)
}

// StationNotFound returns a not-found error carrying the station id.
func StationNotFound(stationID int64) error {
	return apperrors.WithMetadata(
		apperrors.CodeStationNotFound,
		"station "+strconv.FormatInt(stationID, 10)+" not found",
		map[string]string{"StationID": strconv.FormatInt(stationID, 10)},
	)
}

// StationInUse returns an in-use error carrying the station id.
func StationInUse(stationID int64) error {
	return apperrors.WithMetadata(
		apperrors.CodeStationInUse,
		"station "+strconv.FormatInt(stationID, 10)+" is used by a line",
		map[string]string{"StationID": strconv.FormatInt(stationID, 10)},
	)
}

func downStationExists(station Station) error {
	return apperrors.WithMetadata(
		apperrors.CodeSectionDownStationExists,
		ErrDownStationExists.Message,
		map[string]string{"StationID": strconv.FormatInt(station.ID, 10)},
	)
}

func pathCorrupt(lineID int64, cause string) error {
	return apperrors.WithMetadata(
		apperrors.CodeLinePathCorrupt,
		"sections do not form a single path: "+cause,
		map[string]string{"LineID": strconv.FormatInt(lineID, 10)},
	)
}

// InvalidLineID rejects a line id that is not a positive integer.
func InvalidLineID(raw string) error {
	return apperrors.WithMetadata(
		apperrors.CodeLineInvalidID,
		"invalid line id "+strconv.Quote(raw),
		map[string]string{"LineID": raw},
	)
}
