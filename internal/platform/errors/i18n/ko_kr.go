package i18n

// koKRMessages holds the ko-KR message templates.
var koKRMessages = map[Code]string{
	CodeUnknown: "예상하지 못한 오류가 발생했습니다.",

	CodeStationNameEmpty: "역 이름은 필수입니다.",
	CodeStationNotFound:  "해당 역이 없습니다.",
	CodeStationInUse:     "노선에 포함된 역은 삭제할 수 없습니다.",

	CodeLineNameEmpty:   "노선 이름은 필수입니다.",
	CodeLineColorEmpty:  "노선 색깔은 필수입니다.",
	CodeLineNotFound:    "해당 노선이 없습니다.",
	CodeLinePathCorrupt: "노선의 구간 정보가 올바르지 않습니다.",
	CodeLineInvalidID:   "노선 번호는 양수여야 합니다.",

	CodeSectionInvalidDistance:      "구간 거리는 0보다 커야 합니다.",
	CodeSectionSameStations:         "상행역과 하행역은 서로 달라야 합니다.",
	CodeSectionAlreadyAttached:      "다른 노선에 등록된 구간입니다.",
	CodeSectionDuplicate:            "구간이나 역이 중복되어 있으면 등록할 수 없습니다.",
	CodeSectionDownStationExists:    "구간이나 역이 중복되어 있으면 등록할 수 없습니다.",
	CodeSectionUpStationNotTerminal: "새로운 구간은 기존 노선의 하행 종점역이어야 합니다.",
	CodeSectionMinimumReached:       "지하철 구간이 적어도 2개 이상은 있어야 삭제할 수 있습니다.",
	CodeSectionStationNotTerminal:   "하행종점역만 삭제할 수 있습니다.",

	CodeInvalidFilter:    "잘못된 검색 조건입니다: {{.Reason}}",
	CodeInvalidPageToken: "잘못된 페이지 토큰입니다.",
}
