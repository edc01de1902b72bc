// Package pagination normalizes list paging inputs.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSizeConfig bounds requested page sizes.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies the default to non-positive sizes and caps at Max.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ParseIDToken decodes a keyset page token holding the last seen id.
// A blank token starts from the beginning.
func ParseIDToken(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid page token %q", token)
	}
	return id, nil
}

// FormatIDToken encodes the last id of a full page.
func FormatIDToken(id int64) string {
	return strconv.FormatInt(id, 10)
}
