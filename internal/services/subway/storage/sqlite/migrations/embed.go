package migrations

import "embed"

// FS holds the SQLite schema for subway storage.
//
//go:embed *.sql
var FS embed.FS
