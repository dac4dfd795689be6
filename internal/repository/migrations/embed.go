// Package migrations holds the schema history of the local store. SQL
// steps create tables, Go steps apply additive column changes that SQLite
// cannot express idempotently in plain SQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
