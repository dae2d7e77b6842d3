// Package migrations embeds the catalog schema and seed data so they compile
// into the binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
