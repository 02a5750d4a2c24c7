// Package migrations embeds the goose SQL migrations for the run-history
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
