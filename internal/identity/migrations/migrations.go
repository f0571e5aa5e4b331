// Package migrations embeds the goose migrations for the Postgres-backed
// credential directory.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
