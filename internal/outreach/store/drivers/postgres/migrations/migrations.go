// Package migrations embeds the postgres schema as goose migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
