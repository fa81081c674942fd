// Package migrations embeds the goose SQL migrations for the MySQL schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
