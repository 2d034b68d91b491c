// Package migrations embeds the goose SQL migrations of the DevNest schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
