// Package root exposes assets embedded into the binary, such as database
// migrations.
package root

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
