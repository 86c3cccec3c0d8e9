// Package migrations embeds the numbered schema files applied by
// internal/migration.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
