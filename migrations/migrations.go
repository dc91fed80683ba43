// Package migrations embeds the postgres schema so the binaries carry their own migrations.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS
