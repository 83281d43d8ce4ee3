// Package db embeds the SQL migrations so the migration binary ships
// without a separate directory.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsPath is the directory of Migrations inside the embedded FS.
const MigrationsPath = "migrations"
