package postgres

import "embed"

// MigrationsFS holds the SQL migrations applied by the server's
// -migrate command.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
