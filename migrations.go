// Package recipe embeds the database migrations so that the binary can run
// them without access to the source tree.
package recipe

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
