// Package migrations embeds the MySQL schema. Every foreign key cascades on
// delete so removing a parent row never leaves orphans behind.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
