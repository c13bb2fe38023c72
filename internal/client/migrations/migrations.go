// Package migrations embeds the goose migrations of the local key-value
// database that backs both session persistence scopes.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
