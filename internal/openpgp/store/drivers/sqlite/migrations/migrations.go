// Package migrations embeds the SQL migration files the sqlite driver
// applies at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
