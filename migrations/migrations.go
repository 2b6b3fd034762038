// Package migrations carries the goose SQL migrations embedded into the
// server binary, so migrating does not depend on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
