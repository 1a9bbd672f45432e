// Package samples embeds the source of every sample unit.
//
// Each unit lives in its own package under <group>/<unit>/ so the compiler
// type-checks it; the same files are embedded here as text for extraction and
// interpretation.
package samples

import (
	"embed"
	"io/fs"
)

//go:embed builtin impl lib syntax
var sources embed.FS

// FS returns the embedded sample tree rooted at the group directories.
func FS() fs.FS {
	return sources
}
