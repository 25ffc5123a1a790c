package dto

import (
	"golang.org/x/tools/imports"
)

// FormatGo runs goimports over generated Go source so declarations that
// mention time.Time pick up their import without the emitter tracking it.
func FormatGo(src []byte) ([]byte, error) {
	return imports.Process("", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
}
