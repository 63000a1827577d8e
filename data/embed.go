// Package data holds the settings compiled into the tilemap binary.
package data

import _ "embed"

//go:embed defaults.json
var defaults []byte

// Defaults returns the raw defaults.json document.
func Defaults() []byte {
	return defaults
}
