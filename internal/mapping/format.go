package mapping

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type=Format -trimprefix=Format -output=format_string.go

// Format is a mapping source format.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatRust
)

// ParseFormat parses a format name as given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "rust", "rs":
		return FormatRust, nil
	default:
		return FormatAuto, fmt.Errorf("unknown mapping format %q (expected yaml or rust)", name)
	}
}

// DetectFormat picks the format from a file extension. Unknown extensions
// and stdin ("-") read as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return FormatRust
	default:
		return FormatYAML
	}
}
