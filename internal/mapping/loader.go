package mapping

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a mapping file from the given path.
// "-" reads stdin. FormatAuto detects the format from the extension.
func LoadFile(path string, format Format) (*File, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	if path == "-" {
		return Load(os.Stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open mapping file %s: %w", ErrUnreadable, path, err)
	}
	defer f.Close()

	mf, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mf, nil
}

// Load reads and parses a mapping source in the given format.
func Load(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	switch format {
	case FormatRust:
		return ParseRust(data)
	case FormatYAML, FormatAuto:
		return Parse(data)
	default:
		return nil, fmt.Errorf("unsupported mapping format %s", format)
	}
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var mf File

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse mapping YAML: %w", ErrMalformed, err)
	}

	if mf.Mappings == nil {
		return nil, fmt.Errorf("%w: 'mappings' not found", ErrMalformed)
	}

	// Apply defaults and normalize
	applyDefaults(&mf)

	return &mf, nil
}

// ParseRust reads the MAPPINGS table of a Rust source file into a File.
func ParseRust(data []byte) (*File, error) {
	clspec, err := rustLexSpec()
	if err != nil {
		return nil, err
	}

	pairs, err := parseRustMappings(clspec, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	mf := &File{Mappings: pairs}
	applyDefaults(mf)

	return mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(mf *File) ([]byte, error) {
	return yaml.Marshal(mf)
}
