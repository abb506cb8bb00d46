package mapping

import (
	"karabiner-layout-generator/internal/gen"
)

// File represents the root of a layout mapping file.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Description of the generated rule.
	Description string `yaml:"description,omitempty"`

	// Title of the generated document.
	Title string `yaml:"title,omitempty"`

	// FromOptionalAny lets every from-key match under any extra modifiers.
	FromOptionalAny bool `yaml:"from_optional_any,omitempty"`

	// InputSourceID restricts the rule to one input source.
	InputSourceID string `yaml:"input_source_id,omitempty"`

	// KeyCodes extends the key codes that are never typed letter by letter.
	KeyCodes []string `yaml:"key_codes,omitempty"`

	// Mappings is the ordered list of pairs.
	Mappings PairList `yaml:"mappings"`
}

// PairList is an ordered list of mapping pairs.
type PairList []gen.Pair
