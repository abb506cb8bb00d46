package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"karabiner-layout-generator/internal/common"
)

// SectionName is the profile section holding generation settings.
const SectionName = "gen"

// Profile keys.
const (
	KeyDescription     = "description"
	KeyTitle           = "title"
	KeyOutput          = "output"
	KeyFromOptionalAny = "from_optional_any"
	KeyInputSourceID   = "input_source_id"
	KeyKeyCodes        = "key_codes"
)

// DefaultFileName is the profile looked up in the working directory.
const DefaultFileName = "karabiner-layout.ini"

// Settings is one layer of generation settings. Zero fields are unset.
type Settings struct {
	Description     string
	Title           string
	Output          string
	FromOptionalAny *bool
	InputSourceID   string
	KeyCodes        []string
}

// Load reads the [gen] section of the profile at path. A missing section
// yields empty settings.
func Load(path string) (*Settings, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", path, err)
	}

	s, err := FromSection(cfg.Section(SectionName))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadDefault reads the first existing profile among DefaultPaths.
// No profile at all is not an error.
func LoadDefault() (*Settings, error) {
	paths := DefaultPaths()
	sources := make([]any, 0, len(paths))

	for _, p := range paths {
		sources = append(sources, p)
	}

	if len(sources) == 0 {
		return &Settings{}, nil
	}

	cfg, err := ini.LooseLoad(sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return FromSection(cfg.Section(SectionName))
}

// DefaultPaths returns the profile locations in increasing priority:
// the user config directory, then the working directory.
func DefaultPaths() []string {
	var paths []string

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "karabiner-layout-generator", "config.ini"))
	}

	return append(paths, DefaultFileName)
}

// FromSection reads settings from an INI section.
func FromSection(sec *ini.Section) (*Settings, error) {
	s := &Settings{
		Description:   sec.Key(KeyDescription).String(),
		Title:         sec.Key(KeyTitle).String(),
		Output:        sec.Key(KeyOutput).String(),
		InputSourceID: sec.Key(KeyInputSourceID).String(),
	}

	if sec.HasKey(KeyFromOptionalAny) {
		v, err := sec.Key(KeyFromOptionalAny).Bool()
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyFromOptionalAny, err)
		}

		s.FromOptionalAny = &v
	}

	for _, kc := range sec.Key(KeyKeyCodes).Strings(",") {
		if kc = strings.TrimSpace(kc); kc != "" {
			s.KeyCodes = append(s.KeyCodes, kc)
		}
	}

	return s, nil
}

// Merge resolves layers given from highest to lowest priority. Nil layers are
// skipped. Scalars come from the first layer that sets them; key codes are
// the union of all layers in order of first appearance.
func Merge(layers ...*Settings) Settings {
	var out Settings

	for _, l := range layers {
		if l == nil {
			continue
		}

		out.Description = firstNonEmpty(out.Description, l.Description)
		out.Title = firstNonEmpty(out.Title, l.Title)
		out.Output = firstNonEmpty(out.Output, l.Output)
		out.InputSourceID = firstNonEmpty(out.InputSourceID, l.InputSourceID)

		if out.FromOptionalAny == nil && l.FromOptionalAny != nil {
			v := *l.FromOptionalAny
			out.FromOptionalAny = &v
		}

		out.KeyCodes = common.AppendUnique(out.KeyCodes, l.KeyCodes...)
	}

	out.KeyCodes = common.CloneOrNil(out.KeyCodes)

	return out
}

// OptionalAny reports the resolved from_optional_any value.
func (s Settings) OptionalAny() bool {
	return s.FromOptionalAny != nil && *s.FromOptionalAny
}

// Bool returns a pointer to v, for building layers.
func Bool(v bool) *bool {
	return &v
}

func firstNonEmpty(current, candidate string) string {
	if current != "" {
		return current
	}

	return candidate
}
