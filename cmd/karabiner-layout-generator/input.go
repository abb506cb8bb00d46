package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"karabiner-layout-generator/internal/config"
	"karabiner-layout-generator/internal/diagnostic"
	"karabiner-layout-generator/internal/gen"
	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/keycode"
	"karabiner-layout-generator/internal/mapping"
)

// DefaultOutput is the output path when none is configured.
const DefaultOutput = "./layout.json"

// inputFlags are shared by the commands that read a mapping file.
type inputFlags struct {
	format     string
	configPath string
	keyCodes   []string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "auto", "mapping file format: auto, yaml or rust")
	cmd.Flags().StringVar(&f.configPath, "config", "", "profile path (default ./"+config.DefaultFileName+" or the user config directory)")
	cmd.Flags().StringArrayVar(&f.keyCodes, "key-code", nil, "extra key code never typed letter by letter (repeatable)")
}

func (f *inputFlags) loadMappings(path string) (*mapping.File, error) {
	format, err := mapping.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}

	return mapping.LoadFile(path, format)
}

func (f *inputFlags) loadProfile() (*config.Settings, error) {
	if f.configPath == "" {
		return config.LoadDefault()
	}

	return config.Load(f.configPath)
}

// fileSettings is the settings layer carried by a mapping file.
func fileSettings(mf *mapping.File) *config.Settings {
	if mf == nil {
		return nil
	}

	s := &config.Settings{
		Description:   mf.Description,
		Title:         mf.Title,
		InputSourceID: mf.InputSourceID,
		KeyCodes:      mf.KeyCodes,
	}
	if mf.FromOptionalAny {
		s.FromOptionalAny = config.Bool(true)
	}

	return s
}

func defaultSettings() *config.Settings {
	return &config.Settings{
		Description: gen.DefaultDescription,
		Output:      DefaultOutput,
	}
}

func knownKeyCodes(s config.Settings) keycode.KeyCodeSet {
	return keycode.DefaultKeyCodes().With(s.KeyCodes...)
}

func generatorConfig(s config.Settings) gen.Config {
	known := knownKeyCodes(s)

	cfg := gen.Config{
		Description:     s.Description,
		Title:           s.Title,
		FromOptionalAny: s.OptionalAny(),
		KnownKeyCodes:   &known,
	}
	if s.InputSourceID != "" {
		cfg.InputSource = &karabiner.InputSource{InputSourceID: s.InputSourceID}
	}

	return cfg
}

func printDiagnostics(w io.Writer, ds []diagnostic.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
