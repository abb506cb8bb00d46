package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"karabiner-layout-generator/internal/config"
	"karabiner-layout-generator/internal/gen"
	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/mapping"
)

type genFlags struct {
	inputFlags

	output          string
	description     string
	title           string
	fromOptionalAny bool
	inputSourceID   string
	quiet           bool
}

func newGenCmd() *cobra.Command {
	flags := &genFlags{}

	cmd := &cobra.Command{
		Use:   "gen <mapping-file>",
		Short: "Generate a rule file from a layout mapping file",
		Example: `  karabiner-layout-generator gen layout.yaml -o layout.json
  karabiner-layout-generator gen src/main.rs --from-optional-any -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, args[0], flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path, - for stdout (default "+DefaultOutput+")")
	cmd.Flags().StringVar(&flags.description, "description", "", "rule description (default \""+gen.DefaultDescription+"\")")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title")
	cmd.Flags().BoolVar(&flags.fromOptionalAny, "from-optional-any", false, "let every key match under any extra modifiers")
	cmd.Flags().StringVar(&flags.inputSourceID, "input-source-id", "", "only apply the rule while this input source is active")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress messages")

	return cmd
}

// settings is the layer given on the command line. Only flags that were set count.
func (f *genFlags) settings(cmd *cobra.Command) *config.Settings {
	s := &config.Settings{
		Output:        f.output,
		Description:   f.description,
		Title:         f.title,
		InputSourceID: f.inputSourceID,
		KeyCodes:      f.keyCodes,
	}
	if cmd.Flags().Changed("from-optional-any") {
		s.FromOptionalAny = config.Bool(f.fromOptionalAny)
	}

	return s
}

func runGen(cmd *cobra.Command, path string, flags *genFlags) error {
	stderr := cmd.ErrOrStderr()

	progress := func(format string, args ...any) {
		if !flags.quiet {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	progress("Reading mappings from: %s", path)

	mf, err := flags.loadMappings(path)
	if err != nil {
		return err
	}

	profile, err := flags.loadProfile()
	if err != nil {
		return err
	}

	settings := config.Merge(flags.settings(cmd), fileSettings(mf), profile, defaultSettings())

	diags := mapping.Validate(mf, knownKeyCodes(settings))
	printDiagnostics(stderr, diags.Warnings)

	if diags.HasErrors() {
		printDiagnostics(stderr, diags.Errors)
		return fmt.Errorf("%s: %w: %d invalid mapping(s)", path, mapping.ErrMalformed, len(diags.Errors))
	}

	doc := gen.NewGenerator(generatorConfig(settings)).Generate(mf.Mappings)
	progress("Generated %d manipulator(s) from %d mapping(s)", len(doc.Rules[0].Manipulators), len(mf.Mappings))

	err = writeDocument(cmd.OutOrStdout(), doc, settings.Output)
	if err != nil {
		return err
	}

	if settings.Output != "-" {
		progress("Successfully wrote to %s", settings.Output)
	}

	return nil
}

func writeDocument(stdout io.Writer, doc *karabiner.Document, output string) error {
	if output == "-" {
		return karabiner.Write(stdout, doc)
	}

	return karabiner.WriteFile(doc, output)
}
