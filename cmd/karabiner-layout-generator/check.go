package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"karabiner-layout-generator/internal/config"
	"karabiner-layout-generator/internal/gen"
	"karabiner-layout-generator/internal/mapping"
)

type checkFlags struct {
	inputFlags

	dump bool
}

func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check <mapping-file>",
		Short:   "Check a layout mapping file and report suspicious pairs",
		Example: `  karabiner-layout-generator check layout.yaml --dump`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "print the parsed mapping file")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, flags *checkFlags) error {
	out := cmd.OutOrStdout()

	mf, err := flags.loadMappings(path)
	if err != nil {
		return err
	}

	profile, err := flags.loadProfile()
	if err != nil {
		return err
	}

	if flags.dump {
		spew.Fdump(out, mf)
	}

	settings := config.Merge(&config.Settings{KeyCodes: flags.keyCodes}, fileSettings(mf), profile, defaultSettings())

	diags := mapping.Validate(mf, knownKeyCodes(settings))
	printDiagnostics(out, diags.All())

	if diags.HasErrors() {
		return fmt.Errorf("%s: %w: %d invalid mapping(s)", path, mapping.ErrMalformed, len(diags.Errors))
	}

	doc := gen.NewGenerator(generatorConfig(settings)).Generate(mf.Mappings)
	fmt.Fprintf(out, "%s: %d mapping(s), %d manipulator(s), %d warning(s)\n",
		path, len(mf.Mappings), len(doc.Rules[0].Manipulators), len(diags.Warnings))

	return nil
}
