package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"karabiner-layout-generator/internal/config"
)

func newKeysCmd() *cobra.Command {
	flags := &inputFlags{}

	cmd := &cobra.Command{
		Use:   "keys [mapping-file]",
		Short: "List the key codes that are never typed letter by letter",
		Long: `Lists the multi-character key codes that a to-symbol may name directly.
Any other to-symbol of two or more lowercase letters is typed as romaji.
The list combines the built-in names, the profile, the mapping file and --key-code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd, args, flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func runKeys(cmd *cobra.Command, args []string, flags *inputFlags) error {
	layers := []*config.Settings{{KeyCodes: flags.keyCodes}}

	if len(args) > 0 {
		mf, err := flags.loadMappings(args[0])
		if err != nil {
			return err
		}

		layers = append(layers, fileSettings(mf))
	}

	profile, err := flags.loadProfile()
	if err != nil {
		return err
	}

	settings := config.Merge(append(layers, profile)...)
	known := knownKeyCodes(settings)

	out := cmd.OutOrStdout()
	for _, name := range known.Names() {
		fmt.Fprintln(out, name)
	}

	for _, prefix := range known.Prefixes() {
		fmt.Fprintf(out, "%s*\n", prefix)
	}

	return nil
}
