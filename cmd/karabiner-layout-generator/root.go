package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "karabiner-layout-generator",
		Short: "Generate Karabiner-Elements rules from a keyboard layout table",
		Long: `karabiner-layout-generator provides three features:
- Generates a complex modification rule from a layout mapping file.
- Checks a mapping file and reports suspicious pairs.
- Lists the key codes that are never typed letter by letter.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newGenCmd(), newCheckCmd(), newKeysCmd())

	return cmd
}

// Execute runs the command line and reports a failure on stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	return nil
}
