// Package main provides the CLI entrypoint for karabiner-layout-generator.
//
// karabiner-layout-generator turns a keyboard layout table into a
// Karabiner-Elements complex modification:
//   - Reads from/to pairs from a YAML mapping file or a Rust MAPPINGS table
//   - Checks the pairs and reports suspicious entries
//   - Writes one rule of manipulators, with shifted variants, as JSON
package main

import (
	"os"
)

func main() {
	err := Execute()
	if err != nil {
		os.Exit(1)
	}
}
