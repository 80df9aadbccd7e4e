// Command keywalkgen writes the shipped keyboard adjacency graphs, plus the
// derived degree and starting-position constants, to a JSON file or a
// generated Go source file. The command only formats what the library
// computes; all graph semantics live in layout/ and adjacency/.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keywalk/adjacency"
)

var format string

var rootCmd = &cobra.Command{
	Use:   "keywalkgen <output>",
	Short: "Generate keyboard adjacency graphs for keyboard-walk detection",
	Long: `keywalkgen builds the four shipped layouts (qwerty, dvorak, keypad,
mac_keypad) into adjacency graphs and writes them to the given path.

The format is inferred from the output extension (.go or .json) unless
--format is set. Adjacency lists are emitted in clockwise direction order;
that order is load-bearing and preserved exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := args[0]
		f := format
		if f == "" {
			if filepath.Ext(strings.ToLower(output)) == ".go" {
				f = "go"
			} else {
				f = "json"
			}
		}

		set, err := adjacency.BuildDefault()
		if err != nil {
			return fmt.Errorf("build graphs: %w", err)
		}

		var data []byte
		switch f {
		case "json":
			data, err = encodeJSON(set)
		case "go":
			data, err = encodeGo(set, packageName(output))
		default:
			return fmt.Errorf("unknown format %q (want json or go)", f)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", f, err)
		}

		if err = os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}

		return nil
	},
}

// packageName derives the generated package name from the output path's
// directory, falling back to the file stem at the tree root.
func packageName(output string) string {
	dir := filepath.Base(filepath.Dir(output))
	if dir != "." && dir != string(filepath.Separator) {
		return dir
	}

	return strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
}

func main() {
	rootCmd.Flags().StringVar(&format, "format", "", "output format: json or go (default: inferred from extension)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
