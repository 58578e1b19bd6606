package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/propkit/pkg/convert"
)

var (
	tojsonCompact  bool
	tojsonSortKeys bool
)

func init() {
	cmd := newToJSONCmd()
	cmd.Flags().BoolVar(&tojsonCompact, "compact", false, "Write JSON on a single line")
	cmd.Flags().BoolVar(&tojsonSortKeys, "sort-keys", false, "Sort keys instead of keeping document order")
	rootCmd.AddCommand(cmd)
}

func newToJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tojson [infile [outfile]]",
		Short: "Convert a .properties file to a flat JSON object",
		Long: `The tojson command writes the live keys of a .properties file as a JSON
object of strings. Keys keep document order unless --sort-keys is given.

Example:
  propctl tojson app.properties
  propctl tojson --compact --sort-keys app.properties app.json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToJSON(args)
		},
	}
	return cmd
}

func runToJSON(args []string) error {
	inPath, outPath := "-", "-"
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	f, err := loadFile(inPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	opts := convert.Options{Compact: tojsonCompact, SortKeys: tojsonSortKeys}
	if err := convert.ToJSON(f, &buf, opts); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return writeOutput(outPath, buf.Bytes())
}
