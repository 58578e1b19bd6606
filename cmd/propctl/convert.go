package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/propkit/pkg/convert"
)

var convertNoTimestamp bool

func init() {
	cmd := newConvertCmd()
	cmd.Flags().BoolVar(&convertNoTimestamp, "no-timestamp", false, "Omit the leading #<date> comment")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [infile [outfile]]",
		Short: "Convert a flat JSON object to a .properties file",
		Long: `The convert command reads a JSON object whose values are strings, numbers,
booleans or null and writes it as a .properties file sorted by key.
Missing files or "-" select standard input and output.

Example:
  propctl convert settings.json settings.properties
  propctl convert -s ": " < settings.json
  propctl convert --no-timestamp settings.json -`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	inPath, outPath := "-", "-"
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	printVerbose("Converting %s to %s\n", displayName(inPath), displayName(outPath))

	in, err := openInput(inPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inPath, err)
	}
	defer in.Close()

	opts := convert.Options{
		Separator:      cfg.Separator,
		OutputEncoding: cfg.OutputEncoding,
		KeepLatin1:     cfg.KeepLatin1,
		OmitTimestamp:  convertNoTimestamp || !cfg.Timestamp,
	}

	// Converted fully before the output is touched.
	var buf bytes.Buffer
	if err := convert.FromJSON(in, &buf, opts); err != nil {
		return fmt.Errorf("failed to convert %s: %w", displayName(inPath), err)
	}
	return writeOutput(outPath, buf.Bytes())
}
