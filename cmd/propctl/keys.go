package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysValues bool

func init() {
	cmd := newKeysCmd()
	cmd.Flags().BoolVar(&keysValues, "values", false, "Print key=value pairs")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <file>",
		Short: "List the keys of a .properties file",
		Long: `The keys command lists every live key in document order. A key defined
more than once is listed at the position of its last definition.

Example:
  propctl keys app.properties
  propctl keys app.properties --values
  propctl keys app.properties --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		if keysValues {
			type pair struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			}
			pairs := make([]pair, 0, f.Len())
			for k, v := range f.All() {
				pairs = append(pairs, pair{Key: k, Value: v})
			}
			return printJSON(pairs)
		}
		return printJSON(f.Keys())
	}

	for k, v := range f.All() {
		if keysValues {
			fmt.Printf("%s=%s\n", k, v)
		} else {
			fmt.Println(k)
		}
	}
	return nil
}
