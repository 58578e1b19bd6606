package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getDefault string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getDefault, "default", "", "Value to print when the key is missing")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value of a key",
		Long: `The get command prints the unescaped value of a key. When the key is
defined more than once, the last definition wins.

Example:
  propctl get app.properties server.port
  propctl get app.properties db.user --default sa
  propctl get app.properties server.port --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.Flags().Changed("default"), args)
		},
	}
	return cmd
}

func runGet(hasDefault bool, args []string) error {
	path, key := args[0], args[1]

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	value, ok := f.Lookup(key)
	if !ok {
		if !hasDefault {
			_, err := f.Get(key)
			return err
		}
		printVerbose("Key %q not found, using default\n", key)
		value = getDefault
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"key":   key,
			"value": value,
			"found": ok,
		})
	}
	fmt.Println(value)
	return nil
}
