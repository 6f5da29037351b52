package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <field>",
		Short: "Print a single field",
		Long: `The get command prints one named field. Field names take the form
"tdp" or "sclk[7].clock_mhz"; run "ppedit dump --json" to list them all.

Example:
  ppedit get card.reg sclk[7].clock_mhz
  ppedit get card.reg power_control_limit --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

type fieldValue struct {
	Field string `json:"field"`
	Value uint64 `json:"value"`
}

func runGet(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}
	field := args[1]
	v, err := doc.Table.Get(field)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", field, err)
	}
	if jsonOut {
		return printJSON(fieldValue{Field: field, Value: v})
	}
	printInfo("%d\n", v)
	return nil
}
