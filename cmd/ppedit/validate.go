package main

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check the payload for structural problems",
		Long: `The validate command loads the export and reports sub-table offsets that
point past the end of the payload and clock states that reference missing
voltage entries. It exits non-zero when any problem is found.

Example:
  ppedit validate card.reg
  ppedit validate card.reg --strict --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

type validateResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

func runValidate(args []string) error {
	path := args[0]
	doc, err := openDoc(path)
	if err != nil {
		return err
	}

	res := validateResult{File: path, Valid: true}
	if err := doc.Table.Check(); err != nil {
		res.Valid = false
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				res.Problems = append(res.Problems, e.Error())
			}
		} else {
			res.Problems = append(res.Problems, err.Error())
		}
	}

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else if res.Valid {
		printInfo("✓ %s is valid\n", path)
	} else {
		printInfo("✗ %s has %d problem(s):\n", path, len(res.Problems))
		for _, p := range res.Problems {
			printInfo("  - %s\n", p)
		}
	}
	if !res.Valid {
		return fmt.Errorf("validation failed: %d problem(s)", len(res.Problems))
	}
	return nil
}
