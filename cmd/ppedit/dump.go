package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/joshuapare/ppkit/pkg/pptable"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print clock states, voltages and power limits",
		Long: `The dump command prints the engine and memory clock states, the VDDC
lookup table and the power limits as tables. With --json it prints every
named field instead.

Example:
  ppedit dump card.reg
  ppedit dump card.reg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	doc, err := openDoc(args[0])
	if err != nil {
		return err
	}
	tbl := doc.Table
	if jsonOut {
		return printJSON(tbl.Fields())
	}
	if quiet {
		return nil
	}

	renderCoreClocks(tbl)
	renderMemoryClocks(tbl)
	renderVoltages(tbl)
	renderPowerLimits(tbl)
	return nil
}

func newTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.AppendHeader(header)
	return t
}

func renderCoreClocks(tbl *pptable.Table) {
	t := newTable("Engine Clock States", table.Row{"State", "Clock (MHz)", "VDDC Index", "Voltage (mV)"})
	for i := range tbl.NumCoreClocks() {
		mhz, _ := tbl.CoreClockMHz(i)
		idx, _ := tbl.CoreVoltageIndex(i)
		t.AppendRow(table.Row{i, mhz, idx, voltageCell(tbl, int(idx))})
	}
	t.Render()
}

func renderMemoryClocks(tbl *pptable.Table) {
	t := newTable("Memory Clock States", table.Row{"State", "Clock (MHz)", "MVDD (mV)"})
	for i := range tbl.NumMemoryClocks() {
		mhz, _ := tbl.MemoryClockMHz(i)
		mv, _ := tbl.MemoryVoltage(i)
		t.AppendRow(table.Row{i, mhz, mv})
	}
	t.Render()
}

func renderVoltages(tbl *pptable.Table) {
	t := newTable("VDDC Lookup Table", table.Row{"Index", "Voltage (mV)"})
	for i := range tbl.NumVoltages() {
		mv, _ := tbl.Voltage(i)
		t.AppendRow(table.Row{i, mv})
	}
	t.Render()
}

func renderPowerLimits(tbl *pptable.Table) {
	t := newTable("Power Limits", table.Row{"Field", "Value"})
	for _, f := range tbl.Fields() {
		if strings.ContainsRune(f.Name, '[') {
			continue
		}
		t.AppendRow(table.Row{f.Name, withUnit(f.Value, f.Unit)})
	}
	t.Render()
}

// voltageCell resolves a VDDC index, marking dangling references.
func voltageCell(tbl *pptable.Table, idx int) string {
	mv, err := tbl.Voltage(idx)
	if err != nil {
		return "invalid"
	}
	return fmt.Sprintf("%d", mv)
}
