package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Display payload metadata",
		Long: `The info command shows the export's size and encoding, the payload
revisions, the number of clock and voltage states, and the sub-table offsets.

Example:
  ppedit info card.reg
  ppedit info card.reg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

type offsetInfo struct {
	Name   string `json:"name"`
	Offset uint16 `json:"offset"`
}

type infoResult struct {
	File            string       `json:"file"`
	FileSize        int64        `json:"file_size"`
	Encoding        string       `json:"encoding"`
	PayloadSize     int          `json:"payload_size"`
	FormatRevision  uint8        `json:"format_revision"`
	ContentRevision uint8        `json:"content_revision"`
	TableRevision   uint8        `json:"table_revision"`
	PowerTuneRev    uint8        `json:"powertune_revision"`
	CoreClocks      int          `json:"sclk_states"`
	MemoryClocks    int          `json:"mclk_states"`
	Voltages        int          `json:"vddc_entries"`
	Offsets         []offsetInfo `json:"offsets"`
	SkippedTokens   []string     `json:"skipped_tokens,omitempty"`
}

func runInfo(args []string) error {
	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	doc, err := openDoc(path)
	if err != nil {
		return err
	}
	tbl := doc.Table

	res := infoResult{
		File:            path,
		FileSize:        st.Size(),
		Encoding:        doc.Encoding(),
		PayloadSize:     tbl.Len(),
		FormatRevision:  tbl.PowerPlay.Header.FormatRevision,
		ContentRevision: tbl.PowerPlay.Header.ContentRevision,
		TableRevision:   tbl.PowerPlay.TableRevision,
		PowerTuneRev:    tbl.PowerTune.Revision,
		CoreClocks:      tbl.NumCoreClocks(),
		MemoryClocks:    tbl.NumMemoryClocks(),
		Voltages:        tbl.NumVoltages(),
		SkippedTokens:   doc.Skipped(),
	}
	for _, o := range tbl.PowerPlay.Offsets.List() {
		res.Offsets = append(res.Offsets, offsetInfo{Name: o.Name, Offset: o.Value})
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("File:              %s\n", res.File)
	printInfo("File size:         %s\n", humanize.Bytes(uint64(res.FileSize)))
	printInfo("Encoding:          %s\n", res.Encoding)
	printInfo("Payload size:      %s (%d bytes)\n", humanize.Bytes(uint64(res.PayloadSize)), res.PayloadSize)
	printInfo("Format revision:   %d\n", res.FormatRevision)
	printInfo("Content revision:  %d\n", res.ContentRevision)
	printInfo("Table revision:    %d\n", res.TableRevision)
	printInfo("PowerTune rev:     %d\n", res.PowerTuneRev)
	printInfo("Engine states:     %d\n", res.CoreClocks)
	printInfo("Memory states:     %d\n", res.MemoryClocks)
	printInfo("Voltage entries:   %d\n", res.Voltages)
	if len(res.SkippedTokens) > 0 {
		printInfo("Skipped tokens:    %d\n", len(res.SkippedTokens))
	}
	printInfo("\nOffsets:\n")
	for _, o := range res.Offsets {
		if o.Offset == 0 && !verbose {
			continue
		}
		printInfo("  %-24s 0x%04X\n", o.Name, o.Offset)
	}
	return nil
}
