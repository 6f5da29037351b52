package pptable_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/ppkit/internal/testutil"
	"github.com/joshuapare/ppkit/pkg/pptable"
	"github.com/joshuapare/ppkit/pkg/types"
)

// Example raises the top engine clock and reports the bytes that changed.
func Example() {
	doc, err := pptable.ParseDocument([]byte(testutil.RegFile(testutil.Payload())), pptable.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	mhz, _ := doc.Table.CoreClockMHz(7)
	fmt.Println("top engine state:", mhz, "MHz")

	if err := doc.Table.SetCoreClockMHz(7, 1400); err != nil {
		fmt.Println(err)
		return
	}
	if _, err := doc.Table.Encode(); err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range doc.Table.Changes() {
		fmt.Printf("changed 0x%X +%d\n", c.Offset, c.Length)
	}
	// Output:
	// top engine state: 1340 MHz
	// changed 0xE4 +2
}

// ExampleTable_Set addresses fields by name.
func ExampleTable_Set() {
	tbl, err := pptable.Decode(testutil.Payload())
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = tbl.Set("tdp", 150)
	v, _ := tbl.Get("tdp")
	fmt.Println("tdp:", v)

	err = tbl.Set("sclk[12].clock_mhz", 1400)
	fmt.Println("out of range:", errors.Is(err, types.ErrBounds))
	// Output:
	// tdp: 150
	// out of range: true
}
