/*
Package pptable edits soft PowerPlay tables stored in registry exports.

A soft PowerPlay table is a binary blob the AMD display driver reads from the
PP_PhmSoftPowerPlayTable registry value. This package decodes the blob into
fixed-layout records (engine and memory clock states, the voltage lookup
table, power limits), exposes typed setters for the scalar fields, and writes
the bytes back in place. Tables never move or change size.

# Quick Start

Raise the top engine clock state and save:

	doc, err := pptable.Open("card.reg", pptable.Options{})
	if err != nil {
	    log.Fatal(err)
	}
	if err := doc.Table.SetCoreClockMHz(7, 1400); err != nil {
	    log.Fatal(err)
	}
	if err := doc.Save("card.reg"); err != nil {
	    log.Fatal(err)
	}

Fields can also be addressed by name:

	err := doc.Table.Set("mclk[2].clock_mhz", 2100)

# Encoding

Table.Encode writes only the bytes whose value changed since the last encode.
Unmodified payloads re-encode byte-identically, and sub-tables that overlap in
malformed payloads cannot clobber each other's edits.

# Errors

Every error carries a kind from pkg/types: ErrFormat for container problems,
ErrValidation for inconsistent payloads and out-of-range values, ErrBounds
for reads or indices past the end, ErrIO for file access.

	if errors.Is(err, types.ErrBounds) {
	    // index or offset out of range
	}
*/
package pptable
