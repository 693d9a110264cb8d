// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package decode

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"log"
	"slices"
	"strings"
)

// MapEntry is a single row of a memory or I/O map.
type MapEntry struct {
	Address uint32 // Start address of the selected range.
	Label   string // Name of the selected device or resource.
}

// AddressMap is an ordered list of map entries. Declaration order does not
// matter; reports are rendered in ascending address order.
type AddressMap []MapEntry

// Sorted returns a new map, sorted ascending by address. Entries with equal
// addresses keep their declared relative order. The receiver is not modified.
func (m AddressMap) Sorted() (sorted AddressMap) {
	sorted = slices.Clone(m)
	slices.SortStableFunc(sorted, func(a, b MapEntry) int {
		return cmp.Compare(a.Address, b.Address)
	})
	return
}

// Reporter renders address maps.
type Reporter struct {
	Width   int  // Minimum binary field width.
	Lines   int  // Address lines scanned, A0 upward.
	Verbose bool // If set, verbosely logs each rendered entry.
}

// NewReporter creates a reporter that scans as many lines as it displays.
func NewReporter(width int) (rp *Reporter) {
	rp = &Reporter{
		Width: width,
		Lines: width,
	}
	return
}

// Binary renders the address in binary, zero-padded on the left to at least
// Width characters. Addresses wider than the field grow it; they are never
// truncated.
func (rp *Reporter) Binary(address uint32) string {
	return fmt.Sprintf("%0*b", rp.Width, address)
}

// SetLines returns an iterator over the set address lines, ascending. Only
// the scanned lines are tested; the address is not consumed.
func (rp *Reporter) SetLines(address uint32) iter.Seq[int] {
	return func(yield func(line int) bool) {
		for n := range rp.Lines {
			if (address>>n)&1 == 1 {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// lineMask is the mask of all scanned address lines.
func (rp *Reporter) lineMask() (mask uint32) {
	if rp.Lines >= 32 {
		mask = ^uint32(0)
	} else if rp.Lines > 0 {
		mask = (uint32(1) << rp.Lines) - 1
	}
	return
}

// lineList renders the set lines of a value as "A0, A3, ..." text.
func (rp *Reporter) lineList(value uint32) string {
	var lines []string
	for n := range rp.SetLines(value) {
		lines = append(lines, fmt.Sprintf("A%d", n))
	}
	return strings.Join(lines, ", ")
}

// Report writes one report section: the header line, then two lines per
// entry in ascending address order.
func (rp *Reporter) Report(w io.Writer, name string, entries AddressMap) (err error) {
	_, err = fmt.Fprintln(w, name)
	if err != nil {
		return
	}

	for _, entry := range entries.Sorted() {
		if rp.Verbose {
			log.Printf("0x%08x %q", entry.Address, entry.Label)
		}

		_, err = fmt.Fprintf(w, "%s %s\n", rp.Binary(entry.Address), entry.Label)
		if err != nil {
			return
		}

		_, err = fmt.Fprintf(w, " bits set: %s\n", rp.lineList(entry.Address))
		if err != nil {
			return
		}
	}

	return
}
