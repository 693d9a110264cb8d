package decode

import (
	"fmt"
	"io"
	"strings"
)

// Care is the requirement a select equation places on one address line.
type Care int

//go:generate go tool stringer -linecomment -type=Care
const (
	CARE_LOW  = Care(0) // 0
	CARE_HIGH = Care(1) // 1
	CARE_ANY  = Care(2) // x
)

// Select is a single chip-select equation. The decoder asserts the select
// for an address when (address & Mask) == (Match & Mask).
type Select struct {
	Label string // Name of the selected device or resource.
	Match uint32 // Required line levels, masked.
	Mask  uint32 // Lines the decoder must test.
}

// Test reports whether the select asserts for the address.
func (sel Select) Test(address uint32) (ok bool) {
	ok = (address & sel.Mask) == (sel.Match & sel.Mask)
	return
}

// Care returns the level requirement for a single address line. Lines the
// decoder does not test are CARE_ANY.
func (sel Select) Care(line int) (care Care) {
	care = CARE_ANY
	if line < 0 || line > 31 {
		return
	}
	if (sel.Mask>>line)&1 == 0 {
		return
	}
	if (sel.Match>>line)&1 == 1 {
		care = CARE_HIGH
	} else {
		care = CARE_LOW
	}
	return
}

// Selects folds the map into chip-select equations, one per label, in
// ascending order of each label's first address. Lines that differ between
// entries sharing a label become don't-care lines.
func (rp *Reporter) Selects(entries AddressMap) (sels []Select) {
	mask := rp.lineMask()
	index := map[string]int{}

	for _, entry := range entries.Sorted() {
		n, ok := index[entry.Label]
		if !ok {
			index[entry.Label] = len(sels)
			sels = append(sels, Select{
				Label: entry.Label,
				Match: entry.Address & mask,
				Mask:  mask,
			})
			continue
		}

		diff := sels[n].Match ^ (entry.Address & mask)
		sels[n].Mask &= ^diff
		sels[n].Match &= sels[n].Mask
	}

	return
}

// Pattern renders the select as a binary pattern with 'x' in every position
// the decoder does not test. The pattern spans all displayed and scanned
// lines.
func (rp *Reporter) Pattern(sel Select) string {
	count := rp.Width
	if rp.Lines > count {
		count = rp.Lines
	}

	var sb strings.Builder
	for line := count - 1; line >= 0; line-- {
		sb.WriteString(sel.Care(line).String())
	}
	return sb.String()
}

// SelectReport writes one select equation section: the header line, then two
// lines per equation, in the same layout as Report.
func (rp *Reporter) SelectReport(w io.Writer, name string, entries AddressMap) (err error) {
	_, err = fmt.Fprintln(w, name)
	if err != nil {
		return
	}

	for _, sel := range rp.Selects(entries) {
		_, err = fmt.Fprintf(w, "%s %s\n", rp.Pattern(sel), sel.Label)
		if err != nil {
			return
		}

		_, err = fmt.Fprintf(w, " lines tested: %s\n", rp.lineList(sel.Mask))
		if err != nil {
			return
		}
	}

	return
}
