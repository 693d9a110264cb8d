// Package board holds the built-in memory and I/O map tables.
package board

import (
	"io"

	"github.com/ezrec/decody/decode"
)

// Board is a named set of read-only address maps and the bus geometry a
// decoder for them sees.
type Board struct {
	Name   string            // Selection name.
	Title  string            // Human readable description.
	Width  int               // Binary display width.
	Lines  int               // Address lines scanned.
	Memory decode.AddressMap // Memory map.
	IO     decode.AddressMap // I/O map.
}

var boards = []*Board{
	{
		Name:  "cga",
		Title: "CGA RAM snoop (MC6845 bridge)",
		Width: 32,
		Lines: 32,
		Memory: decode.AddressMap{
			{Address: 0xB8000, Label: "CGA RAM"},
			{Address: 0xB9000, Label: "CGA RAM"},
			{Address: 0xBA000, Label: "CGA RAM"},
			{Address: 0xBB000, Label: "CGA RAM"},
		},
		IO: decode.AddressMap{},
	},
	{
		Name:  "pv7",
		Title: "Casio PV-7 slot decode",
		Width: 20,
		Lines: 21, // A0-A20 inclusive.
		Memory: decode.AddressMap{
			{Address: 0x8000, Label: "slot 0-2, first 8k"},
			{Address: 0xa000, Label: "slot 0-2, second 8k"},
			{Address: 0xc000, Label: "slot 0-3, first 8k"},
			{Address: 0xe000, Label: "slot 0-2, second 8k"},
			{Address: 0xffff, Label: "memory top"},
		},
		IO: decode.AddressMap{},
	},
}

// Names returns the built-in board names, in declaration order.
func Names() (names []string) {
	for _, bd := range boards {
		names = append(names, bd.Name)
	}
	return
}

// ByName finds a built-in board.
func ByName(name string) (bd *Board, err error) {
	for _, b := range boards {
		if b.Name == name {
			bd = b
			return
		}
	}
	err = ErrBoardUnknown(name)
	return
}

// Reporter creates a reporter with the board's bus geometry.
func (bd *Board) Reporter() (rp *decode.Reporter) {
	rp = decode.NewReporter(bd.Width)
	rp.Lines = bd.Lines
	return
}

// Report writes the board's two map sections.
func (bd *Board) Report(w io.Writer, rp *decode.Reporter) (err error) {
	err = rp.Report(w, "Memory Map:", bd.Memory)
	if err != nil {
		return
	}
	err = rp.Report(w, "I/O Map:", bd.IO)
	return
}

// SelectReport writes the board's two chip-select equation sections.
func (bd *Board) SelectReport(w io.Writer, rp *decode.Reporter) (err error) {
	err = rp.SelectReport(w, "Memory Decode:", bd.Memory)
	if err != nil {
		return
	}
	err = rp.SelectReport(w, "I/O Decode:", bd.IO)
	return
}
