// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/decody/board"
	"github.com/ezrec/decody/decode"
)

func main() {
	var name string
	var width int
	var lines int
	var selects bool
	var list bool
	var verbose bool

	flag.StringVar(&name, "b", "cga", "Built-in board to report")
	flag.IntVar(&width, "w", 0, "Binary display width (0 = board default)")
	flag.IntVar(&lines, "l", 0, "Address lines scanned (0 = board default)")
	flag.BoolVar(&selects, "s", false, "Append chip-select equation sections")
	flag.BoolVar(&list, "L", false, "List the built-in boards")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if list {
		sty := newStyles()
		for _, bn := range board.Names() {
			bd, err := board.ByName(bn)
			if err != nil {
				log.Fatalf("%v: %v", bn, err)
			}
			fmt.Printf("%s  %s\n", sty.name.Render(fmt.Sprintf("%-8s", bd.Name)),
				sty.title.Render(bd.Title))
			fmt.Printf("          %s\n", sty.geom.Render(fmt.Sprintf(
				"width %d, lines A0-A%d, %d memory + %d io entries",
				bd.Width, bd.Lines-1, len(bd.Memory), len(bd.IO))))
		}
		return
	}

	bd, err := board.ByName(name)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	rp := bd.Reporter()
	if width != 0 {
		rp.Width = width
	}
	if lines != 0 {
		rp.Lines = lines
	}
	rp.Verbose = verbose

	// Positional arguments are ad-hoc address expressions.
	if flag.NArg() != 0 {
		entries := decode.AddressMap{}
		for _, expr := range flag.Args() {
			value, err := decode.Eval(expr, decode.Units)
			if err != nil {
				log.Fatalf("%v: %v", expr, err)
			}
			entries = append(entries, decode.MapEntry{Address: value, Label: expr})
		}

		err = rp.Report(os.Stdout, "Address Map:", entries)
		if err == nil && selects {
			err = rp.SelectReport(os.Stdout, "Address Decode:", entries)
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = bd.Report(os.Stdout, rp)
	if err == nil && selects {
		err = bd.SelectReport(os.Stdout, rp)
	}
	if err != nil {
		log.Fatal(err)
	}
}
