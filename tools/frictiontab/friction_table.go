package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/openflume/gohydro/hydraulics"
)

var (
	csvFile string
)

// Tabulates the Darcy friction factor over a log-spaced Reynolds sweep for
// a set of relative roughnesses, one Moody-chart curve per column.
func main() {
	reMinPtr := flag.Float64("reMin", 4.e3, "lowest Reynolds number in the sweep")
	reMaxPtr := flag.Float64("reMax", 1.e8, "highest Reynolds number in the sweep")
	pointsPtr := flag.Int("points", 50, "number of Reynolds numbers, log spaced")
	rrPtr := flag.String("rr", "0,1e-6,1e-5,1e-4,1e-3,1e-2", "comma separated relative roughness values")
	csvFilePtr := flag.String("csvFile", csvFile, "write the table to this file instead of stdout")
	flag.Parse()
	csvFile = *csvFilePtr
	if *pointsPtr < 2 || *reMinPtr <= 0 || *reMaxPtr <= *reMinPtr {
		flag.Usage()
		os.Exit(1)
	}
	rrs := parseRR(*rrPtr)
	res := floats.LogSpan(make([]float64, *pointsPtr), *reMinPtr, *reMaxPtr)

	out := os.Stdout
	if len(csvFile) != 0 {
		f, err := os.Create(csvFile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		out = f
		fmt.Printf("Output file: %v\n", csvFile)
	}
	w := csv.NewWriter(out)
	header := make([]string, 1, len(rrs)+1)
	header[0] = "Re"
	for _, rr := range rrs {
		header = append(header, "f(rr="+strconv.FormatFloat(rr, 'g', -1, 64)+")")
	}
	if err := w.Write(header); err != nil {
		panic(err)
	}
	row := make([]string, len(rrs)+1)
	for _, re := range res {
		row[0] = strconv.FormatFloat(re, 'e', 4, 64)
		for j, rr := range rrs {
			// eps/D enters the correlation only as a ratio
			f, err := hydraulics.Haaland(re, rr, 1.0)
			if err != nil {
				panic(err)
			}
			row[j+1] = strconv.FormatFloat(f, 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			panic(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		panic(err)
	}
}

func parseRR(s string) (rrs []float64) {
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			panic(err)
		}
		rrs = append(rrs, v)
	}
	return
}
