/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openflume/gohydro/InputParameters"
	"github.com/openflume/gohydro/labstats"
)

type LabModel struct {
	CaseFile   string
	CSVFile    string
	OutputFile string
	Stats      bool
}

// lab10Series is the repeated-measurement discharge series from the
// open-channel bench, used when no data is supplied.
var lab10Series = []float64{0.00576, 0.00148, 0.00212, 0.00352, 0.00241, 0.00477}

// LabCmd represents the lab command
var LabCmd = &cobra.Command{
	Use:   "lab",
	Short: "Box-plot summaries of measured lab flow rates",
	Long: `
Renders lab flow-rate measurements as box plots: a CSV export is binned by
weir head into one box per bin, while an explicit series draws a single
horizontal box. Optionally prints the five-number summary of each series.

gohydro lab `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lab called")
		lm := &LabModel{}
		lm.CaseFile, _ = cmd.Flags().GetString("caseFile")
		lm.CSVFile, _ = cmd.Flags().GetString("csvFile")
		lm.OutputFile, _ = cmd.Flags().GetString("outputFile")
		lm.Stats, _ = cmd.Flags().GetBool("stats")
		lp := processLabInput(lm)
		RunLab(lp, lm.Stats)
	},
}

func processLabInput(lm *LabModel) (lp *InputParameters.LabParameters) {
	var (
		err error
	)
	lp = &InputParameters.LabParameters{}
	if len(lm.CaseFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(lm.CaseFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Title: "Similarity Study of Overflow Spillways, Lab 8"
CSVFile: TAM_335_Lab_8_data.csv
BinMin: 0.005
BinMax: 0.0446
BinCount: 5
OutputFile: Lab_8_binned_boxplot.png
# or, for a single series:
# Values: [0.00576, 0.00148, 0.00212, 0.00352, 0.00241, 0.00477]
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = lp.Parse(data); err != nil {
			panic(err)
		}
	} else {
		lp.CSVFile = lm.CSVFile
		lp.OutputFile = lm.OutputFile
	}
	lp.ApplyDefaults()
	return
}

func init() {
	rootCmd.AddCommand(LabCmd)
	LabCmd.Flags().StringP("caseFile", "I", "", "YAML case file; when given, the other flags are ignored")
	LabCmd.Flags().StringP("csvFile", "F", "", "lab data CSV to bin by weir head; omit to plot the built-in series")
	LabCmd.Flags().StringP("outputFile", "o", "", "figure file to write (PNG)")
	LabCmd.Flags().BoolP("stats", "s", false, "print the five-number summary of each plotted series")
}

func RunLab(lp *InputParameters.LabParameters, stats bool) {
	lp.Print()
	if len(lp.CSVFile) != 0 {
		runLabBinned(lp, stats)
		return
	}
	runLabSeries(lp, stats)
}

func runLabBinned(lp *InputParameters.LabParameters, stats bool) {
	d, err := labstats.LoadCSV(lp.CSVFile, lp.HeadColumn, lp.FlowColumn)
	if err != nil {
		log.Fatal(err)
	}
	b, err := labstats.NewBins(lp.BinMin, lp.BinMax, lp.BinCount)
	if err != nil {
		log.Fatal(err)
	}
	groups := labstats.GroupFlows(d, b)
	if stats {
		for i, g := range groups {
			if len(g) == 0 {
				continue
			}
			s, err := labstats.Summarize(g)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("bin %s:\n", b.Label(i))
			s.Print()
		}
	}
	cfg := labstats.PlotConfig{
		Title:  lp.Title,
		XLabel: lp.XLabel,
		YLabel: lp.YLabel,
		File:   lp.OutputFile,
	}
	if cfg.Title == "" {
		cfg.Title = "Similarity Study of Overflow Spillways, Lab 8"
	}
	if cfg.XLabel == "" {
		cfg.XLabel = "ΔH (head above the crest) bin (m)"
	}
	if cfg.YLabel == "" {
		cfg.YLabel = "Q (m³/s)"
	}
	if cfg.File == "" {
		cfg.File = "Lab_8_binned_boxplot.png"
	}
	if err = labstats.SaveGroupedBoxPlot(groups, b.Labels(), cfg); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", cfg.File)
}

func runLabSeries(lp *InputParameters.LabParameters, stats bool) {
	values := lp.Values
	if len(values) == 0 {
		values = lab10Series
	}
	if stats {
		s, err := labstats.Summarize(values)
		if err != nil {
			log.Fatal(err)
		}
		s.Print()
	}
	cfg := labstats.PlotConfig{
		Title:  lp.Title,
		XLabel: lp.XLabel,
		YLabel: lp.YLabel,
		File:   lp.OutputFile,
	}
	if cfg.Title == "" {
		cfg.Title = "Open-Channel Flow, Lab 10"
	}
	if cfg.XLabel == "" {
		cfg.XLabel = "Q(m3/s) - flow rate"
	}
	if cfg.YLabel == "" {
		cfg.YLabel = "Lab 10 Flow Rates"
	}
	if cfg.File == "" {
		cfg.File = "lab10_boxplot.png"
	}
	if err := labstats.SaveBoxPlot(values, cfg); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", cfg.File)
}
