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
	"github.com/openflume/gohydro/pump"
	"github.com/openflume/gohydro/units"
)

type PumpModel struct {
	CaseFile   string
	FlowRate   float64
	Z1Ft       float64
	Efficiency float64
	PipeLength float64
}

// PumpCmd represents the pump command
var PumpCmd = &cobra.Command{
	Use:   "pump",
	Short: "Required pump head and power for a piped withdrawal line",
	Long: `
Evaluates the head balance z1 + v1^2/(2g) + h_s = h_L over the fitting and
pipe inventory of the suction line, then reports the pump head and the
hydraulic and shaft power.

gohydro pump `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pump called")
		pm := &PumpModel{}
		pm.CaseFile, _ = cmd.Flags().GetString("caseFile")
		pm.FlowRate, _ = cmd.Flags().GetFloat64("flowRate")
		pm.Z1Ft, _ = cmd.Flags().GetFloat64("z1")
		pm.Efficiency, _ = cmd.Flags().GetFloat64("eta")
		pm.PipeLength, _ = cmd.Flags().GetFloat64("pipeLength")
		pp := processPumpInput(pm)
		RunPump(pp)
	},
}

func processPumpInput(pm *PumpModel) (pp *InputParameters.PumpParameters) {
	var (
		err error
	)
	pp = &InputParameters.PumpParameters{}
	if len(pm.CaseFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(pm.CaseFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Title: "Bench Pump Sizing"
FlowRate: 0.006     # m^3/s
Z1Ft: 3.0           # ft
ExitDiameterIn: 2.0 # in
Fittings:
  - Name: tee (branch)
    K: 1.0
    Count: 1
    DiameterIn: 3.0
  - Name: contraction 3x2
    K: 0.37
    Count: 1
    DiameterIn: 2.0
  - Name: elbow 90
    K: 1.1
    Count: 6
    DiameterIn: 2.0
PipeLength: 4.5     # m
PipeDiameterIn: 2.0 # in
PipeRoughness: 1.5e-6
Efficiency: 0.70
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = pp.Parse(data); err != nil {
			panic(err)
		}
	} else {
		pp.FlowRate = pm.FlowRate
		pp.Z1Ft = pm.Z1Ft
		pp.Efficiency = pm.Efficiency
		pp.PipeLength = pm.PipeLength
	}
	pp.ApplyDefaults()
	return
}

func init() {
	rootCmd.AddCommand(PumpCmd)
	PumpCmd.Flags().StringP("caseFile", "I", "", "YAML case file; when given, the numeric flags are ignored")
	PumpCmd.Flags().Float64P("flowRate", "Q", 0.006, "design flow rate (m^3/s)")
	PumpCmd.Flags().Float64("z1", 3.0, "suction tap elevation above datum (ft)")
	PumpCmd.Flags().Float64("eta", 0.70, "pump efficiency in (0, 1]")
	PumpCmd.Flags().Float64("pipeLength", 4.5, "straight pipe run (m)")
}

// pumpSystem converts surveyed units into the SI system the solver wants.
func pumpSystem(pp *InputParameters.PumpParameters) pump.System {
	s := pump.System{
		FlowRate:     pp.FlowRate,
		Z1:           units.FeetToMeters(pp.Z1Ft),
		ExitDiameter: units.InchesToMeters(pp.ExitDiameterIn),
		Pipe: pump.Segment{
			Diameter:  units.InchesToMeters(pp.PipeDiameterIn),
			Length:    pp.PipeLength,
			Roughness: pp.PipeRoughness,
		},
		Eta:   pp.Efficiency,
		Fluid: pump.Fluid{Rho: pp.Rho, Mu: pp.Mu},
	}
	for _, ft := range pp.Fittings {
		s.Fittings = append(s.Fittings, pump.Fitting{
			Name:     ft.Name,
			K:        ft.K,
			Count:    ft.Count,
			Diameter: units.InchesToMeters(ft.DiameterIn),
		})
	}
	return s
}

func RunPump(pp *InputParameters.PumpParameters) {
	pp.Print()
	res, err := pumpSystem(pp).Solve()
	if err != nil {
		log.Fatal(err)
	}
	res.Print()
}
