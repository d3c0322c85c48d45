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
	"github.com/openflume/gohydro/channel"
	"github.com/openflume/gohydro/rootfind"
)

type MaxFlowModel struct {
	CaseFile              string
	Z1, Z2                float64
	Height, Width, Length float64
	Gravity, Rho, Mu      float64
	Roughness             float64
	GuessV, GuessF        float64
	GuessRe               float64
	Tolerance             float64
	MaxIterations         int
}

// MaxFlowCmd represents the maxflow command
var MaxFlowCmd = &cobra.Command{
	Use:   "maxflow",
	Short: "Maximum gravity-driven discharge of a rectangular duct",
	Long: `
Solves the coupled energy balance, Reynolds definition and Haaland
correlation for the exit velocity, friction factor and Reynolds number of a
reservoir-fed rectangular duct, then reports the discharge.

gohydro maxflow `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("maxflow called")
		mm := &MaxFlowModel{}
		mm.CaseFile, _ = cmd.Flags().GetString("caseFile")
		mm.Z1, _ = cmd.Flags().GetFloat64("z1")
		mm.Z2, _ = cmd.Flags().GetFloat64("z2")
		mm.Height, _ = cmd.Flags().GetFloat64("height")
		mm.Width, _ = cmd.Flags().GetFloat64("width")
		mm.Length, _ = cmd.Flags().GetFloat64("length")
		mm.Gravity, _ = cmd.Flags().GetFloat64("gravity")
		mm.Rho, _ = cmd.Flags().GetFloat64("rho")
		mm.Mu, _ = cmd.Flags().GetFloat64("mu")
		mm.Roughness, _ = cmd.Flags().GetFloat64("roughness")
		mm.GuessV, _ = cmd.Flags().GetFloat64("guessV")
		mm.GuessF, _ = cmd.Flags().GetFloat64("guessF")
		mm.GuessRe, _ = cmd.Flags().GetFloat64("guessRe")
		mm.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
		mm.MaxIterations, _ = cmd.Flags().GetInt("maxIterations")
		mp := processMaxFlowInput(mm)
		RunMaxFlow(mp)
	},
}

func processMaxFlowInput(mm *MaxFlowModel) (mp *InputParameters.MaxFlowParameters) {
	var (
		err error
	)
	mp = &InputParameters.MaxFlowParameters{}
	if len(mm.CaseFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mm.CaseFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Title: "Acrylic Teaching Flume"
Height: 0.2032    # m
Width: 0.1524     # m
Length: 3.6576    # m
Roughness: 1.5e-6 # m
Z1: 0.127         # m above the exit
Guess:
  V: 1.0
  F: 0.02
  Re: 1.0e5
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if err = mp.Parse(data); err != nil {
			panic(err)
		}
	} else {
		mp.Z1 = mm.Z1
		mp.Z2 = mm.Z2
		mp.Height = mm.Height
		mp.Width = mm.Width
		mp.Length = mm.Length
		mp.Gravity = mm.Gravity
		mp.Rho = mm.Rho
		mp.Mu = mm.Mu
		mp.Roughness = mm.Roughness
		mp.Guess = InputParameters.GuessParameters{V: mm.GuessV, F: mm.GuessF, Re: mm.GuessRe}
		mp.Tolerance = mm.Tolerance
		mp.MaxIterations = mm.MaxIterations
	}
	mp.ApplyDefaults()
	return
}

func init() {
	rootCmd.AddCommand(MaxFlowCmd)
	MaxFlowCmd.Flags().StringP("caseFile", "I", "", "YAML case file; when given, the numeric flags are ignored")
	MaxFlowCmd.Flags().Float64("z1", 0.127, "reservoir free surface elevation (m)")
	MaxFlowCmd.Flags().Float64("z2", 0, "duct exit elevation (m)")
	MaxFlowCmd.Flags().Float64("height", 0.2032, "duct height (m)")
	MaxFlowCmd.Flags().Float64("width", 0.1524, "duct width (m)")
	MaxFlowCmd.Flags().Float64("length", 3.6576, "duct length (m)")
	MaxFlowCmd.Flags().Float64("gravity", 9.81, "gravitational acceleration (m/s^2)")
	MaxFlowCmd.Flags().Float64("rho", 998, "fluid density (kg/m^3)")
	MaxFlowCmd.Flags().Float64("mu", 1.e-3, "dynamic viscosity (Pa*s)")
	MaxFlowCmd.Flags().Float64("roughness", 1.5e-6, "absolute wall roughness (m)")
	MaxFlowCmd.Flags().Float64("guessV", 1.0, "velocity seed for the iteration (m/s)")
	MaxFlowCmd.Flags().Float64("guessF", 0.02, "friction factor seed")
	MaxFlowCmd.Flags().Float64("guessRe", 1.e5, "Reynolds number seed")
	MaxFlowCmd.Flags().Float64("tolerance", 1.e-9, "absolute residual tolerance")
	MaxFlowCmd.Flags().Int("maxIterations", 100, "Newton iteration cap")
}

// maxFlowProblem assembles the solver from parsed parameters.
func maxFlowProblem(mp *InputParameters.MaxFlowParameters) (*channel.MaxFlow, error) {
	mf, err := channel.NewMaxFlow(
		channel.Constants{
			Gravity:   mp.Gravity,
			Rho:       mp.Rho,
			Mu:        mp.Mu,
			Roughness: mp.Roughness,
		},
		channel.Geometry{
			Height: mp.Height,
			Width:  mp.Width,
			Length: mp.Length,
		},
		mp.Z1, mp.Z2)
	if err != nil {
		return nil, err
	}
	mf.Guess = channel.Guess{V: mp.Guess.V, F: mp.Guess.F, Re: mp.Guess.Re}
	s := rootfind.DefaultSettings()
	s.Tolerance = mp.Tolerance
	s.MaxIterations = mp.MaxIterations
	mf.Settings = s
	return mf, nil
}

func RunMaxFlow(mp *InputParameters.MaxFlowParameters) {
	mp.Print()
	mf, err := maxFlowProblem(mp)
	if err != nil {
		log.Fatal(err)
	}
	sol, err := mf.Solve()
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"iterations": sol.Iterations,
		"residual":   sol.ResidualNorm,
	}).Debug("converged")
	mf.Report(sol).Print()
}
