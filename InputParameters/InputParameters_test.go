package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxFlowParameters(t *testing.T) {
	fileInput := []byte(`
Title: Tall Flume
Height: 0.3048
Width: 0.1524
Length: 7.3152
Roughness: 2.0e-6
Z1: 0.254
Guess:
  V: 2.0
  F: 0.015
  Re: 4.0e5
Tolerance: 1.0e-8
`)
	var mp MaxFlowParameters
	assert.NoError(t, mp.Parse(fileInput))
	assert.Equal(t, "Tall Flume", mp.Title)
	assert.Equal(t, 0.3048, mp.Height)
	assert.Equal(t, 7.3152, mp.Length)
	assert.Equal(t, 2.0e-6, mp.Roughness)
	assert.Equal(t, 0.254, mp.Z1)
	assert.Equal(t, GuessParameters{V: 2.0, F: 0.015, Re: 4.0e5}, mp.Guess)
	assert.Equal(t, 1.0e-8, mp.Tolerance)

	// Unset fields pick up the teaching-flume values without touching
	// what the file set.
	mp.ApplyDefaults()
	assert.Equal(t, 0.3048, mp.Height)
	assert.Equal(t, 9.81, mp.Gravity)
	assert.Equal(t, 998.0, mp.Rho)
	assert.Equal(t, 1.e-3, mp.Mu)
	assert.Equal(t, 100, mp.MaxIterations)
	mp.Print()
}

func TestMaxFlowParameterDefaults(t *testing.T) {
	var mp MaxFlowParameters
	mp.ApplyDefaults()
	assert.Equal(t, 0.2032, mp.Height)
	assert.Equal(t, 0.1524, mp.Width)
	assert.Equal(t, 3.6576, mp.Length)
	assert.Equal(t, 1.5e-6, mp.Roughness)
	assert.Equal(t, 0.127, mp.Z1)
	assert.Equal(t, 0.0, mp.Z2)
	assert.Equal(t, GuessParameters{V: 1.0, F: 0.02, Re: 1.e5}, mp.Guess)
	assert.Equal(t, 1.e-9, mp.Tolerance)
	assert.Equal(t, 100, mp.MaxIterations)
}

func TestPumpParameters(t *testing.T) {
	fileInput := []byte(`
Title: Bench Pump
FlowRate: 0.0075
Z1Ft: 4.0
Fittings:
  - Name: tee (branch)
    K: 1.0
    Count: 1
    DiameterIn: 3.0
  - Name: elbow 90
    K: 1.1
    Count: 4
    DiameterIn: 2.0
Efficiency: 0.65
`)
	var pp PumpParameters
	assert.NoError(t, pp.Parse(fileInput))
	assert.Equal(t, 0.0075, pp.FlowRate)
	assert.Equal(t, 4.0, pp.Z1Ft)
	assert.Len(t, pp.Fittings, 2)
	assert.Equal(t, FittingParameters{Name: "elbow 90", K: 1.1, Count: 4, DiameterIn: 2.0}, pp.Fittings[1])
	assert.Equal(t, 0.65, pp.Efficiency)

	pp.ApplyDefaults()
	assert.Equal(t, 2.0, pp.ExitDiameterIn)
	assert.Equal(t, 4.5, pp.PipeLength)
	assert.Equal(t, 1.002e-3, pp.Mu)
	assert.Len(t, pp.Fittings, 2) // the file's inventory is kept
	pp.Print()
}

func TestPumpParameterDefaults(t *testing.T) {
	var pp PumpParameters
	pp.ApplyDefaults()
	assert.Equal(t, 0.006, pp.FlowRate)
	assert.Equal(t, 3.0, pp.Z1Ft)
	assert.Equal(t, 2.0, pp.ExitDiameterIn)
	assert.Len(t, pp.Fittings, 3)
	assert.Equal(t, 6, pp.Fittings[2].Count)
	assert.Equal(t, 0.70, pp.Efficiency)
	assert.Equal(t, 998.0, pp.Rho)
}

func TestLabParameters(t *testing.T) {
	fileInput := []byte(`
Title: Lab 8 spillway study
CSVFile: TAM_335_Lab_8_data.csv
BinMin: 0.004
BinMax: 0.05
BinCount: 4
OutputFile: lab8.png
`)
	var lp LabParameters
	assert.NoError(t, lp.Parse(fileInput))
	assert.Equal(t, "TAM_335_Lab_8_data.csv", lp.CSVFile)
	assert.Equal(t, 0.004, lp.BinMin)
	assert.Equal(t, 4, lp.BinCount)

	lp.ApplyDefaults()
	assert.Equal(t, 0.004, lp.BinMin) // file value survives
	lp.Print()

	{ // single-series form
		var single LabParameters
		assert.NoError(t, single.Parse([]byte("Values: [0.00576, 0.00148, 0.00212]")))
		assert.Equal(t, []float64{0.00576, 0.00148, 0.00212}, single.Values)
		single.ApplyDefaults()
		assert.Equal(t, 0.005, single.BinMin)
		assert.Equal(t, 0.0446, single.BinMax)
		assert.Equal(t, 5, single.BinCount)
	}
}
