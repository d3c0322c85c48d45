package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/openflume/gohydro/InputParameters"
)

func TestRunMaxFlow(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Acrylic Teaching Flume
Height: 0.2032
Width: 0.1524
Length: 3.6576
Roughness: 1.5e-6
Z1: 0.127
Guess:
  V: 1.0
  F: 0.02
  Re: 1.0e5
`)
	var input InputParameters.MaxFlowParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	// Check the duct geometry
	assert.Equal(t, input.Height, 0.2032)
	assert.Equal(t, input.Width, 0.1524)
	// Check the iteration seed
	assert.Equal(t, input.Guess.Re, 1.e5)
	input.ApplyDefaults()
	assert.Equal(t, input.MaxIterations, 100)
	input.Print()
	RunMaxFlow(&input)
}

func TestProcessMaxFlowInputFlags(t *testing.T) {
	mm := &MaxFlowModel{
		Z1:            0.2,
		Height:        0.3048,
		Width:         0.1524,
		Length:        7.3152,
		Gravity:       9.80665,
		Rho:           997,
		GuessV:        1.5,
		GuessF:        0.018,
		GuessRe:       3.e5,
		Tolerance:     1.e-10,
		MaxIterations: 50,
	}
	mp := processMaxFlowInput(mm)
	// Hydrated values are copied through
	assert.Equal(t, mp.Z1, 0.2)
	assert.Equal(t, mp.Gravity, 9.80665)
	assert.Equal(t, mp.Rho, 997.0)
	assert.Equal(t, mp.Guess, InputParameters.GuessParameters{V: 1.5, F: 0.018, Re: 3.e5})
	assert.Equal(t, mp.Tolerance, 1.e-10)
	assert.Equal(t, mp.MaxIterations, 50)
	// Zero-valued fields pick up the flume defaults
	assert.Equal(t, mp.Mu, 1.e-3)
	assert.Equal(t, mp.Roughness, 1.5e-6)
}

func TestMaxFlowProblem(t *testing.T) {
	mp := &InputParameters.MaxFlowParameters{}
	mp.ApplyDefaults()
	mf, err := maxFlowProblem(mp)
	assert.Equal(t, err, nil)
	assert.Equal(t, mf.Geometry.Height, 0.2032)
	assert.Equal(t, mf.Settings.MaxIterations, 100)
	assert.Equal(t, mf.Guess.F, 0.02)

	sol, err := mf.Solve()
	assert.Equal(t, err, nil)
	// Check against the hand-checked discharge
	rep := mf.Report(sol)
	if rep.Q < 0.0426 || rep.Q > 0.0427 {
		t.Errorf("Q = %v out of range", rep.Q)
	}
}
