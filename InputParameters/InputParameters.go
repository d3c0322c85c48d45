package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// GuessParameters seed the coupled duct-discharge iteration.
type GuessParameters struct {
	V  float64 `yaml:"V"`
	F  float64 `yaml:"F"`
	Re float64 `yaml:"Re"`
}

// Parameters obtained from the YAML input file
type MaxFlowParameters struct {
	Title         string          `yaml:"Title"`
	Height        float64         `yaml:"Height"`    // m
	Width         float64         `yaml:"Width"`     // m
	Length        float64         `yaml:"Length"`    // m
	Roughness     float64         `yaml:"Roughness"` // m
	Gravity       float64         `yaml:"Gravity"`   // m/s^2
	Rho           float64         `yaml:"Rho"`       // kg/m^3
	Mu            float64         `yaml:"Mu"`        // Pa*s
	Z1            float64         `yaml:"Z1"`        // m
	Z2            float64         `yaml:"Z2"`        // m
	Guess         GuessParameters `yaml:"Guess"`
	Tolerance     float64         `yaml:"Tolerance"`
	MaxIterations int             `yaml:"MaxIterations"`
}

func (mp *MaxFlowParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

// ApplyDefaults fills every unset field with the acrylic teaching flume:
// an 8in x 6in x 12ft duct under 5in of head, flowing 20C water.
func (mp *MaxFlowParameters) ApplyDefaults() {
	if mp.Height == 0 {
		mp.Height = 0.2032
	}
	if mp.Width == 0 {
		mp.Width = 0.1524
	}
	if mp.Length == 0 {
		mp.Length = 3.6576
	}
	if mp.Roughness == 0 {
		mp.Roughness = 1.5e-6
	}
	if mp.Gravity == 0 {
		mp.Gravity = 9.81
	}
	if mp.Rho == 0 {
		mp.Rho = 998
	}
	if mp.Mu == 0 {
		mp.Mu = 1.e-3
	}
	if mp.Z1 == 0 {
		mp.Z1 = 0.127
	}
	if mp.Guess == (GuessParameters{}) {
		mp.Guess = GuessParameters{V: 1.0, F: 0.02, Re: 1.e5}
	}
	if mp.Tolerance == 0 {
		mp.Tolerance = 1.e-9
	}
	if mp.MaxIterations == 0 {
		mp.MaxIterations = 100
	}
}

func (mp *MaxFlowParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("%8.5f\t\t= Height (m)\n", mp.Height)
	fmt.Printf("%8.5f\t\t= Width (m)\n", mp.Width)
	fmt.Printf("%8.5f\t\t= Length (m)\n", mp.Length)
	fmt.Printf("%8.2e\t\t= Roughness (m)\n", mp.Roughness)
	fmt.Printf("%8.5f\t\t= Z1 (m)\n", mp.Z1)
	fmt.Printf("%8.5f\t\t= Z2 (m)\n", mp.Z2)
	fmt.Printf("%8.5f\t\t= Gravity (m/s^2)\n", mp.Gravity)
	fmt.Printf("%8.3f\t\t= Rho (kg/m^3)\n", mp.Rho)
	fmt.Printf("%8.2e\t\t= Mu (Pa*s)\n", mp.Mu)
	fmt.Printf("%v\t= Guess (V, F, Re)\n", mp.Guess)
	fmt.Printf("%8.2e\t\t= Tolerance\n", mp.Tolerance)
	fmt.Printf("[%d]\t\t\t\t= MaxIterations\n", mp.MaxIterations)
}

// FittingParameters is one minor-loss element of the pump suction line.
type FittingParameters struct {
	Name       string  `yaml:"Name"`
	K          float64 `yaml:"K"`
	Count      int     `yaml:"Count"`
	DiameterIn float64 `yaml:"DiameterIn"` // in
}

// Parameters obtained from the YAML input file. Lengths are SI except the
// fields suffixed Ft or In, which match how the rig was surveyed.
type PumpParameters struct {
	Title          string              `yaml:"Title"`
	FlowRate       float64             `yaml:"FlowRate"` // m^3/s
	Z1Ft           float64             `yaml:"Z1Ft"`     // ft
	ExitDiameterIn float64             `yaml:"ExitDiameterIn"`
	Fittings       []FittingParameters `yaml:"Fittings"`
	PipeLength     float64             `yaml:"PipeLength"` // m
	PipeDiameterIn float64             `yaml:"PipeDiameterIn"`
	PipeRoughness  float64             `yaml:"PipeRoughness"` // m
	Efficiency     float64             `yaml:"Efficiency"`
	Rho            float64             `yaml:"Rho"` // kg/m^3
	Mu             float64             `yaml:"Mu"`  // Pa*s
}

func (pp *PumpParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

// ApplyDefaults fills every unset field with the as-built 2-in PVC rig.
func (pp *PumpParameters) ApplyDefaults() {
	if pp.FlowRate == 0 {
		pp.FlowRate = 0.006
	}
	if pp.Z1Ft == 0 {
		pp.Z1Ft = 3.0
	}
	if pp.ExitDiameterIn == 0 {
		pp.ExitDiameterIn = 2.0
	}
	if pp.Fittings == nil {
		pp.Fittings = []FittingParameters{
			{Name: "tee (branch)", K: 1.0, Count: 1, DiameterIn: 3.0},
			{Name: "contraction 3x2", K: 0.37, Count: 1, DiameterIn: 2.0},
			{Name: "elbow 90", K: 1.1, Count: 6, DiameterIn: 2.0},
		}
	}
	if pp.PipeLength == 0 {
		pp.PipeLength = 4.5
	}
	if pp.PipeDiameterIn == 0 {
		pp.PipeDiameterIn = 2.0
	}
	if pp.PipeRoughness == 0 {
		pp.PipeRoughness = 1.5e-6
	}
	if pp.Efficiency == 0 {
		pp.Efficiency = 0.70
	}
	if pp.Rho == 0 {
		pp.Rho = 998.0
	}
	if pp.Mu == 0 {
		pp.Mu = 1.002e-3
	}
}

func (pp *PumpParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%8.5f\t\t= FlowRate (m^3/s)\n", pp.FlowRate)
	fmt.Printf("%8.5f\t\t= Z1 (ft)\n", pp.Z1Ft)
	fmt.Printf("%8.5f\t\t= ExitDiameter (in)\n", pp.ExitDiameterIn)
	for _, ft := range pp.Fittings {
		fmt.Printf("Fitting[%s] = K %g x%d at %g in\n", ft.Name, ft.K, ft.Count, ft.DiameterIn)
	}
	fmt.Printf("%8.5f\t\t= PipeLength (m)\n", pp.PipeLength)
	fmt.Printf("%8.5f\t\t= PipeDiameter (in)\n", pp.PipeDiameterIn)
	fmt.Printf("%8.2e\t\t= PipeRoughness (m)\n", pp.PipeRoughness)
	fmt.Printf("%8.5f\t\t= Efficiency\n", pp.Efficiency)
	fmt.Printf("%8.3f\t\t= Rho (kg/m^3)\n", pp.Rho)
	fmt.Printf("%8.2e\t\t= Mu (Pa*s)\n", pp.Mu)
}

// Parameters obtained from the YAML input file. CSVFile selects the binned
// spillway study; Values selects a single-series box plot.
type LabParameters struct {
	Title      string    `yaml:"Title"`
	CSVFile    string    `yaml:"CSVFile"`
	HeadColumn string    `yaml:"HeadColumn"`
	FlowColumn string    `yaml:"FlowColumn"`
	BinMin     float64   `yaml:"BinMin"`
	BinMax     float64   `yaml:"BinMax"`
	BinCount   int       `yaml:"BinCount"`
	Values     []float64 `yaml:"Values"`
	OutputFile string    `yaml:"OutputFile"`
	XLabel     string    `yaml:"XLabel"`
	YLabel     string    `yaml:"YLabel"`
}

func (lp *LabParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, lp)
}

// ApplyDefaults fills the binning range used by the spillway similarity
// study. Labels and files stay as given; the commands default those.
func (lp *LabParameters) ApplyDefaults() {
	if lp.BinMin == 0 {
		lp.BinMin = 0.005
	}
	if lp.BinMax == 0 {
		lp.BinMax = 0.0446
	}
	if lp.BinCount == 0 {
		lp.BinCount = 5
	}
}

func (lp *LabParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", lp.Title)
	fmt.Printf("[%s]\t\t= CSVFile\n", lp.CSVFile)
	fmt.Printf("[%s]\t\t= HeadColumn\n", lp.HeadColumn)
	fmt.Printf("[%s]\t\t= FlowColumn\n", lp.FlowColumn)
	fmt.Printf("%8.5f\t\t= BinMin\n", lp.BinMin)
	fmt.Printf("%8.5f\t\t= BinMax\n", lp.BinMax)
	fmt.Printf("[%d]\t\t\t\t= BinCount\n", lp.BinCount)
	fmt.Printf("%v\t= Values\n", lp.Values)
	fmt.Printf("[%s]\t\t= OutputFile\n", lp.OutputFile)
}
