package units

// Conversion factors between SI and US customary units. The rounded values
// match the published lab handouts, so converted results line up with the
// reference calculations digit for digit.
const (
	FeetPerMeter           = 3.28084
	MetersPerFoot          = 0.3048
	MetersPerInch          = 0.0254
	CubicFeetPerCubicMeter = 35.3147
	GPMPerCubicMeterPerSec = 15850.3 // 1 m^3/s = 15850.3 gallons/min
	WattsPerHorsepower     = 745.699872
)

func MetersToFeet(m float64) float64 {
	return m * FeetPerMeter
}

func FeetToMeters(ft float64) float64 {
	return ft * MetersPerFoot
}

func InchesToMeters(in float64) float64 {
	return in * MetersPerInch
}

func CubicMetersToCubicFeet(v float64) float64 {
	return v * CubicFeetPerCubicMeter
}

func CubicFeetToCubicMeters(v float64) float64 {
	return v / CubicFeetPerCubicMeter
}

// FlowToGPM converts a volumetric flow rate in m^3/s to US gallons/minute.
func FlowToGPM(q float64) float64 {
	return q * GPMPerCubicMeterPerSec
}

func GPMToFlow(gpm float64) float64 {
	return gpm / GPMPerCubicMeterPerSec
}

func WattsToHorsepower(w float64) float64 {
	return w / WattsPerHorsepower
}

func HorsepowerToWatts(hp float64) float64 {
	return hp * WattsPerHorsepower
}
