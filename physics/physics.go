package physics

import (
	"math"
	"strings"
)

// Shared physical constants, SI units throughout
const (
	UniversalGasConstant = 8314.0   // J/(kmol·K)
	AirMolecularWeight   = 29.0     // kg/kmol
	ReferencePressure    = 101325.0 // Pa
	ReferenceTemperature = 298.15   // K
	StandardGravity      = 9.81     // m/s²
	GammaUnburned        = 1.4      // Ideal gas, fresh mixture
	GammaProducts        = 1.3      // Combustion products
)

type Fuel uint8

const (
	FuelUnknown Fuel = iota
	Hydrogen
	Methane
	Propane
)

var fuelNames = map[Fuel]string{
	FuelUnknown: "unknown",
	Hydrogen:    "hydrogen",
	Methane:     "methane",
	Propane:     "propane",
}

func (f Fuel) String() string {
	if name, ok := fuelNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFuel maps a free-text fuel name onto the closed fuel set. Anything
// unrecognized becomes FuelUnknown and uses the generic default constants.
func ParseFuel(name string) Fuel {
	switch name {
	case "hydrogen", "H2":
		return Hydrogen
	case "methane", "CH4":
		return Methane
	case "propane", "C3H8":
		return Propane
	}
	return FuelUnknown
}

// Fuel serializes as its string name so wire payloads stay readable and
// stable across the protocol boundary.
func (f Fuel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fuel) UnmarshalJSON(data []byte) error {
	*f = ParseFuel(strings.Trim(string(data), `"`))
	return nil
}

type Oxidizer uint8

const (
	Air Oxidizer = iota
	Oxygen
)

func (o Oxidizer) String() string {
	if o == Oxygen {
		return "oxygen"
	}
	return "air"
}

func ParseOxidizer(name string) Oxidizer {
	if name == "oxygen" || name == "O2" {
		return Oxygen
	}
	return Air
}

func (o Oxidizer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

func (o *Oxidizer) UnmarshalJSON(data []byte) error {
	*o = ParseOxidizer(strings.Trim(string(data), `"`))
	return nil
}

// ValidityRange bounds the envelope a fuel's cellular correlations were
// calibrated against.
type ValidityRange struct {
	PressureMin, PressureMax       float64 // [Pa]
	PhiMin, PhiMax                 float64
	TemperatureMin, TemperatureMax float64 // [K]
}

func (vr ValidityRange) Contains(pressure, phi, temperature float64) bool {
	return pressure >= vr.PressureMin && pressure <= vr.PressureMax &&
		phi >= vr.PhiMin && phi <= vr.PhiMax &&
		temperature >= vr.TemperatureMin && temperature <= vr.TemperatureMax
}

// FuelProperties collects the per-fuel constants used by the predictor, the
// correlation fallback and the operating point calculator.
type FuelProperties struct {
	BaseInductionLength float64 // [m]
	BaseThermicity      float64 // [1/s]

	// Correlation fallback: λ = Coeff × (P/P₀)^PressureExp × phiFactor × tempFactor
	CorrelationCoeff float64
	PressureExponent float64
	PhiQuadCoeff     float64
	TemperatureExp   float64

	// Detonation properties, linear in (φ-1)
	CJVelocityBase   float64 // [m/s]
	CJVelocitySlope  float64 // [m/s] per unit (φ-1)
	PressureRatioA   float64 // P_CJ/P₀ = A + B·φ
	PressureRatioB   float64
	CJTempBase       float64 // [K]
	CJTempSlope      float64 // [K] per unit φ
	HeatOfCombustion float64 // [J/kg]

	Validity ValidityRange
}

var fuelTable = map[Fuel]FuelProperties{
	Hydrogen: {
		BaseInductionLength: 1e-5,
		BaseThermicity:      1e6,
		CorrelationCoeff:    0.001,
		PressureExponent:    -0.6,
		PhiQuadCoeff:        1.0,
		TemperatureExp:      0.2,
		CJVelocityBase:      1970.0,
		CJVelocitySlope:     200.0,
		PressureRatioA:      15.0,
		PressureRatioB:      5.0,
		CJTempBase:          2800.0,
		CJTempSlope:         400.0,
		HeatOfCombustion:    120e6,
		Validity:            ValidityRange{50000, 2000000, 0.4, 2.0, 250, 800},
	},
	Methane: {
		BaseInductionLength: 5e-5,
		BaseThermicity:      5e5,
		CorrelationCoeff:    0.01,
		PressureExponent:    -0.5,
		PhiQuadCoeff:        2.0,
		TemperatureExp:      0.3,
		CJVelocityBase:      1800.0,
		CJVelocitySlope:     150.0,
		PressureRatioA:      18.0,
		PressureRatioB:      4.0,
		CJTempBase:          2400.0,
		CJTempSlope:         300.0,
		HeatOfCombustion:    50e6,
		Validity:            ValidityRange{50000, 1000000, 0.5, 1.8, 280, 600},
	},
	Propane: {
		BaseInductionLength: 1e-4,
		BaseThermicity:      2e5,
		CorrelationCoeff:    0.02,
		PressureExponent:    -0.4,
		PhiQuadCoeff:        1.5,
		TemperatureExp:      0.25,
		CJVelocityBase:      1850.0,
		CJVelocitySlope:     120.0,
		PressureRatioA:      20.0,
		PressureRatioB:      3.0,
		CJTempBase:          2500.0,
		CJTempSlope:         250.0,
		HeatOfCombustion:    46e6,
		Validity:            ValidityRange{50000, 800000, 0.6, 1.6, 290, 500},
	},
	FuelUnknown: {
		BaseInductionLength: 1e-4,
		BaseThermicity:      1e5,
		CorrelationCoeff:    0.0294, // Generic λ = 29.4 mm × (P/P₀)^-0.5
		PressureExponent:    -0.5,
		PhiQuadCoeff:        0.0,
		TemperatureExp:      0.0,
		CJVelocityBase:      1970.0,
		CJVelocitySlope:     0.0,
		PressureRatioA:      15.0,
		PressureRatioB:      0.0,
		CJTempBase:          2800.0,
		CJTempSlope:         0.0,
		HeatOfCombustion:    0.0,
		Validity:            ValidityRange{50000, 1000000, 0.5, 2.0, 250, 800},
	},
}

// Properties returns the constant table entry for f. The table is read-only
// after package init, so concurrent lookups are safe.
func (f Fuel) Properties() FuelProperties {
	if p, ok := fuelTable[f]; ok {
		return p
	}
	return fuelTable[FuelUnknown]
}

// UnburnedSoundSpeed is the ideal-gas sound speed of the fresh mixture,
// approximated with air properties.
func UnburnedSoundSpeed(temperature float64) float64 {
	RSpecific := UniversalGasConstant / AirMolecularWeight
	return math.Sqrt(GammaUnburned * RSpecific * temperature)
}
