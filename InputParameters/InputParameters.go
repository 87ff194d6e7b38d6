package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/rdetools/gorde/physics"
)

// Parameters obtained from the YAML input file
type InputParametersRDE struct {
	Title     string                     `yaml:"Title"`
	Analysis  string                     `yaml:"Analysis"` // "design", "performance", "stability"
	WaveCount int                        `yaml:"WaveCount"`
	Geometry  physics.Geometry           `yaml:"Geometry"`
	Chemistry physics.ChemistryState     `yaml:"Chemistry"`
	Settings  physics.SimulationSettings `yaml:"Settings"`
}

func NewInputParametersRDE() *InputParametersRDE {
	return &InputParametersRDE{
		Title:     "RDE Analysis",
		Analysis:  "performance",
		WaveCount: 1,
		Geometry:  physics.DefaultGeometry(),
		Chemistry: physics.DefaultChemistry(),
		Settings:  physics.DefaultSettings(),
	}
}

func (ip *InputParametersRDE) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersRDE) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Analysis\n", ip.Analysis)
	fmt.Printf("[%d]\t\t\t= Wave Count\n", ip.WaveCount)
	fmt.Printf("%8.5f\t\t= Outer Radius [m]\n", ip.Geometry.OuterRadius)
	fmt.Printf("%8.5f\t\t= Inner Radius [m]\n", ip.Geometry.InnerRadius)
	fmt.Printf("%8.5f\t\t= Chamber Length [m]\n", ip.Geometry.ChamberLength)
	fmt.Printf("[%d]\t\t\t= Injectors\n", ip.Geometry.InjectorCount)
	fmt.Printf("[%s/%s]\t= Fuel/Oxidizer\n", ip.Chemistry.Fuel, ip.Chemistry.Oxidizer)
	fmt.Printf("%8.5f\t\t= Equivalence Ratio\n", ip.Chemistry.EquivalenceRatio)
	fmt.Printf("%8.1f\t\t= Chamber Pressure [Pa]\n", ip.Chemistry.ChamberPressure)
	fmt.Printf("%8.2f\t\t= Injection Temperature [K]\n", ip.Chemistry.InjectionTemperature)
	fmt.Printf("[%s]\t= Solver Type\n", ip.Settings.SolverType)
	fmt.Printf("[%s]\t\t\t= Flux Scheme\n", ip.Settings.FluxScheme)
}
