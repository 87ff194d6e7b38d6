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

	"github.com/spf13/cobra"

	"github.com/rdetools/gorde/cellular"
	"github.com/rdetools/gorde/physics"
	"github.com/rdetools/gorde/rde"
)

// PredictCmd represents the predict command
var PredictCmd = &cobra.Command{
	Use:   "predict",
	Short: "One dimensional detonation cell size prediction",
	Long: `
Predicts the detonation cell size λ for a fuel/oxidizer mixture at the given
operating conditions, along with the induction length, CJ Mach number and the
mesh size required to resolve the cellular structure.

gorde predict -f hydrogen --phi 1.0`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("predict called")
		fuelName, _ := cmd.Flags().GetString("fuel")
		fuel := physics.ParseFuel(fuelName)
		if fuel == physics.FuelUnknown {
			fmt.Printf("warning: unknown fuel %q, using generic correlation constants\n", fuelName)
		}
		c := physics.DefaultChemistry()
		c.Fuel = fuel
		c.EquivalenceRatio, _ = cmd.Flags().GetFloat64("phi")
		c.ChamberPressure, _ = cmd.Flags().GetFloat64("pressure")
		c.InjectionTemperature, _ = cmd.Flags().GetFloat64("temperature")
		if corr, _ := cmd.Flags().GetBool("correlation"); corr {
			c.UseRegressionModel = false
			c.CellSize = cellular.CorrelationCellSize(&c)
		}
		RunPredict(&c)
	},
}

func init() {
	rootCmd.AddCommand(PredictCmd)
	PredictCmd.Flags().StringP("fuel", "f", "hydrogen", "fuel: hydrogen, methane or propane")
	PredictCmd.Flags().Float64P("phi", "p", 1.0, "equivalence ratio")
	PredictCmd.Flags().Float64("pressure", physics.ReferencePressure, "chamber pressure [Pa]")
	PredictCmd.Flags().Float64("temperature", 300.0, "injection temperature [K]")
	PredictCmd.Flags().BoolP("correlation", "c", false, "use the empirical correlation instead of the regression model")
}

func RunPredict(c *physics.ChemistryState) {
	rde.DetonationProperties(c)
	p := cellular.NewPredictor()
	c.CellSize = p.PredictCellSize(c)
	c.InductionLength = p.InductionLength(c)
	c.CJMachNumber = p.CJMachNumber(c)
	c.MaxThermicity = p.MaxThermicity(c)

	s := p.AnalyzeCellularStructure(c, physics.DefaultGeometry())

	fmt.Printf("Fuel: %s / %s, phi = %5.3f\n", c.Fuel, c.Oxidizer, c.EquivalenceRatio)
	fmt.Printf("%8.1f\t\t= CJ Velocity [m/s]\n", c.DetonationVelocity)
	fmt.Printf("%8.3f\t\t= CJ Mach Number\n", c.CJMachNumber)
	fmt.Printf("%8.3f\t\t= Cell Size [mm]\n", c.CellSize*1000)
	fmt.Printf("%8.4f\t\t= Induction Length [mm]\n", c.InductionLength*1000)
	fmt.Printf("%8.3f\t\t= Cell Irregularity\n", s.Irregularity)
	fmt.Printf("%8.1f\t\t= Cell Frequency [kHz]\n", s.Frequency/1000)
	fmt.Printf("%8.4f\t\t= Required Mesh Size [mm]\n",
		cellular.RequiredMeshSize(c.CellSize, cellular.CellularConstraintRatio)*1000)
	for _, w := range p.ValidateInputs(c) {
		fmt.Printf("warning: %s\n", w)
	}
}
