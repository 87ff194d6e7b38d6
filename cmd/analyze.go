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

	"github.com/spf13/cobra"

	"github.com/rdetools/gorde/InputParameters"
	"github.com/rdetools/gorde/geometry2D"
	"github.com/rdetools/gorde/rde"
)

type ModelRDE struct {
	CaseFile string
	TwoD     bool
	Waves    int
}

// AnalyzeCmd represents the analyze command
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full RDE analysis, able to read case files and output operating points",
	Long:  `Full RDE analysis, able to read case files and output operating points`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("analyze called")
		mrde := &ModelRDE{}
		if mrde.CaseFile, err = cmd.Flags().GetString("caseFile"); err != nil {
			panic(err)
		}
		mrde.TwoD, _ = cmd.Flags().GetBool("twoD")
		mrde.Waves, _ = cmd.Flags().GetInt("waves")
		ip := processCaseInput(mrde)
		RunAnalyze(mrde, ip)
	},
}

func processCaseInput(mrde *ModelRDE) (ip *InputParameters.InputParametersRDE) {
	var (
		err error
	)
	if len(mrde.CaseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-F, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Lab Scale RDE"
Analysis: performance
WaveCount: 1
Geometry:
  outerRadius: 0.05
  innerRadius: 0.03
  chamberLength: 0.1
Chemistry:
  fuelType: hydrogen
  oxidizerType: air
  equivalenceRatio: 1.0
  chamberPressure: 101325
  injectionTemperature: 300
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mrde.CaseFile); err != nil {
		panic(err)
	}
	ip = InputParameters.NewInputParametersRDE()
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(AnalyzeCmd)
	AnalyzeCmd.Flags().StringP("caseFile", "F", "", "YAML case file with Geometry, Chemistry and Settings sections")
	AnalyzeCmd.Flags().BoolP("twoD", "2", false, "include the annular 2D cellular structure analysis")
	AnalyzeCmd.Flags().IntP("waves", "w", 0, "number of detonation waves (overrides the case file when > 0)")
}

func RunAnalyze(mrde *ModelRDE, ip *InputParameters.InputParametersRDE) {
	ip.Print()
	waves := ip.WaveCount
	if mrde.Waves > 0 {
		waves = mrde.Waves
	}
	engine := rde.NewEngine()
	result := engine.AnalyzeRDE(rde.AnalysisRequest{
		AnalysisType: ip.Analysis,
		Geometry:     ip.Geometry,
		Chemistry:    ip.Chemistry,
		Settings:     ip.Settings,
		WaveCount:    waves,
	})
	if !result.Success {
		fmt.Println("Analysis FAILED")
		for _, w := range result.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		os.Exit(1)
	}

	op := result.OperatingPoint
	fmt.Printf("%8.1f\t\t= Wave Speed [m/s]\n", op.WaveSpeed)
	fmt.Printf("%8.1f\t\t= Wave Frequency [Hz]\n", op.WaveFrequency)
	fmt.Printf("%8.1f\t\t= Thrust [N]\n", op.Thrust)
	fmt.Printf("%8.1f\t\t= Specific Impulse [s]\n", op.SpecificImpulse)
	fmt.Printf("%8.4f\t\t= Mass Flow Rate [kg/s]\n", op.MassFlowRate)
	fmt.Printf("%8.3f\t\t= Pressure Gain\n", op.PressureGain)
	fmt.Printf("%8.3f\t\t= Combustion Efficiency\n", op.CombustionEfficiency)
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, r := range result.Recommendations {
		fmt.Printf("recommendation: %s\n", r)
	}
	fmt.Print(result.BackendLog)

	if mrde.TwoD {
		Run2DAnalysis(mrde, ip, waves)
	}
}

func Run2DAnalysis(mrde *ModelRDE, ip *InputParameters.InputParametersRDE, waves int) {
	var (
		chemistry = ip.Chemistry
	)
	rde.DetonationProperties(&chemistry)
	ext := geometry2D.NewExtension2D(rde.NewEngine().Predictor)
	s2d := ext.Analyze2DStructure(ip.Geometry, &chemistry)

	tracks := make([]geometry2D.WavePropagation2D, waves)
	for i := range tracks {
		front := geometry2D.InitialFront(ip.Geometry, &chemistry, 36)
		tracks[i] = ext.TrackWavePropagation(ip.Geometry, &chemistry, front, ip.Settings.SimulationTime)
	}
	mw := ext.AnalyzeMultiWaveSystem(ip.Geometry, &chemistry, tracks)
	report := ext.Validate2DConstraints(ip.Geometry, &chemistry, ip.Settings)

	fmt.Printf("%8.3f\t\t= Mean 2D Cell Size [mm]\n", s2d.MeanCellSize*1000)
	fmt.Printf("%8.4f\t\t= Curvature Correction\n", s2d.CurvatureCorrection)
	fmt.Printf("%8.3f\t\t= Cell Regularity\n", s2d.Regularity)
	fmt.Printf("[%s]\t= Wave Pattern\n", mw.Pattern)
	fmt.Printf("%8.3f\t\t= Pattern Stability\n", mw.StabilityIndex)
	fmt.Printf("%8.1f\t\t= System Frequency [Hz]\n", mw.SystemFrequency)
	fmt.Print(report.Report())
}
