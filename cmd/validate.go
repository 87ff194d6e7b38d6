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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdetools/gorde/validation"
)

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the model validation suites",
	Long: `
Runs the prediction components against analytical, cellular and experimental
reference cases and reports per-case errors and overall accuracy.

gorde validate -m comprehensive`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("validate called")
		modeName, _ := cmd.Flags().GetString("mode")
		caseFile, _ := cmd.Flags().GetString("caseFile")
		verbose, _ := cmd.Flags().GetBool("verbose")
		RunValidate(modeName, caseFile, verbose)
	},
}

func init() {
	rootCmd.AddCommand(ValidateCmd)
	ValidateCmd.Flags().StringP("mode", "m", "fast", "validation mode: fast, standard, comprehensive or expert")
	ValidateCmd.Flags().StringP("caseFile", "F", "", "YAML file with custom validation cases (overrides the mode suites)")
	ValidateCmd.Flags().BoolP("verbose", "v", false, "print per-case progress while running")
}

func parseMode(name string) (validation.Mode, error) {
	switch strings.ToLower(name) {
	case "fast":
		return validation.FAST, nil
	case "standard":
		return validation.STANDARD, nil
	case "comprehensive":
		return validation.COMPREHENSIVE, nil
	case "expert":
		return validation.EXPERT, nil
	}
	return validation.FAST, fmt.Errorf("unknown validation mode %q", name)
}

func RunValidate(modeName, caseFile string, verbose bool) {
	engine := validation.NewEngine()
	engine.Verbose = verbose

	var suite validation.ValidationSuiteResult
	if len(caseFile) != 0 {
		cases, err := validation.LoadCases(caseFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		suite = engine.ValidateSuite("Custom Validation Cases", cases)
	} else {
		mode, err := parseMode(modeName)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		suite = engine.RunSuite(mode)
	}

	fmt.Print(suite.Summary)
	if suite.FailedCases > 0 {
		os.Exit(1)
	}
}
