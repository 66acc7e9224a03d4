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

	"github.com/spf13/cobra"

	"github.com/notargets/gosurf/InputParameters"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a surface job described by a YAML input file",
	Long: `
Reads a YAML job file, generates the coarse and fine spheres it describes and
reports distances from the source vertex, paths to the targets and the
coarse to fine vertex mapping.

gosurf run -I params.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		icFile, err := cmd.Flags().GetString("inputConditionsFile")
		if err != nil {
			panic(err)
		}
		sp := processInput(icFile)
		sp.Print()
		rpt, err := RunJob(sp)
		if err != nil {
			exitOnError(err)
		}
		rpt.Print(sp.Source)
	},
}

const exampleFile = `
########################################
Title: "Sphere Mapping"
Resolution: 10
FineResolution: 40
Epsilon: 0.1
Source: 2
Targets: [0, 53]
MaxDistance: 0 # 0 is unbounded
Scale: 1
Translate: [0, 0, 0]
########################################
`

func processInput(icFile string) (sp *InputParameters.SurfaceParameters) {
	var (
		err  error
		data []byte
	)
	if len(icFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(icFile); err != nil {
		exitOnError(err)
	}
	sp = InputParameters.NewSurfaceParameters()
	if err = sp.Parse(data); err != nil {
		exitOnError(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for job parameters like:\n\t- Resolution\n\t- Epsilon")
}
