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
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gosurf/surface"
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map the vertices of a coarse sphere onto a fine one",
	Long: `
Pairs every vertex of a coarse sphere with the closest vertex of a finer
sphere. Fails when some coarse vertex has no fine vertex within epsilon.

gosurf map -r 10 -f 40 -e 0.1`,
	Run: func(cmd *cobra.Command, args []string) {
		coarse, err := surface.GenerateSphere(viper.GetInt("map.resolution"))
		if err != nil {
			exitOnError(err)
		}
		fine, err := surface.GenerateSphere(viper.GetInt("map.fineResolution"))
		if err != nil {
			exitOnError(err)
		}
		mapping, err := coarse.MapToHighResolution(fine, viper.GetFloat64("map.epsilon"),
			surface.WithParallelDegree(viper.GetInt("map.parallelDegree")))
		if err != nil {
			exitOnError(err)
		}
		printMapping(mapping, viper.GetInt("map.limit"))
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().IntP("resolution", "r", 10, "coarse sphere resolution")
	mapCmd.Flags().IntP("fineResolution", "f", 40, "fine sphere resolution")
	mapCmd.Flags().Float64P("epsilon", "e", 0.1, "largest accepted distance between matched vertices")
	mapCmd.Flags().IntP("parallelDegree", "p", runtime.NumCPU(), "number of partitions worked on in parallel")
	mapCmd.Flags().IntP("limit", "l", 20, "number of pairs printed, 0 for all")
	bindFlags(mapCmd.Flags(), "map", "resolution", "fineResolution", "epsilon", "parallelDegree", "limit")
}
