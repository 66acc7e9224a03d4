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
	"github.com/spf13/viper"

	"github.com/notargets/gosurf/surface"
)

// geodesicCmd represents the geodesic command
var geodesicCmd = &cobra.Command{
	Use:   "geodesic",
	Short: "Shortest path distances along a generated sphere",
	Long: `
Computes the shortest path length through the neighbor graph from a source
vertex to every vertex reached, and the path to each target.

gosurf geodesic -r 10 -s 2 -t 0,53 -m 2.5`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			source  = viper.GetInt("geodesic.source")
			targets = viper.GetIntSlice("geodesic.targets")
			maxDist = viper.GetFloat64("geodesic.maxDistance")
			opts    []surface.DijkstraOption
		)
		s, err := surface.GenerateSphere(viper.GetInt("geodesic.resolution"))
		if err != nil {
			exitOnError(err)
		}
		if maxDist > 0 {
			opts = append(opts, surface.WithMaxDistance(maxDist))
		}
		dist, err := s.DijkstraDistance(source, opts...)
		if err != nil {
			exitOnError(err)
		}
		printDistances(source, dist)
		for _, tgt := range targets {
			path, length, err := s.ShortestPath(source, tgt)
			if err != nil {
				exitOnError(err)
			}
			fmt.Printf("Path %d -> %d: %v, length %8.5f\n", source, tgt, path, length)
		}
	},
}

func init() {
	rootCmd.AddCommand(geodesicCmd)
	geodesicCmd.Flags().IntP("resolution", "r", 10, "sphere resolution, gives r*r+2 vertices")
	geodesicCmd.Flags().IntP("source", "s", 0, "source vertex")
	geodesicCmd.Flags().IntSliceP("targets", "t", nil, "vertices to print the path to")
	geodesicCmd.Flags().Float64P("maxDistance", "m", 0, "stop the search at this distance, 0 for no limit")
	bindFlags(geodesicCmd.Flags(), "geodesic", "resolution", "source", "targets", "maxDistance")
}
