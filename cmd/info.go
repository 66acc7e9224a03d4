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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarise a generated sphere or cube",
	Long: `
Generates a sphere of the given resolution, or the cube, and prints its vertex,
face and edge counts, border, connected components and area.

gosurf info --shape sphere -r 10`,
	Run: func(cmd *cobra.Command, args []string) {
		shape := viper.GetString("info.shape")
		s, err := newShape(shape, viper.GetInt("info.resolution"))
		if err != nil {
			exitOnError(err)
		}
		PrintInfo(shape, s)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().String("shape", "sphere", "sphere or cube")
	infoCmd.Flags().IntP("resolution", "r", 10, "sphere resolution, gives r*r+2 vertices")
	bindFlags(infoCmd.Flags(), "info", "shape", "resolution")
}
