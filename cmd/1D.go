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
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopn/InputParameters"
	"github.com/notargets/gopn/model_problems/Transport1D"
)

const exampleFile = `
########################################
Title: "Homogeneous Slab"
PolynomialOrder: 1
NMax: 1             # Must be odd
BC: reflective      # Can be "marshak"
ElementsPerCm: 1
EnergyGroup: 0
Regions:
  - Length: 10
    SigmaT: [1.0]           # [group]
    SigmaS: [[[0.5]]]       # [moment][group out][group in]
    Source: [1.0]           # [group]
########################################
`

type Model1D struct {
	ICFile         string
	PlotFile       string
	Graph, Profile bool
	ParallelDegree int
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional slab PN transport solution",
	Long: `
Assembles the PN finite element system for one energy group of a 1D slab made of
homogeneous regions, applies reflective or Marshak boundary conditions and solves it,

gopn 1D -I input.yaml -g`,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{
			ICFile:         viper.GetString("inputConditionsFile"),
			PlotFile:       viper.GetString("plotFile"),
			Graph:          viper.GetBool("graph"),
			Profile:        viper.GetBool("profile"),
			ParallelDegree: viper.GetInt("parallelDegree"),
		}
		if m1d.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip, err := processInput(m1d)
		if err != nil {
			fmt.Printf("Example File:%s\n", exampleFile)
			log.Fatalf("error: %v", err)
		}
		if err = Run1D(m1d, ip); err != nil {
			log.Fatalf("error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- NMax\n\t- BC\n\t- Regions")
	OneDCmd.Flags().StringP("plotFile", "o", "", "file for the scalar flux plot, overrides PlotFile in the input")
	OneDCmd.Flags().BoolP("graph", "g", false, "plot the scalar flux to a file after solving")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	OneDCmd.Flags().IntP("parallelDegree", "p", 0, "number of workers computing element contributions, overrides ParallelDegree in the input")
	for _, name := range []string{"inputConditionsFile", "plotFile", "graph", "profile", "parallelDegree"} {
		if err := viper.BindPFlag(name, OneDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func processInput(m1d *Model1D) (ip *InputParameters.InputParametersPN1D, err error) {
	var (
		data []byte
	)
	if len(m1d.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(m1d.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersPN1D{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("unable to parse %s: %v", m1d.ICFile, err)
		return
	}
	if len(m1d.PlotFile) != 0 {
		ip.PlotFile = m1d.PlotFile
	}
	if m1d.ParallelDegree > 0 {
		ip.ParallelDegree = m1d.ParallelDegree
	}
	return
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParametersPN1D) (err error) {
	var (
		c *Transport1D.Transport
	)
	ip.Print()
	if c, err = Transport1D.NewTransport(ip); err != nil {
		return
	}
	return c.Run(m1d.Graph)
}
