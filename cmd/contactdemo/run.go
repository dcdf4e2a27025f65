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
package main

import (
	"fmt"
	"io/ioutil"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/notargets/gocontact/coupling"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
	"github.com/notargets/gocontact/viz"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Step a two-mesh coupling scheme over a fixed number of cycles",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("configFile")
		gap, _ := cmd.Flags().GetFloat64("gap")
		cycles, _ := cmd.Flags().GetInt("cycles")
		dumpDir, _ := cmd.Flags().GetString("dumpDir")

		cfg := coupling.DefaultConfig()
		if configFile != "" {
			data, err := ioutil.ReadFile(configFile)
			if err != nil {
				panic(err)
			}
			if err := cfg.Parse(data); err != nil {
				panic(err)
			}
		}

		mv1 := facingQuad(1, 0, false)
		mv2 := facingQuad(2, -gap, true)

		s := coupling.New(cfg, mv1, mv2)
		if err := s.Init(); err != nil {
			panic(err)
		}

		resolvedDump := ""
		if dumpDir != "" {
			expanded, err := homedir.Expand(dumpDir)
			if err != nil {
				panic(err)
			}
			resolvedDump = expanded
		}

		dt := 1e-3
		for cycle := 0; cycle < cycles; cycle++ {
			s.PerformBinning()
			newDt, err := s.Apply(cycle, float64(cycle)*dt, dt)
			if err != nil {
				panic(err)
			}
			dt = newDt

			for _, plane := range s.Planes {
				fmt.Printf("cycle %d: face(%d,%d) gap=%.6g\n", cycle, plane.Face1, plane.Face2, plane.Gap)
			}

			if resolvedDump != "" {
				if err := viz.DumpCycle(resolvedDump, cycle, s.Planes); err != nil {
					panic(err)
				}
			}
		}
		s.Finalize()
	},
}

func facingQuad(id int, z float64, reverse bool) *meshview.MeshView {
	pts := []geom.Vec{{0, 0, z}, {1, 0, z}, {1, 1, z}, {0, 1, z}}
	if reverse {
		pts = []geom.Vec{{0, 0, z}, {0, 1, z}, {1, 1, z}, {1, 0, z}}
	}
	mv := meshview.New(id, 3, meshview.Quad, meshview.Host, 4, 1)
	copy(mv.Coords, pts)
	mv.Connectivity[0] = []int{0, 1, 2, 3}
	return mv
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("configFile", "I", "", "YAML coupling-scheme configuration file")
	RunCmd.Flags().Float64P("gap", "g", 0.01, "initial interpenetration depth of the two facing quads (mesh 2 is placed at z=-gap)")
	RunCmd.Flags().IntP("cycles", "c", 10, "number of cycles to step")
	RunCmd.Flags().StringP("dumpDir", "d", "", "directory (supports ~) to write per-cycle overlap-polygon dumps, empty to skip")
}
