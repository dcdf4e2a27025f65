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
	"time"

	"github.com/spf13/cobra"

	"github.com/notargets/gocontact/coupling"
	"github.com/notargets/gocontact/geom"
	"github.com/notargets/gocontact/meshview"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time binning+apply over a strip of facing quad pairs",
	Run: func(cmd *cobra.Command, args []string) {
		pairs, _ := cmd.Flags().GetInt("pairs")
		cycles, _ := cmd.Flags().GetInt("cycles")

		mv1, mv2 := facingStrip(pairs)
		s := coupling.New(coupling.DefaultConfig(), mv1, mv2)
		if err := s.Init(); err != nil {
			panic(err)
		}

		start := time.Now()
		dt := 1e-3
		for cycle := 0; cycle < cycles; cycle++ {
			s.PerformBinning()
			newDt, err := s.Apply(cycle, float64(cycle)*dt, dt)
			if err != nil {
				panic(err)
			}
			dt = newDt
		}
		elapsed := time.Since(start)
		fmt.Printf("pairs=%d cycles=%d elapsed=%s active_planes=%d\n", pairs, cycles, elapsed, s.Stats.ActivePlanes)
	},
}

// facingStrip builds two meshes of `n` quads laid end to end along X,
// each mesh's quads facing the other with a 0.01 interpenetration in z.
func facingStrip(n int) (*meshview.MeshView, *meshview.MeshView) {
	mv1 := meshview.New(1, 3, meshview.Quad, meshview.Host, 4*n, n)
	mv2 := meshview.New(2, 3, meshview.Quad, meshview.Host, 4*n, n)
	for i := 0; i < n; i++ {
		x0 := float64(i)
		top := []geom.Vec{{x0, 0, 0}, {x0 + 1, 0, 0}, {x0 + 1, 1, 0}, {x0, 1, 0}}
		bottom := []geom.Vec{{x0, 0, -0.01}, {x0, 1, -0.01}, {x0 + 1, 1, -0.01}, {x0 + 1, 0, -0.01}}
		copy(mv1.Coords[4*i:4*i+4], top)
		copy(mv2.Coords[4*i:4*i+4], bottom)
		mv1.Connectivity[i] = []int{4 * i, 4*i + 1, 4*i + 2, 4*i + 3}
		mv2.Connectivity[i] = []int{4 * i, 4*i + 1, 4*i + 2, 4*i + 3}
	}
	return mv1, mv2
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("pairs", "p", 100, "number of facing quad pairs to generate")
	BenchCmd.Flags().IntP("cycles", "c", 20, "number of cycles to time")
}
