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
// Package main is an example host driver exercising the contact library
// end to end: build two quad meshes, configure a coupling scheme from a
// YAML file, and step it like a finite-element host would.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contactdemo",
	Short: "Drives the contact coupling library over example meshes",
	Long: `
contactdemo builds two facing quad meshes, configures a coupling scheme
from a YAML input file, and drives it cycle by cycle, printing each
active contact plane's gap per cycle.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
