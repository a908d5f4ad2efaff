// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at link time (-ldflags "-X github.com/consensys/go-huff/pkg/cmd.Version=..."),
// but *not* when installing via "go install".
var Version string

// Exit codes used by all subcommands.
const (
	exitFailure     = 1
	exitIO          = 2
	exitSyntaxError = 4
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huffparse",
	Short: "A parser for the Huff language.",
	Long:  "A parser (and general toolbox) for Huff, the low-level EVM assembly language.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Printf("huffparse %s\n", version())
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// version reports the version of this executable, as set at link time or else
// as recorded by "go install".
func version() string {
	if Version != "" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	// Perhaps "go run"
	return "(unknown version)"
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitFailure)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Uint("max-size", 0, "reject input files larger than this many bytes")
	rootCmd.PersistentFlags().String("color", "", "colour diagnostics (auto, always or never)")
}
