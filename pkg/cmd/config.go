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
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Environment variables consulted for defaults.
const (
	envFile    = "HUFFPARSE_ENV"
	envMaxSize = "HUFFPARSE_MAX_SIZE"
	envColour  = "HUFFPARSE_COLOR"
)

// defaultMaxSize bounds the size of an input file when neither the flag nor
// the environment sets one.
const defaultMaxSize = 4 * 1024 * 1024

// Config holds the settings shared by all subcommands.  These come from
// command-line flags, falling back to the environment and finally to built-in
// defaults.
type Config struct {
	// MaxSize is the largest input file (in bytes) which will be lexed.
	MaxSize uint
	// Colour is one of "auto", "always" or "never".
	Colour string
}

// Coloured determines whether diagnostics should be coloured, which in "auto"
// mode depends on whether stdout is a terminal.
func (p Config) Coloured() bool {
	switch p.Colour {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// getConfig determines the configuration for a given command, exiting if this
// is malformed.
func getConfig(cmd *cobra.Command) Config {
	loadEnvironment()
	//
	config, err := resolveConfig(cmd, os.Getenv)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitIO)
	}
	//
	color.NoColor = !config.Coloured()
	//
	log.WithFields(log.Fields{"max-size": config.MaxSize, "color": config.Colour}).Debug("configured")
	//
	return config
}

// loadEnvironment reads variables from the file named by HUFFPARSE_ENV, or
// else from a ".env" file in the working directory (if one exists).  Variables
// already set in the environment are not overridden.
func loadEnvironment() {
	filename, explicit := os.LookupEnv(envFile)
	if !explicit {
		filename = ".env"
		//
		if _, err := os.Stat(filename); err != nil {
			return
		}
	}
	//
	if err := godotenv.Load(filename); err != nil {
		fmt.Println(err)
		os.Exit(exitIO)
	}
	//
	log.WithField("file", filename).Debug("loaded environment")
}

// resolveConfig combines flags with the environment (as given by getenv).  A
// flag explicitly set on the command line always wins.
func resolveConfig(cmd *cobra.Command, getenv func(string) string) (Config, error) {
	config := Config{MaxSize: defaultMaxSize, Colour: "auto"}
	// Maximum file size
	if cmd.Flags().Changed("max-size") {
		config.MaxSize = GetUint(cmd, "max-size")
	} else if val := getenv(envMaxSize); val != "" {
		n, err := strconv.ParseUint(val, 10, 0)
		if err != nil {
			return config, fmt.Errorf("invalid %s \"%s\"", envMaxSize, val)
		}
		//
		config.MaxSize = uint(n)
	}
	// Colour mode
	if cmd.Flags().Changed("color") {
		config.Colour = GetString(cmd, "color")
	} else if val := getenv(envColour); val != "" {
		config.Colour = val
	}
	//
	switch config.Colour {
	case "auto", "always", "never":
		return config, nil
	default:
		return config, fmt.Errorf("invalid colour mode \"%s\" (expected auto, always or never)", config.Colour)
	}
}
