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
	"io"
	"os"

	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.huff file2.huff ...",
	Short: "Check one or more Huff files for syntax errors.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(exitFailure)
		}
		//
		config := getConfig(cmd)
		files := readSourceFiles(config, args)
		//
		if !checkSourceFiles(os.Stdout, files, terminalWidth()) {
			os.Exit(exitSyntaxError)
		}
	},
}

// checkSourceFiles parses each file, printing its diagnostics followed by a
// one line summary.  This returns true if no file had errors.
func checkSourceFiles(out io.Writer, files []*source.File, width int) bool {
	ok := true
	//
	for _, srcfile := range files {
		tree, errs := parseSourceFile(srcfile)
		//
		printSyntaxErrors(out, errs, width)
		//
		if len(errs) == 0 {
			fmt.Fprintf(out, "%s: %d items, %s\n", srcfile.Filename(), len(tree.Items), green("ok"))
		} else {
			fmt.Fprintf(out, "%s: %d items, %s\n", srcfile.Filename(), len(tree.Items),
				red(fmt.Sprintf("%d errors", len(errs))))
			//
			ok = false
		}
	}
	//
	return ok
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
