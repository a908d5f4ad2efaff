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
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] file1.huff file2.huff ...",
	Short: "Parse one or more Huff files and print their syntax trees.",
	Long: `Parse one or more Huff files and print their syntax trees, either as
S-Expressions (the default) or as JSON.  Diagnostics follow each tree, or are
included in the JSON object.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(exitFailure)
		}
		//
		config := getConfig(cmd)
		asJson := GetFlag(cmd, "json")
		//
		if asJson && GetFlag(cmd, "sexp") {
			fmt.Println("cannot use both --json and --sexp")
			os.Exit(exitFailure)
		}
		//
		width := GetUint(cmd, "width")
		if width == 0 {
			width = uint(max(40, terminalWidth()))
		}
		//
		failed := false
		//
		for _, srcfile := range readSourceFiles(config, args) {
			tree, errs := parseSourceFile(srcfile)
			//
			if asJson {
				printJson(srcfile, tree, errs)
			} else {
				fmt.Println(ast.NewFormatter(width).Format(ast.ToSExp(tree)))
				printSyntaxErrors(os.Stdout, errs, terminalWidth())
			}
			//
			failed = failed || len(errs) > 0
		}
		//
		if failed {
			os.Exit(exitSyntaxError)
		}
	},
}

// printJson prints a file's tree along with its diagnostics as one JSON object.
func printJson(srcfile *source.File, tree *ast.SourceFile, errs []source.SyntaxError) {
	object := map[string]any{
		"file":   srcfile.Filename(),
		"tree":   ast.ToJSON(srcfile, tree),
		"errors": syntaxErrorsToJson(errs),
	}
	//
	bytes, err := json.MarshalIndent(object, "", "  ")
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
	//
	fmt.Println(string(bytes))
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("sexp", false, "print trees as S-Expressions (default)")
	parseCmd.Flags().Bool("json", false, "print trees as JSON")
	parseCmd.Flags().Uint("width", 0, "line width for S-Expressions (defaults to the terminal width)")
}
