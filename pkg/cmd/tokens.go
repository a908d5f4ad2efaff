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

	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.huff",
	Short: "Print the token stream of a Huff file.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(exitFailure)
		}
		//
		config := getConfig(cmd)
		srcfile := readSourceFiles(config, args)[0]
		//
		if !printTokens(os.Stdout, srcfile, GetFlag(cmd, "all")) {
			os.Exit(exitSyntaxError)
		}
	},
}

// printTokens writes one line per token giving its position, span, kind and
// text.  Whitespace is omitted unless all is set.  This returns true if the
// file had no lexical errors.
func printTokens(out io.Writer, srcfile *source.File, all bool) bool {
	tokens, errs := lexer.Tokenize(*srcfile)
	//
	log.WithFields(log.Fields{"file": srcfile.Filename(), "tokens": len(tokens)}).Debug("tokenized source file")
	//
	for _, tok := range tokens {
		if tok.Kind == lexer.WHITESPACE && !all {
			continue
		}
		//
		pos := srcfile.Position(tok.Span.Start())
		fmt.Fprintf(out, "%d:%d\t%d-%d\t%s\t%q\n", pos.Line, pos.Column, tok.Span.Start(), tok.Span.End(),
			lexer.Describe(tok.Kind), srcfile.Text(tok.Span))
	}
	//
	printSyntaxErrors(out, errs, terminalWidth())
	//
	return len(errs) == 0
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolP("all", "a", false, "include whitespace tokens")
}
