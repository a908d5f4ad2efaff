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
	"strings"

	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	location = color.New(color.Bold).SprintFunc()
	kindOf   = color.New(color.FgRed, color.Bold).SprintFunc()
	caret    = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// terminalWidth returns the width of the terminal attached to stdout, or 0 if
// stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	//
	return width
}

// Print a list of syntax errors with appropriate highlighting.
func printSyntaxErrors(out io.Writer, errs []source.SyntaxError, width int) {
	for i := range errs {
		printSyntaxError(out, &errs[i], width)
	}
}

// Print a syntax error with appropriate highlighting.  The offending line is
// echoed beneath the message, clipped to the given width (when positive) such
// that the highlighted region remains visible.
func printSyntaxError(out io.Writer, err *source.SyntaxError, width int) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	text := []rune(line.String())
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line, but always show something)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	pos := err.Position()
	// Print error + position
	fmt.Fprintf(out, "%s %s: %s\n", location(fmt.Sprintf("%s:%d:%d:", err.SourceFile().Filename(),
		pos.Line, pos.Column)), kindOf(err.Kind().String()), err.Message())
	// Clip line to the window
	start := 0
	if width > 0 && lineOffset+length > width {
		start = max(0, lineOffset-width/2)
	}
	//
	end := len(text)
	if width > 0 {
		end = min(end, start+width)
	}
	//
	lineOffset = min(lineOffset, len(text)) - start
	if width > 0 {
		length = max(1, min(length, width-lineOffset))
	}
	// Print line
	fmt.Fprintln(out)
	fmt.Fprintln(out, string(text[start:end]))
	// Print indent, reusing tabs from the line so the highlight lines up
	var indent strings.Builder
	//
	for _, c := range text[start : start+lineOffset] {
		if c == '\t' {
			indent.WriteRune('\t')
		} else {
			indent.WriteRune(' ')
		}
	}
	// Print highlight
	fmt.Fprintf(out, "%s%s\n", indent.String(), caret(strings.Repeat("^", length)))
}

// syntaxErrorsToJson converts diagnostics into a generic structure suitable
// for encoding as JSON.  Spans are given as byte offsets into the UTF-8 input,
// whilst lines and columns count characters.
func syntaxErrorsToJson(errs []source.SyntaxError) []map[string]any {
	array := make([]map[string]any, len(errs))
	//
	for i := range errs {
		err := &errs[i]
		bytes := err.ByteSpan()
		pos := err.Position()
		//
		array[i] = map[string]any{
			"file":    err.SourceFile().Filename(),
			"kind":    err.Kind().String(),
			"message": err.Message(),
			"start":   bytes.Start(),
			"end":     bytes.End(),
			"line":    pos.Line,
			"column":  pos.Column,
		}
	}
	//
	return array
}
