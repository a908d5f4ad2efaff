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
package sexp

import (
	"strings"
	"unicode/utf8"
)

// FormattedText accumulates lines of output, each of which starts at the
// indentation level in effect when it was begun.
type FormattedText struct {
	// Current indent level
	indent int
	// Lines being written
	lines []string
}

func (p *FormattedText) String() string {
	return strings.Join(p.lines, "\n")
}

// Indent adjusts the indentation level for subsequent lines.
func (p *FormattedText) Indent(delta int) {
	p.indent += delta
}

// NewLine begins a new line at the current indentation level.
func (p *FormattedText) NewLine() {
	p.lines = append(p.lines, strings.Repeat("  ", p.indent))
}

// LineWidth returns the width (in characters) of the line being written.
func (p *FormattedText) LineWidth() uint {
	if n := len(p.lines); n > 0 {
		return width(p.lines[n-1])
	}
	//
	return 0
}

// MaxWidth returns the width of the widest line written so far.
func (p *FormattedText) MaxWidth() uint {
	var w uint
	//
	for _, l := range p.lines {
		w = max(w, width(l))
	}
	//
	return w
}

// WriteString appends some text onto the line being written.
func (p *FormattedText) WriteString(str string) {
	if n := len(p.lines); n == 0 {
		p.lines = append(p.lines, str)
	} else {
		p.lines[n-1] += str
	}
}

func width(str string) uint {
	return uint(utf8.RuneCountInString(str))
}
