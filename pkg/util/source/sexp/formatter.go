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

// maxLevel bounds how far the formatting level is raised when searching for a
// layout which fits.
const maxLevel uint = 10

// Formatter lays out S-Expressions over multiple lines according to a set of
// rules, aiming to keep every line within a given width.
type Formatter struct {
	// Maximum desired width
	maxWidth uint
	// Rules to be used for formatting
	rules []FormattingRule
}

// NewFormatter constructs a formatter for a given width with no rules.
// Without rules, lists are never split.
func NewFormatter(width uint) *Formatter {
	return &Formatter{width, nil}
}

// Add a formatting rule.  Rules are tried in the order they were added, and
// the first which applies to a list determines how it is split.
func (p *Formatter) Add(rule FormattingRule) {
	p.rules = append(p.rules, rule)
}

// Format an S-Expression (with symbols quoted where necessary).  A list which
// fits on the current line is always kept flat.  Otherwise, its chunks whose
// priority is within the current level each begin a new line.  Formatting
// starts at level 0, with the level raised until every line fits (or the
// maximum level is reached).
func (p *Formatter) Format(e SExp) string {
	for level := uint(0); ; level++ {
		var text FormattedText
		//
		p.format(level, e, &text)
		//
		if text.MaxWidth() <= p.maxWidth || level == maxLevel {
			return text.String()
		}
	}
}

func (p *Formatter) format(level uint, e SExp, text *FormattedText) {
	flat := e.String(true)
	list, ok := e.(*List)
	//
	if !ok || text.LineWidth()+width(flat) <= p.maxWidth {
		text.WriteString(flat)
		return
	}
	//
	text.WriteString("(")
	//
	for i, chunk := range p.split(list) {
		if i > 0 && chunk.Priority <= level {
			text.Indent(1)
			text.NewLine()
			p.format(level, chunk.Contents, text)
			text.Indent(-1)
		} else {
			if i > 0 {
				text.WriteString(" ")
			}
			//
			p.format(level, chunk.Contents, text)
		}
	}
	//
	text.WriteString(")")
}

func (p *Formatter) split(list *List) []FormattingChunk {
	for _, rule := range p.rules {
		if chunks := rule.Split(list); chunks != nil {
			return chunks
		}
	}
	// Default rule
	chunks := make([]FormattingChunk, len(list.Elements))
	//
	for i, e := range list.Elements {
		chunks[i] = FormattingChunk{Never, e}
	}
	//
	return chunks
}
