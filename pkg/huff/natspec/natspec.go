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
package natspec

import (
	"strings"
	"unicode"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/util/source"
)

// Parse a documentation comment into its tagged sections.  The raw text
// includes the comment markers, and the span locates it within the enclosing
// file (so that the names of "@param" sections can be given accurate spans).
// Untagged leading text forms a NOTICE section, whilst unrecognised tags are
// retained as text within the current section.
func Parse(kind ast.DocKind, raw string, span source.Span) *ast.Documentation {
	var (
		words    = split(kind, []rune(raw))
		sections []section
	)
	//
	for i := 0; i < len(words); i++ {
		w := words[i]
		//
		if tag, ok := tagOf(w.text); ok {
			s := section{tag: tag}
			// Parameter name (if present) immediately follows the tag
			if tag == ast.PARAM && i+1 < len(words) && isIdentifier(words[i+1].text) {
				i++
				s.param = identifier(words[i], span.Start())
			}
			//
			sections = append(sections, s)
			//
			continue
		} else if len(sections) == 0 {
			sections = append(sections, section{tag: ast.NOTICE})
		}
		//
		last := &sections[len(sections)-1]
		last.words = append(last.words, w)
	}
	//
	tags := make([]ast.DocSection, len(sections))
	//
	for i, s := range sections {
		tags[i] = ast.DocSection{Tag: s.tag, Param: s.param, Text: s.text()}
	}
	//
	return &ast.Documentation{Base: ast.At(span), DocKind: kind, Raw: raw, Tags: tags}
}

// A word of documentation, along with its offset (in characters) from the
// start of the comment and the line it appears on.
type word struct {
	text   string
	offset int
	line   int
}

type section struct {
	tag   ast.Tag
	param *ast.Identifier
	words []word
}

// Text is formed by joining words with a single space, except that line breaks
// between words are preserved.
func (p *section) text() string {
	var builder strings.Builder
	//
	for i, w := range p.words {
		if i > 0 && w.line != p.words[i-1].line {
			builder.WriteString("\n")
		} else if i > 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(w.text)
	}
	//
	return builder.String()
}

// Split the body of a comment into words, having removed the comment markers.
// For block comments, a leading '*' on each line is treated as decoration.
func split(kind ast.DocKind, text []rune) []word {
	var (
		words []word
		start = min(3, len(text))
		end   = len(text)
		line  = 0
		bol   = true
	)
	//
	if kind == ast.BLOCK_DOC && end-start >= 2 && text[end-2] == '*' && text[end-1] == '/' {
		end -= 2
	}
	//
	for i := start; i < end; {
		switch {
		case text[i] == '\n':
			line++
			bol = true
			i++
		case unicode.IsSpace(text[i]):
			i++
		case bol && kind == ast.BLOCK_DOC && text[i] == '*':
			bol = false
			i++
		default:
			j := i
			for j < end && !unicode.IsSpace(text[j]) {
				j++
			}
			//
			words = append(words, word{string(text[i:j]), i, line})
			bol = false
			i = j
		}
	}
	//
	return words
}

func tagOf(text string) (ast.Tag, bool) {
	if name, ok := strings.CutPrefix(text, "@"); ok {
		return ast.TagOf(name)
	}
	//
	return 0, false
}

func identifier(w word, base int) *ast.Identifier {
	start := base + w.offset
	span := source.NewSpan(start, start+len([]rune(w.text)))
	//
	return &ast.Identifier{Base: ast.At(span), Name: w.text}
}

func isIdentifier(text string) bool {
	for i, c := range text {
		if c != '_' && !unicode.IsLetter(c) && (i == 0 || !unicode.IsDigit(c)) {
			return false
		}
	}
	//
	return text != ""
}
