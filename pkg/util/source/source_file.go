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
package source

import "slices"

// File is a named source file held in memory as characters (not bytes), such
// that all offsets and spans into it count characters.  The byte offset of
// each character within the original UTF-8 encoding is retained, so spans can
// be reported in bytes for tools which slice the raw input.
type File struct {
	// File name for this source file.  This is used only for diagnostics.
	filename string
	// Contents of this file.
	contents []rune
	// Byte offset of each character, plus the total length in bytes.
	offsets []int
	// Offset at which each line starts (hence the first entry is always 0).
	lines []int
}

// NewSourceFile constructs a new source file from a given byte array, which is
// assumed to be UTF-8 encoded.  Each invalid byte becomes one U+FFFD character.
func NewSourceFile(filename string, bytes []byte) *File {
	var (
		text     = string(bytes)
		contents = make([]rune, 0, len(text))
		offsets  = make([]int, 0, len(text)+1)
		lines    = []int{0}
	)
	//
	for offset, c := range text {
		contents = append(contents, c)
		offsets = append(offsets, offset)
		//
		if c == '\n' {
			lines = append(lines, len(contents))
		}
	}
	//
	offsets = append(offsets, len(text))
	//
	return &File{filename, contents, offsets, lines}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Length returns the number of characters in this source file.
func (s *File) Length() int {
	return len(s.contents)
}

// Text returns the text covered by a given span of this file.  Spans which
// extend beyond the end of the file are clipped.
func (s *File) Text(span Span) string {
	start := min(span.start, len(s.contents))
	end := min(span.end, len(s.contents))
	//
	return string(s.contents[start:end])
}

// ByteOffset converts a character offset into the corresponding offset within
// the UTF-8 encoding of this file.  Offsets beyond the end are clipped.
func (s *File) ByteOffset(offset int) int {
	return s.offsets[max(0, min(offset, len(s.contents)))]
}

// ByteSpan converts a span of characters into the corresponding span of bytes.
func (s *File) ByteSpan(span Span) Span {
	return Span{s.ByteOffset(span.start), s.ByteOffset(span.end)}
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given kind and message.
func (s *File) SyntaxError(span Span, kind ErrorKind, msg string) *SyntaxError {
	return &SyntaxError{s, span, kind, msg}
}

// Position determines the line and column of a given character offset within
// this file.  Offsets beyond the end of the file are reported at the end of the
// last line.
func (s *File) Position(offset int) Position {
	offset = min(offset, len(s.contents))
	index := s.lineOf(offset)
	//
	return Position{index + 1, offset - s.lines[index] + 1}
}

// FindFirstEnclosingLine determines the line in this source file containing
// the start of a span.  If the span starts beyond the end of the file then the
// last physical line is returned.  Also, the returned line is not guaranteed
// to enclose the entire span, as these can cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	index := s.lineOf(min(span.start, len(s.contents)))
	end := len(s.contents)
	// A line ends just before the newline which starts the next one
	if index+1 < len(s.lines) {
		end = s.lines[index+1] - 1
	}
	//
	return Line{s.contents, Span{s.lines[index], end}, index + 1}
}

// Index (counting from 0) of the line containing a given offset.
func (s *File) lineOf(offset int) int {
	index, found := slices.BinarySearch(s.lines, offset)
	if !found {
		index--
	}
	//
	return index
}

// Position identifies a point within a source file by line and column, both
// counting from 1.  Columns are measured in characters, not bytes.
type Position struct {
	Line   int
	Column int
}

// Line is a single physical line of a source file, excluding its terminating
// newline.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a file
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the offset of the first character of this line.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}
