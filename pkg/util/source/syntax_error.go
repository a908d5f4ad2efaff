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

import (
	"fmt"
)

// ErrorKind is a machine-readable classification of a syntax error.  The names
// returned by String() are stable, since external tooling binds to them.
type ErrorKind uint

const (
	// UnknownText signals characters which no lexing rule accepts.
	UnknownText ErrorKind = iota
	// UnterminatedString signals a string literal with no closing quote.
	UnterminatedString
	// UnterminatedBlockComment signals a "/*" with no matching "*/".
	UnterminatedBlockComment
	// InvalidNumber signals a malformed numeric literal (e.g. "0x" or "1_").
	InvalidNumber
	// ExpectedKeyword signals that a specific keyword was required.
	ExpectedKeyword
	// ExpectedIdentifier signals that a name was required.
	ExpectedIdentifier
	// UnexpectedToken signals a token which cannot appear in this position.
	UnexpectedToken
	// UnbalancedBraces signals a body which was not closed before the end of
	// the file.
	UnbalancedBraces
	// BuiltinArityMismatch signals a builtin function applied to the wrong
	// number (or kind) of arguments.
	BuiltinArityMismatch
)

var errorKindNames = []string{
	"UnknownText",
	"UnterminatedString",
	"UnterminatedBlockComment",
	"InvalidNumber",
	"ExpectedKeyword",
	"ExpectedIdentifier",
	"UnexpectedToken",
	"UnbalancedBraces",
	"BuiltinArityMismatch",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	//
	return fmt.Sprintf("ErrorKind(%d)", uint(k))
}

// IsLexical determines whether this kind of error arises from the lexer (as
// opposed to the parser).
func (k ErrorKind) IsLexical() bool {
	return k <= InvalidNumber
}

// SyntaxError is a structured error which retains the index into the original
// string where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Character index into string being parsed where error arose.
	span Span
	// Classification of this error
	kind ErrorKind
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Kind returns the classification of this error.
func (p *SyntaxError) Kind() ErrorKind {
	return p.kind
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// ByteSpan returns the span of the original UTF-8 input on which this error is
// reported.
func (p *SyntaxError) ByteSpan() Span {
	return p.srcfile.ByteSpan(p.span)
}

// Position returns the line and column at which this error starts.
func (p *SyntaxError) Position() Position {
	return p.srcfile.Position(p.span.start)
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	pos := p.Position()
	return fmt.Sprintf("%s:%d:%d: %s: %s", p.srcfile.Filename(), pos.Line, pos.Column, p.kind, p.msg)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated. Observe that, if the position is beyond the bounds
// of the source file then the last physical line is returned.  Also, the
// returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
