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
	"strconv"
	"strings"
	"unicode"
)

// SExp is an S-Expression, which is either a *List or a *Symbol.
type SExp interface {
	// String renders this S-Expression on a single line.  When quote is set,
	// symbols which could not be read back as a single symbol are quoted.
	String(quote bool) string
	// write appends the single line rendering onto a builder.
	write(builder *strings.Builder, quote bool)
}

// List is a parenthesised sequence of zero or more S-Expressions.
type List struct {
	Elements []SExp
}

// NewList creates a new list from a given array of S-Expressions.
func NewList(elements ...SExp) *List {
	return &List{elements}
}

// Append one or more elements onto the end of this list.
func (l *List) Append(elements ...SExp) {
	l.Elements = append(l.Elements, elements...)
}

// Head returns the leading symbol of this list, or "" if it does not begin
// with a symbol.
func (l *List) Head() string {
	if len(l.Elements) == 0 {
		return ""
	} else if s, ok := l.Elements[0].(*Symbol); ok {
		return s.Value
	}
	//
	return ""
}

func (l *List) String(quote bool) string {
	var builder strings.Builder
	l.write(&builder, quote)
	//
	return builder.String()
}

func (l *List) write(builder *strings.Builder, quote bool) {
	builder.WriteByte('(')
	//
	for i, e := range l.Elements {
		if i > 0 {
			builder.WriteByte(' ')
		}
		//
		e.write(builder, quote)
	}
	//
	builder.WriteByte(')')
}

// Symbol is an atomic S-Expression.
type Symbol struct {
	Value string
}

// NewSymbol creates a new symbol from a given string.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

func (s *Symbol) String(quote bool) string {
	if quote && needsQuote(s.Value) {
		return strconv.Quote(s.Value)
	}
	//
	return s.Value
}

func (s *Symbol) write(builder *strings.Builder, quote bool) {
	builder.WriteString(s.String(quote))
}

// A symbol must be quoted if it is empty, or contains a delimiter.
func needsQuote(value string) bool {
	return value == "" || strings.ContainsFunc(value, func(r rune) bool {
		return r == '(' || r == ')' || r == '"' || unicode.IsSpace(r)
	})
}
