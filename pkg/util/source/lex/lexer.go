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
package lex

import "github.com/consensys/go-huff/pkg/util/source"

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates the items matched by a scanner with a given tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer splits an input sequence into tokens using an ordered set of rules.
// Rules are tried in the order given, and the first rule which makes progress
// determines the next token.  Thus, where the matches of two rules overlap,
// the more specific rule must be given first.
//
// By default, lexing halts at the first item which no rule accepts.  When a
// recovery tag is set, each such item instead becomes a token of its own with
// that tag, hence lexing always reaches the end of the input.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Tag for items which no rule accepts (if set)
	recovery *uint
	// Set once some rule has matched the end of the input
	done bool
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: input, rules: rules}
}

// Recover sets the tag given to items which no rule accepts.
func (p *Lexer[T]) Recover(tag uint) *Lexer[T] {
	p.recovery = &tag
	return p
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items from the original sequence are yet to
// be consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(len(p.items) - p.index)
}

// Next returns the next token and advances the lexer, or returns false if no
// further token can be produced.  A rule which matches at the end of the input
// (e.g. Eof) produces an empty token, after which lexing is complete.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.done {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+n)
			token := Token{r.tag, source.NewSpan(p.index, end)}
			p.done = p.index == len(p.items)
			p.index = end
			//
			return token, true
		}
	}
	// Nothing matched
	if p.recovery != nil && p.index < len(p.items) {
		p.index++
		return Token{*p.recovery, source.NewSpan(p.index-1, p.index)}, true
	}
	//
	return Token{}, false
}

// Skip advances the lexer over (at most) n items without producing a token.
func (p *Lexer[T]) Skip(n uint) {
	p.index = min(len(p.items), p.index+int(n))
}

// Collect produces all remaining tokens in one go.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for token, ok := p.Next(); ok; token, ok = p.Next() {
		tokens = append(tokens, token)
	}
	//
	return tokens
}
