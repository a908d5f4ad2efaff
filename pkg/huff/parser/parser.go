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
package parser

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/huff/natspec"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/consensys/go-huff/pkg/util/source/lex"
)

// Parse accepts a given Huff source file and parses it into a syntax tree.  A
// tree is always returned, along with any syntax errors arising (ordered by
// their position in the file).  Parsing is error tolerant at the top level: an
// item which fails to parse is retained as an ERROR item, and parsing resumes
// at the next "#define", "#include", "#[" or documentation comment.
func Parse(srcfile *source.File) (*ast.SourceFile, []source.SyntaxError) {
	return NewParser(srcfile).Parse()
}

// Parser is a recursive descent parser for Huff.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Spans of malformed tokens, which have already been reported by the
	// lexer.
	malformed map[source.Span]bool
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	return &Parser{srcfile, nil, nil, 0}
}

// Parse the given source file into a sequence of zero or more items, along with
// any syntax errors.
func (p *Parser) Parse() (*ast.SourceFile, []source.SyntaxError) {
	var (
		items  []ast.Item
		errors []source.SyntaxError
	)
	// Convert source file into tokens
	p.tokens, errors = lexer.Lex(*p.srcfile)
	p.malformed = make(map[source.Span]bool)
	p.index = 0
	//
	for _, err := range errors {
		p.malformed[err.Span()] = true
	}
	// Continue going until all consumed
	for p.peek().Kind != lexer.END_OF {
		start := p.index
		item, errs := p.parseItem()
		//
		if len(errs) > 0 {
			errors = append(errors, p.unreported(errs)...)
			item = p.recover(start)
		}
		//
		items = append(items, item)
	}
	//
	slices.SortStableFunc(errors, func(l, r source.SyntaxError) int {
		return cmp.Compare(l.Span().Start(), r.Span().Start())
	})
	//
	return ast.NewSourceFile(p.srcfile.Length(), items), errors
}

func (p *Parser) parseItem() (ast.Item, []source.SyntaxError) {
	lookahead := p.peek()
	//
	switch lookahead.Kind {
	case lexer.COMMENT_LINE, lexer.COMMENT_BLOCK:
		return p.parseComment(), nil
	case lexer.DOC_LINE, lexer.DOC_BLOCK:
		return p.parseDocumentation(), nil
	case lexer.INCLUDE:
		return p.parseInclude()
	case lexer.DECORATOR:
		return p.parseDecorator()
	case lexer.DEFINE:
		return p.parseDefine()
	default:
		return nil, p.unexpected(source.UnexpectedToken, "\"#define\", \"#include\" or \"#[\"")
	}
}

func (p *Parser) parseComment() *ast.Comment {
	token := p.peek()
	p.index++
	//
	return &ast.Comment{Base: ast.At(token.Span), Text: p.string(token), Block: token.Kind == lexer.COMMENT_BLOCK}
}

func (p *Parser) parseDocumentation() *ast.Documentation {
	var (
		token = p.peek()
		kind  = ast.LINE_DOC
	)
	//
	if token.Kind == lexer.DOC_BLOCK {
		kind = ast.BLOCK_DOC
	}
	//
	p.index++
	//
	return natspec.Parse(kind, p.string(token), token.Span)
}

// Recover from a syntax error in the item starting at a given token, by
// skipping to the next top-level boundary.  Documentation comments are only
// boundaries outside of a body, since they can appear within bodies.  The
// skipped text is returned as an error item.
func (p *Parser) recover(start int) *ast.ErrorItem {
	var depth = 0
	//
	p.index = start
	//
	for {
		switch p.peek().Kind {
		case lexer.LCURLY:
			depth++
		case lexer.RCURLY:
			depth = max(0, depth-1)
		}
		//
		p.index++
		//
		if p.atBoundary(depth) {
			break
		}
	}
	//
	span := p.spanOf(start, p.index-1)
	//
	return &ast.ErrorItem{Base: ast.At(span), Text: p.srcfile.Text(span)}
}

func (p *Parser) atBoundary(depth int) bool {
	switch p.peek().Kind {
	case lexer.END_OF, lexer.DEFINE, lexer.INCLUDE, lexer.DECORATOR:
		return true
	case lexer.DOC_LINE, lexer.DOC_BLOCK:
		return depth == 0
	default:
		return false
	}
}

// Remove errors reported against malformed tokens, since the lexer has already
// reported these.
func (p *Parser) unreported(errs []source.SyntaxError) []source.SyntaxError {
	return slices.DeleteFunc(errs, func(e source.SyntaxError) bool {
		return !e.Kind().IsLexical() && p.malformed[e.Span()]
	})
}

// ============================================================================
// Helpers
// ============================================================================

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Peek returns the next token, including any comments.
func (p *Parser) peek() lex.Token {
	return p.tokens[p.index]
}

// Skip determines the index of the next token which is not a comment (or
// documentation).
func (p *Parser) skip() int {
	index := p.index
	//
	for lexer.IsTrivia(p.tokens[index].Kind) {
		index++
	}
	//
	return index
}

// Lookahead returns the next token, ignoring comments.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.skip()]
}

// Next advances past the lookahead token, returning it.
func (p *Parser) next() lex.Token {
	index := p.skip()
	p.index = index + 1
	//
	return p.tokens[index]
}

// FollowedBy checks whether the token immediately after the lookahead has a
// given kind.  Comments are not skipped here.
func (p *Parser) followedBy(kind uint) bool {
	index := p.skip()
	//
	if p.tokens[index].Kind == lexer.END_OF {
		return false
	}
	//
	return p.tokens[index+1].Kind == kind
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		errKind := source.UnexpectedToken
		//
		if kind == lexer.IDENTIFIER {
			errKind = source.ExpectedIdentifier
		}
		//
		return lookahead, p.unexpected(errKind, lexer.Describe(kind))
	}
	//
	return p.next(), nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.next()
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// FollowsKeyword checks whether the next token is a word with the given
// spelling.  Keywords are not reserved, hence are lexed as words.
func (p *Parser) followsKeyword(keyword string) bool {
	lookahead := p.lookahead()
	return lexer.IsWord(lookahead.Kind) && p.string(lookahead) == keyword
}

// Match attempts to match the given keyword.
func (p *Parser) matchKeyword(keyword string) bool {
	if p.followsKeyword(keyword) {
		p.next()
		return true
	}
	//
	return false
}

// ExpectKeyword returns an error if the next token is not the given keyword.
func (p *Parser) expectKeyword(keyword string) []source.SyntaxError {
	if !p.matchKeyword(keyword) {
		return p.unexpected(source.ExpectedKeyword, fmt.Sprintf("%q", keyword))
	}
	//
	return nil
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

// Span of the nodes parsed since a given token, which excludes any trailing
// comments.
func (p *Parser) spanFrom(firstToken int) source.Span {
	return p.spanOf(firstToken, p.index-1)
}

// Unexpected reports the lookahead token as not matching what was expected.
func (p *Parser) unexpected(kind source.ErrorKind, expected string) []source.SyntaxError {
	lookahead := p.lookahead()
	msg := fmt.Sprintf("expected %s, found %s", expected, p.describe(lookahead))
	//
	return p.syntaxErrors(lookahead, kind, msg)
}

// Describe a token for use in an error message, which includes its text where
// that is helpful.
func (p *Parser) describe(token lex.Token) string {
	switch {
	case lexer.IsWord(token.Kind), token.Kind == lexer.NUMBER, token.Kind == lexer.CONSTANT_REF:
		return fmt.Sprintf("%s %q", lexer.Describe(token.Kind), p.string(token))
	default:
		return lexer.Describe(token.Kind)
	}
}

func (p *Parser) syntaxErrors(token lex.Token, kind source.ErrorKind, msg string) []source.SyntaxError {
	return p.syntaxErrorsAt(token.Span, kind, msg)
}

func (p *Parser) syntaxErrorsAt(span source.Span, kind source.ErrorKind, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(span, kind, msg)}
}
