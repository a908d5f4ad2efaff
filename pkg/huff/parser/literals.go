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
	"math/big"
	"strings"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/util/source"
)

// Parse a name.  Since the lexer classifies words by spelling alone, a name
// may be spelled as an opcode (e.g. a parameter named "balance").
func (p *Parser) parseIdentifier() (*ast.Identifier, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if !lexer.IsWord(lookahead.Kind) {
		return nil, p.unexpected(source.ExpectedIdentifier, "identifier")
	}
	//
	p.next()
	//
	return &ast.Identifier{Base: ast.At(lookahead.Span), Name: p.string(lookahead)}, nil
}

// Parse a comma-separated list of names enclosed in parentheses, such as the
// template parameters of a macro.
func (p *Parser) parseIdentifierList() ([]*ast.Identifier, []source.SyntaxError) {
	var ids = []*ast.Identifier{}
	//
	if _, errs := p.expect(lexer.LBRACE); len(errs) > 0 {
		return nil, errs
	} else if p.match(lexer.RBRACE) {
		return ids, nil
	}
	//
	for {
		id, errs := p.parseIdentifier()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		ids = append(ids, id)
		//
		if !p.match(lexer.COMMA) {
			break
		}
	}
	//
	if _, errs := p.expect(lexer.RBRACE); len(errs) > 0 {
		return nil, errs
	}
	//
	return ids, nil
}

func (p *Parser) parseNumber() (*ast.NumberLiteral, []source.SyntaxError) {
	token, errs := p.expect(lexer.NUMBER)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	var (
		text   = p.string(token)
		digits = strings.ReplaceAll(text, "_", "")
		value  big.Int
		hex    = strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X")
		ok     bool
	)
	//
	if hex {
		_, ok = value.SetString(digits[2:], 16)
	} else {
		_, ok = value.SetString(digits, 10)
	}
	//
	if !ok {
		return nil, p.syntaxErrors(token, source.InvalidNumber, "invalid number \""+text+"\"")
	}
	//
	return &ast.NumberLiteral{Base: ast.At(token.Span), Text: text, Value: &value, Hex: hex}, nil
}

// Parse a stack count, such as in "takes(2)".  Counts must be decimal.
func (p *Parser) parseCount() (uint, []source.SyntaxError) {
	if _, errs := p.expect(lexer.LBRACE); len(errs) > 0 {
		return 0, errs
	}
	//
	number, errs := p.parseNumber()
	//
	if len(errs) > 0 {
		return 0, errs
	} else if number.Hex {
		return 0, p.syntaxErrorsAt(number.Span(), source.UnexpectedToken, "expected decimal count, found \""+number.Text+"\"")
	}
	//
	count, ok := number.Uint()
	//
	if !ok {
		return 0, p.syntaxErrorsAt(number.Span(), source.UnexpectedToken, "count \""+number.Text+"\" is too large")
	} else if _, errs := p.expect(lexer.RBRACE); len(errs) > 0 {
		return 0, errs
	}
	//
	return count, nil
}

func (p *Parser) parseString() (*ast.StringLiteral, []source.SyntaxError) {
	token, errs := p.expect(lexer.STRING)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	raw := p.string(token)
	//
	return &ast.StringLiteral{Base: ast.At(token.Span), Raw: raw, Value: unescape(raw)}, nil
}

// Remove the enclosing quotes from a string literal, and resolve any escapes.
// Unrecognised escapes resolve to the escaped character itself.
func unescape(raw string) string {
	var (
		builder strings.Builder
		runes   = []rune(raw)
		body    = runes[1 : len(runes)-1]
	)
	//
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 == len(body) {
			builder.WriteRune(body[i])
			continue
		}
		//
		i++
		//
		switch body[i] {
		case 'n':
			builder.WriteRune('\n')
		case 't':
			builder.WriteRune('\t')
		case 'r':
			builder.WriteRune('\r')
		case '0':
			builder.WriteRune(0)
		default:
			builder.WriteRune(body[i])
		}
	}
	//
	return builder.String()
}
