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
	"strconv"
	"strings"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/util/source"
)

// Parse a parenthesised, comma-separated list of parameters, such as
// "(address indexed from, uint256)".
func (p *Parser) parseParameterList() ([]*ast.Parameter, []source.SyntaxError) {
	var params = []*ast.Parameter{}
	//
	if _, errs := p.expect(lexer.LBRACE); len(errs) > 0 {
		return nil, errs
	} else if p.match(lexer.RBRACE) {
		return params, nil
	}
	//
	for {
		param, errs := p.parseParameter()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		params = append(params, param)
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
	return params, nil
}

// Parse a parameter of the form "<type> [location] [indexed] [name]", where the
// location and "indexed" modifiers may be given in either order (but at most
// once each).
func (p *Parser) parseParameter() (*ast.Parameter, []source.SyntaxError) {
	var (
		start = p.skip()
		param = &ast.Parameter{}
		errs  []source.SyntaxError
	)
	//
	if param.Type, errs = p.parseType(); len(errs) > 0 {
		return nil, errs
	}
	// Parse modifiers
	for lexer.IsWord(p.lookahead().Kind) {
		var (
			token   = p.lookahead()
			keyword = p.string(token)
		)
		//
		if location, ok := ast.LocationOf(keyword); ok {
			if param.Location != ast.NO_LOCATION {
				return nil, p.syntaxErrors(token, source.UnexpectedToken, "duplicate data location \""+keyword+"\"")
			}
			//
			param.Location = location
		} else if keyword == "indexed" {
			if param.Indexed {
				return nil, p.syntaxErrors(token, source.UnexpectedToken, "duplicate \"indexed\"")
			}
			//
			param.Indexed = true
		} else {
			break
		}
		//
		p.next()
	}
	// Parse optional name
	if lexer.IsWord(p.lookahead().Kind) {
		if param.Name, errs = p.parseIdentifier(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	param.Range = p.spanFrom(start)
	//
	return param, nil
}

// Parse a type, such as "uint256" or "bytes32[2][]".  Array suffixes must
// immediately follow the type, which distinguishes them from constant
// references.
func (p *Parser) parseType() (*ast.TypeExpr, []source.SyntaxError) {
	var (
		start     = p.skip()
		lookahead = p.lookahead()
		primitive = p.string(lookahead)
		dims      []ast.ArrayDim
	)
	//
	if !lexer.IsWord(lookahead.Kind) || !isPrimitive(primitive) {
		return nil, p.unexpected(source.UnexpectedToken, "type")
	}
	//
	p.next()
	//
	for p.peek().Kind == lexer.LSQUARE && p.tokens[p.index-1].Span.Adjacent(p.peek().Span) {
		p.index++
		//
		if p.match(lexer.RSQUARE) {
			dims = append(dims, ast.ArrayDim{Dynamic: true})
			continue
		}
		//
		size, errs := p.parseNumber()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		n, ok := size.Uint()
		if !ok {
			return nil, p.syntaxErrorsAt(size.Span(), source.UnexpectedToken, "array size \""+size.Text+"\" is too large")
		} else if _, errs := p.expect(lexer.RSQUARE); len(errs) > 0 {
			return nil, errs
		}
		//
		dims = append(dims, ast.ArrayDim{Size: n})
	}
	//
	return &ast.TypeExpr{Base: ast.At(p.spanFrom(start)), Primitive: primitive, Dims: dims}, nil
}

// Determine whether a given name is a primitive type.  Sized integers are
// permitted in multiples of 8 bits up to 256, and fixed-size byte arrays from 1
// to 32 bytes.
func isPrimitive(name string) bool {
	switch name {
	case "address", "bool", "string", "bytes", "int", "uint":
		return true
	}
	//
	if n, ok := sizeOf(name, "bytes"); ok {
		return n >= 1 && n <= 32
	} else if n, ok := sizeOf(name, "uint"); ok {
		return n%8 == 0 && n >= 8 && n <= 256
	} else if n, ok := sizeOf(name, "int"); ok {
		return n%8 == 0 && n >= 8 && n <= 256
	}
	//
	return false
}

// Extract the size from a sized type name (e.g. 32 from "bytes32").  Leading
// zeros are not permitted.
func sizeOf(name string, prefix string) (int, bool) {
	if digits, ok := strings.CutPrefix(name, prefix); ok {
		n, err := strconv.Atoi(digits)
		//
		if err == nil && strconv.Itoa(n) == digits {
			return n, true
		}
	}
	//
	return 0, false
}
