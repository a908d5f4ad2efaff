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
	"fmt"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/util/source"
)

// Parse a declaration introduced by "#define", dispatching on the kind of
// declaration.
func (p *Parser) parseDefine() (ast.Item, []source.SyntaxError) {
	var start = p.index
	//
	if _, errs := p.expect(lexer.DEFINE); len(errs) > 0 {
		return nil, errs
	}
	//
	lookahead := p.lookahead()
	//
	if !lexer.IsWord(lookahead.Kind) {
		return nil, p.unexpected(source.ExpectedKeyword, "declaration kind")
	}
	//
	switch p.string(lookahead) {
	case "macro":
		return p.parseMacro(start)
	case "fn":
		return p.parseFn(start)
	case "jumptable":
		return p.parseJumptable(start, false)
	case "jumptable__packed":
		return p.parseJumptable(start, true)
	case "table":
		return p.parseTable(start)
	case "test":
		return p.parseTest(start)
	case "constant":
		return p.parseConstant(start)
	case "error":
		return p.parseError(start)
	case "function":
		return p.parseFunction(start)
	case "event":
		return p.parseEvent(start)
	default:
		return nil, p.unexpected(source.ExpectedKeyword, "declaration kind")
	}
}

// Parse "macro NAME(params) = takes(N) returns(M) { body }", where everything
// after the name is optional.
func (p *Parser) parseMacro(start int) (ast.Item, []source.SyntaxError) {
	var (
		macro = &ast.MacroDef{}
		errs  []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if macro.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(lexer.LBRACE) {
		if macro.TemplateParams, errs = p.parseIdentifierList(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if macro.StackArity, errs = p.parseStackArity(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(lexer.LCURLY) {
		if macro.Body, errs = p.parseBody(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	macro.Range = p.spanFrom(start)
	//
	return macro, nil
}

// Parse "fn NAME(param) = takes(N) returns(M) { body }", which has the same
// shape as a macro except that at most one parameter is permitted.
func (p *Parser) parseFn(start int) (ast.Item, []source.SyntaxError) {
	var (
		fn     = &ast.FnDef{}
		params []*ast.Identifier
		errs   []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if fn.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(lexer.LBRACE) {
		if params, errs = p.parseIdentifierList(); len(errs) > 0 {
			return nil, errs
		} else if len(params) > 1 {
			return nil, p.syntaxErrorsAt(params[1].Span(), source.UnexpectedToken,
				"expected at most one parameter for fn")
		} else if len(params) == 1 {
			fn.Param = params[0]
		}
	}
	//
	if fn.StackArity, errs = p.parseStackArity(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(lexer.LCURLY) {
		if fn.Body, errs = p.parseBody(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	fn.Range = p.spanFrom(start)
	//
	return fn, nil
}

// Parse the optional "= takes(N) returns(M)" clause of a macro or fn, where
// "returns(M)" is itself optional.
func (p *Parser) parseStackArity() (ast.StackArity, []source.SyntaxError) {
	var (
		arity ast.StackArity
		errs  []source.SyntaxError
	)
	//
	if !p.match(lexer.EQUALS) {
		if p.followsKeyword("takes") {
			return arity, p.unexpected(source.UnexpectedToken, lexer.Describe(lexer.EQUALS))
		} else if p.followsKeyword("returns") {
			return arity, p.unexpected(source.ExpectedKeyword, "\"takes\"")
		}
		// Clause omitted
		return arity, nil
	} else if errs = p.expectKeyword("takes"); len(errs) > 0 {
		return arity, errs
	} else if arity.Takes, errs = p.parseCount(); len(errs) > 0 {
		return arity, errs
	}
	//
	arity.HasTakes = true
	//
	if p.matchKeyword("returns") {
		if arity.Returns, errs = p.parseCount(); len(errs) > 0 {
			return arity, errs
		}
		//
		arity.HasReturns = true
	}
	//
	return arity, nil
}

// Parse "jumptable NAME { label* }" or "jumptable__packed NAME { label* }".
// The body of a packed jumptable may be omitted, giving an empty table.
func (p *Parser) parseJumptable(start int, packed bool) (ast.Item, []source.SyntaxError) {
	var (
		table = &ast.JumptableDef{Packed: packed}
		errs  []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if table.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	if !packed || p.follows(lexer.LCURLY) {
		if table.Entries, errs = p.parseJumptableBody(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	table.Range = p.spanFrom(start)
	//
	return table, nil
}

// Parse "table NAME { body }".
func (p *Parser) parseTable(start int) (ast.Item, []source.SyntaxError) {
	var (
		table = &ast.TableDef{}
		errs  []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if table.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if table.Body, errs = p.parseBody(); len(errs) > 0 {
		return nil, errs
	}
	//
	table.Range = p.spanFrom(start)
	//
	return table, nil
}

// Parse "test NAME(params) = { body }", where the parameter list is optional.
func (p *Parser) parseTest(start int) (ast.Item, []source.SyntaxError) {
	var (
		test = &ast.TestDef{}
		errs []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if test.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(lexer.LBRACE) {
		if test.Params, errs = p.parseIdentifierList(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if _, errs = p.expect(lexer.EQUALS); len(errs) > 0 {
		return nil, errs
	} else if test.Body, errs = p.parseBody(); len(errs) > 0 {
		return nil, errs
	}
	//
	test.Range = p.spanFrom(start)
	//
	return test, nil
}

// Parse "constant NAME = value", where the value is a number, a builtin call
// (e.g. "FREE_STORAGE_POINTER()") or a macro call.
func (p *Parser) parseConstant(start int) (ast.Item, []source.SyntaxError) {
	var (
		constant = &ast.ConstantDef{}
		errs     []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if constant.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(lexer.EQUALS); len(errs) > 0 {
		return nil, errs
	}
	//
	lookahead := p.lookahead()
	//
	switch {
	case lookahead.Kind == lexer.NUMBER:
		constant.Value, errs = p.parseNumber()
	case p.followsBuiltin():
		constant.Value, errs = p.parseBuiltin()
	case lookahead.Kind == lexer.IDENTIFIER && p.followedBy(lexer.LBRACE):
		constant.Value, errs = p.parseMacroCall()
	default:
		errs = p.unexpected(source.UnexpectedToken, "number, builtin or macro call")
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	constant.Range = p.spanFrom(start)
	//
	return constant, nil
}

// Parse "error NAME(params)".
func (p *Parser) parseError(start int) (ast.Item, []source.SyntaxError) {
	var (
		decl = &ast.ErrorDef{}
		errs []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if decl.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if decl.Parameters, errs = p.parseParameterList(); len(errs) > 0 {
		return nil, errs
	}
	//
	decl.Range = p.spanFrom(start)
	//
	return decl, nil
}

// Parse "event NAME(params)".
func (p *Parser) parseEvent(start int) (ast.Item, []source.SyntaxError) {
	var (
		decl = &ast.EventDef{}
		errs []source.SyntaxError
	)
	// Advance past keyword
	p.next()
	//
	if decl.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if decl.Parameters, errs = p.parseParameterList(); len(errs) > 0 {
		return nil, errs
	}
	//
	decl.Range = p.spanFrom(start)
	//
	return decl, nil
}

// Parse "function NAME(params) [visibility] [mutability] [returns (params)]".
// Visibility, when given, must precede mutability.
func (p *Parser) parseFunction(start int) (ast.Item, []source.SyntaxError) {
	var (
		fn   = &ast.FunctionDef{}
		errs []source.SyntaxError
		ok   bool
	)
	// Advance past keyword
	p.next()
	//
	if fn.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if fn.Parameters, errs = p.parseParameterList(); len(errs) > 0 {
		return nil, errs
	}
	//
	if fn.Visibility, ok = ast.VisibilityOf(p.string(p.lookahead())); ok {
		p.next()
	}
	//
	if fn.Mutability, ok = ast.MutabilityOf(p.string(p.lookahead())); ok {
		p.next()
		// Check for misplaced visibility
		if _, ok := ast.VisibilityOf(p.string(p.lookahead())); ok {
			lookahead := p.lookahead()
			msg := fmt.Sprintf("visibility %q must precede mutability %q", p.string(lookahead), fn.Mutability)
			//
			return nil, p.syntaxErrors(lookahead, source.UnexpectedToken, msg)
		}
	}
	//
	if p.matchKeyword("returns") {
		if fn.Returns, errs = p.parseParameterList(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	fn.Range = p.spanFrom(start)
	//
	return fn, nil
}
