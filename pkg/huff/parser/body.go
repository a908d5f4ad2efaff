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
	"github.com/consensys/go-huff/pkg/huff/evm"
	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/consensys/go-huff/pkg/util/source/lex"
)

// Parse a braced macro body.  Comments and documentation within the body are
// retained as body items.  Running into the start of another top-level item (or
// the end of the file) before the closing brace is an unbalanced brace.
func (p *Parser) parseBody() (*ast.MacroBody, []source.SyntaxError) {
	var (
		body = &ast.MacroBody{Items: []ast.BodyItem{}}
		item ast.BodyItem
	)
	//
	lcurly, errs := p.expect(lexer.LCURLY)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	start := p.index - 1
	//
	for !p.closes() {
		if item, errs = p.parseBodyItem(); len(errs) > 0 {
			return nil, errs
		}
		//
		body.Items = append(body.Items, item)
	}
	//
	if errs = p.unbalanced(lcurly); len(errs) > 0 {
		return nil, errs
	}
	// Advance past "}"
	p.index++
	//
	body.Range = p.spanFrom(start)
	//
	return body, nil
}

// Closes checks whether the next (raw) token ends the current body, either
// properly or not.
func (p *Parser) closes() bool {
	switch p.peek().Kind {
	case lexer.RCURLY, lexer.END_OF, lexer.DEFINE, lexer.INCLUDE, lexer.DECORATOR:
		return true
	default:
		return false
	}
}

// Unbalanced reports an error when the body opened by a given brace has not
// been properly closed.
func (p *Parser) unbalanced(lcurly lex.Token) []source.SyntaxError {
	if p.peek().Kind == lexer.RCURLY {
		return nil
	}
	//
	msg := fmt.Sprintf("unbalanced braces: expected \"}\", found %s", p.describe(p.peek()))
	//
	return p.syntaxErrors(lcurly, source.UnbalancedBraces, msg)
}

// Parse a single statement of a macro body.  Words are classified using the
// token which immediately follows them.
func (p *Parser) parseBodyItem() (ast.BodyItem, []source.SyntaxError) {
	lookahead := p.peek()
	//
	switch lookahead.Kind {
	case lexer.COMMENT_LINE, lexer.COMMENT_BLOCK:
		return p.parseComment(), nil
	case lexer.DOC_LINE, lexer.DOC_BLOCK:
		return p.parseDocumentation(), nil
	case lexer.NUMBER:
		return p.parseNumber()
	case lexer.CONSTANT_REF:
		return p.parseConstantRef(), nil
	case lexer.LANGLE:
		return p.parseTemplateRef()
	case lexer.OPCODE, lexer.IDENTIFIER:
		return p.parseWord()
	default:
		return nil, p.unexpected(source.UnexpectedToken, "opcode, macro call or label")
	}
}

func (p *Parser) parseWord() (ast.BodyItem, []source.SyntaxError) {
	var (
		lookahead = p.lookahead()
		text      = p.string(lookahead)
	)
	//
	switch {
	case p.followsBuiltin():
		return p.parseBuiltin()
	case p.followedBy(lexer.COLON):
		// Label definition (e.g. "loop:")
		name, _ := p.parseIdentifier()
		p.next()
		//
		return &ast.JumpLabel{Base: ast.At(name.Span().Join(p.tokens[p.index-1].Span)), Name: name}, nil
	case lookahead.Kind == lexer.OPCODE:
		p.next()
		//
		return &ast.OpcodeCall{Base: ast.At(lookahead.Span), Opcode: evm.MustLookup(text)}, nil
	case p.followedBy(lexer.LBRACE):
		return p.parseMacroCall()
	case p.followedByJump():
		name, _ := p.parseIdentifier()
		//
		return &ast.JumpDest{Base: ast.At(name.Span()), Name: name}, nil
	default:
		// Bare reference (e.g. a jump destination pushed for later use)
		name, _ := p.parseIdentifier()
		//
		return &ast.MacroCall{Base: ast.At(name.Span()), Name: name}, nil
	}
}

// Check whether the word after the lookahead is "jump" or "jumpi".
func (p *Parser) followedByJump() bool {
	if !p.followedBy(lexer.OPCODE) {
		return false
	}
	//
	opcode, _ := evm.Lookup(p.string(p.tokens[p.skip()+1]))
	//
	return opcode.IsJump()
}

// Parse a macro invocation, such as "TRANSFER(0x04, <amount>)".  The argument
// list may be empty.
func (p *Parser) parseMacroCall() (*ast.MacroCall, []source.SyntaxError) {
	var (
		start = p.skip()
		call  = &ast.MacroCall{Invoked: true}
		errs  []source.SyntaxError
	)
	//
	if call.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if call.Args, errs = p.parseArguments(p.parseMacroArgument); len(errs) > 0 {
		return nil, errs
	}
	//
	call.Range = p.spanFrom(start)
	//
	return call, nil
}

func (p *Parser) parseMacroArgument() (ast.Argument, []source.SyntaxError) {
	switch lookahead := p.lookahead(); {
	case lookahead.Kind == lexer.NUMBER:
		return p.parseNumber()
	case lexer.IsWord(lookahead.Kind):
		return p.parseIdentifier()
	case lookahead.Kind == lexer.CONSTANT_REF:
		return p.parseConstantRef(), nil
	case lookahead.Kind == lexer.LANGLE:
		return p.parseTemplateRef()
	default:
		return nil, p.unexpected(source.UnexpectedToken, "macro argument")
	}
}

// Parse a parenthesised, comma-separated list of arguments using a given
// function to parse each argument.  This returns an empty (but non-nil) slice
// for "()".
func (p *Parser) parseArguments(parseArg func() (ast.Argument, []source.SyntaxError)) ([]ast.Argument,
	[]source.SyntaxError) {
	var args = []ast.Argument{}
	//
	if _, errs := p.expect(lexer.LBRACE); len(errs) > 0 {
		return nil, errs
	} else if p.match(lexer.RBRACE) {
		return args, nil
	}
	//
	for {
		arg, errs := parseArg()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		args = append(args, arg)
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
	return args, nil
}

// Parse "[NAME]", where the name excludes the brackets.
func (p *Parser) parseConstantRef() *ast.ConstantRef {
	token := p.next()
	span := source.NewSpan(token.Span.Start()+1, token.Span.End()-1)
	name := &ast.Identifier{Base: ast.At(span), Name: p.srcfile.Text(span)}
	//
	return &ast.ConstantRef{Base: ast.At(token.Span), Name: name}
}

// Parse "<name>".
func (p *Parser) parseTemplateRef() (*ast.TemplateParamRef, []source.SyntaxError) {
	var (
		start = p.skip()
		ref   = &ast.TemplateParamRef{}
		errs  []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.LANGLE); len(errs) > 0 {
		return nil, errs
	} else if ref.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(lexer.RANGLE); len(errs) > 0 {
		return nil, errs
	}
	//
	ref.Range = p.spanFrom(start)
	//
	return ref, nil
}

// Check whether a builtin call follows, which is the name of a builtin
// immediately followed by "(".
func (p *Parser) followsBuiltin() bool {
	_, ok := ast.BuiltinOf(p.string(p.lookahead()))
	return ok && lexer.IsWord(p.lookahead().Kind) && p.followedBy(lexer.LBRACE)
}

// Parse a builtin call, such as "__FUNC_SIG(transfer)", and check its
// arguments against those which the builtin accepts.
func (p *Parser) parseBuiltin() (*ast.BuiltinCall, []source.SyntaxError) {
	var (
		start      = p.skip()
		builtin, _ = ast.BuiltinOf(p.string(p.next()))
		args, errs = p.parseArguments(p.parseLiteralArgument)
	)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	call := &ast.BuiltinCall{Base: ast.At(p.spanFrom(start)), Builtin: builtin, Args: args}
	//
	if msg := checkBuiltin(call); msg != "" {
		return nil, p.syntaxErrorsAt(call.Span(), source.BuiltinArityMismatch, msg)
	}
	//
	return call, nil
}

// Parse a string, number or identifier, as permitted for the arguments of
// builtins and decorators.
func (p *Parser) parseLiteralArgument() (ast.Argument, []source.SyntaxError) {
	switch lookahead := p.lookahead(); {
	case lookahead.Kind == lexer.STRING:
		return p.parseString()
	case lookahead.Kind == lexer.NUMBER:
		return p.parseNumber()
	case lexer.IsWord(lookahead.Kind):
		return p.parseIdentifier()
	default:
		return nil, p.unexpected(source.UnexpectedToken, "string, number or identifier")
	}
}

// Check the arguments of a builtin call, returning a message describing the
// mismatch (or the empty string if there is none).
func checkBuiltin(call *ast.BuiltinCall) string {
	var (
		expected string
		kinds    []ast.Kind
	)
	//
	switch call.Builtin {
	case ast.CODESIZE, ast.TABLESIZE, ast.TABLESTART:
		expected, kinds = "one identifier", []ast.Kind{ast.IDENTIFIER}
	case ast.ERROR_HASH, ast.EVENT_HASH, ast.FUNC_SIG:
		expected, kinds = "one identifier or string", []ast.Kind{ast.IDENTIFIER, ast.STRING_LITERAL}
	case ast.RIGHTPAD:
		expected, kinds = "one number", []ast.Kind{ast.NUMBER}
	case ast.FREE_STORAGE_POINTER:
		if len(call.Args) == 0 {
			return ""
		}
		//
		return fmt.Sprintf("%s expects no arguments, found %d", call.Builtin, len(call.Args))
	}
	//
	if len(call.Args) != 1 {
		return fmt.Sprintf("%s expects %s, found %d arguments", call.Builtin, expected, len(call.Args))
	}
	//
	for _, kind := range kinds {
		if call.Args[0].Kind() == kind {
			return ""
		}
	}
	//
	return fmt.Sprintf("%s expects %s, found %s", call.Builtin, expected, describeNode(call.Args[0]))
}

func describeNode(node ast.Node) string {
	switch node.Kind() {
	case ast.STRING_LITERAL:
		return "string"
	case ast.NUMBER:
		return "number"
	default:
		return node.Kind().String()
	}
}

// Parse the entries of a jumptable, which are restricted to labels.
func (p *Parser) parseJumptableBody() ([]*ast.Identifier, []source.SyntaxError) {
	var entries = []*ast.Identifier{}
	//
	lcurly, errs := p.expect(lexer.LCURLY)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for {
		// Comments are ignored
		for lexer.IsTrivia(p.peek().Kind) {
			p.index++
		}
		//
		if p.closes() {
			break
		} else if !lexer.IsWord(p.peek().Kind) {
			return nil, p.unexpected(source.UnexpectedToken, "jumptable entry (label)")
		}
		//
		entry, _ := p.parseIdentifier()
		entries = append(entries, entry)
	}
	//
	if errs = p.unbalanced(lcurly); len(errs) > 0 {
		return nil, errs
	}
	// Advance past "}"
	p.index++
	//
	return entries, nil
}
