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
package lexer

import (
	"slices"

	"github.com/consensys/go-huff/pkg/huff/evm"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/consensys/go-huff/pkg/util/source/lex"
)

// Rule for describing whitespace
var whitespace = lex.Some(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

var (
	lowercase = lex.Within('a', 'z')
	uppercase = lex.Within('A', 'Z')
	digit     = lex.Within('0', '9')
	hexDigit  = lex.Or(digit, lex.Within('a', 'f'), lex.Within('A', 'F'))
	wordStart = lex.Or(lex.Unit('_'), lowercase, uppercase)
	wordChar  = lex.Or(lex.Unit('_'), lowercase, uppercase, digit)
	// Words are the superset of identifiers, opcodes and keywords.
	word = lex.Sequence(wordStart, lex.Many(wordChar))
	// Words which are exactly an EVM mnemonic.  Since the whole word is
	// matched first, "push32" can never be split into "push3" and "2", and
	// "push33" falls through to an identifier.
	opcode = lex.Filter(word, func(w []rune) bool {
		_, ok := evm.Lookup(string(w))
		return ok
	})
)

// Rule for describing numbers.  Underscores are permitted only between digits,
// and a number must not run straight into a word (e.g. "12ab").
var (
	decimal = lex.Sequence(digit,
		lex.Many(lex.Sequence(lex.Optional(lex.Unit('_')), digit)),
		lex.Not(wordChar))
	hexadecimal = lex.Sequence(lex.Or(lex.String("0x"), lex.String("0X")), hexDigit,
		lex.Many(lex.Sequence(lex.Optional(lex.Unit('_')), hexDigit)),
		lex.Not(wordChar))
	// Anything else starting with a digit is malformed.
	invalidNumber = lex.Sequence(digit, lex.Many(wordChar))
)

// Rule for describing quoted strings, where a backslash escapes the following
// character.
func quoted(quote rune) lex.Scanner[rune] {
	escape := lex.Sequence(lex.Unit('\\'), lex.Any[rune]())
	body := lex.Many(lex.Or(escape, lex.NoneOf(quote, '\\')))
	//
	return lex.Sequence(lex.Unit(quote), body, lex.Unit(quote))
}

var (
	strung             = lex.Or(quoted('"'), quoted('\''))
	unterminatedString = lex.Sequence(lex.Or(lex.Unit('"'), lex.Unit('\'')), lex.Rest[rune]())
)

// Rules for describing comments.  Documentation markers are a strict prefix of
// comment markers, hence they must be tried first.  Observe that "/**/" is an
// empty block comment, not documentation.
var (
	restOfLine          = lex.Many(lex.NoneOf('\n'))
	docLine             = lex.Sequence(lex.String("///"), restOfLine)
	commentLine         = lex.Sequence(lex.String("//"), restOfLine)
	blockEnd            = lex.String("*/")
	docBlock            = lex.Sequence(lex.String("/**"), lex.Not(lex.Unit('/')), lex.Until(blockEnd), blockEnd)
	commentBlock        = lex.Sequence(lex.String("/*"), lex.Until(blockEnd), blockEnd)
	unterminatedComment = lex.Sequence(lex.String("/*"), lex.Rest[rune]())
)

// Rule for constant references, such as "[OWNER]".  Constant names follow the
// upper-case convention, which is enforced here rather than in the parser.
var constantRef = lex.Sequence(lex.Unit('['),
	lex.Or(lex.Unit('_'), uppercase),
	lex.Many(lex.Or(lex.Unit('_'), uppercase, digit)),
	lex.Unit(']'))

// Directives must not run into a word (e.g. "#defined").
func directive(name string) lex.Scanner[rune] {
	return lex.Sequence(lex.String(name), lex.Not(wordChar))
}

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(docLine, DOC_LINE),
	lex.Rule(commentLine, COMMENT_LINE),
	lex.Rule(docBlock, DOC_BLOCK),
	lex.Rule(commentBlock, COMMENT_BLOCK),
	lex.Rule(unterminatedComment, UNTERMINATED_COMMENT),
	lex.Rule(directive("#define"), DEFINE),
	lex.Rule(directive("#include"), INCLUDE),
	lex.Rule(lex.String("#["), DECORATOR),
	lex.Rule(constantRef, CONSTANT_REF),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.Unit('<'), LANGLE),
	lex.Rule(lex.Unit('>'), RANGLE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(strung, STRING),
	lex.Rule(unterminatedString, UNTERMINATED_STRING),
	lex.Rule(hexadecimal, NUMBER),
	lex.Rule(decimal, NUMBER),
	lex.Rule(invalidNumber, INVALID_NUMBER),
	lex.Rule(opcode, OPCODE),
	lex.Rule(word, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// NextToken classifies the token starting at a given cursor position within
// the contents of a source file, returning it along with the cursor position
// immediately after it.  Characters which no rule accepts are returned one at
// a time as UNKNOWN tokens.  At (or beyond) the end of the input this returns
// an END_OF token and leaves the cursor unchanged.
func NextToken(contents []rune, cursor int) (lex.Token, int) {
	cursor = min(cursor, len(contents))
	lexer := lex.NewLexer(contents[cursor:], rules...).Recover(UNKNOWN)
	tok, _ := lexer.Next()
	span := source.NewSpan(cursor+tok.Span.Start(), cursor+tok.Span.End())
	//
	return lex.Token{Kind: tok.Kind, Span: span}, span.End()
}

// Tokenize a given source file into the complete sequence of tokens (including
// whitespace and comments) terminated by END_OF, along with any lexical errors
// arising.  Tokenizing never stops early: malformed text is retained as error
// tokens, so the spans of the returned tokens always cover the whole file.
func Tokenize(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		errors []source.SyntaxError
		tokens = lex.NewLexer(srcfile.Contents(), rules...).Recover(UNKNOWN).Collect()
	)
	// Report malformed tokens
	for _, tok := range tokens {
		if err := lexicalError(&srcfile, tok); err != nil {
			errors = append(errors, *err)
		}
	}
	//
	return tokens, errors
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace is removed, but comments and
// documentation are retained since they are part of the syntax tree.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	tokens, errors := Tokenize(srcfile)
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	// Done
	return tokens, errors
}

func lexicalError(srcfile *source.File, tok lex.Token) *source.SyntaxError {
	switch tok.Kind {
	case UNTERMINATED_STRING:
		return srcfile.SyntaxError(tok.Span, source.UnterminatedString, "unterminated string literal")
	case UNTERMINATED_COMMENT:
		return srcfile.SyntaxError(tok.Span, source.UnterminatedBlockComment, "expected \"*/\", found end of file")
	case INVALID_NUMBER:
		return srcfile.SyntaxError(tok.Span, source.InvalidNumber,
			"invalid number \""+srcfile.Text(tok.Span)+"\"")
	case UNKNOWN:
		return srcfile.SyntaxError(tok.Span, source.UnknownText,
			"unknown text \""+srcfile.Text(tok.Span)+"\"")
	default:
		return nil
	}
}
