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
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/consensys/go-huff/pkg/util/source/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer_Empty(t *testing.T) {
	checkKinds(t, "", END_OF)
}

func TestLexer_Define(t *testing.T) {
	checkKinds(t, "#define macro MAIN() = takes(0) returns(0) {}",
		DEFINE, IDENTIFIER, IDENTIFIER, LBRACE, RBRACE, EQUALS, IDENTIFIER, LBRACE, NUMBER, RBRACE,
		IDENTIFIER, LBRACE, NUMBER, RBRACE, LCURLY, RCURLY, END_OF)
}

func TestLexer_Directives(t *testing.T) {
	checkKinds(t, "#include \"./lib.huff\" #[calldata(\"x\")]",
		INCLUDE, STRING, DECORATOR, IDENTIFIER, LBRACE, STRING, RBRACE, RSQUARE, END_OF)
}

func TestLexer_DefineRunsIntoWord(t *testing.T) {
	_, errs := Lex(*source.NewSourceFile("test.huff", []byte("#defined")))
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnknownText, errs[0].Kind())
}

func TestLexer_Numbers(t *testing.T) {
	for _, n := range []string{"0", "12", "1_000", "0x00", "0XFF", "0xdead_BEEF", "0x1_2_3"} {
		checkText(t, n, NUMBER, n)
	}
}

func TestLexer_InvalidNumbers(t *testing.T) {
	for _, n := range []string{"0x", "0xg1", "1_", "1__2", "12ab", "0x_1", "0x1_"} {
		tokens, errs := Lex(*source.NewSourceFile("test.huff", []byte(n)))
		//
		require.Len(t, errs, 1, n)
		assert.Equal(t, source.InvalidNumber, errs[0].Kind(), n)
		assert.Equal(t, INVALID_NUMBER, tokens[0].Kind, n)
		assert.Equal(t, len(n), tokens[0].Span.Length(), n)
	}
}

func TestLexer_Strings(t *testing.T) {
	checkText(t, `"hello"`, STRING, `"hello"`)
	checkText(t, `'hello'`, STRING, `'hello'`)
	checkText(t, `"a\"b"`, STRING, `"a\"b"`)
	checkText(t, `'it\'s' x`, STRING, `'it\'s'`)
}

func TestLexer_UnterminatedString(t *testing.T) {
	tokens, errs := Lex(*source.NewSourceFile("test.huff", []byte(`#include "abc`)))
	//
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnterminatedString, errs[0].Kind())
	assert.Equal(t, []uint{INCLUDE, UNTERMINATED_STRING, END_OF}, kinds(tokens))
}

func TestLexer_Comments(t *testing.T) {
	checkKinds(t, "// a\n/* b */ /// c\n/** d */ /**/",
		COMMENT_LINE, COMMENT_BLOCK, DOC_LINE, DOC_BLOCK, COMMENT_BLOCK, END_OF)
}

func TestLexer_BlockCommentFirstClose(t *testing.T) {
	checkKinds(t, "/* a /* b */ add */", COMMENT_BLOCK, OPCODE, UNKNOWN, UNKNOWN, END_OF)
}

func TestLexer_UnterminatedComment(t *testing.T) {
	tokens, errs := Lex(*source.NewSourceFile("test.huff", []byte("add /* never closed")))
	//
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnterminatedBlockComment, errs[0].Kind())
	assert.Equal(t, []uint{OPCODE, UNTERMINATED_COMMENT, END_OF}, kinds(tokens))
}

func TestLexer_Opcodes(t *testing.T) {
	for n := 0; n <= 32; n++ {
		checkText(t, fmt.Sprintf("push%d", n), OPCODE, fmt.Sprintf("push%d", n))
	}
	//
	for n := 1; n <= 16; n++ {
		checkText(t, fmt.Sprintf("dup%d", n), OPCODE, fmt.Sprintf("dup%d", n))
		checkText(t, fmt.Sprintf("swap%d", n), OPCODE, fmt.Sprintf("swap%d", n))
	}
}

func TestLexer_NotOpcodes(t *testing.T) {
	for _, w := range []string{"push33", "dup0", "swap17", "push", "ADD", "adds", "push1a", "_add"} {
		checkText(t, w, IDENTIFIER, w)
	}
}

func TestLexer_ConstantRef(t *testing.T) {
	checkText(t, "[OWNER_SLOT]", CONSTANT_REF, "[OWNER_SLOT]")
	checkText(t, "[_X1]", CONSTANT_REF, "[_X1]")
	checkKinds(t, "[owner]", LSQUARE, IDENTIFIER, RSQUARE, END_OF)
	checkKinds(t, "[ OWNER ]", LSQUARE, IDENTIFIER, RSQUARE, END_OF)
	checkKinds(t, "uint256[10]", IDENTIFIER, LSQUARE, NUMBER, RSQUARE, END_OF)
	checkKinds(t, "uint256[]", IDENTIFIER, LSQUARE, RSQUARE, END_OF)
}

func TestLexer_Template(t *testing.T) {
	checkKinds(t, "<offset> label: lab jumpi",
		LANGLE, IDENTIFIER, RANGLE, IDENTIFIER, COLON, IDENTIFIER, OPCODE, END_OF)
}

func TestLexer_Unknown(t *testing.T) {
	tokens, errs := Lex(*source.NewSourceFile("test.huff", []byte("add $ ;mul")))
	//
	require.Len(t, errs, 2)
	assert.Equal(t, source.UnknownText, errs[0].Kind())
	assert.Equal(t, []uint{OPCODE, UNKNOWN, UNKNOWN, OPCODE, END_OF}, kinds(tokens))
}

func TestLexer_Coverage(t *testing.T) {
	input := "#define macro X() = takes(1) {\n\t0x01 $ add // x\n} \"open"
	srcfile := source.NewSourceFile("test.huff", []byte(input))
	tokens, _ := Tokenize(*srcfile)
	//
	var builder strings.Builder
	//
	for i, tok := range tokens {
		if i > 0 {
			assert.Equal(t, tokens[i-1].Span.End(), tok.Span.Start())
		}
		//
		builder.WriteString(srcfile.Text(tok.Span))
	}
	//
	assert.Equal(t, input, builder.String())
}

func TestNextToken(t *testing.T) {
	contents := []rune("dup1 label jumpi")
	tok, cursor := NextToken(contents, 0)
	assert.Equal(t, OPCODE, tok.Kind)
	assert.Equal(t, 4, cursor)
	tok, cursor = NextToken(contents, cursor)
	assert.Equal(t, WHITESPACE, tok.Kind)
	tok, cursor = NextToken(contents, cursor)
	assert.Equal(t, IDENTIFIER, tok.Kind)
	assert.Equal(t, source.NewSpan(5, 10), tok.Span)
	_, cursor = NextToken(contents, cursor)
	tok, cursor = NextToken(contents, cursor)
	assert.Equal(t, OPCODE, tok.Kind)
	tok, end := NextToken(contents, cursor)
	assert.Equal(t, END_OF, tok.Kind)
	assert.Equal(t, cursor, end)
}

// ==================================================================
// Framework
// ==================================================================

func kinds(tokens []lex.Token) []uint {
	var ks []uint
	for _, tok := range tokens {
		ks = append(ks, tok.Kind)
	}
	//
	return ks
}

func checkKinds(t *testing.T, input string, expected ...uint) {
	tokens, errs := Lex(*source.NewSourceFile("test.huff", []byte(input)))
	//
	if !slices.Contains(expected, UNKNOWN) {
		assert.Empty(t, errs, input)
	}
	//
	assert.Equal(t, expected, kinds(tokens), input)
}

func checkText(t *testing.T, input string, kind uint, text string) {
	srcfile := source.NewSourceFile("test.huff", []byte(input))
	tokens, errs := Lex(*srcfile)
	//
	require.Empty(t, errs, input)
	require.NotEmpty(t, tokens, input)
	assert.Equal(t, kind, tokens[0].Kind, input)
	assert.Equal(t, text, srcfile.Text(tokens[0].Span), input)
}
