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
	"strings"
	"testing"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "#define macro M() = takes(0) returns(0) "

// ===================================================================
// Declarations
// ===================================================================

func Test_Parse_MainMacro(t *testing.T) {
	text := `#define macro MAIN() = takes(0) returns(0) {
    0x00 calldataload 0xE0 shr
    dup1 __FUNC_SIG(transfer) eq transfer jumpi
    0x00 0x00 revert
    transfer:
        TRANSFER()
}`
	checkTree(t, text, "(source_file (macro (identifier MAIN) (takes 0) (returns 0) (macro_body "+
		"(number 0x00) (opcode calldataload) (number 0xE0) (opcode shr) "+
		"(opcode dup1) (builtin_function __FUNC_SIG (identifier transfer)) (opcode eq) "+
		"(jumpdest (identifier transfer)) (opcode jumpi) "+
		"(number 0x00) (number 0x00) (opcode revert) "+
		"(jumpdest_label (identifier transfer)) (macro_call (identifier TRANSFER) (args)))))")
}

func Test_Parse_MacroShapes(t *testing.T) {
	checkTree(t, "#define macro M()", "(source_file (macro (identifier M)))")
	checkTree(t, "#define macro M", "(source_file (macro (identifier M)))")
	checkTree(t, "#define macro M() = takes(2) {}",
		"(source_file (macro (identifier M) (takes 2) (macro_body)))")
	checkTree(t, "#define macro M(a, b) = takes(0) returns(1) { <a> INNER(<b>, [C], 0x01, x) }",
		"(source_file (macro (identifier M) (parameters (identifier a) (identifier b)) (takes 0) (returns 1) "+
			"(macro_body (referenced_parameter (identifier a)) (macro_call (identifier INNER) "+
			"(args (referenced_parameter (identifier b)) (referenced_constant (identifier C)) "+
			"(number 0x01) (identifier x))))))")
}

func Test_Parse_MacroArity(t *testing.T) {
	tree := checkParse(t, "#define macro M() = takes(3) returns(1_0) {}")
	macro := tree.Items[0].(*ast.MacroDef)
	//
	assert.True(t, macro.HasTakes)
	assert.True(t, macro.HasReturns)
	assert.Equal(t, uint(3), macro.Takes)
	assert.Equal(t, uint(10), macro.Returns)
}

func Test_Parse_MacroArity_Invalid(t *testing.T) {
	checkError(t, "#define macro M() = returns(1) {}", source.ExpectedKeyword)
	checkError(t, "#define macro M() returns(1) {}", source.ExpectedKeyword)
	checkError(t, "#define macro M() takes(1) {}", source.UnexpectedToken)
	checkError(t, "#define macro M() = takes(0x01) {}", source.UnexpectedToken)
	checkError(t, "#define macro M() = takes(1) returns {}", source.UnexpectedToken)
}

func Test_Parse_Fn(t *testing.T) {
	checkTree(t, "#define fn F(x) = takes(1) returns(1) { <x> add }",
		"(source_file (fn (identifier F) (parameters (identifier x)) (takes 1) (returns 1) "+
			"(macro_body (referenced_parameter (identifier x)) (opcode add))))")
	checkError(t, "#define fn F(x, y) = takes(2) returns(1) {}", source.UnexpectedToken)
}

func Test_Parse_Jumptable(t *testing.T) {
	checkTree(t, "#define jumptable T { a b // c\n c }",
		"(source_file (jumptable (identifier T) (identifier a) (identifier b) (identifier c)))")
	checkTree(t, "#define jumptable__packed T { a }",
		"(source_file (jumptable_packed (identifier T) (identifier a)))")
	checkTree(t, "#define jumptable__packed T", "(source_file (jumptable_packed (identifier T)))")
	checkError(t, "#define jumptable T", source.UnexpectedToken)
	checkError(t, "#define jumptable T { a 0x01 }", source.UnexpectedToken)
}

func Test_Parse_TableAndTest(t *testing.T) {
	checkTree(t, "#define table T { 0xdead }",
		"(source_file (table (identifier T) (macro_body (number 0xdead))))")
	checkTree(t, "#define test T() = { 0x01 }",
		"(source_file (test (identifier T) (macro_body (number 0x01))))")
	checkTree(t, "#define test T(a) = {}",
		"(source_file (test (identifier T) (parameters (identifier a)) (macro_body)))")
	checkTree(t, "#define test T = {}", "(source_file (test (identifier T) (macro_body)))")
	checkError(t, "#define test T() {}", source.UnexpectedToken)
	checkError(t, "#define table T", source.UnexpectedToken)
}

func Test_Parse_Constant(t *testing.T) {
	checkTree(t, "#define constant FOO = 0x01", "(source_file (constant (identifier FOO) (number 0x01)))")
	checkTree(t, "#define constant SLOT = FREE_STORAGE_POINTER()",
		"(source_file (constant (identifier SLOT) (builtin_function FREE_STORAGE_POINTER)))")
	checkTree(t, "#define constant X = VALUE()",
		"(source_file (constant (identifier X) (macro_call (identifier VALUE) (args))))")
	checkError(t, "#define constant X = Y", source.UnexpectedToken)
	checkError(t, "#define constant X 1", source.UnexpectedToken)
	checkError(t, "#define constant = 1", source.ExpectedIdentifier)
}

func Test_Parse_Constant_Value(t *testing.T) {
	tree := checkParse(t, "#define constant BIG = 0xffff_ffff_ffff_ffff_ffff")
	value := tree.Items[0].(*ast.ConstantDef).Value.(*ast.NumberLiteral)
	//
	assert.True(t, value.Hex)
	assert.Equal(t, "1208925819614629174706175", value.Value.String())
}

func Test_Parse_Interfaces(t *testing.T) {
	checkTree(t, "#define function transfer(address,uint256) nonpayable returns ()",
		"(source_file (function (identifier transfer) (parameter (type address)) (parameter (type uint256)) "+
			"(mutability nonpayable)))")
	checkTree(t, "#define function balanceOf(address owner) external view returns (uint256)",
		"(source_file (function (identifier balanceOf) (parameter (type address) (identifier owner)) "+
			"(visibility external) (mutability view) (returns (parameter (type uint256)))))")
	checkTree(t, "#define function f()", "(source_file (function (identifier f)))")
	checkTree(t, "#define event Transfer(address indexed from, address indexed to, uint256 value)",
		"(source_file (event (identifier Transfer) (parameter (type address) indexed (identifier from)) "+
			"(parameter (type address) indexed (identifier to)) (parameter (type uint256) (identifier value))))")
	checkTree(t, "#define error Unauthorized(bytes memory reason, string)",
		"(source_file (error (identifier Unauthorized) (parameter (type bytes) memory (identifier reason)) "+
			"(parameter (type string))))")
	checkTree(t, "#define error E()", "(source_file (error (identifier E)))")
}

func Test_Parse_Interfaces_Invalid(t *testing.T) {
	checkError(t, "#define function f() view external", source.UnexpectedToken)
	checkError(t, "#define function f(uint7)", source.UnexpectedToken)
	checkError(t, "#define function f(bytes33)", source.UnexpectedToken)
	checkError(t, "#define function f(uint256 memory storage x)", source.UnexpectedToken)
	checkError(t, "#define event E(uint256 indexed indexed x)", source.UnexpectedToken)
	checkError(t, "#define event E", source.UnexpectedToken)
	checkError(t, "#define struct S()", source.ExpectedKeyword)
	checkError(t, "#define", source.ExpectedKeyword)
}

func Test_Parse_Types(t *testing.T) {
	src := "#define event E(uint256[10] x, bytes32[2][] y, int8, uint, bool[])"
	tree := checkParse(t, src)
	params := tree.Items[0].(*ast.EventDef).Parameters
	//
	require.Len(t, params, 5)
	assert.Equal(t, "uint256", params[0].Type.Primitive)
	assert.Equal(t, []ast.ArrayDim{{Size: 10}}, params[0].Type.Dims)
	assert.Equal(t, "x", params[0].Name.Name)
	assert.Equal(t, []ast.ArrayDim{{Size: 2}, {Dynamic: true}}, params[1].Type.Dims)
	assert.Equal(t, "int8", params[2].Type.Primitive)
	assert.Nil(t, params[2].Name)
	assert.Equal(t, "uint", params[3].Type.Primitive)
	assert.Equal(t, []ast.ArrayDim{{Dynamic: true}}, params[4].Type.Dims)
	// Spans
	assert.Equal(t, "uint256[10] x", spanText(src, params[0]))
	assert.Equal(t, "bytes32[2][]", spanText(src, params[1].Type))
}

func Test_Parse_Types_Adjacency(t *testing.T) {
	// A detached array suffix is not part of the type
	checkError(t, "#define event E(uint256 [10] x)", source.UnexpectedToken)
	// Nor is a constant reference
	checkError(t, "#define event E(uint256[FOO] x)", source.UnexpectedToken)
}

// ===================================================================
// Macro Bodies
// ===================================================================

func Test_Parse_NumberedOpcodes(t *testing.T) {
	for n := 0; n <= 32; n++ {
		checkBody(t, fmt.Sprintf("push%d", n), fmt.Sprintf("(opcode push%d)", n))
	}
	//
	for n := 1; n <= 16; n++ {
		checkBody(t, fmt.Sprintf("dup%d", n), fmt.Sprintf("(opcode dup%d)", n))
		checkBody(t, fmt.Sprintf("swap%d", n), fmt.Sprintf("(opcode swap%d)", n))
	}
}

func Test_Parse_NotOpcodes(t *testing.T) {
	checkBody(t, "push33 dup0(0x01) swap17",
		"(macro_call (identifier push33)) (macro_call (identifier dup0) (args (number 0x01))) "+
			"(macro_call (identifier swap17))")
	checkBody(t, "ADD", "(macro_call (identifier ADD))")
}

func Test_Parse_ConstantReference(t *testing.T) {
	src := "#define constant FOO = 1\n" + header + "{ [FOO] }"
	tree := checkParse(t, src)
	//
	assert.Equal(t, "(source_file (constant (identifier FOO) (number 1)) (macro (identifier M) (takes 0) (returns 0) "+
		"(macro_body (referenced_constant (identifier FOO)))))", ast.String(tree))
	//
	refs := ast.Find(tree, ast.REFERENCED_CONSTANT)
	require.Len(t, refs, 1)
	assert.Equal(t, "[FOO]", spanText(src, refs[0]))
	assert.Equal(t, "FOO", spanText(src, refs[0].(*ast.ConstantRef).Name))
}

func Test_Parse_ConstantReference_Digits(t *testing.T) {
	checkBody(t, "[SLOT_2] sload", "(referenced_constant (identifier SLOT_2)) (opcode sload)")
	checkBody(t, "[_X1]", "(referenced_constant (identifier _X1))")
}

func Test_Parse_Jumps(t *testing.T) {
	checkBody(t, "label jump", "(jumpdest (identifier label)) (opcode jump)")
	checkBody(t, "label jumpi", "(jumpdest (identifier label)) (opcode jumpi)")
	checkBody(t, "label:", "(jumpdest_label (identifier label))")
	checkBody(t, "label : stop", "(jumpdest_label (identifier label)) (opcode stop)")
	checkBody(t, "label add", "(macro_call (identifier label)) (opcode add)")
	checkBody(t, "label\njump", "(jumpdest (identifier label)) (opcode jump)")
	// A comment intervenes
	checkBody(t, "label /* c */ jump", "(macro_call (identifier label)) (comment) (opcode jump)")
}

func Test_Parse_Builtins(t *testing.T) {
	checkBody(t, "__codesize(MAIN) __tablesize(T) __tablestart(T)",
		"(builtin_function __codesize (identifier MAIN)) (builtin_function __tablesize (identifier T)) "+
			"(builtin_function __tablestart (identifier T))")
	checkBody(t, `__FUNC_SIG("transfer(address,uint256)") __EVENT_HASH(Transfer) __ERROR(Unauthorized)`,
		`(builtin_function __FUNC_SIG (string_literal "transfer(address,uint256)")) (builtin_function __EVENT_HASH (identifier Transfer)) `+
			"(builtin_function __ERROR (identifier Unauthorized))")
	checkBody(t, "__RIGHTPAD(0x1234)", "(builtin_function __RIGHTPAD (number 0x1234))")
	// Without arguments, a builtin name is only a reference
	checkBody(t, "__codesize", "(macro_call (identifier __codesize))")
}

func Test_Parse_Builtins_Invalid(t *testing.T) {
	checkError(t, header+`{ __RIGHTPAD("x") }`, source.BuiltinArityMismatch)
	checkError(t, header+"{ __codesize(A, B) }", source.BuiltinArityMismatch)
	checkError(t, header+"{ __codesize() }", source.BuiltinArityMismatch)
	checkError(t, header+`{ __tablesize("T") }`, source.BuiltinArityMismatch)
	checkError(t, header+"{ __FUNC_SIG(0x01) }", source.BuiltinArityMismatch)
	checkError(t, header+"{ FREE_STORAGE_POINTER(0x01) }", source.BuiltinArityMismatch)
	//
	_, errs := parse(header + `{ __RIGHTPAD("x") }`)
	assert.Equal(t, `__RIGHTPAD expects one number, found string`, errs[0].Message())
	assert.Equal(t, `__RIGHTPAD("x")`, errs[0].SourceFile().Text(errs[0].Span()))
}

func Test_Parse_BodyComments(t *testing.T) {
	checkBody(t, "// one\n add /* two */ /// three\n",
		"(comment) (opcode add) (comment) (natspec line (notice three))")
}

func Test_Parse_Body_Invalid(t *testing.T) {
	checkError(t, header+"{ ) }", source.UnexpectedToken)
	checkError(t, header+"{ TRANSFER(0x01 }", source.UnexpectedToken)
	checkError(t, header+"{ TRANSFER(\"x\") }", source.UnexpectedToken)
	checkError(t, header+"{ <0x01> }", source.ExpectedIdentifier)
	checkError(t, header+"{ add", source.UnbalancedBraces)
}

// ===================================================================
// Directives
// ===================================================================

func Test_Parse_Include(t *testing.T) {
	tree := checkParse(t, `#include "./utils/Ownable.huff"`)
	include := tree.Items[0].(*ast.Include)
	//
	assert.Equal(t, "./utils/Ownable.huff", include.Path.Value)
	assert.Equal(t, `"./utils/Ownable.huff"`, include.Path.Raw)
	assert.Equal(t, `(source_file (import (string_literal ./utils/Ownable.huff)))`, ast.String(tree))
	//
	checkError(t, "#include utils", source.UnexpectedToken)
}

func Test_Parse_Decorator(t *testing.T) {
	text := "#[calldata(\"0x01\"), value(0x01), skip]\n/// @notice test\n#define test T() = {}"
	tree := checkParse(t, text)
	//
	assert.Equal(t, "(source_file (decorator (decorator_item (identifier calldata) (string_literal 0x01)) "+
		"(decorator_item (identifier value) (number 0x01)) (decorator_item (identifier skip))) "+
		"(natspec line (notice test)) (test (identifier T) (macro_body)))", ast.String(tree))
	//
	decorators := tree.DecoratorsFor(2)
	require.Len(t, decorators, 1)
	assert.Len(t, decorators[0].Items, 3)
	assert.Nil(t, decorators[0].Items[2].Args)
	//
	checkError(t, "#[]", source.ExpectedIdentifier)
	checkError(t, "#[a(b c)]", source.UnexpectedToken)
	checkError(t, "#[a", source.UnexpectedToken)
}

func Test_Parse_Escapes(t *testing.T) {
	tree := checkParse(t, `#include 'a\'b\\c\n'`)
	assert.Equal(t, "a'b\\c\n", tree.Items[0].(*ast.Include).Path.Value)
}

// ===================================================================
// Error Recovery
// ===================================================================

func Test_Recover_OneDiagnostic(t *testing.T) {
	text := "#define macro = takes(0) {}\n#define macro MAIN() = takes(0) returns(0) {}"
	tree, errs := parse(text)
	//
	require.Len(t, errs, 1)
	assert.Equal(t, source.ExpectedIdentifier, errs[0].Kind())
	require.Len(t, tree.Items, 2)
	assert.Equal(t, ast.ERROR_ITEM, tree.Items[0].Kind())
	assert.Equal(t, "#define macro = takes(0) {}", tree.Items[0].(*ast.ErrorItem).Text)
	assert.Equal(t, ast.MACRO, tree.Items[1].Kind())
	checkRoundTrip(t, text, tree)
}

func Test_Recover_UnbalancedBody(t *testing.T) {
	text := "#define macro A() = takes(0) returns(0) { add\n#define macro B() = takes(0) returns(0) {}"
	tree, errs := parse(text)
	//
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnbalancedBraces, errs[0].Kind())
	assert.Equal(t, source.Position{Line: 1, Column: 41}, errs[0].Position())
	require.Len(t, tree.Items, 2)
	assert.Equal(t, ast.ERROR_ITEM, tree.Items[0].Kind())
	assert.Equal(t, "B", tree.Items[1].(*ast.MacroDef).Name.Name)
}

func Test_Recover_DocumentationBoundary(t *testing.T) {
	text := header + "{ ) /// inner\n }\n/// outer\n#define macro N() = takes(0) returns(0) {}"
	tree, errs := parse(text)
	//
	require.Len(t, errs, 1)
	require.Len(t, tree.Items, 3)
	assert.Equal(t, ast.ERROR_ITEM, tree.Items[0].Kind())
	assert.Equal(t, ast.NATSPEC, tree.Items[1].Kind())
	assert.Equal(t, ast.MACRO, tree.Items[2].Kind())
	checkRoundTrip(t, text, tree)
}

func Test_Recover_LexicalErrors(t *testing.T) {
	// Malformed tokens are reported once, by the lexer
	tree, errs := parse(header + "{ 0x }\n#define constant X = 1")
	//
	require.Len(t, errs, 1)
	assert.Equal(t, source.InvalidNumber, errs[0].Kind())
	require.Len(t, tree.Items, 2)
	//
	_, errs = parse("$ #define constant X = 1")
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnknownText, errs[0].Kind())
	//
	_, errs = parse("#define constant X = 1 /* never closed")
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnterminatedBlockComment, errs[0].Kind())
}

func Test_Recover_StrayNumber(t *testing.T) {
	tree, errs := parse("0x01 #define constant X = 1")
	//
	require.Len(t, errs, 1)
	assert.Equal(t, source.UnexpectedToken, errs[0].Kind())
	assert.Equal(t, "expected \"#define\", \"#include\" or \"#[\", found number \"0x01\"", errs[0].Message())
	require.Len(t, tree.Items, 2)
}

func Test_Recover_Ordering(t *testing.T) {
	_, errs := parse("#define macro = takes(0) {}\n#define event E(uint256 $)\n#define macro ()")
	//
	require.Len(t, errs, 3)
	//
	for i := 1; i < len(errs); i++ {
		assert.Less(t, errs[i-1].Span().Start(), errs[i].Span().Start())
	}
	//
	assert.Equal(t, source.ExpectedIdentifier, errs[0].Kind())
	assert.Equal(t, source.UnknownText, errs[1].Kind())
	assert.Equal(t, source.ExpectedIdentifier, errs[2].Kind())
}

// ===================================================================
// Properties
// ===================================================================

func Test_Parse_Empty(t *testing.T) {
	tree := checkParse(t, "")
	assert.Empty(t, tree.Items)
	//
	tree = checkParse(t, "  \n\t ")
	assert.Empty(t, tree.Items)
}

func Test_Parse_Spans(t *testing.T) {
	text := "  // lead\n#define macro M() = takes(0) returns(0) { add }  \n"
	tree := checkParse(t, text)
	//
	require.Len(t, tree.Items, 2)
	assert.Equal(t, "// lead", spanText(text, tree.Items[0]))
	assert.Equal(t, "#define macro M() = takes(0) returns(0) { add }", spanText(text, tree.Items[1]))
	assert.Equal(t, "{ add }", spanText(text, tree.Items[1].(*ast.MacroDef).Body))
	checkRoundTrip(t, text, tree)
}

func Test_Parse_Idempotent(t *testing.T) {
	text := "/// @title T\n#include \"a.huff\"\n#define constant C = 0x01 // c\n" +
		header + "{ [C] <x> L jump L: __codesize(M) }\n#define function f(uint256) view returns (bool)"
	tree := checkParse(t, text)
	// Reconstruct the text from the extents of items
	var builder strings.Builder
	//
	for i := range tree.Items {
		builder.WriteString(slice(text, tree.Extent(i)))
	}
	//
	reparsed := checkParse(t, builder.String())
	assert.Equal(t, ast.String(tree), ast.String(reparsed))
}

// ===================================================================
// Helpers
// ===================================================================

func parse(text string) (*ast.SourceFile, []source.SyntaxError) {
	return Parse(source.NewSourceFile("test.huff", []byte(text)))
}

// Parse some text which is expected to be valid.
func checkParse(t *testing.T, text string) *ast.SourceFile {
	t.Helper()
	//
	tree, errs := parse(text)
	//
	for _, err := range errs {
		t.Errorf("unexpected error: %s", err.Error())
	}
	//
	require.NotNil(t, tree)
	//
	return tree
}

func checkTree(t *testing.T, text string, expected string) {
	t.Helper()
	assert.Equal(t, expected, ast.String(checkParse(t, text)), text)
}

// Check the items of a macro body.
func checkBody(t *testing.T, body string, expected string) {
	t.Helper()
	checkTree(t, header+"{ "+body+" }",
		"(source_file (macro (identifier M) (takes 0) (returns 0) (macro_body "+expected+")))")
}

// Check some text produces exactly one error of a given kind.
func checkError(t *testing.T, text string, kind source.ErrorKind) {
	t.Helper()
	//
	_, errs := parse(text)
	//
	if assert.Len(t, errs, 1, text) {
		assert.Equal(t, kind, errs[0].Kind(), "%s: %s", text, errs[0].Message())
	}
}

// Check that the extents of all items reproduce the original text.
func checkRoundTrip(t *testing.T, original string, tree *ast.SourceFile) {
	var builder strings.Builder
	//
	for i := range tree.Items {
		builder.WriteString(slice(original, tree.Extent(i)))
	}
	//
	assert.Equal(t, original, builder.String())
}

// Text of a given original covered by a node.
func spanText(original string, node ast.Node) string {
	return slice(original, node.Span())
}

func slice(original string, span source.Span) string {
	return string([]rune(original)[span.Start():span.End()])
}
