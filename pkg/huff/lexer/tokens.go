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

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals spaces, tabs and line breaks
const WHITESPACE uint = 1

// COMMENT_LINE signals "// ... \n"
const COMMENT_LINE uint = 2

// COMMENT_BLOCK signals "/* ... */"
const COMMENT_BLOCK uint = 3

// DOC_LINE signals "/// ... \n"
const DOC_LINE uint = 4

// DOC_BLOCK signals "/** ... */"
const DOC_BLOCK uint = 5

// DEFINE signals "#define"
const DEFINE uint = 10

// INCLUDE signals "#include"
const INCLUDE uint = 11

// DECORATOR signals "#["
const DECORATOR uint = 12

// LBRACE signals "("
const LBRACE uint = 20

// RBRACE signals ")"
const RBRACE uint = 21

// LCURLY signals "{"
const LCURLY uint = 22

// RCURLY signals "}"
const RCURLY uint = 23

// LSQUARE signals "["
const LSQUARE uint = 24

// RSQUARE signals "]"
const RSQUARE uint = 25

// LANGLE signals "<"
const LANGLE uint = 26

// RANGLE signals ">"
const RANGLE uint = 27

// COMMA signals ","
const COMMA uint = 28

// COLON signals ":"
const COLON uint = 29

// EQUALS signals "="
const EQUALS uint = 30

// NUMBER signals a decimal or hexadecimal integer
const NUMBER uint = 40

// STRING signals a single or double quoted string
const STRING uint = 41

// CONSTANT_REF signals a bracketed upper-case name, such as "[OWNER_SLOT]"
const CONSTANT_REF uint = 42

// OPCODE signals a word spelled exactly as an EVM mnemonic
const OPCODE uint = 50

// IDENTIFIER signals any other word
const IDENTIFIER uint = 51

// UNTERMINATED_STRING signals a string which runs to the end of the file
const UNTERMINATED_STRING uint = 60

// UNTERMINATED_COMMENT signals a block comment which runs to the end of the
// file
const UNTERMINATED_COMMENT uint = 61

// INVALID_NUMBER signals a malformed number, such as "0x" or "1_"
const INVALID_NUMBER uint = 62

// UNKNOWN signals a character which no other rule accepts
const UNKNOWN uint = 63

var tokenNames = map[uint]string{
	END_OF:               "end of file",
	WHITESPACE:           "whitespace",
	COMMENT_LINE:         "comment",
	COMMENT_BLOCK:        "comment",
	DOC_LINE:             "documentation",
	DOC_BLOCK:            "documentation",
	DEFINE:               "\"#define\"",
	INCLUDE:              "\"#include\"",
	DECORATOR:            "\"#[\"",
	LBRACE:               "\"(\"",
	RBRACE:               "\")\"",
	LCURLY:               "\"{\"",
	RCURLY:               "\"}\"",
	LSQUARE:              "\"[\"",
	RSQUARE:              "\"]\"",
	LANGLE:               "\"<\"",
	RANGLE:               "\">\"",
	COMMA:                "\",\"",
	COLON:                "\":\"",
	EQUALS:               "\"=\"",
	NUMBER:               "number",
	STRING:               "string",
	CONSTANT_REF:         "constant reference",
	OPCODE:               "opcode",
	IDENTIFIER:           "identifier",
	UNTERMINATED_STRING:  "unterminated string",
	UNTERMINATED_COMMENT: "unterminated comment",
	INVALID_NUMBER:       "invalid number",
	UNKNOWN:              "unknown text",
}

// Describe returns a human-readable name for a given token kind, as used in
// "expected X, found Y" messages.
func Describe(kind uint) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}
	//
	return "token"
}

// IsWord determines whether a given token kind is spelled as an identifier.
// This holds for opcodes as well as plain identifiers, since the lexer
// classifies by spelling alone and the parser may reinterpret an opcode
// spelling (e.g. "address" as a type, or as a declaration name).
func IsWord(kind uint) bool {
	return kind == IDENTIFIER || kind == OPCODE
}

// IsTrivia determines whether a given token kind carries no grammatical
// meaning outside of top-level and body positions.
func IsTrivia(kind uint) bool {
	switch kind {
	case WHITESPACE, COMMENT_LINE, COMMENT_BLOCK, DOC_LINE, DOC_BLOCK:
		return true
	default:
		return false
	}
}

// IsDocumentation determines whether a given token kind is a documentation
// comment.
func IsDocumentation(kind uint) bool {
	return kind == DOC_LINE || kind == DOC_BLOCK
}

// IsError determines whether a given token kind represents malformed input
// which has already been reported as a lexical error.
func IsError(kind uint) bool {
	return kind >= UNTERMINATED_STRING
}
