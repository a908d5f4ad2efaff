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
package ast

import (
	"fmt"

	"github.com/consensys/go-huff/pkg/util/source"
)

// Kind identifies the category of a node in the syntax tree.  The names
// returned by String() are stable, since downstream tools (highlighters,
// linters, folding engines) bind to them.
type Kind uint

const (
	// SOURCE_FILE is the root of every tree.
	SOURCE_FILE Kind = iota
	// COMMENT is a "//" or "/* */" comment.
	COMMENT
	// NATSPEC is a "///" or "/** */" documentation comment.
	NATSPEC
	// IMPORT is an "#include" directive.
	IMPORT
	// DECORATOR is a "#[...]" attribute list.
	DECORATOR
	// DECORATOR_ITEM is a single entry within a decorator.
	DECORATOR_ITEM
	// ERROR_ITEM covers text skipped whilst recovering from a syntax error.
	ERROR_ITEM
	// MACRO is a "#define macro" declaration.
	MACRO
	// FN is a "#define fn" declaration.
	FN
	// JUMPTABLE is a "#define jumptable" declaration.
	JUMPTABLE
	// JUMPTABLE_PACKED is a "#define jumptable__packed" declaration.
	JUMPTABLE_PACKED
	// TABLE is a "#define table" declaration.
	TABLE
	// TEST is a "#define test" declaration.
	TEST
	// CONSTANT is a "#define constant" declaration.
	CONSTANT
	// ERROR is a "#define error" declaration.
	ERROR
	// FUNCTION is a "#define function" interface declaration.
	FUNCTION
	// EVENT is a "#define event" interface declaration.
	EVENT
	// PARAMETER is a typed parameter of an error, function or event.
	PARAMETER
	// TYPE is a Solidity-style type expression.
	TYPE
	// IDENTIFIER is a name.
	IDENTIFIER
	// NUMBER is a decimal or hexadecimal literal.
	NUMBER
	// STRING_LITERAL is a quoted string.
	STRING_LITERAL
	// MACRO_BODY is a braced sequence of body items.
	MACRO_BODY
	// OPCODE is an EVM instruction within a body.
	OPCODE
	// MACRO_CALL is an invocation of (or bare reference to) a macro.
	MACRO_CALL
	// JUMPDEST is a jump destination reference preceding "jump" or "jumpi".
	JUMPDEST
	// JUMPDEST_LABEL is a jump destination definition ("label:").
	JUMPDEST_LABEL
	// REFERENCED_CONSTANT is a "[NAME]" constant reference.
	REFERENCED_CONSTANT
	// REFERENCED_PARAMETER is a "<name>" template parameter reference.
	REFERENCED_PARAMETER
	// BUILTIN_FUNCTION is a call to one of the compiler builtins.
	BUILTIN_FUNCTION
)

var kindNames = []string{
	"source_file",
	"comment",
	"natspec",
	"import",
	"decorator",
	"decorator_item",
	"ERROR",
	"macro",
	"fn",
	"jumptable",
	"jumptable_packed",
	"table",
	"test",
	"constant",
	"error",
	"function",
	"event",
	"parameter",
	"type",
	"identifier",
	"number",
	"string_literal",
	"macro_body",
	"opcode",
	"macro_call",
	"jumpdest",
	"jumpdest_label",
	"referenced_constant",
	"referenced_parameter",
	"builtin_function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("Kind(%d)", uint(k))
}

// KindOf finds the kind with the given stable name.
func KindOf(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	//
	return 0, false
}

// IsDeclaration determines whether this kind is one of the "#define" forms.
func (k Kind) IsDeclaration() bool {
	return MACRO <= k && k <= EVENT
}

// Node is implemented by every element of the syntax tree.  Nodes are
// immutable once constructed, and every node records the span of source text
// from which it was parsed.
type Node interface {
	Kind() Kind
	Span() source.Span
}

// Base holds the span common to all nodes.
type Base struct {
	Range source.Span
}

// Span returns the source span covered by this node.
func (p *Base) Span() source.Span {
	return p.Range
}

// At constructs a base for a node covering a given span.
func At(span source.Span) Base {
	return Base{span}
}

// Item is a top-level element of a source file.
type Item interface {
	Node
	isItem()
}

// Declaration is a top-level "#define" item.
type Declaration interface {
	Item
	// DeclName returns the declared name.
	DeclName() *Identifier
}

// BodyItem is an element of a macro, fn, table or test body.
type BodyItem interface {
	Node
	isBodyItem()
}

// Argument is a value passed to a macro call, builtin or decorator.
type Argument interface {
	Node
	isArgument()
}

// ConstantValue is the right-hand side of a constant declaration.
type ConstantValue interface {
	Node
	isConstantValue()
}
