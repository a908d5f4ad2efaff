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
	"github.com/consensys/go-huff/pkg/huff/evm"
)

// MacroBody is a braced sequence of body items, shared by macro, fn, table
// and test declarations.  Its span includes the braces.
type MacroBody struct {
	Base
	Items []BodyItem
}

// Kind implementation for the Node interface.
func (p *MacroBody) Kind() Kind { return MACRO_BODY }

// OpcodeCall is an EVM instruction.
type OpcodeCall struct {
	Base
	Opcode evm.Opcode
}

// Kind implementation for the Node interface.
func (p *OpcodeCall) Kind() Kind { return OPCODE }

func (p *OpcodeCall) isBodyItem() {}

// MacroCall is either an invocation of a macro with an argument list (e.g.
// "TRANSFER(0x04)"), or a bare reference to a name which is neither a jump
// destination nor a label.
type MacroCall struct {
	Base
	Name *Identifier
	// Args holds number, identifier, constant or template arguments.
	Args []Argument
	// Invoked indicates an argument list (possibly empty) was given.
	Invoked bool
}

// Kind implementation for the Node interface.
func (p *MacroCall) Kind() Kind { return MACRO_CALL }

func (p *MacroCall) isBodyItem()      {}
func (p *MacroCall) isConstantValue() {}

// JumpDest is a reference to a jump destination, immediately followed by
// "jump" or "jumpi".
type JumpDest struct {
	Base
	Name *Identifier
}

// Kind implementation for the Node interface.
func (p *JumpDest) Kind() Kind { return JUMPDEST }

func (p *JumpDest) isBodyItem() {}

// JumpLabel defines a jump destination ("label:").
type JumpLabel struct {
	Base
	Name *Identifier
}

// Kind implementation for the Node interface.
func (p *JumpLabel) Kind() Kind { return JUMPDEST_LABEL }

func (p *JumpLabel) isBodyItem() {}

// ConstantRef is a "[NAME]" reference to a constant.  The span of the name
// excludes the brackets.
type ConstantRef struct {
	Base
	Name *Identifier
}

// Kind implementation for the Node interface.
func (p *ConstantRef) Kind() Kind { return REFERENCED_CONSTANT }

func (p *ConstantRef) isBodyItem() {}
func (p *ConstantRef) isArgument() {}

// TemplateParamRef is a "<name>" reference to a template parameter.
type TemplateParamRef struct {
	Base
	Name *Identifier
}

// Kind implementation for the Node interface.
func (p *TemplateParamRef) Kind() Kind { return REFERENCED_PARAMETER }

func (p *TemplateParamRef) isBodyItem() {}
func (p *TemplateParamRef) isArgument() {}

// Builtin identifies one of the compiler builtin functions.
type Builtin uint8

const (
	// CODESIZE is "__codesize", taking one identifier.
	CODESIZE Builtin = iota
	// TABLESIZE is "__tablesize", taking one identifier.
	TABLESIZE
	// TABLESTART is "__tablestart", taking one identifier.
	TABLESTART
	// ERROR_HASH is "__ERROR", taking one identifier or string.
	ERROR_HASH
	// EVENT_HASH is "__EVENT_HASH", taking one identifier or string.
	EVENT_HASH
	// FUNC_SIG is "__FUNC_SIG", taking one identifier or string.
	FUNC_SIG
	// RIGHTPAD is "__RIGHTPAD", taking one number.
	RIGHTPAD
	// FREE_STORAGE_POINTER is "FREE_STORAGE_POINTER", taking no arguments.
	FREE_STORAGE_POINTER
)

var builtinNames = []string{
	"__codesize",
	"__tablesize",
	"__tablestart",
	"__ERROR",
	"__EVENT_HASH",
	"__FUNC_SIG",
	"__RIGHTPAD",
	"FREE_STORAGE_POINTER",
}

func (b Builtin) String() string {
	return builtinNames[b]
}

// BuiltinOf finds the builtin with a given name.
func BuiltinOf(name string) (Builtin, bool) {
	for i, n := range builtinNames {
		if n == name {
			return Builtin(i), true
		}
	}
	//
	return 0, false
}

// BuiltinCall is a call to a compiler builtin, such as "__FUNC_SIG(transfer)".
type BuiltinCall struct {
	Base
	Builtin Builtin
	Args    []Argument
}

// Kind implementation for the Node interface.
func (p *BuiltinCall) Kind() Kind { return BUILTIN_FUNCTION }

func (p *BuiltinCall) isBodyItem()      {}
func (p *BuiltinCall) isConstantValue() {}
