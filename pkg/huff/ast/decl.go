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

// StackArity records the optional "= takes(N) returns(M)" clause of a macro
// or fn.  Both counts default to zero when omitted.
type StackArity struct {
	Takes   uint
	Returns uint
	// HasTakes indicates the clause was present.
	HasTakes bool
	// HasReturns indicates the "returns(M)" part of the clause was present.
	HasReturns bool
}

// MacroDef is a "#define macro" declaration.
type MacroDef struct {
	Base
	Name *Identifier
	// TemplateParams are referenced within the body as "<name>".
	TemplateParams []*Identifier
	StackArity
	// Body is nil when no body was given.
	Body *MacroBody
}

// Kind implementation for the Node interface.
func (p *MacroDef) Kind() Kind { return MACRO }

// DeclName implementation for the Declaration interface.
func (p *MacroDef) DeclName() *Identifier { return p.Name }

func (p *MacroDef) isItem() {}

// FnDef is a "#define fn" declaration.  This has the same shape as a macro,
// except that it takes at most one parameter.
type FnDef struct {
	Base
	Name *Identifier
	// Param is nil when the fn has no parameter.
	Param *Identifier
	StackArity
	// Body is nil when no body was given.
	Body *MacroBody
}

// Kind implementation for the Node interface.
func (p *FnDef) Kind() Kind { return FN }

// DeclName implementation for the Declaration interface.
func (p *FnDef) DeclName() *Identifier { return p.Name }

func (p *FnDef) isItem() {}

// JumptableDef is a "#define jumptable" or "#define jumptable__packed"
// declaration.
type JumptableDef struct {
	Base
	Name    *Identifier
	Packed  bool
	Entries []*Identifier
}

// Kind implementation for the Node interface.
func (p *JumptableDef) Kind() Kind {
	if p.Packed {
		return JUMPTABLE_PACKED
	}
	//
	return JUMPTABLE
}

// DeclName implementation for the Declaration interface.
func (p *JumptableDef) DeclName() *Identifier { return p.Name }

func (p *JumptableDef) isItem() {}

// TableDef is a "#define table" declaration.
type TableDef struct {
	Base
	Name *Identifier
	Body *MacroBody
}

// Kind implementation for the Node interface.
func (p *TableDef) Kind() Kind { return TABLE }

// DeclName implementation for the Declaration interface.
func (p *TableDef) DeclName() *Identifier { return p.Name }

func (p *TableDef) isItem() {}

// TestDef is a "#define test" declaration.
type TestDef struct {
	Base
	Name   *Identifier
	Params []*Identifier
	Body   *MacroBody
}

// Kind implementation for the Node interface.
func (p *TestDef) Kind() Kind { return TEST }

// DeclName implementation for the Declaration interface.
func (p *TestDef) DeclName() *Identifier { return p.Name }

func (p *TestDef) isItem() {}

// ConstantDef is a "#define constant" declaration.
type ConstantDef struct {
	Base
	Name *Identifier
	// Value is a number, a builtin call (e.g. "FREE_STORAGE_POINTER()") or a
	// macro call.
	Value ConstantValue
}

// Kind implementation for the Node interface.
func (p *ConstantDef) Kind() Kind { return CONSTANT }

// DeclName implementation for the Declaration interface.
func (p *ConstantDef) DeclName() *Identifier { return p.Name }

func (p *ConstantDef) isItem() {}

// ErrorDef is a "#define error" declaration.
type ErrorDef struct {
	Base
	Name       *Identifier
	Parameters []*Parameter
}

// Kind implementation for the Node interface.
func (p *ErrorDef) Kind() Kind { return ERROR }

// DeclName implementation for the Declaration interface.
func (p *ErrorDef) DeclName() *Identifier { return p.Name }

func (p *ErrorDef) isItem() {}

// EventDef is a "#define event" declaration.
type EventDef struct {
	Base
	Name       *Identifier
	Parameters []*Parameter
}

// Kind implementation for the Node interface.
func (p *EventDef) Kind() Kind { return EVENT }

// DeclName implementation for the Declaration interface.
func (p *EventDef) DeclName() *Identifier { return p.Name }

func (p *EventDef) isItem() {}

// Visibility of a function interface declaration.
type Visibility uint8

const (
	// NO_VISIBILITY indicates no visibility keyword was given.
	NO_VISIBILITY Visibility = iota
	// EXTERNAL is "external"
	EXTERNAL
	// INTERNAL is "internal"
	INTERNAL
	// PUBLIC is "public"
	PUBLIC
	// PRIVATE is "private"
	PRIVATE
)

var visibilityNames = []string{"", "external", "internal", "public", "private"}

func (v Visibility) String() string { return visibilityNames[v] }

// VisibilityOf finds the visibility with the given keyword.
func VisibilityOf(keyword string) (Visibility, bool) {
	return lookupKeyword[Visibility](visibilityNames, keyword)
}

// Mutability of a function interface declaration.
type Mutability uint8

const (
	// NO_MUTABILITY indicates no mutability keyword was given.
	NO_MUTABILITY Mutability = iota
	// PURE is "pure"
	PURE
	// VIEW is "view"
	VIEW
	// NONPAYABLE is "nonpayable"
	NONPAYABLE
	// PAYABLE is "payable"
	PAYABLE
)

var mutabilityNames = []string{"", "pure", "view", "nonpayable", "payable"}

func (m Mutability) String() string { return mutabilityNames[m] }

// MutabilityOf finds the mutability with the given keyword.
func MutabilityOf(keyword string) (Mutability, bool) {
	return lookupKeyword[Mutability](mutabilityNames, keyword)
}

// FunctionDef is a "#define function" interface declaration.
type FunctionDef struct {
	Base
	Name       *Identifier
	Parameters []*Parameter
	Visibility Visibility
	Mutability Mutability
	// Returns is empty both when "returns ()" is given and when the clause
	// is omitted.
	Returns []*Parameter
}

// Kind implementation for the Node interface.
func (p *FunctionDef) Kind() Kind { return FUNCTION }

// DeclName implementation for the Declaration interface.
func (p *FunctionDef) DeclName() *Identifier { return p.Name }

func (p *FunctionDef) isItem() {}

// Location is the data location of a parameter.
type Location uint8

const (
	// NO_LOCATION indicates no location keyword was given.
	NO_LOCATION Location = iota
	// MEMORY is "memory"
	MEMORY
	// STORAGE is "storage"
	STORAGE
	// CALLDATA is "calldata"
	CALLDATA
)

var locationNames = []string{"", "memory", "storage", "calldata"}

func (l Location) String() string { return locationNames[l] }

// LocationOf finds the location with the given keyword.
func LocationOf(keyword string) (Location, bool) {
	return lookupKeyword[Location](locationNames, keyword)
}

// Parameter is a typed parameter of an error, function or event.  Whether
// "indexed" (or a location) is meaningful for a given declaration is left to
// later analysis.
type Parameter struct {
	Base
	Type     *TypeExpr
	Location Location
	Indexed  bool
	// Name is nil for anonymous parameters.
	Name *Identifier
}

// Kind implementation for the Node interface.
func (p *Parameter) Kind() Kind { return PARAMETER }

// ArrayDim is one array dimension of a type.  A dynamic dimension ("[]") has
// no size.
type ArrayDim struct {
	Size    uint
	Dynamic bool
}

// TypeExpr is a Solidity-style type, such as "uint256" or "bytes32[2][]".
type TypeExpr struct {
	Base
	// Primitive is one of address, bool, string, bytes, bytesN, int, intN,
	// uint or uintN.
	Primitive string
	// Dims are the array dimensions in declaration order.
	Dims []ArrayDim
}

// Kind implementation for the Node interface.
func (p *TypeExpr) Kind() Kind { return TYPE }

func lookupKeyword[T ~uint8](names []string, keyword string) (T, bool) {
	for i, n := range names {
		if i > 0 && n == keyword {
			return T(i), true
		}
	}
	//
	return 0, false
}
