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
	"math/big"
)

// Identifier is a name, matching [A-Za-z_][A-Za-z0-9_]*.
type Identifier struct {
	Base
	Name string
}

// Kind implementation for the Node interface.
func (p *Identifier) Kind() Kind { return IDENTIFIER }

func (p *Identifier) isArgument() {}

func (p *Identifier) String() string { return p.Name }

// NumberLiteral is a decimal or hexadecimal integer, which may be grouped
// with underscores (e.g. "1_000" or "0xdead_beef").
type NumberLiteral struct {
	Base
	// Text is the literal as written.
	Text string
	// Value is the literal with any grouping underscores removed.
	Value *big.Int
	// Hex indicates a literal written with a "0x" prefix.
	Hex bool
}

// Kind implementation for the Node interface.
func (p *NumberLiteral) Kind() Kind { return NUMBER }

func (p *NumberLiteral) isArgument()      {}
func (p *NumberLiteral) isBodyItem()      {}
func (p *NumberLiteral) isConstantValue() {}

// Uint returns the value of this literal as an unsigned integer, or false if
// it does not fit.
func (p *NumberLiteral) Uint() (uint, bool) {
	if !p.Value.IsUint64() || p.Value.Uint64() > uint64(^uint(0)) {
		return 0, false
	}
	//
	return uint(p.Value.Uint64()), true
}

// StringLiteral is a single or double quoted string.
type StringLiteral struct {
	Base
	// Raw is the literal as written, including its quotes.
	Raw string
	// Value is the literal with quotes removed and escapes resolved.
	Value string
}

// Kind implementation for the Node interface.
func (p *StringLiteral) Kind() Kind { return STRING_LITERAL }

func (p *StringLiteral) isArgument() {}

// Comment is a line ("//") or block ("/* */") comment.
type Comment struct {
	Base
	// Text is the comment as written, including its markers.
	Text  string
	Block bool
}

// Kind implementation for the Node interface.
func (p *Comment) Kind() Kind { return COMMENT }

func (p *Comment) isItem()     {}
func (p *Comment) isBodyItem() {}
