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
package evm

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Opcode identifies a single EVM instruction by its canonical (lower-case)
// mnemonic and its byte value.  Numbered families (push, dup, swap and log)
// are represented by a single opcode whose mnemonic carries the numeric
// suffix, rather than by a family name plus a separate number.
type Opcode struct {
	name string
	code byte
}

// Name returns the canonical mnemonic of this opcode (e.g. "push32").
func (p Opcode) Name() string {
	return p.name
}

// Code returns the byte value of this opcode.
func (p Opcode) Code() byte {
	return p.code
}

// Family returns the family of a numbered opcode (one of "push", "dup",
// "swap" or "log"), or the empty string for opcodes outside such a family.
func (p Opcode) Family() string {
	for _, f := range families {
		if strings.HasPrefix(p.name, f.prefix) && isDigits(p.name[len(f.prefix):]) {
			return f.prefix
		}
	}
	//
	return ""
}

// Suffix returns the numeric suffix of a numbered opcode (e.g. 32 for
// "push32"), or -1 for opcodes outside a numbered family.
func (p Opcode) Suffix() int {
	family := p.Family()
	if family == "" {
		return -1
	}
	// Cannot fail since the family check requires digits.
	n, _ := strconv.Atoi(p.name[len(family):])
	//
	return n
}

// IsJump determines whether this opcode is one of the two jump instructions,
// which may be preceded by a jump destination reference.
func (p Opcode) IsJump() bool {
	return p.code == JUMP.code || p.code == JUMPI.code
}

func (p Opcode) String() string {
	return p.name
}

// Lookup finds the opcode with the given mnemonic.  Mnemonics are
// case-sensitive, hence "ADD" is not an opcode.
func Lookup(name string) (Opcode, bool) {
	op, ok := byName[name]
	return op, ok
}

// Opcodes returns every known opcode in ascending order of byte value.
func Opcodes() []Opcode {
	return opcodes
}

// MustLookup finds the opcode with the given mnemonic, or panics.
func MustLookup(name string) Opcode {
	if op, ok := Lookup(name); ok {
		return op
	}
	//
	panic(fmt.Sprintf("unknown opcode \"%s\"", name))
}

// family describes a numbered opcode family, such as push0 .. push32.
type family struct {
	prefix string
	// First suffix (inclusive)
	first int
	// Last suffix (inclusive)
	last int
	// Byte value for the first member.
	base byte
}

// Numbered opcode families, with their fixed suffix ranges.
var families = []family{
	{"push", 0, 32, 0x5f},
	{"dup", 1, 16, 0x80},
	{"swap", 1, 16, 0x90},
	{"log", 0, 4, 0xa0},
}

// JUMP is the unconditional jump instruction.
var JUMP = Opcode{"jump", 0x56}

// JUMPI is the conditional jump instruction.
var JUMPI = Opcode{"jumpi", 0x57}

// Opcodes outside the numbered families.
var singles = []Opcode{
	// Stop and arithmetic
	{"stop", 0x00}, {"add", 0x01}, {"mul", 0x02}, {"sub", 0x03}, {"div", 0x04},
	{"sdiv", 0x05}, {"mod", 0x06}, {"smod", 0x07}, {"addmod", 0x08},
	{"mulmod", 0x09}, {"exp", 0x0a}, {"signextend", 0x0b},
	// Comparison and bitwise
	{"lt", 0x10}, {"gt", 0x11}, {"slt", 0x12}, {"sgt", 0x13}, {"eq", 0x14},
	{"iszero", 0x15}, {"and", 0x16}, {"or", 0x17}, {"xor", 0x18},
	{"not", 0x19}, {"byte", 0x1a}, {"shl", 0x1b}, {"shr", 0x1c}, {"sar", 0x1d},
	// Keccak
	{"sha3", 0x20},
	// Environment
	{"address", 0x30}, {"balance", 0x31}, {"origin", 0x32}, {"caller", 0x33},
	{"callvalue", 0x34}, {"calldataload", 0x35}, {"calldatasize", 0x36},
	{"calldatacopy", 0x37}, {"codesize", 0x38}, {"codecopy", 0x39},
	{"gasprice", 0x3a}, {"extcodesize", 0x3b}, {"extcodecopy", 0x3c},
	{"returndatasize", 0x3d}, {"returndatacopy", 0x3e}, {"extcodehash", 0x3f},
	// Block
	{"blockhash", 0x40}, {"coinbase", 0x41}, {"timestamp", 0x42},
	{"number", 0x43}, {"prevrandao", 0x44}, {"gaslimit", 0x45},
	{"chainid", 0x46}, {"selfbalance", 0x47}, {"basefee", 0x48},
	{"blobhash", 0x49}, {"blobbasefee", 0x4a},
	// Stack, memory, storage and flow
	{"pop", 0x50}, {"mload", 0x51}, {"mstore", 0x52}, {"mstore8", 0x53},
	{"sload", 0x54}, {"sstore", 0x55}, JUMP, JUMPI, {"pc", 0x58},
	{"msize", 0x59}, {"gas", 0x5a}, {"jumpdest", 0x5b}, {"tload", 0x5c},
	{"tstore", 0x5d}, {"mcopy", 0x5e},
	// System
	{"create", 0xf0}, {"call", 0xf1}, {"callcode", 0xf2}, {"return", 0xf3},
	{"delegatecall", 0xf4}, {"create2", 0xf5}, {"staticcall", 0xfa},
	{"revert", 0xfd}, {"selfdestruct", 0xff},
}

var opcodes []Opcode

var byName map[string]Opcode

func init() {
	opcodes = append(opcodes, singles...)
	//
	for _, f := range families {
		for i := f.first; i <= f.last; i++ {
			opcodes = append(opcodes, Opcode{fmt.Sprintf("%s%d", f.prefix, i), f.base + byte(i-f.first)})
		}
	}
	// Order by byte value
	slices.SortFunc(opcodes, func(l, r Opcode) int { return cmp.Compare(l.code, r.code) })
	//
	byName = make(map[string]Opcode, len(opcodes))
	//
	for _, op := range opcodes {
		byName[op.name] = op
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	//
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	//
	return true
}
