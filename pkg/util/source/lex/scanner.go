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
package lex

import (
	"cmp"
)

// Scanner is a function which accepts a prefix of the given items or not.  A
// scanner returns the number of items matched, where zero indicates an empty
// match (which is still a success) and a negative value indicates failure.
type Scanner[T any] func(items []T) int

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds.  Observe, however, that there is an implicit
// left-to-right order of evaluation.  Thus, where alternatives overlap, the
// longer alternative should be given first.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) int {
		for _, scanner := range scanners {
			if n := scanner(items); n >= 0 {
				return n
			}
		}
		// fail
		return -1
	}
}

// Sequence matches all the scanners in order.  Each scanner consumes the input
// right after the previous one ends.  Scanners may match the empty sequence,
// but the whole sequence fails if any one of them fails.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) int {
		n := 0
		//
		for _, scanner := range scanners {
			m := scanner(items[n:])
			if m < 0 {
				return -1
			}
			//
			n += m
		}
		//
		return n
	}
}

// Unit accepts a given sequence of characters.  That is, for this scanner to
// match, it must match all the given characters (one after the other) in their given order.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) int {
		if len(items) < len(chars) {
			return -1
		}
		//
		for i := range chars {
			if items[i] != chars[i] {
				return -1
			}
		}
		// success
		return len(chars)
	}
}

// String expects a given string s.
// It is equivalent to [Unit](s[0], s[1], ...)
func String(s string) Scanner[rune] {
	return Unit([]rune(s)...)
}

// Within accepts any character within a given range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) int {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return -1
	}
}

// NoneOf accepts any single character other than those given.  Observe that
// this fails at the end of the input.
func NoneOf[T comparable](chars ...T) Scanner[T] {
	return func(items []T) int {
		if len(items) == 0 {
			return -1
		}
		//
		for _, c := range chars {
			if items[0] == c {
				return -1
			}
		}
		//
		return 1
	}
}

// Any accepts any single character, failing only at the end of the input.
func Any[T any]() Scanner[T] {
	return func(items []T) int {
		if len(items) == 0 {
			return -1
		}
		//
		return 1
	}
}

// Many matches zero or more of a given item.  Iteration stops as soon as the
// given scanner fails or makes no progress.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) int {
		index := 0
		//
		for index < len(items) {
			if n := acceptor(items[index:]); n > 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Some matches one or more of a given item.
func Some[T any](acceptor Scanner[T]) Scanner[T] {
	many := Many(acceptor)
	//
	return func(items []T) int {
		if n := many(items); n > 0 {
			return n
		}
		//
		return -1
	}
}

// Optional matches a given scanner, or the empty sequence if it fails.
func Optional[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) int {
		return max(0, scanner(items))
	}
}

// Not is a negative lookahead.  It matches the empty sequence provided the
// given scanner fails at this position, and fails otherwise.
func Not[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) int {
		if scanner(items) >= 0 {
			return -1
		}
		//
		return 0
	}
}

// Until matches everything up to (but not including) the first position at
// which the given terminator matches.  This fails if the terminator is never
// matched.
func Until[T any](terminator Scanner[T]) Scanner[T] {
	return func(items []T) int {
		for index := 0; index <= len(items); index++ {
			if terminator(items[index:]) >= 0 {
				return index
			}
		}
		//
		return -1
	}
}

// Rest matches everything up to the end of the input.
func Rest[T any]() Scanner[T] {
	return func(items []T) int {
		return len(items)
	}
}

// Eof matches the end of the input stream.  Since the lexer only accepts
// matches which make progress, this reports a length of one.
func Eof[T any]() Scanner[T] {
	return func(items []T) int {
		if len(items) == 0 {
			return 1
		}
		//
		return -1
	}
}

// Filter matches whatever a given scanner matches, provided the matched items
// also satisfy a given predicate.
func Filter[T any](scanner Scanner[T], predicate func([]T) bool) Scanner[T] {
	return func(items []T) int {
		n := scanner(items)
		//
		if n < 0 || !predicate(items[:n]) {
			return -1
		}
		//
		return n
	}
}
