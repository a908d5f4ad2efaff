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
package sexp

import "math"

// Never is the priority of a chunk which always stays on the same line as the
// chunk before it.
const Never uint = math.MaxUint

// FormattingChunk is one element of a list being formatted.  A chunk (other
// than the first) starts on a new line, indented one level deeper than its
// list, once the formatting level reaches its priority.
type FormattingChunk struct {
	Priority uint
	Contents SExp
}

// FormattingRule determines how a list may be split over several lines.  A
// rule which does not apply to a given list returns nil.
type FormattingRule interface {
	Split(list *List) []FormattingChunk
}

// LFormatter splits a list with a given head after the head, such that each
// remaining element may be placed on its own line.
type LFormatter struct {
	// Head symbol to match
	Head string
	// Priority to give for matching.
	Priority uint
}

// Split implementation for the FormattingRule interface.
func (p *LFormatter) Split(list *List) []FormattingChunk {
	return splitAfter(list, p.Head, 1, p.Priority)
}

// SFormatter splits a list with a given head after its first argument (e.g.
// the name of a declaration), keeping that on the line of the head.
type SFormatter struct {
	// Head symbol to match
	Head string
	// Priority to give for matching.
	Priority uint
}

// Split implementation for the FormattingRule interface.
func (p *SFormatter) Split(list *List) []FormattingChunk {
	return splitAfter(list, p.Head, 2, p.Priority)
}

// Split a list with a given head such that the first n elements are kept
// together, and the remainder break at the given priority.
func splitAfter(list *List, head string, n int, priority uint) []FormattingChunk {
	if list.Head() != head || len(list.Elements) <= n {
		return nil
	}
	//
	chunks := make([]FormattingChunk, len(list.Elements))
	//
	for i, e := range list.Elements {
		chunks[i] = FormattingChunk{priority, e}
		//
		if i < n {
			chunks[i].Priority = Never
		}
	}
	//
	return chunks
}
