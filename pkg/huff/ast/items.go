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
	"github.com/consensys/go-huff/pkg/util/source"
)

// SourceFile is the root of a syntax tree, holding the top-level items of a
// file in source order.  The span of a source file covers the entire text.
type SourceFile struct {
	Base
	Items []Item
}

// NewSourceFile constructs a source file covering the given number of
// characters.
func NewSourceFile(length int, items []Item) *SourceFile {
	return &SourceFile{Base{source.NewSpan(0, length)}, items}
}

// Kind implementation for the Node interface.
func (p *SourceFile) Kind() Kind { return SOURCE_FILE }

// Extent returns the span of the ith item extended to include any whitespace
// preceding it.  The final item is additionally extended to the end of the
// file.  Thus, concatenating the extents of all items reproduces the original
// text exactly (provided there is at least one item).
func (p *SourceFile) Extent(i int) source.Span {
	start := 0
	end := p.Items[i].Span().End()
	//
	if i > 0 {
		start = p.Items[i-1].Span().End()
	}
	//
	if i == len(p.Items)-1 {
		end = p.Range.End()
	}
	//
	return source.NewSpan(start, end)
}

// Declarations returns the declarations of this file in source order.
func (p *SourceFile) Declarations() []Declaration {
	var decls []Declaration
	//
	for _, item := range p.Items {
		if d, ok := item.(Declaration); ok {
			decls = append(decls, d)
		}
	}
	//
	return decls
}

// DecoratorsFor returns the decorators which attach to the ith item.
// Decorators attach by position: these are the decorators immediately
// preceding the item, ignoring any comments or documentation in between.
func (p *SourceFile) DecoratorsFor(i int) []*Decorator {
	var decorators []*Decorator
	//
	for j := i - 1; j >= 0; j-- {
		switch item := p.Items[j].(type) {
		case *Decorator:
			decorators = append([]*Decorator{item}, decorators...)
		case *Comment, *Documentation:
			continue
		default:
			return decorators
		}
	}
	//
	return decorators
}

// Include is an "#include" directive.  The path is stored verbatim and is
// not resolved.
type Include struct {
	Base
	Path *StringLiteral
}

// Kind implementation for the Node interface.
func (p *Include) Kind() Kind { return IMPORT }

func (p *Include) isItem() {}

// Decorator is a "#[...]" attribute list, which attaches to the following
// declaration.
type Decorator struct {
	Base
	Items []*DecoratorItem
}

// Kind implementation for the Node interface.
func (p *Decorator) Kind() Kind { return DECORATOR }

func (p *Decorator) isItem() {}

// DecoratorItem is a name with an optional argument list, such as
// "calldata(\"0x01\")" or "value(0x01)".
type DecoratorItem struct {
	Base
	Name *Identifier
	// Args holds string, number or identifier arguments.  This is nil when
	// no argument list was given.
	Args []Argument
}

// Kind implementation for the Node interface.
func (p *DecoratorItem) Kind() Kind { return DECORATOR_ITEM }

// ErrorItem covers text which was skipped whilst recovering from a syntax
// error at the top level.
type ErrorItem struct {
	Base
	Text string
}

// Kind implementation for the Node interface.
func (p *ErrorItem) Kind() Kind { return ERROR_ITEM }

func (p *ErrorItem) isItem() {}
