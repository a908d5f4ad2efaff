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
	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/huff/lexer"
	"github.com/consensys/go-huff/pkg/util/source"
)

// Parse `#include "path"`.  The path is not resolved.
func (p *Parser) parseInclude() (ast.Item, []source.SyntaxError) {
	var (
		start   = p.index
		include = &ast.Include{}
		errs    []source.SyntaxError
	)
	//
	if _, errs = p.expect(lexer.INCLUDE); len(errs) > 0 {
		return nil, errs
	} else if include.Path, errs = p.parseString(); len(errs) > 0 {
		return nil, errs
	}
	//
	include.Range = p.spanFrom(start)
	//
	return include, nil
}

// Parse "#[item, ..., item]", where each item is a name with an optional
// argument list (e.g. `#[calldata("0x01"), value(0x01)]`).
func (p *Parser) parseDecorator() (ast.Item, []source.SyntaxError) {
	var (
		start     = p.index
		decorator = &ast.Decorator{}
	)
	//
	if _, errs := p.expect(lexer.DECORATOR); len(errs) > 0 {
		return nil, errs
	}
	//
	for {
		item, errs := p.parseDecoratorItem()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		decorator.Items = append(decorator.Items, item)
		//
		if !p.match(lexer.COMMA) {
			break
		}
	}
	//
	if _, errs := p.expect(lexer.RSQUARE); len(errs) > 0 {
		return nil, errs
	}
	//
	decorator.Range = p.spanFrom(start)
	//
	return decorator, nil
}

func (p *Parser) parseDecoratorItem() (*ast.DecoratorItem, []source.SyntaxError) {
	var (
		start = p.skip()
		item  = &ast.DecoratorItem{}
		errs  []source.SyntaxError
	)
	//
	if item.Name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.follows(lexer.LBRACE) {
		if item.Args, errs = p.parseArguments(p.parseLiteralArgument); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	item.Range = p.spanFrom(start)
	//
	return item, nil
}
