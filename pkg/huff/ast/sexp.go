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

	"github.com/consensys/go-huff/pkg/util/source/sexp"
)

// NewFormatter constructs a formatter for rendering trees within a given width.
// Top-level items are always split first, followed by declarations (which
// keep their name on the opening line) and then bodies, with argument and
// parameter lists split last.
func NewFormatter(width uint) *sexp.Formatter {
	formatter := sexp.NewFormatter(width)
	formatter.Add(&sexp.LFormatter{Head: SOURCE_FILE.String(), Priority: 0})
	//
	for _, kind := range []Kind{MACRO, FN, JUMPTABLE, JUMPTABLE_PACKED, TABLE, TEST, CONSTANT, ERROR, EVENT,
		FUNCTION} {
		formatter.Add(&sexp.SFormatter{Head: kind.String(), Priority: 1})
	}
	//
	formatter.Add(&sexp.LFormatter{Head: MACRO_BODY.String(), Priority: 1})
	formatter.Add(&sexp.SFormatter{Head: NATSPEC.String(), Priority: 2})
	formatter.Add(&sexp.LFormatter{Head: DECORATOR.String(), Priority: 2})
	//
	for _, head := range []string{"parameters", "returns", "args"} {
		formatter.Add(&sexp.LFormatter{Head: head, Priority: 3})
	}
	//
	return formatter
}

// ToSExp renders a node as an S-Expression in the style of tree-sitter, where
// each list is headed by the stable name of the node's kind.  This captures
// the shape of a tree (but not its spans), hence two trees have the same shape
// exactly when their renderings are equal.
func ToSExp(node Node) sexp.SExp {
	list := sexp.NewList(sym(node.Kind().String()))
	//
	switch n := node.(type) {
	case *SourceFile:
		for _, item := range n.Items {
			list.Append(ToSExp(item))
		}
	case *Identifier:
		list.Append(sym(n.Name))
	case *NumberLiteral:
		list.Append(sym(n.Text))
	case *StringLiteral:
		list.Append(sym(n.Value))
	case *Comment:
		// Text is omitted, since it carries no structure.
	case *Documentation:
		list.Append(sym(n.DocKind.String()))
		//
		for _, section := range n.Tags {
			tag := sexp.NewList(sym(section.Tag.String()))
			if section.Param != nil {
				tag.Append(sym(section.Param.Name))
			}
			//
			tag.Append(sym(section.Text))
			list.Append(tag)
		}
	case *Include:
		list.Append(ToSExp(n.Path))
	case *Decorator:
		for _, item := range n.Items {
			list.Append(ToSExp(item))
		}
	case *DecoratorItem:
		list.Append(ToSExp(n.Name))
		appendArguments(list, n.Args)
	case *ErrorItem:
		// Skipped text carries no structure.
	case *MacroDef:
		list.Append(ToSExp(n.Name))
		appendTemplate(list, n.TemplateParams...)
		appendArity(list, n.StackArity)
		appendBody(list, n.Body)
	case *FnDef:
		list.Append(ToSExp(n.Name))
		//
		if n.Param != nil {
			appendTemplate(list, n.Param)
		}
		//
		appendArity(list, n.StackArity)
		appendBody(list, n.Body)
	case *JumptableDef:
		list.Append(ToSExp(n.Name))
		//
		for _, entry := range n.Entries {
			list.Append(ToSExp(entry))
		}
	case *TableDef:
		list.Append(ToSExp(n.Name))
		appendBody(list, n.Body)
	case *TestDef:
		list.Append(ToSExp(n.Name))
		appendTemplate(list, n.Params...)
		appendBody(list, n.Body)
	case *ConstantDef:
		list.Append(ToSExp(n.Name), ToSExp(n.Value))
	case *ErrorDef:
		list.Append(ToSExp(n.Name))
		appendParameters(list, n.Parameters)
	case *EventDef:
		list.Append(ToSExp(n.Name))
		appendParameters(list, n.Parameters)
	case *FunctionDef:
		list.Append(ToSExp(n.Name))
		appendParameters(list, n.Parameters)
		//
		if n.Visibility != NO_VISIBILITY {
			list.Append(sexp.NewList(sym("visibility"), sym(n.Visibility.String())))
		}
		//
		if n.Mutability != NO_MUTABILITY {
			list.Append(sexp.NewList(sym("mutability"), sym(n.Mutability.String())))
		}
		//
		if len(n.Returns) > 0 {
			returns := sexp.NewList(sym("returns"))
			appendParameters(returns, n.Returns)
			list.Append(returns)
		}
	case *Parameter:
		list.Append(ToSExp(n.Type))
		//
		if n.Location != NO_LOCATION {
			list.Append(sym(n.Location.String()))
		}
		//
		if n.Indexed {
			list.Append(sym("indexed"))
		}
		//
		if n.Name != nil {
			list.Append(ToSExp(n.Name))
		}
	case *TypeExpr:
		list.Append(sym(n.Primitive))
		//
		for _, dim := range n.Dims {
			if dim.Dynamic {
				list.Append(sym("[]"))
			} else {
				list.Append(sym(fmt.Sprintf("[%d]", dim.Size)))
			}
		}
	case *MacroBody:
		for _, item := range n.Items {
			list.Append(ToSExp(item))
		}
	case *OpcodeCall:
		list.Append(sym(n.Opcode.Name()))
	case *MacroCall:
		list.Append(ToSExp(n.Name))
		//
		if n.Invoked {
			args := sexp.NewList(sym("args"))
			appendArguments(args, n.Args)
			list.Append(args)
		}
	case *JumpDest:
		list.Append(ToSExp(n.Name))
	case *JumpLabel:
		list.Append(ToSExp(n.Name))
	case *ConstantRef:
		list.Append(ToSExp(n.Name))
	case *TemplateParamRef:
		list.Append(ToSExp(n.Name))
	case *BuiltinCall:
		list.Append(sym(n.Builtin.String()))
		appendArguments(list, n.Args)
	}
	//
	return list
}

// String renders a node as a (single line) S-Expression.
func String(node Node) string {
	return ToSExp(node).String(true)
}

func sym(value string) sexp.SExp {
	return sexp.NewSymbol(value)
}

func appendTemplate(list *sexp.List, params ...*Identifier) {
	if len(params) > 0 {
		template := sexp.NewList(sym("parameters"))
		//
		for _, p := range params {
			template.Append(ToSExp(p))
		}
		//
		list.Append(template)
	}
}

func appendArity(list *sexp.List, arity StackArity) {
	if arity.HasTakes {
		list.Append(sexp.NewList(sym("takes"), sym(fmt.Sprint(arity.Takes))))
	}
	//
	if arity.HasReturns {
		list.Append(sexp.NewList(sym("returns"), sym(fmt.Sprint(arity.Returns))))
	}
}

func appendBody(list *sexp.List, body *MacroBody) {
	if body != nil {
		list.Append(ToSExp(body))
	}
}

func appendParameters(list *sexp.List, params []*Parameter) {
	for _, p := range params {
		list.Append(ToSExp(p))
	}
}

func appendArguments(list *sexp.List, args []Argument) {
	for _, a := range args {
		list.Append(ToSExp(a))
	}
}
