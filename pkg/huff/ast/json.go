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

import "github.com/consensys/go-huff/pkg/util/source"

// ToJSON converts a node parsed from a given file into a generic structure
// suitable for encoding as JSON.  Every node records its kind and location,
// along with any attributes which are not themselves nodes.  Locations give
// "start" and "end" as byte offsets into the UTF-8 input, and the line and
// column (in characters) of both ends.  Children appear in source order.
func ToJSON(srcfile *source.File, node Node) map[string]any {
	var (
		span     = node.Span()
		bytes    = srcfile.ByteSpan(span)
		start    = srcfile.Position(span.Start())
		end      = srcfile.Position(span.End())
		children = Children(node)
		object   = map[string]any{
			"kind":       node.Kind().String(),
			"start":      bytes.Start(),
			"end":        bytes.End(),
			"line":       start.Line,
			"column":     start.Column,
			"end_line":   end.Line,
			"end_column": end.Column,
		}
	)
	//
	switch n := node.(type) {
	case *Identifier:
		object["name"] = n.Name
	case *NumberLiteral:
		object["text"] = n.Text
		object["value"] = n.Value.String()
	case *StringLiteral:
		object["value"] = n.Value
	case *Comment:
		object["text"] = n.Text
	case *Documentation:
		var sections []map[string]any
		//
		for _, s := range n.Tags {
			section := map[string]any{"tag": s.Tag.String(), "text": s.Text}
			if s.Param != nil {
				section["param"] = s.Param.Name
			}
			//
			sections = append(sections, section)
		}
		//
		object["doc"] = n.DocKind.String()
		object["sections"] = sections
		// Parameter names are reported within sections
		children = nil
	case *ErrorItem:
		object["text"] = n.Text
	case *MacroDef:
		addArity(object, n.StackArity)
	case *FnDef:
		addArity(object, n.StackArity)
	case *ErrorDef:
		object["parameters"] = parametersToJSON(srcfile, n.Parameters)
		children = named(n.Name)
	case *EventDef:
		object["parameters"] = parametersToJSON(srcfile, n.Parameters)
		children = named(n.Name)
	case *FunctionDef:
		if n.Visibility != NO_VISIBILITY {
			object["visibility"] = n.Visibility.String()
		}
		//
		if n.Mutability != NO_MUTABILITY {
			object["mutability"] = n.Mutability.String()
		}
		//
		object["parameters"] = parametersToJSON(srcfile, n.Parameters)
		object["returns"] = parametersToJSON(srcfile, n.Returns)
		children = named(n.Name)
	case *Parameter:
		if n.Location != NO_LOCATION {
			object["location"] = n.Location.String()
		}
		//
		object["indexed"] = n.Indexed
	case *TypeExpr:
		var dims []any
		//
		for _, d := range n.Dims {
			if d.Dynamic {
				dims = append(dims, nil)
			} else {
				dims = append(dims, d.Size)
			}
		}
		//
		object["primitive"] = n.Primitive
		object["dims"] = dims
	case *OpcodeCall:
		object["opcode"] = n.Opcode.Name()
		object["code"] = n.Opcode.Code()
	case *MacroCall:
		object["invoked"] = n.Invoked
	case *BuiltinCall:
		object["builtin"] = n.Builtin.String()
	}
	//
	if len(children) > 0 {
		array := make([]map[string]any, len(children))
		//
		for i, c := range children {
			array[i] = ToJSON(srcfile, c)
		}
		//
		object["children"] = array
	}
	//
	return object
}

func named(name *Identifier) []Node {
	if name == nil {
		return nil
	}
	//
	return []Node{name}
}

// Parameter lists are always arrays, even when empty.
func parametersToJSON(srcfile *source.File, params []*Parameter) []map[string]any {
	array := make([]map[string]any, len(params))
	//
	for i, p := range params {
		array[i] = ToJSON(srcfile, p)
	}
	//
	return array
}

// Stack counts are grouped under "stack" so they cannot be confused with
// parameter lists.
func addArity(object map[string]any, arity StackArity) {
	stack := make(map[string]any)
	//
	if arity.HasTakes {
		stack["takes"] = arity.Takes
	}
	//
	if arity.HasReturns {
		stack["returns"] = arity.Returns
	}
	//
	if len(stack) > 0 {
		object["stack"] = stack
	}
}
