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

// Children returns the immediate children of a node in source order.
func Children(node Node) []Node {
	var children []Node
	//
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if !isNil(n) {
				children = append(children, n)
			}
		}
	}
	//
	switch n := node.(type) {
	case *SourceFile:
		for _, item := range n.Items {
			add(item)
		}
	case *Include:
		add(n.Path)
	case *Decorator:
		for _, item := range n.Items {
			add(item)
		}
	case *DecoratorItem:
		add(n.Name)
		addArguments(add, n.Args)
	case *MacroDef:
		add(n.Name)
		addIdentifiers(add, n.TemplateParams)
		add(n.Body)
	case *FnDef:
		add(n.Name, n.Param, n.Body)
	case *JumptableDef:
		add(n.Name)
		addIdentifiers(add, n.Entries)
	case *TableDef:
		add(n.Name, n.Body)
	case *TestDef:
		add(n.Name)
		addIdentifiers(add, n.Params)
		add(n.Body)
	case *ConstantDef:
		add(n.Name, n.Value)
	case *ErrorDef:
		add(n.Name)
		addParameters(add, n.Parameters)
	case *EventDef:
		add(n.Name)
		addParameters(add, n.Parameters)
	case *FunctionDef:
		add(n.Name)
		addParameters(add, n.Parameters)
		addParameters(add, n.Returns)
	case *Parameter:
		add(n.Type, n.Name)
	case *MacroBody:
		for _, item := range n.Items {
			add(item)
		}
	case *MacroCall:
		add(n.Name)
		addArguments(add, n.Args)
	case *JumpDest:
		add(n.Name)
	case *JumpLabel:
		add(n.Name)
	case *ConstantRef:
		add(n.Name)
	case *TemplateParamRef:
		add(n.Name)
	case *BuiltinCall:
		addArguments(add, n.Args)
	case *Documentation:
		for _, tag := range n.Tags {
			add(tag.Param)
		}
	}
	//
	return children
}

// Walk traverses the tree rooted at a given node in depth-first, source order.
// The visitor is applied to each node before its children, and the children
// are skipped when the visitor returns false.
func Walk(node Node, visitor func(Node) bool) {
	if visitor(node) {
		for _, child := range Children(node) {
			Walk(child, visitor)
		}
	}
}

// Find returns every node of a given kind within the tree rooted at a given
// node, in source order.
func Find(root Node, kind Kind) []Node {
	var nodes []Node
	//
	Walk(root, func(n Node) bool {
		if n.Kind() == kind {
			nodes = append(nodes, n)
		}
		//
		return true
	})
	//
	return nodes
}

func addIdentifiers(add func(...Node), ids []*Identifier) {
	for _, id := range ids {
		add(id)
	}
}

func addParameters(add func(...Node), params []*Parameter) {
	for _, p := range params {
		add(p)
	}
}

func addArguments(add func(...Node), args []Argument) {
	for _, a := range args {
		add(a)
	}
}

// Check for nil pointers hidden behind an interface.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Identifier:
		return n == nil
	case *MacroBody:
		return n == nil
	case *StringLiteral:
		return n == nil
	case *TypeExpr:
		return n == nil
	default:
		return false
	}
}
