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
package natspec

import (
	"testing"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Natspec_Line(t *testing.T) {
	doc := parse(ast.LINE_DOC, "/// @notice Transfers tokens", 0)
	//
	assert.Equal(t, ast.NATSPEC, doc.Kind())
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, ast.NOTICE, doc.Tags[0].Tag)
	assert.Equal(t, "Transfers tokens", doc.Tags[0].Text)
}

func Test_Natspec_Untagged(t *testing.T) {
	doc := parse(ast.LINE_DOC, "///   Simple   description ", 0)
	//
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, ast.NOTICE, doc.Tags[0].Tag)
	assert.Equal(t, "Simple description", doc.Tags[0].Text)
}

func Test_Natspec_Empty(t *testing.T) {
	assert.Empty(t, parse(ast.LINE_DOC, "///", 0).Tags)
	assert.Empty(t, parse(ast.BLOCK_DOC, "/** */", 0).Tags)
}

func Test_Natspec_Block(t *testing.T) {
	raw := "/**\n * @title SimpleStore\n * @author Huff\n * @notice Stores a value\n *         for later\n */"
	doc := parse(ast.BLOCK_DOC, raw, 0)
	//
	require.Len(t, doc.Tags, 3)
	assert.Equal(t, ast.TITLE, doc.Tags[0].Tag)
	assert.Equal(t, "SimpleStore", doc.Tags[0].Text)
	assert.Equal(t, ast.AUTHOR, doc.Tags[1].Tag)
	assert.Equal(t, "Huff", doc.Tags[1].Text)
	assert.Equal(t, ast.NOTICE, doc.Tags[2].Tag)
	assert.Equal(t, "Stores a value\nfor later", doc.Tags[2].Text)
	assert.Equal(t, raw, doc.Raw)
	assert.Equal(t, ast.BLOCK_DOC, doc.DocKind)
}

func Test_Natspec_Param(t *testing.T) {
	raw := "/// @param owner The account"
	doc := parse(ast.LINE_DOC, raw, 100)
	//
	require.Len(t, doc.Tags, 1)
	//
	section := doc.Tags[0]
	assert.Equal(t, ast.PARAM, section.Tag)
	require.NotNil(t, section.Param)
	assert.Equal(t, "owner", section.Param.Name)
	assert.Equal(t, source.NewSpan(111, 116), section.Param.Span())
	assert.Equal(t, "The account", section.Text)
	assert.Equal(t, section, *doc.Section(ast.PARAM))
}

func Test_Natspec_ParamWithoutName(t *testing.T) {
	doc := parse(ast.LINE_DOC, "/// @param", 0)
	//
	require.Len(t, doc.Tags, 1)
	assert.Nil(t, doc.Tags[0].Param)
	assert.Equal(t, "", doc.Tags[0].Text)
}

func Test_Natspec_UnknownTag(t *testing.T) {
	doc := parse(ast.LINE_DOC, "/// @dev first @custom:thing second", 0)
	//
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, ast.DEV, doc.Tags[0].Tag)
	assert.Equal(t, "first @custom:thing second", doc.Tags[0].Text)
	assert.Nil(t, doc.Section(ast.RETURN))
}

func Test_Natspec_Leading(t *testing.T) {
	doc := parse(ast.BLOCK_DOC, "/** Adds two numbers @return the sum */", 0)
	//
	require.Len(t, doc.Tags, 2)
	assert.Equal(t, ast.NOTICE, doc.Tags[0].Tag)
	assert.Equal(t, "Adds two numbers", doc.Tags[0].Text)
	assert.Equal(t, ast.RETURN, doc.Tags[1].Tag)
	assert.Equal(t, "the sum", doc.Tags[1].Text)
}

func parse(kind ast.DocKind, raw string, offset int) *ast.Documentation {
	span := source.NewSpan(offset, offset+len([]rune(raw)))
	return Parse(kind, raw, span)
}
