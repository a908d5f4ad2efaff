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

import "fmt"

// DocKind distinguishes line ("///") from block ("/** */") documentation.
type DocKind uint8

const (
	// LINE_DOC is a "///" documentation comment.
	LINE_DOC DocKind = iota
	// BLOCK_DOC is a "/** */" documentation comment.
	BLOCK_DOC
)

func (k DocKind) String() string {
	if k == BLOCK_DOC {
		return "block"
	}
	//
	return "line"
}

// Tag identifies a natspec section.
type Tag uint8

const (
	// TITLE is "@title"
	TITLE Tag = iota
	// AUTHOR is "@author"
	AUTHOR
	// NOTICE is "@notice", and also applies to untagged leading text.
	NOTICE
	// DEV is "@dev"
	DEV
	// PARAM is "@param", which names the parameter documented.
	PARAM
	// RETURN is "@return"
	RETURN
)

var tagNames = []string{"title", "author", "notice", "dev", "param", "return"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	//
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// TagOf finds the tag with a given name (without the leading "@").
func TagOf(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	//
	return 0, false
}

// DocSection is one tagged section of a documentation comment.  Unknown tags
// are not sections; their text is retained within the enclosing section.
type DocSection struct {
	Tag Tag
	// Param names the parameter for "@param" sections, and is nil otherwise.
	Param *Identifier
	// Text of the section, with comment markers and surrounding whitespace
	// removed.
	Text string
}

// Documentation is a natspec-style documentation comment.
type Documentation struct {
	Base
	DocKind DocKind
	// Raw is the comment as written, including its markers.
	Raw  string
	Tags []DocSection
}

// Kind implementation for the Node interface.
func (p *Documentation) Kind() Kind { return NATSPEC }

func (p *Documentation) isItem()     {}
func (p *Documentation) isBodyItem() {}

// Section returns the first section with the given tag, or nil.
func (p *Documentation) Section(tag Tag) *DocSection {
	for i := range p.Tags {
		if p.Tags[i].Tag == tag {
			return &p.Tags[i]
		}
	}
	//
	return nil
}
