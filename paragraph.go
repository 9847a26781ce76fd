// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package fragmark

import "strings"

// A Paragraph is the fallback fragment:
// consecutive non-blank lines that do not start another fragment kind.
// Line breaks inside the paragraph are soft and preserved in the output.
type Paragraph struct {
	lines []*Inline
}

// parseParagraph parses lines until a blank line, end of input,
// or a line that starts another fragment kind.
// It fails only on a blank line or end of input at the start.
func parseParagraph(c *Cursor, refs ReferenceMap) (Fragment, error) {
	p := &Paragraph{}
	for !c.EOF() && c.Peek() != '\n' {
		line := parseInline(c, refs, "\n")
		if !c.EOF() {
			c.Next()
		}
		if line.ChildCount() == 0 {
			break
		}
		p.lines = append(p.lines, line)
		if interruptsParagraph(c) {
			break
		}
	}
	if len(p.lines) == 0 {
		return nil, ErrNoMatch
	}
	return p, nil
}

// interruptsParagraph reports whether the line at the cursor's position
// starts a fragment kind that may interrupt a paragraph.
func interruptsParagraph(c *Cursor) bool {
	switch b := c.Peek(); b {
	case headingMarker, tableDelimiter, codeFence:
		return true
	default:
		mark := c.Pos()
		_, _, ok := readListMarker(c)
		c.Seek(mark)
		return ok
	}
}

// Lines returns the paragraph's lines in order.
func (p *Paragraph) Lines() []*Inline {
	return p.lines
}

// RenderHTML renders <p> with soft line breaks preserved
// and applies the "paragraphs" modifier chain.
func (p *Paragraph) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	parts := make([]string, len(p.lines))
	for i, line := range p.lines {
		parts[i] = line.renderHTML(refs)
	}
	return mods.Apply("paragraphs", "<p>"+strings.Join(parts, "\n")+"</p>")
}

// RenderPlainText joins the paragraph's lines with newlines.
func (p *Paragraph) RenderPlainText() string {
	parts := make([]string, len(p.lines))
	for i, line := range p.lines {
		parts[i] = line.renderPlainText()
	}
	return strings.Join(parts, "\n")
}
