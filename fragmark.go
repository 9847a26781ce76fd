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

// Package fragmark converts Markdown to HTML one fragment at a time.
//
// A fragment is a block-level element (heading, table, paragraph, ...)
// implementing a uniform contract:
// parse from a shared [Cursor],
// render to HTML,
// render to plain text.
// [Parse] dispatches over the fragment kinds in order,
// backtracking the cursor after each failed attempt,
// and falls back to a paragraph for anything else.
// Rendering happens later and is pure:
// reference links resolve through a [ReferenceMap]
// and rendered HTML passes through per-kind [Modifier] hooks.
package fragmark

import (
	"errors"
	"fmt"
	"io"
)

// A Document is an ordered sequence of parsed fragments.
// It is immutable after [Parse] returns.
type Document struct {
	fragments []Fragment
}

// Fragments returns the document's fragments in source order.
func (d *Document) Fragments() []Fragment {
	return d.fragments
}

// Parse converts Markdown source into a document
// and the reference map collected from its link reference definitions.
//
// Fragments are delimited by blank lines or by fragment starts:
// at each block boundary the candidate kinds are tried in a fixed order
// and the cursor is restored after every failed attempt.
func Parse(source []byte) (*Document, ReferenceMap) {
	refs := make(ReferenceMap)
	doc := &Document{}
	c := NewCursor(source)
	for {
		skipBlankLines(c)
		if c.EOF() {
			return doc, refs
		}
		start := c.Pos()
		for _, parse := range fragmentParsers {
			f, err := parse(c, refs)
			if err == nil {
				doc.fragments = append(doc.fragments, f)
				break
			}
			if !errors.Is(err, ErrNoMatch) {
				panic(err)
			}
			c.Seek(start)
		}
		if c.Pos() == start {
			// No parser consumed anything. Cannot happen while
			// the paragraph fallback is registered; skip a byte
			// rather than loop forever if it is not.
			c.Next()
		}
	}
}

// skipBlankLines consumes lines containing only spaces and tabs.
func skipBlankLines(c *Cursor) {
	for !c.EOF() {
		start := c.Pos()
		c.SkipSpaces()
		if c.Peek() == '\n' {
			c.Next()
			continue
		}
		c.Seek(start)
		return
	}
}

// RenderHTML writes the document as HTML to w.
// Fragments that render to nothing (reference definitions) are skipped;
// the rest are separated by blank lines.
func RenderHTML(w io.Writer, doc *Document, refs ReferenceMap, mods ModifierMap) error {
	if err := render(w, doc, func(f Fragment) string { return f.RenderHTML(refs, mods) }); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// RenderPlainText writes the document's text projection to w,
// fragments separated by blank lines.
func RenderPlainText(w io.Writer, doc *Document) error {
	if err := render(w, doc, Fragment.RenderPlainText); err != nil {
		return fmt.Errorf("render markdown to plain text: %w", err)
	}
	return nil
}

func render(w io.Writer, doc *Document, renderFragment func(Fragment) string) error {
	var buf []byte
	n := 0
	for _, f := range doc.fragments {
		out := renderFragment(f)
		if out == "" {
			continue
		}
		buf = buf[:0]
		if n > 0 {
			buf = append(buf, "\n\n"...)
		}
		buf = append(buf, out...)
		if _, err := w.Write(buf); err != nil {
			return err
		}
		n++
	}
	return nil
}
