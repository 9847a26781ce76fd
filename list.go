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

import "strconv"

// A List is a flat bullet or ordered list:
// consecutive lines starting with a list marker.
// Items do not nest.
type List struct {
	ordered bool
	start   int
	items   []*Inline
}

// parseList parses consecutive list item lines at the cursor's position.
// A bullet item starts with '-', '*', or '+' followed by a space or tab;
// an ordered item starts with a digit run, '.', and a space or tab.
// The first item fixes the list's flavor.
func parseList(c *Cursor, refs ReferenceMap) (Fragment, error) {
	l := &List{start: 1}
	first := true
	for !c.EOF() {
		mark := c.Pos()
		n, ordered, ok := readListMarker(c)
		if !ok || (!first && ordered != l.ordered) {
			c.Seek(mark)
			break
		}
		if first {
			l.ordered = ordered
			if ordered {
				l.start = n
			}
			first = false
		}
		item := parseInline(c, refs, "\n")
		if !c.EOF() {
			c.Next()
		}
		l.items = append(l.items, item)
	}
	if len(l.items) == 0 {
		return nil, ErrNoMatch
	}
	return l, nil
}

// readListMarker consumes a list marker at the cursor's position.
// For ordered markers, n is the parsed item number.
func readListMarker(c *Cursor) (n int, ordered, ok bool) {
	switch b := c.Peek(); b {
	case '-', '*', '+':
		c.Next()
		if c.SkipSpaces() == 0 {
			return 0, false, false
		}
		return 0, false, true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		start := c.Pos()
		for !c.EOF() && c.Peek() >= '0' && c.Peek() <= '9' {
			c.Next()
		}
		num, err := strconv.Atoi(string(c.source[start:c.Pos()]))
		if err != nil || c.Expect('.') != nil || c.SkipSpaces() == 0 {
			return 0, false, false
		}
		return num, true, true
	default:
		return 0, false, false
	}
}

// Ordered reports whether the list is ordered.
func (l *List) Ordered() bool {
	return l.ordered
}

// Start returns the first item's number of an ordered list.
func (l *List) Start() int {
	return l.start
}

// Items returns the items' inline content in order.
func (l *List) Items() []*Inline {
	return l.items
}

// RenderHTML renders <ul> or <ol>,
// with a start attribute when an ordered list does not start at 1,
// and applies the "lists" modifier chain.
func (l *List) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	var dst []byte
	if l.ordered {
		dst = append(dst, "<ol"...)
		if l.start != 1 {
			dst = append(dst, ` start="`...)
			dst = strconv.AppendInt(dst, int64(l.start), 10)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
	} else {
		dst = append(dst, "<ul>"...)
	}
	for _, item := range l.items {
		dst = append(dst, "<li>"...)
		dst = item.appendHTML(dst, refs)
		dst = append(dst, "</li>"...)
	}
	if l.ordered {
		dst = append(dst, "</ol>"...)
	} else {
		dst = append(dst, "</ul>"...)
	}
	return mods.Apply("lists", string(dst))
}

// RenderPlainText renders one item per line with its marker.
func (l *List) RenderPlainText() string {
	var dst []byte
	for i, item := range l.items {
		if i > 0 {
			dst = append(dst, '\n')
		}
		if l.ordered {
			dst = strconv.AppendInt(dst, int64(l.start+i), 10)
			dst = append(dst, ". "...)
		} else {
			dst = append(dst, "- "...)
		}
		dst = item.appendPlainText(dst)
	}
	return string(dst)
}
