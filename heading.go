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

// headingMarker is the ATX heading marker character.
const headingMarker = '#'

// A Heading is an [ATX heading]: one to six marker characters,
// whitespace, then inline content to the end of the line.
//
// [ATX heading]: https://spec.commonmark.org/0.30/#atx-headings
type Heading struct {
	level   int
	content *Inline
}

// parseHeading parses an ATX heading at the cursor's position.
// The marker run must be 1–6 characters long
// and must be followed by a space, a tab, the end of the line,
// or the end of input.
func parseHeading(c *Cursor, refs ReferenceMap) (Fragment, error) {
	level := c.ReadRun(headingMarker)
	if level == 0 || level > 6 {
		return nil, ErrNoMatch
	}
	if c.SkipSpaces() == 0 && !c.EOF() && c.Peek() != '\n' {
		// "#hashtag" is not a heading.
		return nil, ErrNoMatch
	}
	content := parseInline(c, refs, "\n")
	if !c.EOF() {
		c.Next()
	}
	return &Heading{level: level, content: content}, nil
}

// Level returns the heading level, in [1, 6].
func (h *Heading) Level() int {
	return h.level
}

// Content returns the heading's inline content,
// including any trailing marker run:
// markers are stripped at render time, not parse time.
func (h *Heading) Content() *Inline {
	return h.content
}

// RenderHTML renders the heading as <hN>...</hN>
// and applies the "headings" modifier chain.
func (h *Heading) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	level := strconv.Itoa(h.level)
	body := stripTrailingMarkers(h.content.renderHTML(refs), headingMarker)
	return mods.Apply("headings", "<h"+level+">"+body+"</h"+level+">")
}

// RenderPlainText returns the heading text with trailing markers stripped.
func (h *Heading) RenderPlainText() string {
	return stripTrailingMarkers(h.content.renderPlainText(), headingMarker)
}

// stripTrailingMarkers removes an optional closing marker run
// ("## Title ##" style) from the end of rendered heading text.
// It operates on the rendered string rather than the raw source,
// so markers produced by inline formatting are stripped too.
// The run is stripped whether or not whitespace precedes it;
// whitespace left in front of the run is dropped along with it.
func stripTrailingMarkers(s string, marker byte) string {
	end := len(s)
	for end > 0 && s[end-1] == marker {
		end--
	}
	if end == len(s) {
		return s
	}
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[:end]
}
