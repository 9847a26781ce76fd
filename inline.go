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

// Inline represents Markdown content elements like text, links, or emphasis.
// An Inline with kind zero is a container:
// the root of a parsed span sequence.
type Inline struct {
	kind        InlineKind
	text        string // TextKind and CodeSpanKind literal
	destination string // LinkKind, ImageKind
	title       string
	label       string // reference links, normalized
	children    []*Inline
}

// Kind returns the type of inline node
// or zero if the node is nil or a container.
func (inline *Inline) Kind() InlineKind {
	if inline == nil {
		return 0
	}
	return inline.kind
}

// Text returns the literal text of a [TextKind] or [CodeSpanKind] node.
func (inline *Inline) Text() string {
	if inline == nil {
		return ""
	}
	return inline.text
}

// Destination returns the link destination of a [LinkKind] or [ImageKind] node
// or the empty string for reference links,
// whose destination is resolved at render time.
func (inline *Inline) Destination() string {
	if inline == nil {
		return ""
	}
	return inline.destination
}

// Label returns the normalized reference label of a reference link or image.
func (inline *Inline) Label() string {
	if inline == nil {
		return ""
	}
	return inline.label
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (inline *Inline) ChildCount() int {
	if inline == nil {
		return 0
	}
	return len(inline.children)
}

// Child returns the i'th child of the node.
func (inline *Inline) Child(i int) *Inline {
	return inline.children[i]
}

// InlineKind is an enumeration of values returned by [*Inline.Kind].
type InlineKind uint16

const (
	TextKind InlineKind = 1 + iota
	CodeSpanKind
	EmphasisKind
	StrongKind
	LinkKind
	ImageKind
)

// parseInline consumes characters from the cursor
// up to but excluding the first unescaped terminator byte or end of input,
// and returns the consumed span as an inline tree.
// Leading and trailing spaces and tabs of the span are not part of the tree.
// Terminators bind tighter than inline syntax:
// an unescaped terminator ends the span even inside a delimiter run.
func parseInline(c *Cursor, refs ReferenceMap, terminators string) *Inline {
	start := c.Pos()
	for !c.EOF() {
		b := c.Peek()
		if strings.IndexByte(terminators, b) >= 0 {
			break
		}
		c.Next()
		if b == '\\' && !c.EOF() && strings.IndexByte(terminators, c.Peek()) >= 0 {
			// Escaped terminator stays inside the span.
			c.Next()
		}
	}
	raw := strings.Trim(string(c.source[start:c.Pos()]), " \t")
	return &Inline{children: parseSpans(raw, refs)}
}

// parseSpans tokenizes a raw span into inline nodes.
// Unterminated delimiters fall back to literal text.
func parseSpans(s string, refs ReferenceMap) []*Inline {
	var spans []*Inline
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			spans = append(spans, &Inline{kind: TextKind, text: text.String()})
			text.Reset()
		}
	}
	for i := 0; i < len(s); {
		switch b := s[i]; b {
		case '\\':
			if i+1 < len(s) && isPunctuation(s[i+1]) {
				text.WriteByte(s[i+1])
				i += 2
			} else {
				text.WriteByte('\\')
				i++
			}
		case '`':
			open := runLength(s[i:], '`')
			if end := findRun(s[i+open:], '`', open); end >= 0 {
				flush()
				spans = append(spans, &Inline{
					kind: CodeSpanKind,
					text: strings.Trim(s[i+open:i+open+end], " "),
				})
				i += open + end + open
			} else {
				text.WriteString(s[i : i+open])
				i += open
			}
		case '*', '_':
			open := runLength(s[i:], b)
			width := 1
			kind := EmphasisKind
			if open >= 2 {
				width = 2
				kind = StrongKind
			}
			if end := findRun(s[i+width:], b, width); end >= 0 {
				flush()
				spans = append(spans, &Inline{
					kind:     kind,
					children: parseSpans(s[i+width:i+width+end], refs),
				})
				i += width + end + width
			} else {
				text.WriteString(s[i : i+open])
				i += open
			}
		case '[':
			if link, n := parseLink(s[i:], refs); link != nil {
				flush()
				spans = append(spans, link)
				i += n
			} else {
				text.WriteByte('[')
				i++
			}
		case '!':
			if i+1 < len(s) && s[i+1] == '[' {
				if link, n := parseLink(s[i+1:], refs); link != nil {
					flush()
					link.kind = ImageKind
					spans = append(spans, link)
					i += 1 + n
					break
				}
			}
			text.WriteByte('!')
			i++
		default:
			text.WriteByte(b)
			i++
		}
	}
	flush()
	return spans
}

// parseLink parses a link at the beginning of s (s[0] must be '[').
// It returns the link node and the number of bytes consumed,
// or a nil node if s does not start a well-formed link.
func parseLink(s string, refs ReferenceMap) (*Inline, int) {
	textEnd := matchBracket(s)
	if textEnd < 0 {
		return nil, 0
	}
	link := &Inline{
		kind:     LinkKind,
		children: parseSpans(s[1:textEnd], refs),
	}
	rest := s[textEnd+1:]
	switch {
	case strings.HasPrefix(rest, "("):
		close := strings.IndexByte(rest, ')')
		if close < 0 {
			return nil, 0
		}
		dest := strings.TrimSpace(rest[1:close])
		if title, ok := splitLinkTitle(dest); ok {
			link.destination = title.dest
			link.title = title.title
		} else {
			link.destination = dest
		}
		return link, textEnd + 1 + close + 1
	case strings.HasPrefix(rest, "["):
		labelEnd := strings.IndexByte(rest, ']')
		if labelEnd < 0 {
			return nil, 0
		}
		if labelEnd == 1 {
			// Collapsed reference: the link text is the label.
			link.label = NormalizeLabel(s[1:textEnd])
		} else {
			link.label = NormalizeLabel(rest[1:labelEnd])
		}
		return link, textEnd + 1 + labelEnd + 1
	default:
		// Shortcut reference.
		link.label = NormalizeLabel(s[1:textEnd])
		return link, textEnd + 1
	}
}

type linkTitle struct {
	dest  string
	title string
}

// splitLinkTitle splits `dest "title"` into its parts.
func splitLinkTitle(s string) (linkTitle, bool) {
	if !strings.HasSuffix(s, `"`) {
		return linkTitle{}, false
	}
	open := strings.Index(s, ` "`)
	if open < 0 {
		return linkTitle{}, false
	}
	return linkTitle{
		dest:  strings.TrimRight(s[:open], " "),
		title: s[open+2 : len(s)-1],
	}, true
}

// matchBracket returns the index of the ']' matching s[0] == '['
// or -1 if there is none.
// Nested brackets and backslash escapes are honored.
func matchBracket(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// runLength returns the length of the run of b at the beginning of s.
func runLength(s string, b byte) int {
	n := 0
	for n < len(s) && s[n] == b {
		n++
	}
	return n
}

// findRun returns the index in s of the first unescaped run of b
// of length at least want, or -1 if there is none.
func findRun(s string, b byte, want int) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case b:
			if runLength(s[i:], b) >= want {
				return i
			}
			i += runLength(s[i:], b) - 1
		}
	}
	return -1
}

func isPunctuation(b byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", b) >= 0
}

// appendHTML appends the HTML rendering of the node and its children to dst.
// Reference links are looked up in refs;
// unresolved references render as their link text.
func (inline *Inline) appendHTML(dst []byte, refs ReferenceMap) []byte {
	switch inline.Kind() {
	case TextKind:
		dst = append(dst, escapeHTML(inline.text)...)
	case CodeSpanKind:
		dst = append(dst, "<code>"...)
		dst = append(dst, escapeHTML(inline.text)...)
		dst = append(dst, "</code>"...)
	case EmphasisKind:
		dst = append(dst, "<em>"...)
		dst = inline.appendChildrenHTML(dst, refs)
		dst = append(dst, "</em>"...)
	case StrongKind:
		dst = append(dst, "<strong>"...)
		dst = inline.appendChildrenHTML(dst, refs)
		dst = append(dst, "</strong>"...)
	case LinkKind:
		def, ok := inline.resolve(refs)
		if !ok {
			dst = inline.appendChildrenHTML(dst, refs)
			break
		}
		dst = append(dst, `<a href="`...)
		dst = append(dst, escapeHTML(NormalizeURI(def.Destination))...)
		dst = append(dst, '"')
		if def.TitlePresent {
			dst = append(dst, ` title="`...)
			dst = append(dst, escapeHTML(def.Title)...)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		dst = inline.appendChildrenHTML(dst, refs)
		dst = append(dst, "</a>"...)
	case ImageKind:
		def, ok := inline.resolve(refs)
		if !ok {
			dst = inline.appendChildrenHTML(dst, refs)
			break
		}
		dst = append(dst, `<img src="`...)
		dst = append(dst, escapeHTML(NormalizeURI(def.Destination))...)
		dst = append(dst, `" alt="`...)
		dst = append(dst, escapeHTML(string(inline.appendChildrenPlainText(nil)))...)
		dst = append(dst, '"')
		if def.TitlePresent {
			dst = append(dst, ` title="`...)
			dst = append(dst, escapeHTML(def.Title)...)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
	default:
		dst = inline.appendChildrenHTML(dst, refs)
	}
	return dst
}

func (inline *Inline) appendChildrenHTML(dst []byte, refs ReferenceMap) []byte {
	for _, c := range inline.Children() {
		dst = c.appendHTML(dst, refs)
	}
	return dst
}

// Children returns the node's child nodes.
func (inline *Inline) Children() []*Inline {
	if inline == nil {
		return nil
	}
	return inline.children
}

func (inline *Inline) resolve(refs ReferenceMap) (LinkDefinition, bool) {
	if inline.label == "" {
		return LinkDefinition{
			Destination:  inline.destination,
			Title:        inline.title,
			TitlePresent: inline.title != "",
		}, true
	}
	def, ok := refs[inline.label]
	return def, ok
}

// appendPlainText appends the node's text projection to dst:
// markup dropped, link and image nodes contribute their text children only.
func (inline *Inline) appendPlainText(dst []byte) []byte {
	switch inline.Kind() {
	case TextKind, CodeSpanKind:
		dst = append(dst, inline.text...)
	default:
		dst = inline.appendChildrenPlainText(dst)
	}
	return dst
}

func (inline *Inline) appendChildrenPlainText(dst []byte) []byte {
	for _, c := range inline.Children() {
		dst = c.appendPlainText(dst)
	}
	return dst
}

// renderHTML renders the node to a string. See [Inline.appendHTML].
func (inline *Inline) renderHTML(refs ReferenceMap) string {
	return string(inline.appendHTML(nil, refs))
}

// renderPlainText renders the node's text projection to a string.
func (inline *Inline) renderPlainText() string {
	return string(inline.appendPlainText(nil))
}
