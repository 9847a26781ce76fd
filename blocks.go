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

// readLine consumes the rest of the current line, including its newline,
// and returns the line's content without the newline.
func readLine(c *Cursor) string {
	start := c.Pos()
	for !c.EOF() && c.Peek() != '\n' {
		c.Next()
	}
	line := string(c.source[start:c.Pos()])
	if !c.EOF() {
		c.Next()
	}
	return line
}

// A ThematicBreak is a horizontal rule:
// a line of at least three '-', '_', or '*' characters
// (one kind per line), optionally separated by spaces.
type ThematicBreak struct{}

func parseThematicBreak(c *Cursor, refs ReferenceMap) (Fragment, error) {
	n := 0
	var want byte
	for !c.EOF() && c.Peek() != '\n' {
		switch b := c.Peek(); b {
		case '-', '_', '*':
			if n == 0 {
				want = b
			} else if b != want {
				return nil, ErrNoMatch
			}
			n++
		case ' ', '\t':
			// Ignore
		default:
			return nil, ErrNoMatch
		}
		c.Next()
	}
	if n < 3 {
		return nil, ErrNoMatch
	}
	if !c.EOF() {
		c.Next()
	}
	return ThematicBreak{}, nil
}

// RenderHTML renders <hr> and applies the "breaks" modifier chain.
func (ThematicBreak) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	return mods.Apply("breaks", "<hr>")
}

// RenderPlainText returns the empty string:
// a rule has no text projection.
func (ThematicBreak) RenderPlainText() string {
	return ""
}

// codeFence is the fenced code block delimiter character.
const codeFence = '`'

// A CodeBlock is a fenced code block:
// an opening fence of at least three backticks with an optional info string,
// literal lines, and a closing fence of at least the opening length.
type CodeBlock struct {
	info    string
	literal string
}

func parseCodeBlock(c *Cursor, refs ReferenceMap) (Fragment, error) {
	open := c.ReadRun(codeFence)
	if open < 3 {
		return nil, ErrNoMatch
	}
	cb := &CodeBlock{info: strings.TrimSpace(readLine(c))}
	var literal strings.Builder
	for !c.EOF() {
		mark := c.Pos()
		c.SkipSpaces()
		if n := c.ReadRun(codeFence); n >= open {
			c.SkipSpaces()
			if c.EOF() {
				break
			}
			if c.Peek() == '\n' {
				c.Next()
				break
			}
		}
		c.Seek(mark)
		literal.WriteString(readLine(c))
		literal.WriteByte('\n')
	}
	// An unclosed fence runs to the end of input.
	cb.literal = literal.String()
	return cb, nil
}

// Info returns the fence's info string, e.g. the language name.
func (cb *CodeBlock) Info() string {
	return cb.info
}

// Literal returns the block's literal content,
// one trailing newline per line.
func (cb *CodeBlock) Literal() string {
	return cb.literal
}

// RenderHTML renders <pre><code>,
// with a language class when the info string's first word is non-empty,
// and applies the "code" modifier chain.
func (cb *CodeBlock) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	dst := []byte("<pre><code")
	if words := strings.Fields(cb.info); len(words) > 0 {
		dst = append(dst, ` class="language-`...)
		dst = append(dst, escapeHTML(words[0])...)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	dst = append(dst, escapeHTML(cb.literal)...)
	dst = append(dst, "</code></pre>"...)
	return mods.Apply("code", string(dst))
}

// RenderPlainText returns the literal content.
func (cb *CodeBlock) RenderPlainText() string {
	return cb.literal
}

// A ReferenceDefinition is a link reference definition line:
//
//	[label]: destination "title"
//
// It contributes to the reference map during parsing
// and renders to nothing.
type ReferenceDefinition struct {
	label string
	def   LinkDefinition
}

func parseReferenceDefinition(c *Cursor, refs ReferenceMap) (Fragment, error) {
	if err := c.Expect('['); err != nil {
		return nil, err
	}
	start := c.Pos()
	for !c.EOF() && c.Peek() != ']' && c.Peek() != '\n' {
		c.Next()
	}
	label := string(c.source[start:c.Pos()])
	if err := c.Expect(']'); err != nil {
		return nil, err
	}
	if err := c.Expect(':'); err != nil {
		return nil, err
	}
	c.SkipSpaces()
	rest := readLine(c)
	if rest == "" {
		return nil, ErrNoMatch
	}
	rd := &ReferenceDefinition{label: label}
	if title, ok := splitLinkTitle(rest); ok {
		rd.def = LinkDefinition{
			Destination:  title.dest,
			Title:        title.title,
			TitlePresent: true,
		}
	} else if strings.ContainsAny(rest, " \t") {
		// A destination cannot contain whitespace.
		return nil, ErrNoMatch
	} else {
		rd.def = LinkDefinition{Destination: rest}
	}
	refs.Define(rd.label, rd.def)
	return rd, nil
}

// Label returns the definition's label as written in the source.
func (rd *ReferenceDefinition) Label() string {
	return rd.label
}

// Definition returns the parsed destination and title.
func (rd *ReferenceDefinition) Definition() LinkDefinition {
	return rd.def
}

// RenderHTML returns the empty string: definitions produce no output.
func (rd *ReferenceDefinition) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	return ""
}

// RenderPlainText returns the empty string.
func (rd *ReferenceDefinition) RenderPlainText() string {
	return ""
}
