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

// A Cursor is a read position within a Markdown source buffer.
// A single cursor is threaded through every parser in a parse attempt:
// fragment parsers hand it to the inline parser and back,
// each advancing it as characters are consumed.
// Callers that need backtracking snapshot the position with [Cursor.Pos]
// and restore it with [Cursor.Seek];
// the cursor itself never rewinds on its own.
type Cursor struct {
	source []byte
	pos    int
}

// NewCursor returns a cursor positioned at the beginning of source.
// The cursor reads source directly; the caller must not modify it
// while any parse attempt is in progress.
func NewCursor(source []byte) *Cursor {
	return &Cursor{source: source}
}

// EOF reports whether the cursor has reached the end of input.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.source)
}

// Peek returns the byte at the current position
// or zero at end of input.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.source[c.pos]
}

// Next advances the cursor by one byte.
// At end of input, Next no-ops.
func (c *Cursor) Next() {
	if !c.EOF() {
		c.pos++
	}
}

// ReadRun consumes a contiguous run of b
// and returns the number of bytes consumed (possibly zero).
func (c *Cursor) ReadRun(b byte) int {
	n := 0
	for !c.EOF() && c.source[c.pos] == b {
		c.pos++
		n++
	}
	return n
}

// Expect consumes b at the current position.
// If the current byte is not b, Expect returns [ErrNoMatch]
// and leaves the cursor unmoved.
func (c *Cursor) Expect(b byte) error {
	if c.EOF() || c.source[c.pos] != b {
		return ErrNoMatch
	}
	c.pos++
	return nil
}

// SkipSpaces consumes a contiguous run of spaces and tabs
// and returns the number of bytes consumed.
// Newlines are structural and are never consumed by SkipSpaces.
func (c *Cursor) SkipSpaces() int {
	n := 0
	for !c.EOF() && (c.source[c.pos] == ' ' || c.source[c.pos] == '\t') {
		c.pos++
		n++
	}
	return n
}

// Pos returns the current byte offset for use with [Cursor.Seek].
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek restores the cursor to a position previously obtained from [Cursor.Pos].
// It panics if pos is out of range.
func (c *Cursor) Seek(pos int) {
	if pos < 0 || pos > len(c.source) {
		panic("seek out of bounds")
	}
	c.pos = pos
}
