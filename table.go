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

// tableDelimiter starts every table row and separates its cells.
const tableDelimiter = '|'

// Alignment is a table column's text alignment,
// inferred from the table's delimiter row.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the HTML align attribute value,
// or the empty string for [AlignNone].
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// A TableRow is an ordered sequence of cells.
// Rows may be ragged:
// a row's cell count can differ from the table's column count.
type TableRow []*Inline

// A Table is a contiguous run of pipe-delimited rows
// with an optional header and per-column alignments,
// both inferred from a delimiter row during parsing.
type Table struct {
	header      TableRow // nil when no header was inferred
	rows        []TableRow
	columnCount int
	alignments  []Alignment
}

// parseTable parses a run of table rows at the cursor's position.
// Zero captured rows is the only failure:
// it signals that this block is not a table.
func parseTable(c *Cursor, refs ReferenceMap) (Fragment, error) {
	t := &Table{}
	for !c.EOF() && c.Peek() != '\n' {
		if c.Peek() != tableDelimiter {
			break
		}
		row := readTableRow(c, refs)
		t.rows = append(t.rows, row)
		if len(row) > t.columnCount {
			t.columnCount = len(row)
		}
	}
	if len(t.rows) == 0 {
		return nil, ErrNoMatch
	}
	t.inferHeader()
	return t, nil
}

// readTableRow consumes one row: the leading delimiter,
// then cells separated by delimiters, up to a newline or end of input.
// The caller has verified that the current byte is the delimiter.
func readTableRow(c *Cursor, refs ReferenceMap) TableRow {
	c.Next()
	var row TableRow
	for {
		c.SkipSpaces()
		cell := parseInline(c, refs, "|\n")
		if c.Peek() == tableDelimiter {
			c.Next()
		}
		row = append(row, cell)
		if c.EOF() {
			return row
		}
		if c.Peek() == '\n' {
			c.Next()
			return row
		}
	}
}

// inferHeader promotes the first captured row to a header
// when the second row is a delimiter row:
// equal cell count with the first row,
// every cell non-empty and made solely of '-' and ':'.
// On success the first two rows leave the body
// and the delimiter row's colons set the column alignments.
// inferHeader runs once, immediately after row capture.
func (t *Table) inferHeader() {
	if len(t.rows) < 2 || len(t.rows[0]) != len(t.rows[1]) {
		return
	}
	alignments := make([]Alignment, 0, len(t.rows[1]))
	for _, cell := range t.rows[1] {
		text := cell.renderPlainText()
		if text == "" {
			return
		}
		for i := 0; i < len(text); i++ {
			if text[i] != '-' && text[i] != ':' {
				return
			}
		}
		switch first, last := text[0] == ':', text[len(text)-1] == ':'; {
		case first && last:
			alignments = append(alignments, AlignCenter)
		case first:
			alignments = append(alignments, AlignLeft)
		case last:
			alignments = append(alignments, AlignRight)
		default:
			alignments = append(alignments, AlignNone)
		}
	}
	t.header = t.rows[0]
	t.rows = t.rows[2:]
	t.alignments = alignments
}

// Header returns the inferred header row or nil.
func (t *Table) Header() TableRow {
	return t.header
}

// Rows returns the body rows.
func (t *Table) Rows() []TableRow {
	return t.rows
}

// ColumnCount returns the maximum cell count observed across all captured
// rows, including the rows consumed by header inference.
func (t *Table) ColumnCount() int {
	return t.columnCount
}

// Alignments returns the per-column alignments.
// The slice may be shorter than [Table.ColumnCount];
// columns past its end align as [AlignNone].
func (t *Table) Alignments() []Alignment {
	return t.alignments
}

func (t *Table) alignment(i int) Alignment {
	if i < len(t.alignments) {
		return t.alignments[i]
	}
	return AlignNone
}

// RenderHTML renders the table with an optional header section,
// a body section when at least one body row exists,
// and every row padded with empty cells to the column count.
// The "tables" modifier chain is applied to the result.
func (t *Table) RenderHTML(refs ReferenceMap, mods ModifierMap) string {
	dst := []byte("<table>")
	if t.header != nil {
		dst = append(dst, "<thead><tr>"...)
		dst = t.appendRowHTML(dst, t.header, "th", refs)
		dst = append(dst, "</tr></thead>"...)
	}
	if len(t.rows) > 0 {
		dst = append(dst, "<tbody>"...)
		for _, row := range t.rows {
			dst = append(dst, "<tr>"...)
			dst = t.appendRowHTML(dst, row, "td", refs)
			dst = append(dst, "</tr>"...)
		}
		dst = append(dst, "</tbody>"...)
	}
	dst = append(dst, "</table>"...)
	return mods.Apply("tables", string(dst))
}

func (t *Table) appendRowHTML(dst []byte, row TableRow, tag string, refs ReferenceMap) []byte {
	for i := 0; i < t.columnCount; i++ {
		dst = append(dst, '<')
		dst = append(dst, tag...)
		if a := t.alignment(i); a != AlignNone {
			dst = append(dst, ` align="`...)
			dst = append(dst, a.String()...)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		if i < len(row) {
			dst = row[i].appendHTML(dst, refs)
		}
		dst = append(dst, "</"...)
		dst = append(dst, tag...)
		dst = append(dst, '>')
	}
	return dst
}

// RenderPlainText renders the header line (if any)
// followed by each body row on its own line.
// Cells are padded to the column count,
// joined with " | ", and followed by a trailing " |".
func (t *Table) RenderPlainText() string {
	var dst []byte
	if t.header != nil {
		dst = t.appendRowPlainText(dst, t.header)
	}
	for _, row := range t.rows {
		if len(dst) > 0 {
			dst = append(dst, '\n')
		}
		dst = t.appendRowPlainText(dst, row)
	}
	return string(dst)
}

func (t *Table) appendRowPlainText(dst []byte, row TableRow) []byte {
	for i := 0; i < t.columnCount; i++ {
		if i > 0 {
			dst = append(dst, " | "...)
		}
		if i < len(row) {
			dst = row[i].appendPlainText(dst)
		}
	}
	return append(dst, " |"...)
}
