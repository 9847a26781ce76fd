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

// Package format re-emits a parsed document as canonical Markdown:
// headings without closing marker runs,
// tables with a regenerated delimiter row,
// and one blank line between fragments.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/fragmark"
)

// Format writes doc as canonical Markdown to w.
func Format(w io.Writer, doc *fragmark.Document) error {
	ww := &errWriter{w: w}
	for _, f := range doc.Fragments() {
		if ww.hasWritten {
			ww.WriteString("\n")
		}
		writeFragment(ww, f)
	}
	if ww.err != nil {
		return fmt.Errorf("format markdown: %w", ww.err)
	}
	return nil
}

func writeFragment(w *errWriter, f fragmark.Fragment) {
	switch f := f.(type) {
	case *fragmark.Heading:
		w.WriteString(strings.Repeat("#", f.Level()))
		w.WriteString(" ")
		w.WriteString(f.RenderPlainText())
		w.WriteString("\n")
	case *fragmark.Table:
		writeTable(w, f)
	case *fragmark.CodeBlock:
		w.WriteString("```")
		w.WriteString(f.Info())
		w.WriteString("\n")
		w.WriteString(f.Literal())
		w.WriteString("```\n")
	case *fragmark.List:
		writeList(w, f)
	case *fragmark.ReferenceDefinition:
		w.WriteString("[")
		w.WriteString(f.Label())
		w.WriteString("]: ")
		def := f.Definition()
		w.WriteString(def.Destination)
		if def.TitlePresent {
			w.WriteString(` "`)
			w.WriteString(def.Title)
			w.WriteString(`"`)
		}
		w.WriteString("\n")
	case fragmark.ThematicBreak:
		w.WriteString("---\n")
	case *fragmark.Paragraph:
		for _, line := range f.Lines() {
			writeInline(w, line)
			w.WriteString("\n")
		}
	default:
		// Any future kinds: fall back to the plain text projection.
		w.WriteString(f.RenderPlainText())
		w.WriteString("\n")
	}
}

func writeTable(w *errWriter, t *fragmark.Table) {
	if header := t.Header(); header != nil {
		writeTableRow(w, t, header)
		w.WriteString("|")
		for i := 0; i < t.ColumnCount(); i++ {
			w.WriteString(" ")
			w.WriteString(delimiterCell(alignmentAt(t, i)))
			w.WriteString(" |")
		}
		w.WriteString("\n")
	}
	for _, row := range t.Rows() {
		writeTableRow(w, t, row)
	}
}

func writeTableRow(w *errWriter, t *fragmark.Table, row fragmark.TableRow) {
	w.WriteString("|")
	for i := 0; i < t.ColumnCount(); i++ {
		w.WriteString(" ")
		if i < len(row) {
			writeInline(w, row[i])
		}
		w.WriteString(" |")
	}
	w.WriteString("\n")
}

func alignmentAt(t *fragmark.Table, i int) fragmark.Alignment {
	if a := t.Alignments(); i < len(a) {
		return a[i]
	}
	return fragmark.AlignNone
}

func delimiterCell(a fragmark.Alignment) string {
	switch a {
	case fragmark.AlignLeft:
		return ":--"
	case fragmark.AlignCenter:
		return ":-:"
	case fragmark.AlignRight:
		return "--:"
	default:
		return "---"
	}
}

func writeList(w *errWriter, l *fragmark.List) {
	for i, item := range l.Items() {
		if l.Ordered() {
			w.WriteString(strconv.Itoa(l.Start() + i))
			w.WriteString(". ")
		} else {
			w.WriteString("- ")
		}
		writeInline(w, item)
		w.WriteString("\n")
	}
}

// writeInline re-emits an inline tree with canonical delimiters.
func writeInline(w *errWriter, inline *fragmark.Inline) {
	switch inline.Kind() {
	case fragmark.TextKind:
		w.WriteString(inline.Text())
	case fragmark.CodeSpanKind:
		w.WriteString("`")
		w.WriteString(inline.Text())
		w.WriteString("`")
	case fragmark.EmphasisKind:
		w.WriteString("*")
		writeInlineChildren(w, inline)
		w.WriteString("*")
	case fragmark.StrongKind:
		w.WriteString("**")
		writeInlineChildren(w, inline)
		w.WriteString("**")
	case fragmark.LinkKind, fragmark.ImageKind:
		if inline.Kind() == fragmark.ImageKind {
			w.WriteString("!")
		}
		w.WriteString("[")
		writeInlineChildren(w, inline)
		w.WriteString("]")
		if label := inline.Label(); label != "" {
			w.WriteString("[")
			w.WriteString(label)
			w.WriteString("]")
		} else {
			w.WriteString("(")
			w.WriteString(inline.Destination())
			w.WriteString(")")
		}
	default:
		writeInlineChildren(w, inline)
	}
}

func writeInlineChildren(w *errWriter, inline *fragmark.Inline) {
	for _, c := range inline.Children() {
		writeInline(w, c)
	}
}

type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}
