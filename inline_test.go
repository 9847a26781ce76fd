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

import "testing"

func TestParseInline(t *testing.T) {
	refs := ReferenceMap{
		"world": {Destination: "https://www.example.com/"},
	}
	tests := []struct {
		name        string
		input       string
		terminators string
		wantHTML    string
		wantPlain   string
	}{
		{
			name:        "PlainText",
			input:       "Hello, World!",
			terminators: "\n",
			wantHTML:    "Hello, World!",
			wantPlain:   "Hello, World!",
		},
		{
			name:        "Escaping",
			input:       `a < b & "c"`,
			terminators: "\n",
			wantHTML:    "a &lt; b &amp; &quot;c&quot;",
			wantPlain:   `a < b & "c"`,
		},
		{
			name:        "Strong",
			input:       "Hello, **World**!",
			terminators: "\n",
			wantHTML:    "Hello, <strong>World</strong>!",
			wantPlain:   "Hello, World!",
		},
		{
			name:        "Emphasis",
			input:       "an _important_ word",
			terminators: "\n",
			wantHTML:    "an <em>important</em> word",
			wantPlain:   "an important word",
		},
		{
			name:        "Nested",
			input:       "**a *b* c**",
			terminators: "\n",
			wantHTML:    "<strong>a <em>b</em> c</strong>",
			wantPlain:   "a b c",
		},
		{
			name:        "CodeSpan",
			input:       "run `go test` now",
			terminators: "\n",
			wantHTML:    "run <code>go test</code> now",
			wantPlain:   "run go test now",
		},
		{
			name:        "CodeSpanEscapesHTML",
			input:       "`<b>`",
			terminators: "\n",
			wantHTML:    "<code>&lt;b&gt;</code>",
			wantPlain:   "<b>",
		},
		{
			name:        "UnclosedDelimiterIsLiteral",
			input:       "a ** b",
			terminators: "\n",
			wantHTML:    "a ** b",
			wantPlain:   "a ** b",
		},
		{
			name:        "BackslashEscape",
			input:       `\*not emphasis\*`,
			terminators: "\n",
			wantHTML:    "*not emphasis*",
			wantPlain:   "*not emphasis*",
		},
		{
			name:        "InlineLink",
			input:       `see [docs](https://go.dev/doc "Docs")`,
			terminators: "\n",
			wantHTML:    `see <a href="https://go.dev/doc" title="Docs">docs</a>`,
			wantPlain:   "see docs",
		},
		{
			name:        "ReferenceLink",
			input:       "Hello, [World][]!",
			terminators: "\n",
			wantHTML:    `Hello, <a href="https://www.example.com/">World</a>!`,
			wantPlain:   "Hello, World!",
		},
		{
			name:        "ShortcutReference",
			input:       "Hello, [World]!",
			terminators: "\n",
			wantHTML:    `Hello, <a href="https://www.example.com/">World</a>!`,
			wantPlain:   "Hello, World!",
		},
		{
			name:        "UnresolvedReference",
			input:       "[missing][nope]",
			terminators: "\n",
			wantHTML:    "missing",
			wantPlain:   "missing",
		},
		{
			name:        "Image",
			input:       "![alt text](/img.png)",
			terminators: "\n",
			wantHTML:    `<img src="/img.png" alt="alt text">`,
			wantPlain:   "alt text",
		},
		{
			name:        "TerminatorStops",
			input:       "a | b",
			terminators: "|\n",
			wantHTML:    "a",
			wantPlain:   "a",
		},
		{
			name:        "EscapedTerminator",
			input:       `a \| b`,
			terminators: "|\n",
			wantHTML:    "a | b",
			wantPlain:   "a | b",
		},
		{
			name:        "TrimsSurroundingSpace",
			input:       "  a b \n",
			terminators: "\n",
			wantHTML:    "a b",
			wantPlain:   "a b",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			inline := parseInline(NewCursor([]byte(test.input)), refs, test.terminators)
			if got := inline.renderHTML(refs); got != test.wantHTML {
				t.Errorf("renderHTML(%q) = %q; want %q", test.input, got, test.wantHTML)
			}
			if got := inline.renderPlainText(); got != test.wantPlain {
				t.Errorf("renderPlainText(%q) = %q; want %q", test.input, got, test.wantPlain)
			}
		})
	}
}

func TestParseInlineLeavesTerminator(t *testing.T) {
	c := NewCursor([]byte("cell | next"))
	parseInline(c, nil, "|\n")
	if got := c.Peek(); got != '|' {
		t.Errorf("after parseInline, Peek() = %q; want %q", got, '|')
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"https://www.example.com/", "https://www.example.com/"},
		{"foo bar", "foo%20bar"},
		{"%20", "%20"},
		{"100%", "100%25"},
	}
	for _, test := range tests {
		if got := NormalizeURI(test.uri); got != test.want {
			t.Errorf("NormalizeURI(%q) = %q; want %q", test.uri, got, test.want)
		}
	}
}
