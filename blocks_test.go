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

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseThematicBreak(t *testing.T) {
	ok := []string{
		"---\n",
		"***\n",
		"___\n",
		"- - -\n",
		"-----\n",
	}
	for _, input := range ok {
		f, err := parseThematicBreak(NewCursor([]byte(input)), nil)
		if err != nil {
			t.Errorf("parseThematicBreak(%q): %v", input, err)
			continue
		}
		if got := f.RenderHTML(nil, nil); got != "<hr>" {
			t.Errorf("parseThematicBreak(%q).RenderHTML = %q; want %q", input, got, "<hr>")
		}
	}
	bad := []string{
		"--\n",
		"-*-\n",
		"--- x\n",
		"text\n",
	}
	for _, input := range bad {
		if _, err := parseThematicBreak(NewCursor([]byte(input)), nil); !errors.Is(err, ErrNoMatch) {
			t.Errorf("parseThematicBreak(%q) error = %v; want ErrNoMatch", input, err)
		}
	}
}

func TestParseCodeBlock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		info    string
		literal string
		html    string
	}{
		{
			name:    "Go",
			input:   "```go\nfmt.Println()\n```\n",
			info:    "go",
			literal: "fmt.Println()\n",
			html:    `<pre><code class="language-go">fmt.Println()` + "\n" + `</code></pre>`,
		},
		{
			name:    "NoInfo",
			input:   "```\nplain\n```\n",
			literal: "plain\n",
			html:    "<pre><code>plain\n</code></pre>",
		},
		{
			name:    "EscapesContent",
			input:   "```\na < b\n```\n",
			literal: "a < b\n",
			html:    "<pre><code>a &lt; b\n</code></pre>",
		},
		{
			name:    "Unclosed",
			input:   "```\nno end\n",
			literal: "no end\n",
			html:    "<pre><code>no end\n</code></pre>",
		},
		{
			name:    "LongerClosingFence",
			input:   "````\n```\n````\n",
			literal: "```\n",
			html:    "<pre><code>```\n</code></pre>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := parseCodeBlock(NewCursor([]byte(test.input)), nil)
			if err != nil {
				t.Fatal("parseCodeBlock:", err)
			}
			cb := f.(*CodeBlock)
			if cb.Info() != test.info {
				t.Errorf("Info() = %q; want %q", cb.Info(), test.info)
			}
			if cb.Literal() != test.literal {
				t.Errorf("Literal() = %q; want %q", cb.Literal(), test.literal)
			}
			if got := cb.RenderHTML(nil, nil); got != test.html {
				t.Errorf("RenderHTML = %q; want %q", got, test.html)
			}
			if got := cb.RenderPlainText(); got != test.literal {
				t.Errorf("RenderPlainText = %q; want %q", got, test.literal)
			}
		})
	}
}

func TestParseReferenceDefinition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		label string
		def   LinkDefinition
	}{
		{
			name:  "Bare",
			input: "[World]: https://www.example.com/\n",
			label: "World",
			def:   LinkDefinition{Destination: "https://www.example.com/"},
		},
		{
			name:  "WithTitle",
			input: `[docs]: https://go.dev/doc "Docs"` + "\n",
			label: "docs",
			def: LinkDefinition{
				Destination:  "https://go.dev/doc",
				Title:        "Docs",
				TitlePresent: true,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			refs := make(ReferenceMap)
			f, err := parseReferenceDefinition(NewCursor([]byte(test.input)), refs)
			if err != nil {
				t.Fatal("parseReferenceDefinition:", err)
			}
			rd := f.(*ReferenceDefinition)
			if rd.Label() != test.label {
				t.Errorf("Label() = %q; want %q", rd.Label(), test.label)
			}
			if diff := cmp.Diff(test.def, rd.Definition()); diff != "" {
				t.Errorf("Definition() (-want +got):\n%s", diff)
			}
			if !refs.MatchReference(test.label) {
				t.Errorf("reference map does not contain %q", test.label)
			}
			if got := rd.RenderHTML(refs, nil); got != "" {
				t.Errorf("RenderHTML = %q; want empty", got)
			}
		})
	}
}

func TestParseReferenceDefinitionErrors(t *testing.T) {
	tests := []string{
		"[x] (not a definition)\n",
		"[x]: has spaces after\n",
		"[x]:\n",
		"plain text\n",
	}
	for _, input := range tests {
		if _, err := parseReferenceDefinition(NewCursor([]byte(input)), make(ReferenceMap)); !errors.Is(err, ErrNoMatch) {
			t.Errorf("parseReferenceDefinition(%q) error = %v; want ErrNoMatch", input, err)
		}
	}
}

func TestReferenceDefinitionFirstWins(t *testing.T) {
	refs := make(ReferenceMap)
	refs.Define("x", LinkDefinition{Destination: "first"})
	refs.Define("X", LinkDefinition{Destination: "second"})
	if got := refs[NormalizeLabel("x")].Destination; got != "first" {
		t.Errorf("Destination = %q; want %q", got, "first")
	}
}
