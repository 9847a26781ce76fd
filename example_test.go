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

package fragmark_test

import (
	"os"
	"strings"

	"zombiezen.com/go/fragmark"
)

func Example() {
	// Convert Markdown to fragments and any link references.
	doc, refs := fragmark.Parse([]byte("Hello, **World**!\n"))
	// Render the fragments to HTML.
	fragmark.RenderHTML(os.Stdout, doc, refs, nil)
	// Output:
	// <p>Hello, <strong>World</strong>!</p>
}

func Example_table() {
	input := "| Name | Count |\n" +
		"| :--- | ----: |\n" +
		"| ants | 1000 |\n"
	doc, refs := fragmark.Parse([]byte(input))
	fragmark.RenderHTML(os.Stdout, doc, refs, nil)
	// Output:
	// <table><thead><tr><th align="left">Name</th><th align="right">Count</th></tr></thead><tbody><tr><td align="left">ants</td><td align="right">1000</td></tr></tbody></table>
}

func Example_references() {
	input := "Hello, [World][]!\n" +
		"\n" +
		"[World]: https://www.example.com/\n"
	doc, refs := fragmark.Parse([]byte(input))
	fragmark.RenderHTML(os.Stdout, doc, refs, nil)
	// Output:
	// <p>Hello, <a href="https://www.example.com/">World</a>!</p>
}

func ExampleModifierMap() {
	mods := make(fragmark.ModifierMap)
	// Give every heading an anchor derived from its text.
	mods.Add("headings", func(html string) string {
		anchor := strings.ToLower(strings.TrimSuffix(strings.SplitN(html, ">", 2)[1], "</h1>"))
		return `<a id="` + anchor + `"></a>` + html
	})
	doc, refs := fragmark.Parse([]byte("# Intro\n"))
	fragmark.RenderHTML(os.Stdout, doc, refs, mods)
	// Output:
	// <a id="intro"></a><h1>Intro</h1>
}
