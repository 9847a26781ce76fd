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

// A Modifier rewrites a fragment's rendered HTML.
// Modifiers run after rendering and never see the parse state.
type Modifier func(html string) string

// ModifierMap maps a fragment tag to its modifier chain.
// Tags name fragment kinds in the plural:
// "headings", "tables", "paragraphs", "lists", "code", "breaks".
// A nil map applies no modifiers.
type ModifierMap map[string][]Modifier

// Add appends a modifier to the tag's chain.
func (m ModifierMap) Add(tag string, mod Modifier) {
	m[tag] = append(m[tag], mod)
}

// Apply runs the tag's modifier chain over html in registration order.
func (m ModifierMap) Apply(tag, html string) string {
	for _, mod := range m[tag] {
		html = mod(html)
	}
	return html
}
