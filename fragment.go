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

import "errors"

// ErrNoMatch is returned by fragment parsers
// when the input at the current position is not the fragment's kind.
// It is not fatal:
// the dispatcher restores the cursor and tries the next candidate.
var ErrNoMatch = errors.New("fragmark: fragment does not match")

// A Fragment is a parsed block-level Markdown element.
// Fragments are immutable once parsed;
// both render methods are pure and safe for concurrent use
// as long as the reference and modifier maps are not mutated concurrently.
type Fragment interface {
	// RenderHTML renders the fragment as an HTML element.
	// Reference links are resolved through refs at render time,
	// and the fragment's modifier chain from mods is applied to the result.
	RenderHTML(refs ReferenceMap, mods ModifierMap) string

	// RenderPlainText renders the fragment's text content
	// without any markup.
	RenderPlainText() string
}

// A parseFunc attempts to parse one fragment kind at the cursor's position.
// On success the cursor rests after the fragment's final newline (if any).
// On ErrNoMatch the cursor position is unspecified;
// the dispatcher restores it from a snapshot.
type parseFunc func(c *Cursor, refs ReferenceMap) (Fragment, error)

// fragmentParsers is the dispatcher's candidate order.
// Paragraph is last: it matches any non-blank line.
var fragmentParsers = []parseFunc{
	parseHeading,
	parseThematicBreak,
	parseCodeBlock,
	parseTable,
	parseReferenceDefinition,
	parseList,
	parseParagraph,
}
