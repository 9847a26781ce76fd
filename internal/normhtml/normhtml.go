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

// Package normhtml normalizes HTML for test comparison,
// ignoring differences that do not change the document structure:
// attribute order, insignificant whitespace between block tags,
// and entity spelling in text.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var textEscaper = bytereplacer.New(
	"&", "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips insignificant differences from an HTML fragment.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	last := html.StartTagToken
	var lastTag string
	inPre := false
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := tok.Text()
			if !inPre {
				data = whitespaceRE.ReplaceAll(data, []byte(" "))
				if isBlockTag(lastTag) {
					switch last {
					case html.StartTagToken:
						data = bytes.TrimLeftFunc(data, unicode.IsSpace)
					case html.EndTagToken:
						data = bytes.TrimSpace(data)
					}
				}
			}
			output = append(output, textEscaper.Replace(bytes.Clone(data))...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = true
			}
			if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, '<')
			output = append(output, tag...)
			output = appendAttrs(output, tok, hasAttr)
			output = append(output, '>')
			lastTag = tag
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = false
			} else if isBlockTag(tag) {
				output = bytes.TrimRightFunc(output, unicode.IsSpace)
			}
			output = append(output, "</"...)
			output = append(output, tag...)
			output = append(output, '>')
			lastTag = tag
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

// appendAttrs emits the current tag's attributes in sorted key order.
func appendAttrs(output []byte, tok *html.Tokenizer, hasAttr bool) []byte {
	if !hasAttr {
		return output
	}
	type htmlAttribute struct {
		key   string
		value string
	}
	var attrs []htmlAttribute
	for {
		k, v, more := tok.TagAttr()
		attrs = append(attrs, htmlAttribute{string(k), string(v)})
		if !more {
			break
		}
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].key < attrs[j].key
	})
	for _, attr := range attrs {
		output = append(output, ' ')
		output = append(output, attr.key...)
		if attr.value != "" {
			output = append(output, `="`...)
			output = append(output, html.EscapeString(attr.value)...)
			output = append(output, '"')
		}
	}
	return output
}

// blockTags are the tags the renderer emits at block level,
// plus the thead/tbody table sections.
var blockTags = map[string]struct{}{
	atom.H1.String():    {},
	atom.H2.String():    {},
	atom.H3.String():    {},
	atom.H4.String():    {},
	atom.H5.String():    {},
	atom.H6.String():    {},
	atom.Hr.String():    {},
	atom.P.String():     {},
	atom.Pre.String():   {},
	atom.Ul.String():    {},
	atom.Ol.String():    {},
	atom.Li.String():    {},
	atom.Table.String(): {},
	atom.Thead.String(): {},
	atom.Tbody.String(): {},
	atom.Tr.String():    {},
	atom.Th.String():    {},
	atom.Td.String():    {},
	atom.Div.String():   {},
}

func isBlockTag(tag string) bool {
	_, ok := blockTags[tag]
	return ok
}
