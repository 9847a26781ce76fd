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
	"strings"

	"golang.org/x/text/cases"
)

// LinkDefinition is the data of a link reference definition.
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// ReferenceMap is a mapping of normalized labels to link definitions.
// Parsing fills it from reference definition fragments;
// rendering reads it to resolve reference links.
// This split is what allows a link to appear before its definition.
type ReferenceMap map[string]LinkDefinition

// Define adds a definition under the normalized form of label.
// In case of conflicts,
// Define keeps the existing definition:
// the first definition in source order wins.
func (m ReferenceMap) Define(label string, def LinkDefinition) {
	key := NormalizeLabel(label)
	if key == "" {
		return
	}
	if _, exists := m[key]; exists {
		return
	}
	m[key] = def
}

// MatchReference reports whether the label has a definition in the map.
func (m ReferenceMap) MatchReference(label string) bool {
	_, ok := m[NormalizeLabel(label)]
	return ok
}

var labelFolder = cases.Fold()

// NormalizeLabel puts a reference label in canonical form:
// leading and trailing whitespace removed,
// internal whitespace runs collapsed to a single space,
// and the result case-folded.
func NormalizeLabel(label string) string {
	return labelFolder.String(strings.Join(strings.Fields(label), " "))
}
