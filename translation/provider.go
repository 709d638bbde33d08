// Copyright 2026 The AttributeRouting Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package translation

import "sort"

// Provider supplies translations for route keys.
//
// Cultures returns every culture identifier the provider can translate
// into (e.g. "en", "fr-FR"). Translate resolves a key for one culture,
// returning false when the provider has no entry.
type Provider interface {
	Cultures() []string
	Translate(key, culture string) (string, bool)
}

// Cultures returns the deduplicated union of culture identifiers across
// providers. The result is sorted so callers get a stable, order-independent
// view regardless of provider registration order.
func Cultures(providers []Provider) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range providers {
		for _, c := range p.Cultures() {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// MapProvider is an in-memory Provider keyed by culture then key.
// Useful for tests and for small fixed translation sets.
//
// Example:
//
//	p := translation.MapProvider{
//	    "fr": {"users.index": "utilisateurs"},
//	    "es": {"users.index": "usuarios"},
//	}
type MapProvider map[string]map[string]string

// Cultures implements Provider.
func (m MapProvider) Cultures() []string {
	out := make([]string, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Translate implements Provider.
func (m MapProvider) Translate(key, culture string) (string, bool) {
	entries, ok := m[culture]
	if !ok {
		return "", false
	}
	v, ok := entries[key]
	return v, ok
}
