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

package attributerouting

import "reflect"

// typeList is the ordered controller-type sequence. Insertion order is
// significant: it determines route emission order downstream. The list
// never holds duplicates and only shrinks as the removal half of a
// promotion.
type typeList struct {
	entries []reflect.Type
}

func (l *typeList) contains(t reflect.Type) bool {
	for _, e := range l.entries {
		if e == t {
			return true
		}
	}
	return false
}

// add appends t if absent and reports whether it was inserted.
// An existing entry is left in place: no reordering.
func (l *typeList) add(t reflect.Type) bool {
	if l.contains(t) {
		return false
	}
	l.entries = append(l.entries, t)
	return true
}

// promote moves an existing entry to the end, or appends a new one.
// It reports whether t was already present.
func (l *typeList) promote(t reflect.Type) bool {
	for i, e := range l.entries {
		if e == t {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.entries = append(l.entries, t)
			return true
		}
	}
	l.entries = append(l.entries, t)
	return false
}

// snapshot returns a copy so callers can never mutate registration order.
func (l *typeList) snapshot() []reflect.Type {
	return append([]reflect.Type(nil), l.entries...)
}

func (l *typeList) len() int {
	return len(l.entries)
}
