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

// TypeCatalog enumerates candidate types for discovery. It is the
// host-supplied collaborator standing in for an assembly or package scan:
// implementations must return types in a stable, deterministic order so
// discovery-driven registration order is reproducible.
type TypeCatalog interface {
	Types() []reflect.Type
}

// Catalog builds a TypeCatalog from example values, in argument order,
// with duplicates removed. Pointer examples are unwrapped to their element
// type.
//
// Example:
//
//	cat := attributerouting.Catalog(UsersController{}, &OrdersController{})
func Catalog(examples ...any) TypeCatalog {
	seen := make(map[reflect.Type]struct{}, len(examples))
	types := make([]reflect.Type, 0, len(examples))
	for _, ex := range examples {
		t := reflect.TypeOf(ex)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return typeCatalog(types)
}

// TypesCatalog builds a TypeCatalog directly from reflect.Types, in
// argument order.
func TypesCatalog(types ...reflect.Type) TypeCatalog {
	return typeCatalog(append([]reflect.Type(nil), types...))
}

type typeCatalog []reflect.Type

func (c typeCatalog) Types() []reflect.Type {
	return append([]reflect.Type(nil), c...)
}

// DiscoverControllerTypes returns, in catalog order, every type in cat
// assignable to the framework controller base type. This is the default
// discovery function; hosts with richer scanning replace it through
// WithDiscoverer.
func DiscoverControllerTypes(cat TypeCatalog, controllerType reflect.Type) []reflect.Type {
	if cat == nil || controllerType == nil {
		return nil
	}
	var out []reflect.Type
	for _, t := range cat.Types() {
		if assignableToController(t, controllerType) {
			out = append(out, t)
		}
	}
	return out
}

// Discoverer is the type-discovery collaborator signature.
type Discoverer func(cat TypeCatalog, controllerType reflect.Type) []reflect.Type

// assignableToController reports whether t is admissible for a framework
// controller base type. Interface bases accept both value and pointer
// method sets; concrete bases use plain assignability.
func assignableToController(t, base reflect.Type) bool {
	if t == nil || base == nil {
		return false
	}
	if base.Kind() == reflect.Interface {
		if t.Implements(base) {
			return true
		}
		return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(base)
	}
	return t.AssignableTo(base)
}
