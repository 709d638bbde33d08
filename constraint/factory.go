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

package constraint

import (
	"fmt"
	"reflect"
	"sort"
)

// Constructor builds a constraint instance from inline parameter strings.
// Constructors are bound to names at configuration-build time; parameter
// arity or value mismatches fail with ErrMisconfiguredConstraint.
type Constructor func(params ...string) (Constraint, error)

// Factory materializes the constraint objects the route compiler attaches
// to route parameters. It owns the inline name-to-constructor binding
// table.
//
// Bindings are first-write-wins: once a name is taken, later registrations
// for the same name are silently ignored. Re-running configuration logic
// can therefore never replace an established binding.
//
// A Factory is populated once at startup by a single writer and read freely
// afterwards; it carries no internal locking.
type Factory struct {
	bindings map[string]Constructor
}

// FactoryOption configures a Factory during construction.
type FactoryOption func(*Factory)

// WithBuiltins binds the built-in inline constraint vocabulary
// (int, float, uuid, alpha, regex, enum, length, minlength, maxlength,
// range). Names are derived through the same suffix-stripping convention
// as discovered types.
func WithBuiltins() FactoryOption {
	return func(f *Factory) {
		f.RegisterInline(builtinTypes()...)
	}
}

// NewFactory creates a constraint factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{bindings: make(map[string]Constructor)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Bind associates name with a constructor closure. The first registration
// for a name wins; Bind reports whether the binding was installed.
func (f *Factory) Bind(name string, ctor Constructor) bool {
	if _, taken := f.bindings[name]; taken {
		return false
	}
	f.bindings[name] = ctor
	return true
}

// BindType associates name with a constraint type, given any prototype
// value of that type. Construction goes through a closure built here, so
// named lookup never inspects types ad hoc. The capability and parameter
// checks run when the constructor is invoked, keeping all failures at
// configuration time.
func (f *Factory) BindType(name string, prototype any) bool {
	return f.Bind(name, typeConstructor(reflect.TypeOf(prototype)))
}

// RegisterInline scans the given types for inline constraints (types
// carrying the Inline marker), derives a binding name from each type's
// name, and binds it first-write-wins. Types without the marker are
// skipped. It returns the names that were newly bound, in scan order.
func (f *Factory) RegisterInline(types ...reflect.Type) []string {
	var bound []string
	for _, t := range types {
		if t == nil || !implementsMarker(t) {
			continue
		}
		name := DeriveName(baseType(t).Name())
		if f.Bind(name, typeConstructor(t)) {
			bound = append(bound, name)
		}
	}
	return bound
}

// Named looks up name in the binding table and constructs an instance with
// the given parameters. An unknown name returns (nil, nil): a deliberate
// "no such inline constraint" sentinel the caller treats as "no constraint
// configured". A bound type that fails the constraint capability or cannot
// accept the parameters fails with ErrMisconfiguredConstraint.
func (f *Factory) Named(name string, params ...string) (Constraint, error) {
	ctor, ok := f.bindings[name]
	if !ok {
		return nil, nil
	}
	return ctor(params...)
}

// Bound reports whether a name is currently bound.
func (f *Factory) Bound(name string) bool {
	_, ok := f.bindings[name]
	return ok
}

// Names returns the sorted set of bound inline constraint names.
func (f *Factory) Names() []string {
	out := make([]string, 0, len(f.bindings))
	for name := range f.bindings {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var inlineIface = reflect.TypeOf((*Inline)(nil)).Elem()

// baseType unwraps pointer types so name derivation sees the struct name.
func baseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func implementsMarker(t reflect.Type) bool {
	if t.Implements(inlineIface) {
		return true
	}
	return t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(inlineIface)
}

// typeConstructor builds the constructor closure for a bound type. The
// closure instantiates a fresh value per call, checks the constraint
// capability, and applies inline parameters through Parameterized.
func typeConstructor(t reflect.Type) Constructor {
	t = baseType(t)
	return func(params ...string) (Constraint, error) {
		v := reflect.New(t).Interface()

		c, ok := v.(Constraint)
		if !ok {
			return nil, fmt.Errorf("%w: %s does not satisfy the constraint capability", ErrMisconfiguredConstraint, t)
		}

		if p, ok := v.(Parameterized); ok {
			if err := p.SetParams(params...); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMisconfiguredConstraint, t, err)
			}
		} else if len(params) > 0 {
			return nil, fmt.Errorf("%w: %s accepts no parameters, got %d", ErrMisconfiguredConstraint, t, len(params))
		}

		return c, nil
	}
}
