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

// Package constraint builds and composes route parameter constraints.
//
// This package contains:
//   - Constraint: the capability a route system requires of a parameter validator
//   - Factory: name-to-constructor bindings for inline constraints ("int", "uuid", ...)
//   - Composition wrappers: Compound (logical AND), Optional, QueryString
//   - Built-in inline constraints covering the common parameter vocabulary
//
// Constraints compose by wrapping rather than by subclassing: compound,
// optional, and query-string behavior are thin adapters layered over any
// base constraint, so combinations stay linear in the number of adapters.
//
// # Inline constraints
//
// An inline constraint is referenced by a short lowercase name rather than
// by type. Names bind first-write-wins, and lookups of unknown names return
// nil rather than failing so callers can treat them as "no constraint
// configured":
//
//	f := constraint.NewFactory(constraint.WithBuiltins())
//	c, err := f.Named("range", "1", "10")  // range(1,10)
//	c, err = f.Named("nope")               // nil, nil
//
// # Failure model
//
// All errors surface at configuration time: ErrInvalidPattern for malformed
// patterns, ErrMisconfiguredConstraint for bad name bindings or parameter
// mismatches, ErrInvalidComposition for compound construction over invalid
// elements. Nothing in this package fails at request time.
package constraint
