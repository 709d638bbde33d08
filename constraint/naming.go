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

import "strings"

// nameSuffix is the conventional type-name suffix stripped during
// inline-constraint name derivation.
const nameSuffix = "RouteConstraint"

// DeriveName derives an inline constraint name from a type name by
// stripping a trailing "RouteConstraint" suffix, if present, and
// lower-casing the result. Suffix stripping only applies when the literal
// suffix is there:
//
//	DeriveName("NumericRouteConstraint")  // "numeric"
//	DeriveName("Custom")                  // "custom"
//
// This is a pure string transformation so the convention stays testable
// apart from any reflection mechanism.
func DeriveName(typeName string) string {
	trimmed := strings.TrimSuffix(typeName, nameSuffix)
	if trimmed == "" {
		// A type literally named "RouteConstraint" keeps its name.
		trimmed = typeName
	}
	return strings.ToLower(trimmed)
}
