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

import (
	"reflect"
	"strings"
)

// RouteSpec carries the metadata describing one route. The route compiler
// builds these and passes them to the naming strategy; this core only
// consumes the strategy's string result.
type RouteSpec struct {
	Controller     reflect.Type
	ControllerName string // explicit name; derived from Controller when empty
	Action         string
	Method         string // HTTP method
	Path           string // path template
	Area           string
}

// NamingStrategy derives a route name from a route specification.
// Returning "" leaves the route unnamed. The registry stores a single
// strategy, replaceable wholesale, never composed.
type NamingStrategy func(spec RouteSpec) string

// DefaultNamingStrategy names routes "area.controller.action" in
// lowercase, dropping empty components:
//
//	{Area: "Admin", Controller: UsersController, Action: "Index"}
//	// "admin.users.index"
//
// A spec with no controller and no action yields "".
func DefaultNamingStrategy(spec RouteSpec) string {
	var parts []string
	if spec.Area != "" {
		parts = append(parts, strings.ToLower(spec.Area))
	}
	if ctrl := specControllerName(spec); ctrl != "" {
		parts = append(parts, strings.ToLower(ctrl))
	}
	if spec.Action != "" {
		parts = append(parts, strings.ToLower(spec.Action))
	}
	// An area alone names nothing.
	if len(parts) == 1 && spec.Area != "" {
		return ""
	}
	return strings.Join(parts, ".")
}

// specControllerName resolves the controller component of a route name,
// stripping the conventional "Controller" type-name suffix.
func specControllerName(spec RouteSpec) string {
	name := spec.ControllerName
	if name == "" && spec.Controller != nil {
		t := spec.Controller
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		name = t.Name()
	}
	if trimmed := strings.TrimSuffix(name, "Controller"); trimmed != "" {
		name = trimmed
	}
	return name
}
