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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNamingStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec RouteSpec
		want string
	}{
		{
			"area controller action",
			RouteSpec{Area: "Admin", Controller: usersType, Action: "Index"},
			"admin.users.index",
		},
		{
			"no area",
			RouteSpec{Controller: usersType, Action: "Show"},
			"users.show",
		},
		{
			"explicit controller name wins",
			RouteSpec{ControllerName: "AccountsController", Action: "Index"},
			"accounts.index",
		},
		{
			"controller name without suffix",
			RouteSpec{ControllerName: "Health", Action: "Check"},
			"health.check",
		},
		{
			"pointer controller type",
			RouteSpec{Controller: reflect.TypeOf(&OrdersController{}), Action: "List"},
			"orders.list",
		},
		{
			"area alone names nothing",
			RouteSpec{Area: "Admin"},
			"",
		},
		{
			"empty spec",
			RouteSpec{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DefaultNamingStrategy(tt.spec))
		})
	}
}
