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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typeName string
		want     string
	}{
		{"NumericRouteConstraint", "numeric"},
		{"Custom", "custom"},
		{"UUIDRouteConstraint", "uuid"},
		{"MinLengthRouteConstraint", "minlength"},
		{"RouteConstraint", "routeconstraint"},
		{"RouteConstraintRouteConstraint", "routeconstraint"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DeriveName(tt.typeName))
		})
	}
}
