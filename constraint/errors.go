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

import "errors"

var (
	// ErrInvalidPattern indicates that a supplied matching pattern is not
	// syntactically valid. Surfaced at configuration time, never during
	// request matching.
	ErrInvalidPattern = errors.New("invalid constraint pattern")

	// ErrMisconfiguredConstraint indicates that a name-bound constraint type
	// does not satisfy the constraint capability, or that its parameters
	// could not be applied.
	ErrMisconfiguredConstraint = errors.New("misconfigured named constraint")

	// ErrInvalidComposition indicates that an element passed to compound
	// construction does not itself satisfy the constraint capability.
	ErrInvalidComposition = errors.New("invalid constraint composition")
)
