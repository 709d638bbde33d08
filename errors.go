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

import "errors"

var (
	// ErrNilControllerType indicates that a Configuration was constructed
	// without a framework controller base type.
	ErrNilControllerType = errors.New("framework controller type is nil")

	// ErrNilConstraint indicates that a nil constraint was supplied where a
	// constraint instance is required.
	ErrNilConstraint = errors.New("constraint is nil")
)
