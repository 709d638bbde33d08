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

// Package echoctl supplies the framework controller base type for Echo
// applications, so a configuration registry can gate controller admission
// on it.
package echoctl

import (
	"reflect"

	"github.com/labstack/echo/v4"

	"github.com/myleshenderson/attributerouting"
)

// Controller is the framework controller base type for Echo. Controller
// types register their routes against the group the compiler assigns them.
type Controller interface {
	Register(g *echo.Group)
}

// ControllerType is the reflect handle for Controller, used as the
// admission gate of an Echo-flavored configuration.
var ControllerType = reflect.TypeOf((*Controller)(nil)).Elem()

// New creates a configuration registry gated on the Echo controller base
// type.
func New(opts ...attributerouting.Option) (*attributerouting.Configuration, error) {
	return attributerouting.New(ControllerType, opts...)
}

// MustNew is like New but panics on error.
func MustNew(opts ...attributerouting.Option) *attributerouting.Configuration {
	return attributerouting.MustNew(ControllerType, opts...)
}
