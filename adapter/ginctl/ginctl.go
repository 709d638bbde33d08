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

// Package ginctl supplies the framework controller base type for Gin
// applications, so a configuration registry can gate controller admission
// on it.
package ginctl

import (
	"reflect"

	"github.com/gin-gonic/gin"

	"github.com/myleshenderson/attributerouting"
)

// Controller is the framework controller base type for Gin. Controller
// types register their routes against the router group the compiler
// assigns them.
type Controller interface {
	Register(rg *gin.RouterGroup)
}

// ControllerType is the reflect handle for Controller, used as the
// admission gate of a Gin-flavored configuration.
var ControllerType = reflect.TypeOf((*Controller)(nil)).Elem()

// New creates a configuration registry gated on the Gin controller base
// type.
func New(opts ...attributerouting.Option) (*attributerouting.Configuration, error) {
	return attributerouting.New(ControllerType, opts...)
}

// MustNew is like New but panics on error.
func MustNew(opts ...attributerouting.Option) *attributerouting.Configuration {
	return attributerouting.MustNew(ControllerType, opts...)
}
