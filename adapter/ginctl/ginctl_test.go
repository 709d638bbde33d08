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

package ginctl

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/myleshenderson/attributerouting"
)

type healthController struct{}

func (healthController) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

type plainStruct struct{}

func TestAdmissionGate(t *testing.T) {
	t.Parallel()

	cfg := MustNew()

	cfg.AddController(reflect.TypeOf(healthController{}))
	cfg.AddController(reflect.TypeOf(plainStruct{}))

	assert.Equal(t, []reflect.Type{reflect.TypeOf(healthController{})}, cfg.Controllers())
}

func TestCatalogDiscovery(t *testing.T) {
	t.Parallel()

	cfg := MustNew()
	cfg.AddControllersFromCatalog(attributerouting.Catalog(healthController{}, plainStruct{}))

	assert.Len(t, cfg.Controllers(), 1)
}
