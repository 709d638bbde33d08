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

package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCulturesUnion(t *testing.T) {
	t.Parallel()

	a := MapProvider{
		"en": {"users.index": "users"},
		"fr": {"users.index": "utilisateurs"},
	}
	b := MapProvider{
		"fr": {"orders.index": "commandes"},
		"es": {"orders.index": "pedidos"},
	}

	got := Cultures([]Provider{a, b})
	assert.Equal(t, []string{"en", "es", "fr"}, got, "union must deduplicate and sort")

	// Registration order must not change the result.
	assert.Equal(t, got, Cultures([]Provider{b, a}))
}

func TestCulturesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Cultures(nil))
	assert.Empty(t, Cultures([]Provider{MapProvider{}}))
}

func TestMapProviderTranslate(t *testing.T) {
	t.Parallel()

	p := MapProvider{
		"fr": {"users.index": "utilisateurs"},
	}

	got, ok := p.Translate("users.index", "fr")
	assert.True(t, ok)
	assert.Equal(t, "utilisateurs", got)

	_, ok = p.Translate("users.index", "de")
	assert.False(t, ok, "unknown culture")

	_, ok = p.Translate("orders.index", "fr")
	assert.False(t, ok, "unknown key")
}
