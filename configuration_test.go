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
	"github.com/stretchr/testify/require"

	"github.com/myleshenderson/attributerouting/constraint"
	"github.com/myleshenderson/attributerouting/subdomain"
	"github.com/myleshenderson/attributerouting/translation"
)

// controller is the framework base type used throughout these tests.
type controller interface {
	RegisterRoutes()
}

type UsersController struct{}

func (UsersController) RegisterRoutes() {}

type OrdersController struct{}

func (OrdersController) RegisterRoutes() {}

type ReportsController struct{}

func (ReportsController) RegisterRoutes() {}

// notAController fails the admission gate.
type notAController struct{}

var (
	controllerBase = reflect.TypeOf((*controller)(nil)).Elem()
	usersType      = reflect.TypeOf(UsersController{})
	ordersType     = reflect.TypeOf(OrdersController{})
	reportsType    = reflect.TypeOf(ReportsController{})
	notCtrlType    = reflect.TypeOf(notAController{})
)

func newConfig(t *testing.T, opts ...Option) *Configuration {
	t.Helper()
	cfg, err := New(controllerBase, opts...)
	require.NoError(t, err)
	return cfg
}

func mustPattern(t *testing.T, pattern string) constraint.Constraint {
	t.Helper()
	c, err := constraint.Pattern(pattern)
	require.NoError(t, err)
	return c
}

func TestNewRequiresControllerType(t *testing.T) {
	t.Parallel()

	cfg, err := New(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNilControllerType)

	assert.Panics(t, func() { MustNew(nil) })
}

func TestAddControllerPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.AddController(usersType).
		AddController(ordersType).
		AddController(usersType). // duplicate, no reordering
		AddController(reportsType).
		AddController(ordersType) // duplicate, no reordering

	assert.Equal(t, []reflect.Type{usersType, ordersType, reportsType}, cfg.Controllers())
}

func TestAddControllerRejectsNonControllers(t *testing.T) {
	t.Parallel()

	var rejected []DiagnosticEvent
	cfg := newConfig(t, WithDiagnostics(DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		if e.Kind == DiagControllerRejected {
			rejected = append(rejected, e)
		}
	})))

	// Silent filter: no panic, no error, no entry.
	cfg.AddController(notCtrlType)
	assert.Empty(t, cfg.Controllers())
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0].Fields["type"], "notAController")
}

func TestPromoteControllerMovesToEnd(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.AddController(usersType).
		AddController(ordersType).
		AddController(reportsType)

	cfg.PromoteController(usersType)

	got := cfg.Controllers()
	assert.Equal(t, []reflect.Type{ordersType, reportsType, usersType}, got)
	assert.Len(t, got, 3, "promotion must not change list length")
}

func TestPromoteControllerOnNewEntryActsAsAdd(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.AddController(usersType)
	cfg.PromoteController(ordersType)

	assert.Equal(t, []reflect.Type{usersType, ordersType}, cfg.Controllers())
}

func TestPromoteControllerRejectsNonControllers(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.PromoteController(notCtrlType)
	assert.Empty(t, cfg.Controllers())
}

func TestAddControllersFromCatalog(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.AddControllersFromCatalog(Catalog(
		UsersController{},
		notAController{}, // filtered by discovery
		&OrdersController{},
	))

	assert.Equal(t, []reflect.Type{usersType, ordersType}, cfg.Controllers())
}

func TestAddControllersOfBaseTypePromotes(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.AddController(usersType).
		AddController(ordersType)

	// Bulk registration of the whole catalog re-applies users last.
	cfg.AddControllersOfBaseType(Catalog(UsersController{}, ReportsController{}), controllerBase)

	assert.Equal(t, []reflect.Type{ordersType, usersType, reportsType}, cfg.Controllers())
}

func TestControllersReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.AddController(usersType).AddController(ordersType)

	got := cfg.Controllers()
	got[0] = reportsType

	assert.Equal(t, []reflect.Type{usersType, ordersType}, cfg.Controllers())
}

func TestAddDefaultConstraintFirstWriteWins(t *testing.T) {
	t.Parallel()

	first, err := constraint.Pattern(`\d+`)
	require.NoError(t, err)
	second, err := constraint.Pattern(`[a-z]+`)
	require.NoError(t, err)

	cfg := newConfig(t)
	require.NoError(t, cfg.AddDefaultConstraint("id$", first))
	require.NoError(t, cfg.AddDefaultConstraint("id$", second), "duplicate key is a silent no-op")

	defaults := cfg.DefaultConstraints()
	require.Len(t, defaults, 1)
	assert.Same(t, first, defaults[0].Constraint, "first registration must stay in place")
}

func TestAddDefaultConstraintInvalidPattern(t *testing.T) {
	t.Parallel()

	c, err := constraint.Pattern(`\d+`)
	require.NoError(t, err)

	cfg := newConfig(t)
	err = cfg.AddDefaultConstraint("(", c)
	assert.ErrorIs(t, err, constraint.ErrInvalidPattern)

	err = cfg.AddDefaultConstraint("id$", nil)
	assert.ErrorIs(t, err, ErrNilConstraint)
}

func TestDefaultConstraintsFor(t *testing.T) {
	t.Parallel()

	digits, err := constraint.Pattern(`\d+`)
	require.NoError(t, err)
	uuid, err := constraint.Pattern(`[0-9a-f-]+`)
	require.NoError(t, err)

	cfg := newConfig(t)
	require.NoError(t, cfg.AddDefaultConstraint(`Id$`, digits))
	require.NoError(t, cfg.AddDefaultConstraint(`^uuid`, uuid))

	assert.Len(t, cfg.DefaultConstraintsFor("userId"), 1)
	assert.Len(t, cfg.DefaultConstraintsFor("uuidValue"), 1)
	assert.Empty(t, cfg.DefaultConstraintsFor("name"))
}

func TestRegisterInlineConstraints(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, WithConstraintFactory(constraint.NewFactory()))

	bound := cfg.RegisterInlineConstraints(Catalog(
		constraint.IntRouteConstraint{},
		UsersController{}, // no marker, skipped
	))
	assert.Equal(t, []string{"int"}, bound)

	c, err := cfg.ConstraintFactory().Named("int")
	require.NoError(t, err)
	require.NotNil(t, c)

	// Unknown names return nil, never an error.
	c, err = cfg.ConstraintFactory().Named("uuid")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestDefaultFactoryCarriesBuiltins(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	c, err := cfg.ConstraintFactory().Named("uuid")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestTranslationProviders(t *testing.T) {
	t.Parallel()

	en := translation.MapProvider{"en": {"users.index": "users"}}
	fr := translation.MapProvider{
		"fr":    {"users.index": "utilisateurs"},
		"fr-CA": {"users.index": "utilisateurs"},
	}

	cfg := newConfig(t)
	cfg.AddTranslationProvider(en).
		AddTranslationProvider(fr).
		AddTranslationProvider(nil) // ignored

	require.Len(t, cfg.TranslationProviders(), 2)
	assert.Equal(t, []string{"en", "fr", "fr-CA"}, cfg.TranslationCultures())
}

func TestResolveSubdomain(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, WithDefaultSubdomain("www"))

	sub, ok := cfg.ResolveSubdomain("api.example.com")
	assert.True(t, ok)
	assert.Equal(t, "api", sub)

	sub, ok = cfg.ResolveSubdomain("example.com")
	assert.True(t, ok)
	assert.Equal(t, "www", sub, "default subdomain is the fallback")

	bare := newConfig(t)
	_, ok = bare.ResolveSubdomain("example.com")
	assert.False(t, ok)
}

func TestSetSubdomainParserReplacesWholesale(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.SetSubdomainParser(subdomain.Func(func(host string) (string, bool) {
		return "fixed", true
	}))

	sub, ok := cfg.ResolveSubdomain("example.com")
	assert.True(t, ok)
	assert.Equal(t, "fixed", sub)
}

func TestMappedSubdomainsIsAppendOnlyCopy(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, WithDefaultSubdomain("www"))
	cfg.MapArea("admin").UseSubdomain("admin")
	cfg.MapArea("api").UseSubdomain("api")

	got := cfg.MappedSubdomains()
	assert.Equal(t, []string{"www", "admin", "api"}, got)

	got[0] = "mutated"
	assert.Equal(t, []string{"www", "admin", "api"}, cfg.MappedSubdomains(),
		"returned slice must be a copy of the audit trail")
}

func TestRouteName(t *testing.T) {
	t.Parallel()

	spec := RouteSpec{Controller: usersType, Action: "Index", Area: "Admin"}

	cfg := newConfig(t)
	_, ok := cfg.RouteName(spec)
	assert.False(t, ok, "auto-naming is disabled by default")

	cfg.SetNamingStrategy(DefaultNamingStrategy)
	name, ok := cfg.RouteName(spec)
	assert.True(t, ok)
	assert.Equal(t, "admin.users.index", name)

	cfg.SetNamingStrategy(func(RouteSpec) string { return "" })
	_, ok = cfg.RouteName(spec)
	assert.False(t, ok, "strategy declining to name yields no name")
}

func TestWithDiscoverer(t *testing.T) {
	t.Parallel()

	// A discoverer that reverses catalog order.
	reversed := func(cat TypeCatalog, base reflect.Type) []reflect.Type {
		types := DiscoverControllerTypes(cat, base)
		for i, j := 0, len(types)-1; i < j; i, j = i+1, j-1 {
			types[i], types[j] = types[j], types[i]
		}
		return types
	}

	cfg := newConfig(t, WithDiscoverer(reversed))
	cfg.AddControllersFromCatalog(Catalog(UsersController{}, OrdersController{}))

	assert.Equal(t, []reflect.Type{ordersType, usersType}, cfg.Controllers())
}
