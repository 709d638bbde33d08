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
	"fmt"
	"reflect"
	"regexp"

	"go.opentelemetry.io/otel/attribute"

	"github.com/myleshenderson/attributerouting/constraint"
	"github.com/myleshenderson/attributerouting/subdomain"
	"github.com/myleshenderson/attributerouting/translation"
)

// Configuration is the single source of truth for everything a
// route-compilation pass needs. It owns the controller-type list, the
// default-constraint and inline-constraint tables, subdomain configuration,
// translation providers, and the route-naming strategy; no external
// component mutates these directly.
//
// A Configuration is populated once, synchronously, during startup by a
// single writer. It carries no internal locking: callers must serialize
// registration calls. After startup it is effectively immutable and may be
// read from any number of goroutines.
type Configuration struct {
	controllerType reflect.Type // admission gate, fixed at construction
	controllers    typeList
	discover       Discoverer

	defaults []DefaultConstraint
	factory  *constraint.Factory

	defaultSubdomain string
	areaSubdomains   map[string]string
	mappedSubdomains []string // append-only audit of every mapped subdomain
	parser           subdomain.Parser

	providers []translation.Provider

	naming NamingStrategy

	diagnostics DiagnosticHandler
	metrics     MetricsRecorder
}

// DefaultConstraint is one entry of the default-constraint table: a
// constraint applied automatically to every route parameter whose name
// matches Pattern.
type DefaultConstraint struct {
	Pattern    string
	Constraint constraint.Constraint

	re *regexp.Regexp
}

// Applies reports whether this default constraint covers the given
// parameter name.
func (d DefaultConstraint) Applies(paramName string) bool {
	return d.re != nil && d.re.MatchString(paramName)
}

// New creates a Configuration gated on the given framework controller base
// type. All controller admission checks test assignability to this type;
// it never changes after construction.
func New(controllerType reflect.Type, opts ...Option) (*Configuration, error) {
	if controllerType == nil {
		return nil, ErrNilControllerType
	}

	c := &Configuration{
		controllerType: controllerType,
		discover:       DiscoverControllerTypes,
		areaSubdomains: make(map[string]string),
		parser:         subdomain.ThreeSection{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.factory == nil {
		c.factory = constraint.NewFactory(constraint.WithBuiltins())
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for startup paths
// where a configuration error is fatal anyway.
func MustNew(controllerType reflect.Type, opts ...Option) *Configuration {
	c, err := New(controllerType, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// ControllerType returns the framework controller base type.
func (c *Configuration) ControllerType() reflect.Type {
	return c.controllerType
}

// AddController inserts t into the controller list if absent. Re-adding an
// existing type is a no-op with no reordering, and a type not assignable
// to the framework controller base type is filtered silently: the
// admission gate is deliberate, not an error condition.
func (c *Configuration) AddController(t reflect.Type) *Configuration {
	if !assignableToController(t, c.controllerType) {
		c.emit(DiagControllerRejected, "controller type rejected by admission gate",
			map[string]any{"type": typeName(t)})
		c.count(MetricControllersRejected)
		return c
	}
	if c.controllers.add(t) {
		c.emit(DiagControllerRegistered, "controller registered",
			map[string]any{"type": typeName(t), "position": c.controllers.len() - 1})
		c.count(MetricControllersRegistered)
	} else {
		c.emit(DiagControllerDuplicate, "controller already registered",
			map[string]any{"type": typeName(t)})
	}
	return c
}

// AddControllersFromCatalog discovers every admissible controller type in
// cat and adds each, in discovery order.
func (c *Configuration) AddControllersFromCatalog(cat TypeCatalog) *Configuration {
	for _, t := range c.discover(cat, c.controllerType) {
		c.AddController(t)
	}
	return c
}

// PromoteController behaves like AddController, except an already-present
// type is removed and re-appended, moving it to the end of the ordered
// list. Use this when later-registered controllers should take precedence
// in route emission order.
func (c *Configuration) PromoteController(t reflect.Type) *Configuration {
	if !assignableToController(t, c.controllerType) {
		c.emit(DiagControllerRejected, "controller type rejected by admission gate",
			map[string]any{"type": typeName(t)})
		c.count(MetricControllersRejected)
		return c
	}
	if c.controllers.promote(t) {
		c.emit(DiagControllerPromoted, "controller promoted to end of list",
			map[string]any{"type": typeName(t)})
		c.count(MetricControllersPromoted)
	} else {
		c.emit(DiagControllerRegistered, "controller registered",
			map[string]any{"type": typeName(t), "position": c.controllers.len() - 1})
		c.count(MetricControllersRegistered)
	}
	return c
}

// AddControllersOfBaseType discovers the types in cat assignable to base
// and promotes each. Bulk-registering subclasses this way applies them
// last, which is usually what a layered configuration wants.
func (c *Configuration) AddControllersOfBaseType(cat TypeCatalog, base reflect.Type) *Configuration {
	for _, t := range c.discover(cat, base) {
		c.PromoteController(t)
	}
	return c
}

// Controllers returns the registered controller types in registration
// order. The returned slice is a copy.
func (c *Configuration) Controllers() []reflect.Type {
	return c.controllers.snapshot()
}

// AddDefaultConstraint registers a constraint applied to every route
// parameter whose name matches namePattern. The first registration for a
// pattern wins; duplicates are silently ignored so re-running configuration
// logic cannot replace an established default. A malformed pattern fails
// with constraint.ErrInvalidPattern.
func (c *Configuration) AddDefaultConstraint(namePattern string, con constraint.Constraint) error {
	if con == nil {
		return ErrNilConstraint
	}

	for _, d := range c.defaults {
		if d.Pattern == namePattern {
			c.emit(DiagDefaultConstraintShadowed, "default constraint already registered for pattern",
				map[string]any{"pattern": namePattern})
			c.count(MetricDefaultConstraintsShadowed, attribute.String("pattern", namePattern))
			return nil
		}
	}

	re, err := regexp.Compile(namePattern)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", constraint.ErrInvalidPattern, namePattern, err)
	}

	c.defaults = append(c.defaults, DefaultConstraint{
		Pattern:    namePattern,
		Constraint: con,
		re:         re,
	})
	c.count(MetricDefaultConstraintsAdded)
	return nil
}

// DefaultConstraints returns a copy of the default-constraint table in
// registration order.
func (c *Configuration) DefaultConstraints() []DefaultConstraint {
	return append([]DefaultConstraint(nil), c.defaults...)
}

// DefaultConstraintsFor returns the constraints applying to a route
// parameter name, in registration order.
func (c *Configuration) DefaultConstraintsFor(paramName string) []constraint.Constraint {
	var out []constraint.Constraint
	for _, d := range c.defaults {
		if d.Applies(paramName) {
			out = append(out, d.Constraint)
		}
	}
	return out
}

// RegisterInlineConstraints scans cat for inline constraint types and
// binds each under its derived name, first-write-wins. It returns the
// names that were newly bound, in scan order.
func (c *Configuration) RegisterInlineConstraints(cat TypeCatalog) []string {
	if cat == nil {
		return nil
	}
	bound := c.factory.RegisterInline(cat.Types()...)
	for _, name := range bound {
		c.emit(DiagInlineConstraintBound, "inline constraint bound",
			map[string]any{"name": name})
		c.count(MetricInlineConstraintsBound, attribute.String("name", name))
	}
	return bound
}

// ConstraintFactory returns the factory holding the inline-constraint
// binding table. The route compiler resolves named constraints through it.
func (c *Configuration) ConstraintFactory() *constraint.Factory {
	return c.factory
}

// AddTranslationProvider appends a provider. Order is significant: earlier
// providers take precedence when several can translate the same key.
func (c *Configuration) AddTranslationProvider(p translation.Provider) *Configuration {
	if p == nil {
		return c
	}
	c.providers = append(c.providers, p)
	return c
}

// TranslationProviders returns the registered providers in precedence
// order. The returned slice is a copy.
func (c *Configuration) TranslationProviders() []translation.Provider {
	return append([]translation.Provider(nil), c.providers...)
}

// TranslationCultures returns the deduplicated union of culture
// identifiers across all registered providers, order-independent.
func (c *Configuration) TranslationCultures() []string {
	return translation.Cultures(c.providers)
}

// SetSubdomainParser replaces the active host-parsing strategy wholesale.
// Strategies are never chained or merged; exactly one is active.
func (c *Configuration) SetSubdomainParser(p subdomain.Parser) *Configuration {
	if p != nil {
		c.parser = p
	}
	return c
}

// SubdomainParser returns the active host-parsing strategy.
func (c *Configuration) SubdomainParser() subdomain.Parser {
	return c.parser
}

// DefaultSubdomain returns the fallback subdomain used when parsing a host
// yields nothing. Empty when unset.
func (c *Configuration) DefaultSubdomain() string {
	return c.defaultSubdomain
}

// ResolveSubdomain derives the logical subdomain for a host through the
// active parser, falling back to the configured default.
func (c *Configuration) ResolveSubdomain(host string) (string, bool) {
	if sub, ok := c.parser.Parse(host); ok {
		return sub, true
	}
	if c.defaultSubdomain != "" {
		return c.defaultSubdomain, true
	}
	return "", false
}

// SubdomainOverrides returns a copy of the area-to-subdomain override map.
func (c *Configuration) SubdomainOverrides() map[string]string {
	out := make(map[string]string, len(c.areaSubdomains))
	for k, v := range c.areaSubdomains {
		out[k] = v
	}
	return out
}

// MappedSubdomains returns every subdomain string configuration has
// referenced, in mapping order. The backing list is append-only; the
// returned slice is a copy, so callers can never mutate the audit trail.
func (c *Configuration) MappedSubdomains() []string {
	return append([]string(nil), c.mappedSubdomains...)
}

// mapSubdomain records a subdomain string on the append-only audit list.
func (c *Configuration) mapSubdomain(sub string) {
	c.mappedSubdomains = append(c.mappedSubdomains, sub)
	c.count(MetricSubdomainsMapped, attribute.String("subdomain", sub))
}

// SetNamingStrategy replaces the route-naming strategy wholesale.
// Strategies are never composed; passing nil disables auto-naming.
func (c *Configuration) SetNamingStrategy(s NamingStrategy) *Configuration {
	c.naming = s
	return c
}

// NamingStrategy returns the active route-naming strategy, or nil when
// auto-naming is disabled.
func (c *Configuration) NamingStrategy() NamingStrategy {
	return c.naming
}

// RouteName runs the active naming strategy against a route specification.
// It returns ("", false) when auto-naming is disabled or the strategy
// declines to name the route.
func (c *Configuration) RouteName(spec RouteSpec) (string, bool) {
	if c.naming == nil {
		return "", false
	}
	name := c.naming(spec)
	return name, name != ""
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
