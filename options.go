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
	"github.com/myleshenderson/attributerouting/constraint"
	"github.com/myleshenderson/attributerouting/subdomain"
)

// Option configures a Configuration during construction.
type Option func(*Configuration)

// WithSubdomainParser sets the active host-parsing strategy. The default
// is subdomain.ThreeSection.
func WithSubdomainParser(p subdomain.Parser) Option {
	return func(c *Configuration) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithDefaultSubdomain sets the fallback subdomain used when host parsing
// yields nothing, e.g. "www". The value is recorded on the mapped-subdomain
// audit list.
func WithDefaultSubdomain(sub string) Option {
	return func(c *Configuration) {
		c.defaultSubdomain = sub
		if sub != "" {
			c.mapSubdomain(sub)
		}
	}
}

// WithNamingStrategy enables auto-naming with the given strategy.
func WithNamingStrategy(s NamingStrategy) Option {
	return func(c *Configuration) {
		c.naming = s
	}
}

// WithConstraintFactory supplies a pre-populated constraint factory. The
// default factory carries the built-in inline constraint vocabulary.
func WithConstraintFactory(f *constraint.Factory) Option {
	return func(c *Configuration) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithDiscoverer replaces the type-discovery collaborator used by
// catalog-driven controller registration.
func WithDiscoverer(d Discoverer) Option {
	return func(c *Configuration) {
		if d != nil {
			c.discover = d
		}
	}
}

// WithDiagnostics sets a diagnostic handler for the configuration
// registry.
//
// Diagnostic events are optional informational events that surface
// rejected controller types, shadowed first-write-wins registrations, and
// similar configuration anomalies. The registry functions correctly
// whether diagnostics are collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	cfg := attributerouting.MustNew(base,
//	    attributerouting.WithDiagnostics(
//	        attributerouting.SlogDiagnosticHandler(slog.Default()),
//	    ),
//	)
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(c *Configuration) {
		c.diagnostics = handler
	}
}

// WithMetrics sets a metrics recorder for configuration counters.
//
// Example with Prometheus:
//
//	recorder, err := attributerouting.NewPrometheusRecorder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := attributerouting.MustNew(base, attributerouting.WithMetrics(recorder))
//	http.Handle("/metrics", recorder.Handler())
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Configuration) {
		c.metrics = recorder
	}
}
