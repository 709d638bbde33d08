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
	"context"
	"fmt"
	"net/http"
	"sync"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Counter names emitted during configuration. All registration paths are
// startup-time, so these record configuration shape, not request traffic.
const (
	MetricControllersRegistered      = "config.controllers.registered"
	MetricControllersPromoted        = "config.controllers.promoted"
	MetricControllersRejected        = "config.controllers.rejected"
	MetricDefaultConstraintsAdded    = "config.default_constraints.added"
	MetricDefaultConstraintsShadowed = "config.default_constraints.shadowed"
	MetricInlineConstraintsBound     = "config.inline_constraints.bound"
	MetricSubdomainsMapped           = "config.subdomains.mapped"
)

// MetricsRecorder records configuration-time metrics. Implementations must
// be safe for concurrent use; the registry calls IncrementCounter from its
// registration operations.
type MetricsRecorder interface {
	// IncrementCounter increments a counter metric with the given name.
	IncrementCounter(ctx context.Context, name string, attributes ...attribute.KeyValue)
}

// meterScope identifies this module's instruments to meter providers.
const meterScope = "github.com/myleshenderson/attributerouting"

// OTelRecorder records configuration metrics through an OpenTelemetry
// meter provider. Counters are created lazily and cached per name.
type OTelRecorder struct {
	meter metric.Meter

	mu       sync.Mutex
	counters map[string]metric.Int64Counter
}

// NewOTelRecorder creates a recorder over the given meter provider.
func NewOTelRecorder(provider metric.MeterProvider) *OTelRecorder {
	return &OTelRecorder{
		meter:    provider.Meter(meterScope),
		counters: make(map[string]metric.Int64Counter),
	}
}

// IncrementCounter implements MetricsRecorder.
func (r *OTelRecorder) IncrementCounter(ctx context.Context, name string, attributes ...attribute.KeyValue) {
	counter, err := r.counter(name)
	if err != nil {
		return // Instrument creation failures never break configuration.
	}
	counter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (r *OTelRecorder) counter(name string) (metric.Int64Counter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.counters[name]; ok {
		return c, nil
	}
	c, err := r.meter.Int64Counter(name)
	if err != nil {
		return nil, err
	}
	r.counters[name] = c
	return c, nil
}

// PrometheusRecorder exports configuration metrics through a Prometheus
// registry. It wraps an OTelRecorder over a dedicated meter provider backed
// by the OpenTelemetry Prometheus exporter, so the same instruments serve
// both ecosystems.
type PrometheusRecorder struct {
	*OTelRecorder

	registry *promclient.Registry
	handler  http.Handler
}

// NewPrometheusRecorder creates a Prometheus-backed recorder with its own
// registry, avoiding conflicts with the global default registry.
func NewPrometheusRecorder() (*PrometheusRecorder, error) {
	registry := promclient.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	return &PrometheusRecorder{
		OTelRecorder: NewOTelRecorder(provider),
		registry:     registry,
		handler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, nil
}

// Handler returns an http.Handler serving the scrape endpoint for this
// recorder's registry.
func (r *PrometheusRecorder) Handler() http.Handler {
	return r.handler
}

// Registry returns the underlying Prometheus registry, e.g. for
// registering additional application collectors alongside configuration
// metrics.
func (r *PrometheusRecorder) Registry() *promclient.Registry {
	return r.registry
}

// count increments a configuration counter on the configured recorder,
// if any.
func (c *Configuration) count(name string, attributes ...attribute.KeyValue) {
	if c.metrics == nil {
		return
	}
	c.metrics.IncrementCounter(context.Background(), name, attributes...)
}
