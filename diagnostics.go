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

import "log/slog"

// DiagnosticEvent represents a configuration diagnostic.
// These are informational events that may indicate configuration issues,
// such as a controller type rejected by the admission gate or a
// first-write-wins registration that shadowed a later one.
//
// Diagnostic events are optional - the registry functions correctly whether
// they are collected or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// Controller registration diagnostics
	DiagControllerRegistered DiagnosticKind = "controller_registered"
	DiagControllerPromoted   DiagnosticKind = "controller_promoted"
	DiagControllerDuplicate  DiagnosticKind = "controller_duplicate_ignored"
	DiagControllerRejected   DiagnosticKind = "controller_rejected"

	// Constraint table diagnostics
	DiagDefaultConstraintShadowed DiagnosticKind = "default_constraint_shadowed"
	DiagInlineConstraintBound     DiagnosticKind = "inline_constraint_bound"

	// Area and subdomain diagnostics
	DiagSubdomainMapped DiagnosticKind = "subdomain_mapped"
)

// DiagnosticHandler receives diagnostic events from the configuration
// registry. Implementations may log, emit metrics, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped.
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// SlogDiagnosticHandler routes diagnostic events to a structured logger
// at debug level, with rejections and shadowed registrations at warn.
//
// Example:
//
//	cfg := attributerouting.MustNew(base,
//	    attributerouting.WithDiagnostics(
//	        attributerouting.SlogDiagnosticHandler(slog.Default()),
//	    ),
//	)
func SlogDiagnosticHandler(logger *slog.Logger) DiagnosticHandler {
	return DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		attrs := make([]any, 0, 2+2*len(e.Fields))
		attrs = append(attrs, "kind", string(e.Kind))
		for k, v := range e.Fields {
			attrs = append(attrs, k, v)
		}

		switch e.Kind {
		case DiagControllerRejected, DiagDefaultConstraintShadowed:
			logger.Warn(e.Message, attrs...)
		default:
			logger.Debug(e.Message, attrs...)
		}
	})
}

// emit sends a diagnostic event to the configured handler, if any.
func (c *Configuration) emit(kind DiagnosticKind, msg string, fields map[string]any) {
	if c.diagnostics == nil {
		return
	}
	c.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: msg, Fields: fields})
}
