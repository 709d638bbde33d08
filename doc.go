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

// Package attributerouting is the configuration and constraint-resolution
// core of an attribute-driven URL-routing framework.
//
// A Configuration accumulates everything a route-compilation pass needs:
// the ordered controller-type list, default constraints keyed by
// parameter-name pattern, inline constraint name bindings, subdomain
// defaults and per-area overrides, translation providers, and the active
// route-naming strategy. The compiler that turns this state into concrete
// route entries lives outside this module; so do request matching and URL
// generation.
//
// # Registering controllers
//
// Controller types are admitted only when assignable to the framework
// controller base type fixed at construction. Non-assignable types are
// filtered silently; that is the admission gate, not an error:
//
//	cfg := attributerouting.MustNew(baseType)
//	cfg.AddController(reflect.TypeOf(UsersController{}))
//	cfg.AddControllersFromCatalog(attributerouting.Catalog(
//	    UsersController{}, OrdersController{},
//	))
//
// Registration order is significant downstream: routes are emitted in
// controller registration order. PromoteController moves an existing entry
// to the end of the list without duplicating it, so later-registered
// controllers take precedence.
//
// # Constraints
//
// Inline constraint names bind through the configuration's constraint
// factory (see the constraint package). Default constraints apply to any
// route parameter whose name matches a registered pattern; both tables are
// first-write-wins so layered configuration can never silently replace an
// established entry.
//
// # Lifecycle
//
// A Configuration is populated once at startup by a single writer and read
// freely afterwards. All configuration errors surface synchronously at the
// offending call; nothing is deferred to request time.
package attributerouting
