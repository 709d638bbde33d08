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

// Package translation defines the provider abstraction used to localize
// route path segments and route names.
//
// Providers are registered on the configuration registry in precedence
// order: when several providers can translate the same key, the earliest
// registered provider wins. The registry only stores providers and exposes
// the union of supported cultures; resolution policy belongs to the route
// compiler.
package translation
