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

// Package subdomain derives a logical subdomain label from a raw host string.
//
// A Parser is a pure host-to-subdomain strategy. The configuration registry
// stores exactly one active parser, replaceable by whole-value assignment.
// The route compiler calls it once per emitted route to select an area
// subdomain override or fall back to the configured default.
//
// The default strategy is ThreeSection, which treats the left-most label of
// a host with at least three dot-separated sections as the subdomain:
//
//	p := subdomain.ThreeSection{}
//	sub, ok := p.Parse("api.example.com")  // "api", true
//	sub, ok = p.Parse("example.com")       // "", false
//
// Parsers never validate the label beyond extraction; no case normalization
// is applied.
package subdomain
