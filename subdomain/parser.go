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

package subdomain

import (
	"net/netip"
	"strings"
)

// Parser extracts a logical subdomain from a host string.
// Parse returns the subdomain and true, or ("", false) when the host
// carries no meaningful subdomain.
//
// Implementations must be pure: no I/O, no stored state, safe for
// concurrent use.
type Parser interface {
	Parse(host string) (string, bool)
}

// Func adapts a plain function to the Parser interface.
//
// Example:
//
//	cfg.SetSubdomainParser(subdomain.Func(func(host string) (string, bool) {
//	    return "tenant", true
//	}))
type Func func(host string) (string, bool)

// Parse calls f.
func (f Func) Parse(host string) (string, bool) {
	return f(host)
}

// ThreeSection is the default parsing strategy. It returns the left-most
// label of any host with at least three dot-separated sections, so
// "api.example.com" yields "api" while "example.com" yields nothing.
//
// A trailing ":port" suffix is stripped before inspection, and hosts that
// are IP literals (v4 or v6) never yield a subdomain.
type ThreeSection struct{}

// Parse implements Parser.
func (ThreeSection) Parse(host string) (string, bool) {
	if host == "" {
		return "", false
	}

	// Drop anything after the first colon. For bracketed IPv6 literals this
	// leaves a string that fails the section test below, which is the
	// correct outcome: IP hosts have no subdomain.
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	if _, err := netip.ParseAddr(host); err == nil {
		return "", false
	}

	sections := strings.Split(host, ".")
	if len(sections) < 3 {
		return "", false
	}

	return sections[0], true
}
