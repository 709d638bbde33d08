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

package constraint

import (
	"fmt"
	"net/http"
	"regexp"
)

// Values holds the route parameter values extracted from a matched path.
// A parameter absent from the map is an absent URL segment, which is how
// Optional decides whether to delegate.
type Values map[string]string

// Constraint is the capability the route system requires of a parameter
// validator. Match reports whether the named parameter satisfies the
// constraint for the given request and route values.
//
// Implementations must be safe for concurrent use after construction;
// all construction happens at configuration time.
type Constraint interface {
	Match(req *http.Request, param string, values Values) bool
}

// Func adapts a plain function to the Constraint interface.
type Func func(req *http.Request, param string, values Values) bool

// Match calls f.
func (f Func) Match(req *http.Request, param string, values Values) bool {
	return f(req, param, values)
}

// Inline marks a type as discoverable by name during inline-constraint
// registration. The binding name is derived from the type's name by
// stripping a trailing "RouteConstraint" suffix and lower-casing the rest;
// see DeriveName.
type Inline interface {
	InlineConstraint()
}

// Parameterized is implemented by inline constraints that accept
// parameters from the inline syntax, e.g. range(1,10). SetParams is called
// exactly once, at construction time, with the raw parameter strings.
// Arity or value errors returned here surface as ErrMisconfiguredConstraint.
type Parameterized interface {
	SetParams(params ...string) error
}

// PatternOption adjusts pattern constraint construction.
type PatternOption func(*patternOptions)

type patternOptions struct {
	ignoreCase bool
}

// IgnoreCase makes a pattern constraint match case-insensitively.
func IgnoreCase() PatternOption {
	return func(o *patternOptions) {
		o.ignoreCase = true
	}
}

// Pattern returns a constraint matching the parameter's value against the
// given regular expression. The pattern is anchored so it must cover the
// whole value. A malformed pattern fails with ErrInvalidPattern.
func Pattern(pattern string, opts ...PatternOption) (Constraint, error) {
	var o patternOptions
	for _, opt := range opts {
		opt(&o)
	}

	anchored := "^" + pattern + "$"
	if o.ignoreCase {
		anchored = "(?i)" + anchored
	}

	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &patternConstraint{re: re}, nil
}

type patternConstraint struct {
	re *regexp.Regexp
}

func (c *patternConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	return c.re.MatchString(v)
}
