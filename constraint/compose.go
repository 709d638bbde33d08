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
)

// Compound wraps a set of constraints into a single constraint that
// matches only if every element matches (logical AND). A nil element
// fails with ErrInvalidComposition.
func Compound(constraints ...Constraint) (Constraint, error) {
	for i, c := range constraints {
		if c == nil {
			return nil, fmt.Errorf("%w: element %d is nil", ErrInvalidComposition, i)
		}
	}

	// Copy so later mutation of the caller's slice cannot change matching.
	elems := make([]Constraint, len(constraints))
	copy(elems, constraints)

	return &compoundConstraint{elems: elems}, nil
}

type compoundConstraint struct {
	elems []Constraint
}

func (c *compoundConstraint) Match(req *http.Request, param string, values Values) bool {
	for _, e := range c.elems {
		if !e.Match(req, param, values) {
			return false
		}
	}
	return true
}

// Optional wraps a constraint so it is satisfied when the route parameter
// is absent, and delegates to the wrapped constraint when present. Used for
// optional URL segments paired with a validation rule.
func Optional(c Constraint) (Constraint, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: optional wraps a nil constraint", ErrInvalidComposition)
	}
	return &optionalConstraint{inner: c}, nil
}

type optionalConstraint struct {
	inner Constraint
}

func (c *optionalConstraint) Match(req *http.Request, param string, values Values) bool {
	if _, present := values[param]; !present {
		return true
	}
	return c.inner.Match(req, param, values)
}

// QueryString wraps a constraint so evaluation reads the candidate value
// from the request's query string instead of the route's path values;
// otherwise it delegates identically to the wrapped constraint.
func QueryString(c Constraint) (Constraint, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: query-string wraps a nil constraint", ErrInvalidComposition)
	}
	return &queryStringConstraint{inner: c}, nil
}

type queryStringConstraint struct {
	inner Constraint
}

func (c *queryStringConstraint) Match(req *http.Request, param string, _ Values) bool {
	vals := Values{}
	if req != nil {
		if q := req.URL.Query(); q.Has(param) {
			vals[param] = q.Get(param)
		}
	}
	return c.inner.Match(req, param, vals)
}
