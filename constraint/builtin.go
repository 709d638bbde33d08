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
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Built-in inline constraints. Each follows the naming convention, so the
// derived binding names are: int, float, uuid, alpha, regex, enum, length,
// minlength, maxlength, range.

func builtinTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(IntRouteConstraint{}),
		reflect.TypeOf(FloatRouteConstraint{}),
		reflect.TypeOf(UUIDRouteConstraint{}),
		reflect.TypeOf(AlphaRouteConstraint{}),
		reflect.TypeOf(RegexRouteConstraint{}),
		reflect.TypeOf(EnumRouteConstraint{}),
		reflect.TypeOf(LengthRouteConstraint{}),
		reflect.TypeOf(MinLengthRouteConstraint{}),
		reflect.TypeOf(MaxLengthRouteConstraint{}),
		reflect.TypeOf(RangeRouteConstraint{}),
	}
}

var (
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)
	alphaPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// IntRouteConstraint matches 64-bit integer values.
type IntRouteConstraint struct{}

func (IntRouteConstraint) InlineConstraint() {}

func (IntRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

// FloatRouteConstraint matches floating-point values.
type FloatRouteConstraint struct{}

func (FloatRouteConstraint) InlineConstraint() {}

func (FloatRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// UUIDRouteConstraint matches RFC 4122 UUID values.
type UUIDRouteConstraint struct{}

func (UUIDRouteConstraint) InlineConstraint() {}

func (UUIDRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	return uuidPattern.MatchString(v)
}

// AlphaRouteConstraint matches values consisting solely of ASCII letters.
type AlphaRouteConstraint struct{}

func (AlphaRouteConstraint) InlineConstraint() {}

func (AlphaRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	return alphaPattern.MatchString(v)
}

// RegexRouteConstraint matches values against a caller-supplied pattern,
// e.g. regex(^[a-z]{3}$). The pattern is anchored.
type RegexRouteConstraint struct {
	re *regexp.Regexp
}

func (RegexRouteConstraint) InlineConstraint() {}

// SetParams implements Parameterized.
func (c *RegexRouteConstraint) SetParams(params ...string) error {
	if len(params) != 1 {
		return fmt.Errorf("regex takes exactly one parameter, got %d", len(params))
	}
	re, err := regexp.Compile("^" + params[0] + "$")
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, params[0], err)
	}
	c.re = re
	return nil
}

func (c *RegexRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok || c.re == nil {
		return false
	}
	return c.re.MatchString(v)
}

// EnumRouteConstraint matches values against a fixed set, e.g.
// enum(active,pending,deleted). Comparison is case-insensitive, matching
// the usual behavior of URL path segments.
type EnumRouteConstraint struct {
	values []string
}

func (EnumRouteConstraint) InlineConstraint() {}

// SetParams implements Parameterized.
func (c *EnumRouteConstraint) SetParams(params ...string) error {
	if len(params) == 0 {
		return fmt.Errorf("enum takes at least one parameter")
	}
	c.values = append([]string(nil), params...)
	return nil
}

func (c *EnumRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	for _, candidate := range c.values {
		if strings.EqualFold(v, candidate) {
			return true
		}
	}
	return false
}

// LengthRouteConstraint matches values of an exact rune length, e.g.
// length(5).
type LengthRouteConstraint struct {
	length int
}

func (LengthRouteConstraint) InlineConstraint() {}

// SetParams implements Parameterized.
func (c *LengthRouteConstraint) SetParams(params ...string) error {
	if len(params) != 1 {
		return fmt.Errorf("length takes exactly one parameter, got %d", len(params))
	}
	n, err := strconv.Atoi(params[0])
	if err != nil || n < 0 {
		return fmt.Errorf("length parameter must be a non-negative integer, got %q", params[0])
	}
	c.length = n
	return nil
}

func (c *LengthRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	return utf8.RuneCountInString(v) == c.length
}

// MinLengthRouteConstraint matches values of at least a minimum rune
// length, e.g. minlength(2).
type MinLengthRouteConstraint struct {
	min int
}

func (MinLengthRouteConstraint) InlineConstraint() {}

// SetParams implements Parameterized.
func (c *MinLengthRouteConstraint) SetParams(params ...string) error {
	if len(params) != 1 {
		return fmt.Errorf("minlength takes exactly one parameter, got %d", len(params))
	}
	n, err := strconv.Atoi(params[0])
	if err != nil || n < 0 {
		return fmt.Errorf("minlength parameter must be a non-negative integer, got %q", params[0])
	}
	c.min = n
	return nil
}

func (c *MinLengthRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	return utf8.RuneCountInString(v) >= c.min
}

// MaxLengthRouteConstraint matches values of at most a maximum rune
// length, e.g. maxlength(16).
type MaxLengthRouteConstraint struct {
	max int
}

func (MaxLengthRouteConstraint) InlineConstraint() {}

// SetParams implements Parameterized.
func (c *MaxLengthRouteConstraint) SetParams(params ...string) error {
	if len(params) != 1 {
		return fmt.Errorf("maxlength takes exactly one parameter, got %d", len(params))
	}
	n, err := strconv.Atoi(params[0])
	if err != nil || n < 0 {
		return fmt.Errorf("maxlength parameter must be a non-negative integer, got %q", params[0])
	}
	c.max = n
	return nil
}

func (c *MaxLengthRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	return utf8.RuneCountInString(v) <= c.max
}

// RangeRouteConstraint matches integer values within an inclusive range,
// e.g. range(1,10).
type RangeRouteConstraint struct {
	lo, hi int64
}

func (RangeRouteConstraint) InlineConstraint() {}

// SetParams implements Parameterized.
func (c *RangeRouteConstraint) SetParams(params ...string) error {
	if len(params) != 2 {
		return fmt.Errorf("range takes exactly two parameters, got %d", len(params))
	}
	lo, err := strconv.ParseInt(params[0], 10, 64)
	if err != nil {
		return fmt.Errorf("range lower bound must be an integer, got %q", params[0])
	}
	hi, err := strconv.ParseInt(params[1], 10, 64)
	if err != nil {
		return fmt.Errorf("range upper bound must be an integer, got %q", params[1])
	}
	if lo > hi {
		return fmt.Errorf("range bounds inverted: %d > %d", lo, hi)
	}
	c.lo, c.hi = lo, hi
	return nil
}

func (c *RangeRouteConstraint) Match(_ *http.Request, param string, values Values) bool {
	v, ok := values[param]
	if !ok {
		return false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return false
	}
	return n >= c.lo && n <= c.hi
}
