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

import "reflect"

// Area is a scoped configuration handle bound to an area name. Everything
// declared through it proxies back into the owning Configuration; an Area
// holds no state of its own beyond its name.
//
// Example:
//
//	admin := cfg.MapArea("admin")
//	admin.UseSubdomain("admin").
//	    AddController(reflect.TypeOf(DashboardController{}))
type Area struct {
	cfg  *Configuration
	name string
}

// MapArea returns a configuration handle bound to the given area name.
// Calling MapArea twice with the same name yields handles over the same
// underlying registry state.
func (c *Configuration) MapArea(name string) *Area {
	return &Area{cfg: c, name: name}
}

// Name returns the area name.
func (a *Area) Name() string {
	return a.name
}

// UseSubdomain declares an explicit subdomain override for this area. The
// subdomain is recorded on the registry's append-only mapped-subdomain
// list. A later call replaces the override for this area but never removes
// earlier audit entries.
func (a *Area) UseSubdomain(sub string) *Area {
	a.cfg.areaSubdomains[a.name] = sub
	a.cfg.mapSubdomain(sub)
	a.cfg.emit(DiagSubdomainMapped, "area subdomain mapped",
		map[string]any{"area": a.name, "subdomain": sub})
	return a
}

// Subdomain returns the explicit subdomain override for this area, if one
// was declared.
func (a *Area) Subdomain() (string, bool) {
	sub, ok := a.cfg.areaSubdomains[a.name]
	return sub, ok
}

// AddController registers a controller type through the owning registry.
func (a *Area) AddController(t reflect.Type) *Area {
	a.cfg.AddController(t)
	return a
}

// PromoteController promotes a controller type through the owning
// registry.
func (a *Area) PromoteController(t reflect.Type) *Area {
	a.cfg.PromoteController(t)
	return a
}

// AddControllersFromCatalog registers every admissible controller type in
// cat through the owning registry.
func (a *Area) AddControllersFromCatalog(cat TypeCatalog) *Area {
	a.cfg.AddControllersFromCatalog(cat)
	return a
}
