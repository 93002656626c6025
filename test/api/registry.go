/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"maps"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"
)

// CreatedAPIEndpoint is the registry key of the endpoint added by the
// lifecycle scenario, dependent specs skip when it is absent.
const CreatedAPIEndpoint = "createdApiEndpoint"

// EndpointRegistry maps logical endpoint names to server issued identifiers.
// It is owned by a single ordered container and is not safe for concurrent use.
type EndpointRegistry struct {
	ids map[string]string
}

func NewEndpointRegistry() *EndpointRegistry {
	return &EndpointRegistry{
		ids: map[string]string{},
	}
}

// Register records or overwrites a mapping.
func (r *EndpointRegistry) Register(name, id string) {
	r.ids[name] = id
}

func (r *EndpointRegistry) Lookup(name string) (string, bool) {
	id, ok := r.ids[name]

	return id, ok
}

// Remove deletes every mapping that refers to the identifier.
func (r *EndpointRegistry) Remove(id string) {
	maps.DeleteFunc(r.ids, func(_, v string) bool {
		return v == id
	})
}

func (r *EndpointRegistry) Len() int {
	return len(r.ids)
}

// IDs returns the registered identifiers in sorted order.
func (r *EndpointRegistry) IDs() []string {
	ids := slices.Collect(maps.Values(r.ids))

	slices.Sort(ids)
	ids = slices.Compact(ids)

	return ids
}

// Unlisted returns the registered identifiers that are missing from a
// listing, an empty result means the listing is a superset of the registry.
func (r *EndpointRegistry) Unlisted(listed []string) []string {
	var missing []string

	for id := range set.New[string](r.IDs()...).Difference(set.New[string](listed...)).All() {
		missing = append(missing, id)
	}

	slices.Sort(missing)

	return missing
}
