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

//go:generate mockgen -source=client.go -destination=mock/interfaces.go -package=mock

package endpoint

import (
	"context"

	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/pkg/server/handler/common"
)

// Store persists API endpoints.
type Store interface {
	ListEndpoints(ctx context.Context, domain, apiID string) ([]openapi.APIEndpoint, error)
	GetEndpoint(ctx context.Context, domain, apiID, endpointID string) (*openapi.APIEndpoint, error)
	CreateEndpoint(ctx context.Context, domain, apiID string, in *openapi.APIEndpoint) (*openapi.APIEndpoint, error)
	UpdateEndpoint(ctx context.Context, domain, apiID, endpointID string, in *openapi.APIEndpoint) (*openapi.APIEndpoint, error)
	DeleteEndpoint(ctx context.Context, domain, apiID, endpointID string) error
}

// Client wraps up API endpoint management.
type Client struct {
	// store holds the endpoints.
	store Store

	// tenant all operations are scoped to.
	tenant string
}

// NewClient returns a new client scoped to a tenant.
func NewClient(store Store, tenant string) *Client {
	return &Client{
		store:  store,
		tenant: tenant,
	}
}

// List returns all endpoints of an API.
func (c *Client) List(ctx context.Context, apiID string) (*openapi.APIEndpointList, error) {
	endpoints, err := c.store.ListEndpoints(ctx, c.tenant, apiID)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	if endpoints == nil {
		endpoints = []openapi.APIEndpoint{}
	}

	result := &openapi.APIEndpointList{
		Count: len(endpoints),
		List:  endpoints,
	}

	return result, nil
}

func (c *Client) Get(ctx context.Context, apiID, endpointID string) (*openapi.APIEndpoint, error) {
	result, err := c.store.GetEndpoint(ctx, c.tenant, apiID, endpointID)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

// Create adds an endpoint, any client supplied identifier is discarded.
func (c *Client) Create(ctx context.Context, apiID string, request *openapi.APIEndpoint) (*openapi.APIEndpoint, error) {
	in := *request
	in.Id = ""

	result, err := c.store.CreateEndpoint(ctx, c.tenant, apiID, &in)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

// Update replaces an endpoint, the identifier in the path always wins.
func (c *Client) Update(ctx context.Context, apiID, endpointID string, request *openapi.APIEndpoint) (*openapi.APIEndpoint, error) {
	in := *request
	in.Id = endpointID

	result, err := c.store.UpdateEndpoint(ctx, c.tenant, apiID, endpointID, &in)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

func (c *Client) Delete(ctx context.Context, apiID, endpointID string) error {
	if err := c.store.DeleteEndpoint(ctx, c.tenant, apiID, endpointID); err != nil {
		return common.ConvertError(err)
	}

	return nil
}
