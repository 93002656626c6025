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
	"context"
	"fmt"
	"net/http"

	"github.com/unikorn-cloud/apim/pkg/openapi"
)

// CreateAPI creates a new API.
func (c *APIClient) CreateAPI(ctx context.Context, body *openapi.API) (*openapi.API, *Response, error) {
	result := &openapi.API{}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.CreateAPI(), body, http.StatusCreated, result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating api: %w", err)
	}

	if result.Id == "" {
		return nil, resp, fmt.Errorf("creating api: %w", ErrMissingIdentifier)
	}

	return result, resp, nil
}

func (c *APIClient) GetAPI(ctx context.Context, apiID string) (*openapi.API, *Response, error) {
	result := &openapi.API{}

	resp, err := c.doJSON(ctx, http.MethodGet, c.endpoints.API(apiID), nil, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting api: %w", err)
	}

	return result, resp, nil
}

func (c *APIClient) DeleteAPI(ctx context.Context, apiID string) (*Response, error) {
	resp, err := c.doJSON(ctx, http.MethodDelete, c.endpoints.API(apiID), nil, http.StatusOK, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting api: %w", err)
	}

	return resp, nil
}

// ChangeLifecycle applies a lifecycle action e.g. Publish.
func (c *APIClient) ChangeLifecycle(ctx context.Context, apiID, action string) (*openapi.WorkflowResponse, *Response, error) {
	result := &openapi.WorkflowResponse{}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.ChangeLifecycle(apiID, action), nil, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("changing api lifecycle: %w", err)
	}

	return result, resp, nil
}

// CreateRevision snapshots the API, the body is optional.
func (c *APIClient) CreateRevision(ctx context.Context, apiID string, body *openapi.APIRevision) (*openapi.APIRevision, *Response, error) {
	result := &openapi.APIRevision{}

	// A nil body must not be sent as a JSON null.
	var request any
	if body != nil {
		request = body
	}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.Revisions(apiID), request, http.StatusCreated, result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating revision: %w", err)
	}

	if result.Id == "" {
		return nil, resp, fmt.Errorf("creating revision: %w", ErrMissingIdentifier)
	}

	return result, resp, nil
}

func (c *APIClient) ListRevisions(ctx context.Context, apiID string) (*openapi.APIRevisionList, *Response, error) {
	result := &openapi.APIRevisionList{}

	resp, err := c.doJSON(ctx, http.MethodGet, c.endpoints.Revisions(apiID), nil, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing revisions: %w", err)
	}

	return result, resp, nil
}

func (c *APIClient) DeployRevision(ctx context.Context, apiID, revisionID string, body []openapi.APIRevisionDeployment) ([]openapi.APIRevisionDeployment, *Response, error) {
	var result []openapi.APIRevisionDeployment

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.DeployRevision(apiID, revisionID), body, http.StatusCreated, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("deploying revision: %w", err)
	}

	return result, resp, nil
}

func (c *APIClient) UndeployRevision(ctx context.Context, apiID, revisionID string, body []openapi.APIRevisionDeployment) ([]openapi.APIRevisionDeployment, *Response, error) {
	var result []openapi.APIRevisionDeployment

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.UndeployRevision(apiID, revisionID), body, http.StatusCreated, &result)
	if err != nil {
		return nil, resp, fmt.Errorf("undeploying revision: %w", err)
	}

	return result, resp, nil
}

// DeleteRevision deletes a revision and returns the remaining revisions.
func (c *APIClient) DeleteRevision(ctx context.Context, apiID, revisionID string) (*openapi.APIRevisionList, *Response, error) {
	result := &openapi.APIRevisionList{}

	resp, err := c.doJSON(ctx, http.MethodDelete, c.endpoints.Revision(apiID, revisionID), nil, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("deleting revision: %w", err)
	}

	return result, resp, nil
}

// AddAPIEndpoint adds an endpoint to an API.  The body may be a typed endpoint
// or raw JSON read from a fixture file.
func (c *APIClient) AddAPIEndpoint(ctx context.Context, apiID string, body any) (*openapi.APIEndpoint, *Response, error) {
	result := &openapi.APIEndpoint{}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.APIEndpoints(apiID), body, http.StatusCreated, result)
	if err != nil {
		return nil, resp, fmt.Errorf("adding api endpoint: %w", err)
	}

	if result.Id == "" {
		return nil, resp, fmt.Errorf("adding api endpoint: %w", ErrMissingIdentifier)
	}

	return result, resp, nil
}

func (c *APIClient) GetAPIEndpoint(ctx context.Context, apiID, endpointID string) (*openapi.APIEndpoint, *Response, error) {
	result := &openapi.APIEndpoint{}

	resp, err := c.doJSON(ctx, http.MethodGet, c.endpoints.APIEndpoint(apiID, endpointID), nil, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("getting api endpoint: %w", err)
	}

	return result, resp, nil
}

func (c *APIClient) UpdateAPIEndpoint(ctx context.Context, apiID, endpointID string, body any) (*openapi.APIEndpoint, *Response, error) {
	result := &openapi.APIEndpoint{}

	resp, err := c.doJSON(ctx, http.MethodPut, c.endpoints.APIEndpoint(apiID, endpointID), body, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("updating api endpoint: %w", err)
	}

	if result.Id == "" {
		return nil, resp, fmt.Errorf("updating api endpoint: %w", ErrMissingIdentifier)
	}

	return result, resp, nil
}

func (c *APIClient) DeleteAPIEndpoint(ctx context.Context, apiID, endpointID string) (*Response, error) {
	resp, err := c.doJSON(ctx, http.MethodDelete, c.endpoints.APIEndpoint(apiID, endpointID), nil, http.StatusOK, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting api endpoint: %w", err)
	}

	return resp, nil
}

func (c *APIClient) ListAPIEndpoints(ctx context.Context, apiID string) (*openapi.APIEndpointList, *Response, error) {
	result := &openapi.APIEndpointList{}

	resp, err := c.doJSON(ctx, http.MethodGet, c.endpoints.APIEndpoints(apiID), nil, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("listing api endpoints: %w", err)
	}

	return result, resp, nil
}
