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

func (c *APIClient) CreateApplication(ctx context.Context, body *openapi.Application) (*openapi.Application, *Response, error) {
	result := &openapi.Application{}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.CreateApplication(), body, http.StatusCreated, result)
	if err != nil {
		return nil, resp, fmt.Errorf("creating application: %w", err)
	}

	if result.ApplicationId == "" {
		return nil, resp, fmt.Errorf("creating application: %w", ErrMissingIdentifier)
	}

	return result, resp, nil
}

func (c *APIClient) DeleteApplication(ctx context.Context, applicationID string) (*Response, error) {
	resp, err := c.doJSON(ctx, http.MethodDelete, c.endpoints.Application(applicationID), nil, http.StatusOK, nil)
	if err != nil {
		return resp, fmt.Errorf("deleting application: %w", err)
	}

	return resp, nil
}

// GenerateKeys creates OAuth credentials for an application.
func (c *APIClient) GenerateKeys(ctx context.Context, applicationID string, body *openapi.ApplicationKeyGenerateRequest) (*openapi.ApplicationKey, *Response, error) {
	result := &openapi.ApplicationKey{}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.GenerateKeys(applicationID), body, http.StatusOK, result)
	if err != nil {
		return nil, resp, fmt.Errorf("generating application keys: %w", err)
	}

	return result, resp, nil
}

func (c *APIClient) Subscribe(ctx context.Context, body *openapi.Subscription) (*openapi.Subscription, *Response, error) {
	result := &openapi.Subscription{}

	resp, err := c.doJSON(ctx, http.MethodPost, c.endpoints.Subscriptions(), body, http.StatusCreated, result)
	if err != nil {
		return nil, resp, fmt.Errorf("subscribing application: %w", err)
	}

	return result, resp, nil
}
