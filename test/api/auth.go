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
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/unikorn-cloud/apim/pkg/openapi"
)

// RegisterClient registers an OAuth client owned by the given user.
func (c *APIClient) RegisterClient(ctx context.Context, username, password string, body *openapi.ClientRegistrationRequest) (*openapi.ClientRegistration, *Response, error) {
	payload, err := marshal(body)
	if err != nil {
		return nil, nil, err
	}

	basicAuth := func(r *http.Request) {
		r.SetBasicAuth(username, password)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.RegisterClient(), payload, http.StatusOK, basicAuth)
	if err != nil {
		return nil, resp, fmt.Errorf("registering client: %w", err)
	}

	result := &openapi.ClientRegistration{}

	if err := unmarshal(resp, result); err != nil {
		return nil, resp, err
	}

	if result.ClientId == "" {
		return nil, resp, fmt.Errorf("registering client: %w", ErrMissingIdentifier)
	}

	return result, resp, nil
}

// oauth2Context makes the oauth2 library use our HTTP client.
func (c *APIClient) oauth2Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.client)
}

// PasswordToken performs a resource owner password grant.
func (c *APIClient) PasswordToken(ctx context.Context, client *openapi.ClientRegistration, username, password string, scopes ...string) (*oauth2.Token, error) {
	config := &oauth2.Config{
		ClientID:     client.ClientId,
		ClientSecret: client.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.baseURL + c.endpoints.Token(),
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		Scopes: scopes,
	}

	token, err := config.PasswordCredentialsToken(c.oauth2Context(ctx), username, password)
	if err != nil {
		return nil, fmt.Errorf("password grant for %s: %w", username, err)
	}

	return token, nil
}

// ClientCredentialsToken performs a client credentials grant, a positive
// validity requests a token lifetime in seconds.
func (c *APIClient) ClientCredentialsToken(ctx context.Context, clientID, clientSecret string, validity int64, scopes ...string) (*oauth2.Token, error) {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.baseURL + c.endpoints.Token(),
		Scopes:       scopes,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	if validity > 0 {
		config.EndpointParams = url.Values{
			"validity_period": {strconv.FormatInt(validity, 10)},
		}
	}

	token, err := config.Token(c.oauth2Context(ctx))
	if err != nil {
		return nil, fmt.Errorf("client credentials grant: %w", err)
	}

	return token, nil
}
