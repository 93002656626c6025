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

package application

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/pkg/server/auth"
	"github.com/unikorn-cloud/apim/pkg/server/handler/common"
	"github.com/unikorn-cloud/apim/pkg/server/store"
	servererrors "github.com/unikorn-cloud/core/pkg/server/errors"
)

type Options struct {
	DefaultKeyValidity time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.DurationVar(&o.DefaultKeyValidity, "default-key-validity", time.Hour, "Validity of tokens issued with application keys when none is requested")
}

// Client wraps up application, key and subscription management.
type Client struct {
	// store holds applications and subscriptions.
	store *store.Store

	// issuer creates the OAuth clients backing application keys.
	issuer *auth.Issuer

	// options control various defaults and the like.
	options *Options

	// tenant all operations are scoped to.
	tenant string
}

// NewClient returns a new client with required parameters.
func NewClient(store *store.Store, issuer *auth.Issuer, options *Options, tenant string) *Client {
	return &Client{
		store:   store,
		issuer:  issuer,
		options: options,
		tenant:  tenant,
	}
}

func (c *Client) Create(ctx context.Context, request *openapi.Application) (*openapi.Application, error) {
	in := *request
	in.ApplicationId = ""

	result, err := c.store.CreateApplication(ctx, c.tenant, &in)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

// Delete removes an application and revokes every credential issued to it.
func (c *Client) Delete(ctx context.Context, applicationID string) error {
	consumerKeys, err := c.store.DeleteApplication(ctx, c.tenant, applicationID)
	if err != nil {
		return common.ConvertError(err)
	}

	for _, consumerKey := range consumerKeys {
		c.issuer.RevokeClient(consumerKey)
	}

	return nil
}

func (c *Client) validity(request *openapi.ApplicationKeyGenerateRequest) (time.Duration, error) {
	if request.ValidityTime == "" {
		return c.options.DefaultKeyValidity, nil
	}

	seconds, err := strconv.ParseInt(request.ValidityTime, 10, 64)
	if err != nil || seconds <= 0 {
		return 0, servererrors.OAuth2InvalidRequest("validityTime must be a positive number of seconds")
	}

	return auth.Lifetime(seconds), nil
}

// GenerateKeys creates an OAuth client for the application.  When the client
// may use the client credentials grant a token is issued straight away.
func (c *Client) GenerateKeys(ctx context.Context, applicationID string, request *openapi.ApplicationKeyGenerateRequest) (*openapi.ApplicationKey, error) {
	if _, err := c.store.GetApplication(ctx, c.tenant, applicationID); err != nil {
		return nil, common.ConvertError(err)
	}

	validity, err := c.validity(request)
	if err != nil {
		return nil, err
	}

	client := c.issuer.RegisterApplicationClient(c.tenant, applicationID, request.GrantTypesToBeSupported)

	result := &openapi.ApplicationKey{
		KeyMappingId:        uuid.NewString(),
		ConsumerKey:         client.ID,
		ConsumerSecret:      client.Secret,
		KeyType:             request.KeyType,
		SupportedGrantTypes: request.GrantTypesToBeSupported,
	}

	if err := c.store.AddApplicationKey(ctx, c.tenant, applicationID, result); err != nil {
		c.issuer.RevokeClient(client.ID)

		return nil, common.ConvertError(err)
	}

	if slices.Contains(request.GrantTypesToBeSupported, openapi.GrantTypeClientCredentials) {
		token, err := c.issuer.ClientCredentialsGrant(client.ID, client.Secret, "", validity)
		if err != nil {
			return nil, servererrors.OAuth2ServerError("unable to issue application token").WithError(err)
		}

		result.Token = &openapi.ApplicationToken{
			AccessToken:  token.AccessToken,
			TokenScopes:  token.Scopes,
			ValidityTime: int64(token.ExpiresIn / time.Second),
		}
	}

	return result, nil
}

func (c *Client) Subscribe(ctx context.Context, request *openapi.Subscription) (*openapi.Subscription, error) {
	if request.ApiId == "" {
		return nil, servererrors.OAuth2InvalidRequest("apiId is required")
	}

	result, err := c.store.Subscribe(ctx, c.tenant, request)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}
