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

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/apim/pkg/constants"
	"github.com/unikorn-cloud/apim/pkg/openapi"
	servererrors "github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/apim/pkg/server/handler/common"
	"github.com/unikorn-cloud/apim/pkg/server/store"
)

type Options struct {
	DefaultVhost string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.DefaultVhost, "default-gateway-vhost", "localhost", "Gateway virtual host used when a deployment names none")
}

// Client wraps up API, lifecycle and revision management.
type Client struct {
	// store holds the APIs.
	store *store.Store

	// options control various defaults and the like.
	options *Options

	// tenant all operations are scoped to.
	tenant string

	// provider is the user acting on the API.
	provider string
}

// NewClient returns a new client with required parameters.
func NewClient(store *store.Store, options *Options, tenant, provider string) *Client {
	return &Client{
		store:    store,
		options:  options,
		tenant:   tenant,
		provider: provider,
	}
}

// Create creates an API in the CREATED state.  The context is canonicalised
// and, for secondary tenants, prefixed with the tenant path.
func (c *Client) Create(ctx context.Context, request *openapi.API) (*openapi.API, error) {
	var apiContext openapi.Context

	if err := apiContext.UnmarshalText([]byte(request.Context)); err != nil {
		return nil, servererrors.OAuth2InvalidRequest("invalid api context").WithError(err)
	}

	in := *request
	in.Id = ""
	in.Context = apiContext.Tenanted(c.tenant, constants.SuperTenantDomain)
	in.Provider = c.provider

	if in.Visibility == "" {
		in.Visibility = "PUBLIC"
	}

	if len(in.Policies) == 0 {
		in.Policies = []string{constants.UnlimitedTier}
	}

	result, err := c.store.CreateAPI(ctx, c.tenant, &in)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

func (c *Client) Get(ctx context.Context, apiID string) (*openapi.API, error) {
	result, err := c.store.GetAPI(ctx, c.tenant, apiID)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

func (c *Client) Delete(ctx context.Context, apiID string) error {
	if err := c.store.DeleteAPI(ctx, c.tenant, apiID); err != nil {
		return common.ConvertError(err)
	}

	return nil
}

// ChangeLifecycle applies a lifecycle action.
func (c *Client) ChangeLifecycle(ctx context.Context, params openapi.PostApiAmPublisherV4ApisChangeLifecycleParams) (*openapi.WorkflowResponse, error) {
	state, err := c.store.ChangeLifecycle(ctx, c.tenant, params.ApiId, params.Action)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	result := &openapi.WorkflowResponse{
		WorkflowStatus: openapi.WorkflowStatusApproved,
		LifecycleState: &openapi.LifecycleState{
			State: state,
		},
	}

	return result, nil
}

func revisionList(revisions []openapi.APIRevision) *openapi.APIRevisionList {
	if revisions == nil {
		revisions = []openapi.APIRevision{}
	}

	return &openapi.APIRevisionList{
		Count: len(revisions),
		List:  revisions,
	}
}

func (c *Client) CreateRevision(ctx context.Context, apiID string, request *openapi.APIRevision) (*openapi.APIRevision, error) {
	result, err := c.store.CreateRevision(ctx, c.tenant, apiID, request.Description)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

func (c *Client) ListRevisions(ctx context.Context, apiID string) (*openapi.APIRevisionList, error) {
	revisions, err := c.store.ListRevisions(ctx, c.tenant, apiID)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return revisionList(revisions), nil
}

// DeleteRevision deletes a revision and returns those that remain.
func (c *Client) DeleteRevision(ctx context.Context, apiID, revisionID string) (*openapi.APIRevisionList, error) {
	revisions, err := c.store.DeleteRevision(ctx, c.tenant, apiID, revisionID)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return revisionList(revisions), nil
}

func (c *Client) defaultDeployments(request []openapi.APIRevisionDeployment) []openapi.APIRevisionDeployment {
	out := make([]openapi.APIRevisionDeployment, len(request))

	for i := range request {
		out[i] = request[i]

		if out[i].Vhost == "" {
			out[i].Vhost = c.options.DefaultVhost
		}
	}

	return out
}

func (c *Client) DeployRevision(ctx context.Context, apiID string, params openapi.PostApiAmPublisherV4ApisApiIdDeployRevisionParams, request []openapi.APIRevisionDeployment) ([]openapi.APIRevisionDeployment, error) {
	result, err := c.store.DeployRevision(ctx, c.tenant, apiID, params.RevisionId, c.defaultDeployments(request))
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}

func (c *Client) UndeployRevision(ctx context.Context, apiID string, params openapi.PostApiAmPublisherV4ApisApiIdUndeployRevisionParams, request []openapi.APIRevisionDeployment) ([]openapi.APIRevisionDeployment, error) {
	result, err := c.store.UndeployRevision(ctx, c.tenant, apiID, params.RevisionId, request)
	if err != nil {
		return nil, common.ConvertError(err)
	}

	return result, nil
}
