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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/utils/ptr"

	"github.com/unikorn-cloud/apim/pkg/constants"
	"github.com/unikorn-cloud/apim/pkg/openapi"
)

// Fixture is an application subscribed to a published API, provisioned by a
// tenant administrator.  Specs manage the endpoints of that API.
type Fixture struct {
	// Mode is the tenancy mode the fixture was provisioned in.
	Mode TenancyMode
	// Domain is the tenant domain of the administrator.
	Domain string
	// Admin is a client authenticated as the tenant administrator.
	Admin *APIClient
	// ApplicationID is the subscribing application.
	ApplicationID string
	// APIID is the API whose endpoints are managed.
	APIID string
	// Keys are the application's production keys.
	Keys *openapi.ApplicationKey
	// AccessToken is an application token for invoking the API.
	AccessToken string

	config *TestConfig
}

// AdminClient creates a client authenticated as the administrator of the
// tenancy mode, using dynamic client registration and the password grant.
func AdminClient(ctx context.Context, config *TestConfig, mode TenancyMode) (*APIClient, error) {
	client, err := NewAPIClient(config)
	if err != nil {
		return nil, err
	}

	username, password := mode.Credentials(config)

	registration := &openapi.ClientRegistrationRequest{
		ClientName: generateRandomName("rest-api-client"),
		Owner:      username,
		GrantType:  "password refresh_token",
		SaasApp:    true,
	}

	oauthClient, _, err := client.RegisterClient(ctx, username, password, registration)
	if err != nil {
		return nil, err
	}

	token, err := client.PasswordToken(ctx, oauthClient, username, password, AdminScopes()...)
	if err != nil {
		return nil, err
	}

	return client.WithAuthToken(token.AccessToken), nil
}

// Provision creates the application and published API used by endpoint specs.
// The fixture is returned even on error so whatever was created can be torn down.
func Provision(ctx context.Context, config *TestConfig, mode TenancyMode) (*Fixture, error) {
	fixture := &Fixture{
		Mode:   mode,
		Domain: mode.Domain(config),
		config: config,
	}

	admin, err := AdminClient(ctx, config, mode)
	if err != nil {
		return fixture, fmt.Errorf("authenticating %s administrator: %w", mode, err)
	}

	fixture.Admin = admin

	application, _, err := admin.CreateApplication(ctx, NewApplicationPayload().Build())
	if err != nil {
		return fixture, err
	}

	fixture.ApplicationID = application.ApplicationId

	backend := mode.GatewayURL(config, EndpointTestBackend+"/"+EndpointTestAPIVersion)

	api, _, err := admin.CreateAPI(ctx, NewAPIPayload(backend).Build())
	if err != nil {
		return fixture, err
	}

	fixture.APIID = api.Id

	if err := fixture.publish(ctx); err != nil {
		return fixture, err
	}

	subscription := &openapi.Subscription{
		ApplicationId:    fixture.ApplicationID,
		ApiId:            fixture.APIID,
		ThrottlingPolicy: constants.UnlimitedTier,
	}

	if _, _, err := admin.Subscribe(ctx, subscription); err != nil {
		return fixture, err
	}

	keys, _, err := admin.GenerateKeys(ctx, fixture.ApplicationID, NewKeyRequest().Build())
	if err != nil {
		return fixture, err
	}

	fixture.Keys = keys

	if keys.Token != nil && keys.Token.AccessToken != "" {
		fixture.AccessToken = keys.Token.AccessToken

		return fixture, nil
	}

	token, err := admin.ClientCredentialsToken(ctx, keys.ConsumerKey, keys.ConsumerSecret, 3600)
	if err != nil {
		return fixture, err
	}

	fixture.AccessToken = token.AccessToken

	return fixture, nil
}

// publish deploys a new revision of the API to the default gateway and
// publishes it.
func (f *Fixture) publish(ctx context.Context) error {
	revision, _, err := f.Admin.CreateRevision(ctx, f.APIID, &openapi.APIRevision{
		Description: ptr.To("Initial revision"),
	})
	if err != nil {
		return err
	}

	deployments := []openapi.APIRevisionDeployment{
		{
			Name:               "Default",
			Vhost:              "localhost",
			DisplayOnDevportal: true,
		},
	}

	if _, _, err := f.Admin.DeployRevision(ctx, f.APIID, revision.Id, deployments); err != nil {
		return err
	}

	if _, _, err := f.Admin.ChangeLifecycle(ctx, f.APIID, openapi.LifecycleActionPublish); err != nil {
		return err
	}

	return nil
}

// Teardown deletes the application, then undeploys and deletes every
// revision, then deletes the API.  Every step is attempted and all failures
// are returned together.
func (f *Fixture) Teardown(ctx context.Context) error {
	if f.Admin == nil {
		return nil
	}

	var errs []error

	record := func(err error) {
		if err != nil {
			GinkgoWriter.Printf("Warning: teardown of %s fixture: %v\n", f.Mode, err)

			errs = append(errs, err)
		}
	}

	if f.ApplicationID != "" {
		_, err := f.Admin.DeleteApplication(ctx, f.ApplicationID)
		record(err)
	}

	if f.APIID != "" {
		record(f.deleteRevisions(ctx))

		_, err := f.Admin.DeleteAPI(ctx, f.APIID)
		record(err)
	}

	return errors.Join(errs...)
}

func (f *Fixture) deleteRevisions(ctx context.Context) error {
	revisions, _, err := f.Admin.ListRevisions(ctx, f.APIID)
	if err != nil {
		return err
	}

	var errs []error

	for _, revision := range revisions.List {
		if len(revision.DeploymentInfo) > 0 {
			if _, _, err := f.Admin.UndeployRevision(ctx, f.APIID, revision.Id, revision.DeploymentInfo); err != nil {
				errs = append(errs, err)
				continue
			}
		}

		if _, _, err := f.Admin.DeleteRevision(ctx, f.APIID, revision.Id); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// AddEndpoint adds an endpoint read from a fixture file.
func (f *Fixture) AddEndpoint(ctx context.Context, file string) (*openapi.APIEndpoint, *Response, error) {
	payload, err := LoadEndpointResource(f.config, file)
	if err != nil {
		return nil, nil, err
	}

	return f.Admin.AddAPIEndpoint(ctx, f.APIID, payload)
}

func (f *Fixture) GetEndpoint(ctx context.Context, endpointID string) (*openapi.APIEndpoint, *Response, error) {
	return f.Admin.GetAPIEndpoint(ctx, f.APIID, endpointID)
}

// UpdateEndpoint replaces an endpoint with one read from a fixture file.
func (f *Fixture) UpdateEndpoint(ctx context.Context, file, endpointID string) (*openapi.APIEndpoint, *Response, error) {
	payload, err := LoadEndpointResource(f.config, file)
	if err != nil {
		return nil, nil, err
	}

	return f.Admin.UpdateAPIEndpoint(ctx, f.APIID, endpointID, payload)
}

func (f *Fixture) DeleteEndpoint(ctx context.Context, endpointID string) (*Response, error) {
	return f.Admin.DeleteAPIEndpoint(ctx, f.APIID, endpointID)
}

func (f *Fixture) ListEndpoints(ctx context.Context) (*openapi.APIEndpointList, *Response, error) {
	return f.Admin.ListAPIEndpoints(ctx, f.APIID)
}

// NewFixture provisions a fixture from inside a Ginkgo setup node and
// schedules its teardown, which runs whether or not provisioning succeeded.
func NewFixture(ctx context.Context, config *TestConfig, mode TenancyMode) *Fixture {
	fixture, err := Provision(ctx, config, mode)

	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Tearing down %s fixture: application=%s api=%s\n", fixture.Mode, fixture.ApplicationID, fixture.APIID)

		Expect(fixture.Teardown(ctx)).To(Succeed())
	})

	Expect(err).NotTo(HaveOccurred(), "provisioning %s fixture", mode)

	GinkgoWriter.Printf("Provisioned %s fixture: application=%s api=%s\n", mode, fixture.ApplicationID, fixture.APIID)

	return fixture
}
