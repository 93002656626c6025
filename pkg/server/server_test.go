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

package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/apim/pkg/constants"
	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/pkg/server"

	"k8s.io/utils/ptr"
)

const allScopes = "apim:api_view apim:api_create apim:api_publish apim:api_delete apim:subscribe apim:app_manage apim:sub_manage"

type testClient struct {
	t      *testing.T
	server *httptest.Server
	token  string
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := &server.Server{}

	handler, err := s.GetHandler(t.Context(), logr.Discard())
	require.NoError(t, err)

	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	return testServer
}

func login(t *testing.T, testServer *httptest.Server, username, password string) *testClient {
	t.Helper()

	body := `{"clientName":"rest_api_publisher","owner":"` + username + `","grantType":"password","saasApp":true}`

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, testServer.URL+constants.RegistrationPath, strings.NewReader(body))
	require.NoError(t, err)

	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := testServer.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	registration := &openapi.ClientRegistration{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(registration))

	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
		"scope":      {allScopes},
	}

	req, err = http.NewRequestWithContext(t.Context(), http.MethodPost, testServer.URL+constants.TokenPath, strings.NewReader(form.Encode()))
	require.NoError(t, err)

	req.SetBasicAuth(registration.ClientId, registration.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err = testServer.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	token := &openapi.TokenResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(token))

	return &testClient{
		t:      t,
		server: testServer,
		token:  token.AccessToken,
	}
}

func (c *testClient) do(method, path string, request any, response any) int {
	c.t.Helper()

	var body io.Reader

	if request != nil {
		data, err := json.Marshal(request)
		require.NoError(c.t, err)

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(c.t.Context(), method, c.server.URL+path, body)
	require.NoError(c.t, err)

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)

	defer resp.Body.Close()

	if response != nil && resp.StatusCode < http.StatusMultipleChoices {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(response))
	}

	return resp.StatusCode
}

func createAPI(t *testing.T, c *testClient) *openapi.API {
	t.Helper()

	api := &openapi.API{}

	request := &openapi.API{
		Name:    "SampleAPI",
		Context: "sample",
		Version: "1.0.0",
	}

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, constants.PublisherBasePath+"/apis", request, api))

	return api
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	c := &testClient{t: t, server: testServer}

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/healthz", nil, nil))

	// Generate some traffic so route metrics exist.
	require.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, constants.PublisherBasePath+"/apis/foo", nil, nil))

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, testServer.URL+"/metrics", nil)
	require.NoError(t, err)

	resp, err := testServer.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `apim_http_requests_total{code="401",method="GET",route="/api/am/publisher/v4/apis/{apiId}"} 1`)
}

func TestEndpointLifecycle(t *testing.T) {
	t.Parallel()

	c := login(t, newTestServer(t), "admin", "admin")

	api := createAPI(t, c)
	require.Equal(t, "/sample", api.Context)
	require.Equal(t, "admin", api.Provider)

	endpointsPath := constants.PublisherBasePath + "/apis/" + api.Id + "/endpoints"

	request := &openapi.APIEndpoint{
		Name:            "Endpoint 1",
		DeploymentStage: ptr.To(openapi.DeploymentStageProduction),
		EndpointConfig: map[string]interface{}{
			"endpoint_type": "http",
		},
	}

	created := &openapi.APIEndpoint{}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, endpointsPath, request, created))
	require.NotEmpty(t, created.Id)

	require.Equal(t, http.StatusConflict, c.do(http.MethodPost, endpointsPath, request, nil))

	fetched := &openapi.APIEndpoint{}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, endpointsPath+"/"+created.Id, nil, fetched))
	require.Equal(t, created.Id, fetched.Id)

	request.Name = "Updated Endpoint"

	updated := &openapi.APIEndpoint{}
	require.Equal(t, http.StatusOK, c.do(http.MethodPut, endpointsPath+"/"+created.Id, request, updated))
	require.Equal(t, created.Id, updated.Id)
	require.Equal(t, "Updated Endpoint", updated.Name)

	list := &openapi.APIEndpointList{}
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, endpointsPath, nil, list))
	require.Equal(t, 1, list.Count)

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, endpointsPath+"/"+created.Id, nil, nil))
	require.Equal(t, http.StatusNotFound, c.do(http.MethodGet, endpointsPath+"/"+created.Id, nil, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodGet, endpointsPath, nil, list))
	require.Equal(t, 0, list.Count)
	require.NotNil(t, list.List)
}

func TestRequestValidation(t *testing.T) {
	t.Parallel()

	c := login(t, newTestServer(t), "admin", "admin")

	api := createAPI(t, c)

	endpointsPath := constants.PublisherBasePath + "/apis/" + api.Id + "/endpoints"

	// Name is required.
	require.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, endpointsPath, map[string]any{"deploymentStage": "PRODUCTION"}, nil))

	// Stage is an enumeration.
	require.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, endpointsPath, map[string]any{"name": "x", "deploymentStage": "STAGING"}, nil))

	require.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, constants.PublisherBasePath+"/apis/change-lifecycle?apiId="+api.Id+"&action=Explode", nil, nil))
}

func TestTenantIsolation(t *testing.T) {
	t.Parallel()

	testServer := newTestServer(t)

	superTenant := login(t, testServer, "admin", "admin")
	tenant := login(t, testServer, "admin@wso2.com", "admin")

	api := createAPI(t, superTenant)

	require.Equal(t, http.StatusNotFound, tenant.do(http.MethodGet, constants.PublisherBasePath+"/apis/"+api.Id, nil, nil))

	// Same name and context is fine in another tenant.
	other := createAPI(t, tenant)
	require.Equal(t, "/t/wso2.com/sample", other.Context)
}

func TestPublishAndSubscribe(t *testing.T) {
	t.Parallel()

	c := login(t, newTestServer(t), "admin", "admin")

	api := createAPI(t, c)

	lifecyclePath := constants.PublisherBasePath + "/apis/change-lifecycle?apiId=" + api.Id + "&action=Publish"

	require.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, lifecyclePath, nil, nil))

	revision := &openapi.APIRevision{}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, constants.PublisherBasePath+"/apis/"+api.Id+"/revisions", &openapi.APIRevision{}, revision))

	deployments := []openapi.APIRevisionDeployment{{Name: "Default", DisplayOnDevportal: true}}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, constants.PublisherBasePath+"/apis/"+api.Id+"/deploy-revision?revisionId="+revision.Id, deployments, nil))

	workflow := &openapi.WorkflowResponse{}
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, lifecyclePath, nil, workflow))
	require.Equal(t, openapi.LifecycleStatusPublished, workflow.LifecycleState.State)

	application := &openapi.Application{}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, constants.DevPortalBasePath+"/applications", &openapi.Application{Name: "app", ThrottlingPolicy: constants.UnlimitedTier, TokenType: openapi.TokenTypeJWT}, application))

	subscription := &openapi.Subscription{ApplicationId: application.ApplicationId, ApiId: api.Id, ThrottlingPolicy: constants.UnlimitedTier}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, constants.DevPortalBasePath+"/subscriptions", subscription, nil))

	keyRequest := &openapi.ApplicationKeyGenerateRequest{
		KeyType:                 openapi.KeyTypeProduction,
		GrantTypesToBeSupported: []string{openapi.GrantTypeClientCredentials},
		ValidityTime:            "3600",
	}

	key := &openapi.ApplicationKey{}
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, constants.DevPortalBasePath+"/applications/"+application.ApplicationId+"/generate-keys", keyRequest, key))
	require.NotNil(t, key.Token)
	require.Equal(t, int64(3600), key.Token.ValidityTime)

	// Application tokens are not good for management.
	applicationClient := &testClient{t: t, server: c.server, token: key.Token.AccessToken}
	require.Equal(t, http.StatusUnauthorized, applicationClient.do(http.MethodGet, constants.PublisherBasePath+"/apis/"+api.Id, nil, nil))

	require.Equal(t, http.StatusConflict, c.do(http.MethodDelete, constants.PublisherBasePath+"/apis/"+api.Id, nil, nil))
	require.Equal(t, http.StatusBadRequest, c.do(http.MethodDelete, constants.PublisherBasePath+"/apis/"+api.Id+"/revisions/"+revision.Id, nil, nil))

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, constants.PublisherBasePath+"/apis/"+api.Id+"/undeploy-revision?revisionId="+revision.Id, deployments, nil))

	revisions := &openapi.APIRevisionList{}
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, constants.PublisherBasePath+"/apis/"+api.Id+"/revisions/"+revision.Id, nil, revisions))
	require.Equal(t, 0, revisions.Count)

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, constants.DevPortalBasePath+"/applications/"+application.ApplicationId, nil, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, constants.PublisherBasePath+"/apis/"+api.Id, nil, nil))
}
