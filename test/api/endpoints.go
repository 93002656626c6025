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
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/unikorn-cloud/apim/pkg/constants"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParam encodes a path parameter the same way the server decodes it.
func pathParam(name, value string) string {
	encoded, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return url.PathEscape(value)
	}

	return encoded
}

func withQuery(path string, query url.Values) string {
	return path + "?" + query.Encode()
}

// OAuth2 endpoints.
func (e *Endpoints) RegisterClient() string {
	return constants.RegistrationPath
}

func (e *Endpoints) Token() string {
	return constants.TokenPath
}

// API management endpoints.
func (e *Endpoints) CreateAPI() string {
	return constants.PublisherBasePath + "/apis"
}

func (e *Endpoints) API(apiID string) string {
	return constants.PublisherBasePath + "/apis/" + pathParam("apiId", apiID)
}

func (e *Endpoints) ChangeLifecycle(apiID, action string) string {
	return withQuery(constants.PublisherBasePath+"/apis/change-lifecycle", url.Values{
		"apiId":  {apiID},
		"action": {action},
	})
}

// Revision endpoints.
func (e *Endpoints) Revisions(apiID string) string {
	return e.API(apiID) + "/revisions"
}

func (e *Endpoints) Revision(apiID, revisionID string) string {
	return e.Revisions(apiID) + "/" + pathParam("revisionId", revisionID)
}

func (e *Endpoints) DeployRevision(apiID, revisionID string) string {
	return withQuery(e.API(apiID)+"/deploy-revision", url.Values{
		"revisionId": {revisionID},
	})
}

func (e *Endpoints) UndeployRevision(apiID, revisionID string) string {
	return withQuery(e.API(apiID)+"/undeploy-revision", url.Values{
		"revisionId": {revisionID},
	})
}

// API endpoint endpoints.
func (e *Endpoints) APIEndpoints(apiID string) string {
	return e.API(apiID) + "/endpoints"
}

func (e *Endpoints) APIEndpoint(apiID, endpointID string) string {
	return e.APIEndpoints(apiID) + "/" + pathParam("endpointId", endpointID)
}

// Developer portal endpoints.
func (e *Endpoints) CreateApplication() string {
	return constants.DevPortalBasePath + "/applications"
}

func (e *Endpoints) Application(applicationID string) string {
	return constants.DevPortalBasePath + "/applications/" + pathParam("applicationId", applicationID)
}

func (e *Endpoints) GenerateKeys(applicationID string) string {
	return e.Application(applicationID) + "/generate-keys"
}

func (e *Endpoints) Subscriptions() string {
	return constants.DevPortalBasePath + "/subscriptions"
}
