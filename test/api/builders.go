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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"k8s.io/utils/ptr"

	"github.com/unikorn-cloud/apim/pkg/constants"
	"github.com/unikorn-cloud/apim/pkg/openapi"
)

const (
	// EndpointTestAPIName names the API whose endpoints are exercised.
	EndpointTestAPIName = "APIEndpointTestCase"

	// EndpointTestAPIContext is the context root of that API.
	EndpointTestAPIContext = "APIEndpointTestCase"

	// EndpointTestAPIVersion is the version of that API.
	EndpointTestAPIVersion = "1.0.0"

	// EndpointTestBackend is the gateway resource backing that API.
	EndpointTestBackend = "xmlapi"

	// EndpointTestApplicationDescription describes the subscribing application.
	EndpointTestApplicationDescription = "Test Application Endpoint APITestCase"

	// DefaultKeyValidity is the requested application token lifetime in seconds.
	DefaultKeyValidity = "3600"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// APIPayloadBuilder builds API creation payloads for testing.
type APIPayloadBuilder struct {
	payload openapi.API
}

// NewAPIPayload creates a new API payload with the endpoint test defaults
// whose backend is the given URL.
func NewAPIPayload(backendURL string) *APIPayloadBuilder {
	return &APIPayloadBuilder{
		payload: openapi.API{
			Name:     EndpointTestAPIName,
			Context:  EndpointTestAPIContext,
			Version:  EndpointTestAPIVersion,
			Policies: []string{constants.UnlimitedTier},
			Tags:     []string{"youtube", "token", "media"},
			EndpointConfig: map[string]interface{}{
				"endpoint_type": "http",
				"production_endpoints": map[string]interface{}{
					"url": backendURL,
				},
				"sandbox_endpoints": map[string]interface{}{
					"url": backendURL,
				},
			},
		},
	}
}

// WithName sets the API name.
func (b *APIPayloadBuilder) WithName(name string) *APIPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithContext sets the API context root.
func (b *APIPayloadBuilder) WithContext(context string) *APIPayloadBuilder {
	b.payload.Context = context
	return b
}

func (b *APIPayloadBuilder) WithVersion(version string) *APIPayloadBuilder {
	b.payload.Version = version
	return b
}

func (b *APIPayloadBuilder) WithDescription(desc string) *APIPayloadBuilder {
	b.payload.Description = ptr.To(desc)
	return b
}

// WithTags replaces the API tags.
func (b *APIPayloadBuilder) WithTags(tags ...string) *APIPayloadBuilder {
	b.payload.Tags = tags
	return b
}

// Build returns the completed API payload.
func (b *APIPayloadBuilder) Build() *openapi.API {
	payload := b.payload

	return &payload
}

// ApplicationPayloadBuilder builds application payloads for testing.
type ApplicationPayloadBuilder struct {
	payload openapi.Application
}

// NewApplicationPayload creates a JWT application on the unlimited tier with
// a unique name.
func NewApplicationPayload() *ApplicationPayloadBuilder {
	return &ApplicationPayloadBuilder{
		payload: openapi.Application{
			Name:             generateRandomName("endpoint-app"),
			ThrottlingPolicy: constants.UnlimitedTier,
			Description:      ptr.To(EndpointTestApplicationDescription),
			TokenType:        openapi.TokenTypeJWT,
		},
	}
}

func (b *ApplicationPayloadBuilder) WithName(name string) *ApplicationPayloadBuilder {
	b.payload.Name = name
	return b
}

func (b *ApplicationPayloadBuilder) WithTokenType(tokenType string) *ApplicationPayloadBuilder {
	b.payload.TokenType = tokenType
	return b
}

func (b *ApplicationPayloadBuilder) Build() *openapi.Application {
	payload := b.payload

	return &payload
}

// KeyRequestBuilder builds application key generation requests.
type KeyRequestBuilder struct {
	payload openapi.ApplicationKeyGenerateRequest
}

// NewKeyRequest creates a production key request for the client credentials
// grant with the default validity.
func NewKeyRequest() *KeyRequestBuilder {
	return &KeyRequestBuilder{
		payload: openapi.ApplicationKeyGenerateRequest{
			KeyType:                 openapi.KeyTypeProduction,
			GrantTypesToBeSupported: []string{openapi.GrantTypeClientCredentials},
			ValidityTime:            DefaultKeyValidity,
		},
	}
}

func (b *KeyRequestBuilder) WithKeyType(keyType string) *KeyRequestBuilder {
	b.payload.KeyType = keyType
	return b
}

// WithGrantTypes replaces the supported grant types.
func (b *KeyRequestBuilder) WithGrantTypes(grantTypes ...string) *KeyRequestBuilder {
	b.payload.GrantTypesToBeSupported = grantTypes
	return b
}

func (b *KeyRequestBuilder) WithValidity(seconds string) *KeyRequestBuilder {
	b.payload.ValidityTime = seconds
	return b
}

func (b *KeyRequestBuilder) Build() *openapi.ApplicationKeyGenerateRequest {
	payload := b.payload

	return &payload
}

// NewEndpointPayload creates a typed endpoint for the given backend.
func NewEndpointPayload(name, url string) *openapi.APIEndpoint {
	return &openapi.APIEndpoint{
		Name:            name,
		DeploymentStage: ptr.To(openapi.DeploymentStageProduction),
		EndpointConfig: map[string]interface{}{
			"endpoint_type": "http",
			"production_endpoints": map[string]interface{}{
				"url": url,
			},
		},
	}
}
