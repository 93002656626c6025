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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/apim/pkg/constants"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	e := NewEndpoints()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"api", e.API("a1"), "/api/am/publisher/v4/apis/a1"},
		{"endpoint", e.APIEndpoint("a1", "e1"), "/api/am/publisher/v4/apis/a1/endpoints/e1"},
		{"escaped", e.APIEndpoint("a1", "e 1/x"), "/api/am/publisher/v4/apis/a1/endpoints/e%201%2Fx"},
		{"lifecycle", e.ChangeLifecycle("a1", "Demote to Created"), "/api/am/publisher/v4/apis/change-lifecycle?action=Demote+to+Created&apiId=a1"},
		{"deploy", e.DeployRevision("a1", "r1"), "/api/am/publisher/v4/apis/a1/deploy-revision?revisionId=r1"},
		{"keys", e.GenerateKeys("app1"), "/api/am/devportal/v3/applications/app1/generate-keys"},
		{"token", e.Token(), constants.TokenPath},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, test.expected, test.path)
		})
	}
}

func TestGatewayURL(t *testing.T) {
	t.Parallel()

	config := &TestConfig{
		GatewayURL:   "http://localhost:8280",
		TenantDomain: "wso2.com",
	}

	require.Equal(t, "http://localhost:8280/xmlapi/1.0.0", SuperTenantAdmin.GatewayURL(config, "xmlapi/1.0.0"))
	require.Equal(t, "http://localhost:8280/t/wso2.com/xmlapi/1.0.0", TenantAdmin.GatewayURL(config, "xmlapi/1.0.0"))
	require.Equal(t, constants.SuperTenantDomain, SuperTenantAdmin.Domain(config))
	require.Equal(t, "wso2.com", TenantAdmin.Domain(config))
}
