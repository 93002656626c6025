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
	"github.com/unikorn-cloud/apim/pkg/constants"
)

// TenancyMode selects which administrator a fixture acts as.
type TenancyMode string

const (
	// SuperTenantAdmin is the administrator of the default tenant.
	SuperTenantAdmin TenancyMode = "SUPER_TENANT_ADMIN"

	// TenantAdmin is the administrator of the secondary tenant.
	TenantAdmin TenancyMode = "TENANT_ADMIN"
)

// TenancyModes are the modes every endpoint scenario is run in.
func TenancyModes() []TenancyMode {
	return []TenancyMode{
		SuperTenantAdmin,
		TenantAdmin,
	}
}

// Credentials returns the administrator user name and password for the mode.
func (m TenancyMode) Credentials(config *TestConfig) (string, string) {
	if m == TenantAdmin {
		return config.TenantUsername, config.TenantPassword
	}

	return config.SuperTenantUsername, config.SuperTenantPassword
}

// Domain returns the tenant domain the mode acts in.
func (m TenancyMode) Domain(config *TestConfig) string {
	if m == TenantAdmin {
		return config.TenantDomain
	}

	return constants.SuperTenantDomain
}

// GatewayURL returns the gateway invocation URL for a resource path e.g.
// xmlapi/1.0.0, tenant resources are prefixed with /t/<domain>.
func (m TenancyMode) GatewayURL(config *TestConfig, resource string) string {
	if m == TenantAdmin {
		return config.GatewayURL + "/t/" + config.TenantDomain + "/" + resource
	}

	return config.GatewayURL + "/" + resource
}

// AdminScopes are requested for every administrator token.
func AdminScopes() []string {
	return []string{
		"apim:api_view",
		"apim:api_create",
		"apim:api_publish",
		"apim:api_delete",
		"apim:subscribe",
		"apim:app_manage",
		"apim:sub_manage",
	}
}
