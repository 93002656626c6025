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

package openapi

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidContext = errors.New("invalid context: must consist of alphanumeric characters, '-', '_', '.' or '/', and must start with an alphanumeric character")

var contextValidationRegex = regexp.MustCompile("^[A-Za-z0-9][-A-Za-z0-9_./]{0,199}$")

// Context is an API context, the path prefix an API is exposed on by the gateway.
// Its canonical form carries a single leading slash.
type Context struct {
	Value string
}

func (c *Context) UnmarshalText(text []byte) error {
	trimmed := strings.TrimPrefix(string(text), "/")

	if !contextValidationRegex.MatchString(trimmed) || strings.Contains(trimmed, "//") {
		return ErrInvalidContext
	}

	*c = Context{
		Value: "/" + strings.TrimSuffix(trimmed, "/"),
	}

	return nil
}

// Tenanted returns the context as seen by the gateway for the given tenant.
// The super tenant exposes APIs without a tenant prefix.
func (c Context) Tenanted(tenantDomain, superTenantDomain string) string {
	if tenantDomain == "" || tenantDomain == superTenantDomain {
		return c.Value
	}

	return "/t/" + tenantDomain + c.Value
}

// Lifecycle states an API moves through.
const (
	LifecycleStatusCreated    = "CREATED"
	LifecycleStatusPublished  = "PUBLISHED"
	LifecycleStatusBlocked    = "BLOCKED"
	LifecycleStatusDeprecated = "DEPRECATED"
	LifecycleStatusRetired    = "RETIRED"
)

// Lifecycle actions accepted by the change-lifecycle operation.
const (
	LifecycleActionPublish         = "Publish"
	LifecycleActionDemoteToCreated = "Demote to Created"
	LifecycleActionBlock           = "Block"
	LifecycleActionDeprecate       = "Deprecate"
	LifecycleActionRetire          = "Retire"
)

// Deployment stages of an API endpoint.
const (
	DeploymentStageProduction = "PRODUCTION"
	DeploymentStageSandbox    = "SANDBOX"
)

// Key types an application can generate credentials for.
const (
	KeyTypeProduction = "PRODUCTION"
	KeyTypeSandbox    = "SANDBOX"
)

// Token types issued to applications.
const (
	TokenTypeOAuth = "OAUTH"
	TokenTypeJWT   = "JWT"
)

// Grant types.
const (
	GrantTypeClientCredentials = "client_credentials"
	GrantTypePassword          = "password"
)

// Workflow outcomes.
const (
	WorkflowStatusApproved = "APPROVED"
)

// Subscription states.
const (
	SubscriptionStatusUnblocked = "UNBLOCKED"
)
