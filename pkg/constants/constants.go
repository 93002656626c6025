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

package constants

import (
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version string

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision string
)

const (
	// SuperTenantDomain is the tenant that owns users without a domain suffix.
	SuperTenantDomain = "carbon.super"

	// UnlimitedTier is the throttling policy applied to test artifacts.
	UnlimitedTier = "Unlimited"

	// PublisherBasePath is the root of the publisher REST API.
	PublisherBasePath = "/api/am/publisher/v4"

	// DevPortalBasePath is the root of the developer portal REST API.
	DevPortalBasePath = "/api/am/devportal/v3"

	// RegistrationPath is where dynamic client registration is served.
	RegistrationPath = "/client-registration/v0.17/register"

	// TokenPath is the OAuth2 token endpoint.
	TokenPath = "/oauth2/token"
)
