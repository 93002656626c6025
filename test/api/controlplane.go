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
	"fmt"
	"net/http/httptest"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/apim/pkg/server"
)

// StartControlPlane starts an in-memory control plane that knows the
// configured administrators of both tenancy modes.  The caller must close the
// server.
func StartControlPlane(ctx context.Context, config *TestConfig) (*httptest.Server, error) {
	logger := logr.Discard()

	if config.DebugLogging {
		logger = ginkgo.GinkgoLogr
	}

	s := &server.Server{
		Options: server.Options{
			Tenants: []string{
				fmt.Sprintf("%s:%s:%s", SuperTenantAdmin.Domain(config), config.SuperTenantUsername, config.SuperTenantPassword),
				fmt.Sprintf("%s:%s:%s", TenantAdmin.Domain(config), config.TenantUsername, config.TenantPassword),
			},
		},
	}

	handler, err := s.GetHandler(ctx, logger)
	if err != nil {
		return nil, fmt.Errorf("creating control plane: %w", err)
	}

	return httptest.NewServer(handler), nil
}
