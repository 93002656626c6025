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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"context"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/apim/test/api"
)

var (
	ctx    context.Context
	config *api.TestConfig

	controlPlane *httptest.Server
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	ctx = context.Background()

	if config.InProcess() {
		controlPlane, err = api.StartControlPlane(ctx, config)
		Expect(err).NotTo(HaveOccurred())

		config.BaseURL = controlPlane.URL

		GinkgoWriter.Printf("Started in-process control plane at %s\n", controlPlane.URL)
	}
})

var _ = AfterSuite(func() {
	if controlPlane != nil {
		controlPlane.Close()
	}
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}
