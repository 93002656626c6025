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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/test/api"
)

var _ = Describe("Security and Authentication", Ordered, func() {
	var fixture *api.Fixture

	BeforeAll(func() {
		fixture = api.NewFixture(ctx, config, api.SuperTenantAdmin)
	})

	Context("When accessing API with different authentication states", func() {
		Describe("Given invalid authentication", func() {
			It("should reject requests with invalid tokens", func() {
				_, resp, err := fixture.Admin.WithAuthToken("not-a-token").ListAPIEndpoints(ctx, fixture.APIID)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})

			It("should reject requests with missing authentication", func() {
				_, resp, err := fixture.Admin.WithAuthToken("").ListAPIEndpoints(ctx, fixture.APIID)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})

			It("should reject application tokens on management APIs", func() {
				_, resp, err := fixture.Admin.WithAuthToken(fixture.AccessToken).ListAPIEndpoints(ctx, fixture.APIID)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})

			It("should reject client credentials with a bad secret", func() {
				_, err := fixture.Admin.ClientCredentialsToken(ctx, fixture.Keys.ConsumerKey, "incorrect", 0)
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("Given insufficient authorization", func() {
			It("should reject tokens without the required scope", func() {
				client, err := api.NewAPIClient(config)
				Expect(err).NotTo(HaveOccurred())

				username, password := api.SuperTenantAdmin.Credentials(config)

				registration, _, err := client.RegisterClient(ctx, username, password, &openapi.ClientRegistrationRequest{
					ClientName: api.GenerateTestID(),
					Owner:      username,
					GrantType:  openapi.GrantTypePassword,
				})
				Expect(err).NotTo(HaveOccurred())

				token, err := client.PasswordToken(ctx, registration, username, password, "apim:api_view")
				Expect(err).NotTo(HaveOccurred())

				viewer := client.WithAuthToken(token.AccessToken)

				_, _, err = viewer.ListAPIEndpoints(ctx, fixture.APIID)
				Expect(err).NotTo(HaveOccurred())

				_, resp, err := viewer.AddAPIEndpoint(ctx, fixture.APIID, api.NewEndpointPayload(api.GenerateTestID(), config.GatewayURL))
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			})

			It("should not register clients on behalf of other users", func() {
				client, err := api.NewAPIClient(config)
				Expect(err).NotTo(HaveOccurred())

				username, password := api.SuperTenantAdmin.Credentials(config)

				_, resp, err := client.RegisterClient(ctx, username, password, &openapi.ClientRegistrationRequest{
					ClientName: api.GenerateTestID(),
					Owner:      config.TenantUsername,
					GrantType:  openapi.GrantTypePassword,
				})
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			})
		})
	})

	Context("When submitting malicious input", func() {
		Describe("Given security testing", func() {
			It("should handle path traversal attempts", func() {
				_, resp, err := fixture.GetEndpoint(ctx, "../../"+fixture.APIID)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			})
		})

		Describe("Given encoding and Unicode issues", func() {
			It("should handle Unicode characters properly", func() {
				name := "端点-" + api.GenerateTestID()

				created, _, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, api.NewEndpointPayload(name, config.GatewayURL))
				Expect(err).NotTo(HaveOccurred())

				endpoint, _, err := fixture.GetEndpoint(ctx, created.Id)
				Expect(err).NotTo(HaveOccurred())
				Expect(endpoint.Name).To(Equal(name))
			})
		})
	})
})
