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
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/apim/pkg/constants"
	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/test/api"
)

var _ = Describe("Error Handling and Edge Cases", Ordered, func() {
	var fixture *api.Fixture

	BeforeAll(func() {
		fixture = api.NewFixture(ctx, config, api.TenantAdmin)
	})

	Context("When API encounters errors", func() {
		Describe("Given invalid endpoint payloads", func() {
			It("should reject an endpoint without a name", func() {
				_, resp, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, json.RawMessage(`{"deploymentStage":"PRODUCTION"}`))
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject an unknown deployment stage", func() {
				_, resp, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, json.RawMessage(`{"name":"bad-stage","deploymentStage":"STAGING"}`))
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})

		Describe("Given conflicting resources", func() {
			It("should reject duplicate endpoint names", func() {
				name := api.GenerateTestID()

				_, _, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, api.NewEndpointPayload(name, config.GatewayURL))
				Expect(err).NotTo(HaveOccurred())

				_, resp, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, api.NewEndpointPayload(name, config.GatewayURL))
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			})

			It("should reject a duplicate subscription", func() {
				_, resp, err := fixture.Admin.Subscribe(ctx, &openapi.Subscription{
					ApplicationId:    fixture.ApplicationID,
					ApiId:            fixture.APIID,
					ThrottlingPolicy: constants.UnlimitedTier,
				})
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			})

			It("should reject generating the same keys twice", func() {
				_, resp, err := fixture.Admin.GenerateKeys(ctx, fixture.ApplicationID, api.NewKeyRequest().Build())
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			})
		})
	})

	Context("When testing edge case scenarios", func() {
		Describe("Given resources that do not exist", func() {
			It("should return not found for endpoints of an unknown API", func() {
				_, resp, err := fixture.Admin.ListAPIEndpoints(ctx, api.GenerateTestID())
				Expect(err).To(MatchError(api.ErrResourceNotFound))
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			})

			It("should return not found when updating an unknown endpoint", func() {
				_, resp, err := fixture.Admin.UpdateAPIEndpoint(ctx, fixture.APIID, api.GenerateTestID(), api.NewEndpointPayload(api.GenerateTestID(), config.GatewayURL))
				Expect(err).To(MatchError(api.ErrResourceNotFound))
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			})

			It("should return not found when deleting an endpoint twice", func() {
				created, _, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, api.NewEndpointPayload(api.GenerateTestID(), config.GatewayURL))
				Expect(err).NotTo(HaveOccurred())

				_, err = fixture.DeleteEndpoint(ctx, created.Id)
				Expect(err).NotTo(HaveOccurred())

				resp, err := fixture.DeleteEndpoint(ctx, created.Id)
				Expect(err).To(MatchError(api.ErrResourceNotFound))
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			})
		})

		Describe("Given an unpublished API", func() {
			It("should reject subscriptions", func() {
				name := api.GenerateTestID()

				unpublished, _, err := fixture.Admin.CreateAPI(ctx, api.NewAPIPayload(config.GatewayURL).WithName(name).WithContext(name).Build())
				Expect(err).NotTo(HaveOccurred())

				DeferCleanup(func() {
					_, _ = fixture.Admin.DeleteAPI(ctx, unpublished.Id)
				})

				_, resp, err := fixture.Admin.Subscribe(ctx, &openapi.Subscription{
					ApplicationId:    fixture.ApplicationID,
					ApiId:            unpublished.Id,
					ThrottlingPolicy: constants.UnlimitedTier,
				})
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})
	})
})
