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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/apim/test/api"
)

var _ = Describe("API Endpoint Lifecycle", func() {
	for _, mode := range api.TenancyModes() {
		Context("When managing endpoints as "+string(mode), Ordered, ContinueOnFailure, func() {
			var (
				fixture  *api.Fixture
				registry *api.EndpointRegistry
				deleted  string
			)

			BeforeAll(func() {
				fixture = api.NewFixture(ctx, config, mode)
				registry = api.NewEndpointRegistry()
			})

			// createdEndpoint skips specs that depend on a successful add.
			createdEndpoint := func() string {
				id, ok := registry.Lookup(api.CreatedAPIEndpoint)
				if !ok {
					Skip("no endpoint was registered by the add spec")
				}

				return id
			}

			Describe("Given a published API", func() {
				It("should add an endpoint", func() {
					endpoint, resp, err := fixture.AddEndpoint(ctx, "newEndpoint.json")
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusCreated))
					Expect(endpoint.Id).NotTo(BeEmpty())

					registry.Register(api.CreatedAPIEndpoint, endpoint.Id)
				})

				It("should get the endpoint by identifier", func() {
					id := createdEndpoint()

					endpoint, resp, err := fixture.GetEndpoint(ctx, id)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusOK))
					Expect(endpoint.Id).To(Equal(id))
				})

				It("should hide the endpoint from other tenants", func() {
					id := createdEndpoint()

					other := api.SuperTenantAdmin
					if mode == api.SuperTenantAdmin {
						other = api.TenantAdmin
					}

					admin, err := api.AdminClient(ctx, config, other)
					Expect(err).NotTo(HaveOccurred())

					_, resp, err := admin.GetAPIEndpoint(ctx, fixture.APIID, id)
					Expect(err).To(MatchError(api.ErrResourceNotFound))
					Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				})

				It("should update the endpoint", func() {
					id := createdEndpoint()

					endpoint, resp, err := fixture.UpdateEndpoint(ctx, "updateEndpoint.json", id)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusOK))
					Expect(endpoint.Id).NotTo(BeEmpty())
					Expect(endpoint.Id).To(Equal(id))
				})

				It("should delete the endpoint", func() {
					id := createdEndpoint()

					resp, err := fixture.DeleteEndpoint(ctx, id)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusOK))

					registry.Remove(id)
					deleted = id
				})

				It("should no longer return a deleted endpoint", func() {
					if deleted == "" {
						Skip("no endpoint was deleted by the delete spec")
					}

					var resp *api.Response

					Eventually(func() error {
						var err error

						_, resp, err = fixture.GetEndpoint(ctx, deleted)

						return err
					}).WithTimeout(config.TestTimeout).WithPolling(time.Second).Should(MatchError(api.ErrResourceNotFound))

					Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				})

				It("should issue distinct identifiers", func() {
					seen := map[string]bool{}

					for range 3 {
						name := api.GenerateTestID()

						endpoint, _, err := fixture.Admin.AddAPIEndpoint(ctx, fixture.APIID, api.NewEndpointPayload(name, config.GatewayURL))
						Expect(err).NotTo(HaveOccurred())
						Expect(seen).NotTo(HaveKey(endpoint.Id))

						seen[endpoint.Id] = true

						registry.Register(name, endpoint.Id)
					}
				})

				It("should list endpoints", func() {
					list, resp, err := fixture.ListEndpoints(ctx)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusOK))
					Expect(list.List).NotTo(BeNil())

					listed := make([]string, 0, len(list.List))

					for _, endpoint := range list.List {
						Expect(endpoint.Id).NotTo(Equal(deleted))

						listed = append(listed, endpoint.Id)
						registry.Register(endpoint.Name, endpoint.Id)
					}

					Expect(registry.Unlisted(listed)).To(BeEmpty())
				})
			})
		})
	}
})
