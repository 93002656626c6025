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

	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/test/api"
)

var _ = Describe("State Management", Ordered, func() {
	var (
		admin      *api.APIClient
		apiID      string
		revisionID string
	)

	deployments := []openapi.APIRevisionDeployment{
		{
			Name:               "Default",
			Vhost:              "localhost",
			DisplayOnDevportal: true,
		},
	}

	BeforeAll(func() {
		var err error

		admin, err = api.AdminClient(ctx, config, api.SuperTenantAdmin)
		Expect(err).NotTo(HaveOccurred())

		name := api.GenerateTestID()

		created, _, err := admin.CreateAPI(ctx, api.NewAPIPayload(config.GatewayURL).WithName(name).WithContext(name).Build())
		Expect(err).NotTo(HaveOccurred())

		apiID = created.Id

		DeferCleanup(func() {
			// Best effort, the final specs remove the API themselves.
			revisions, _, err := admin.ListRevisions(ctx, apiID)
			if err != nil {
				return
			}

			for _, revision := range revisions.List {
				if len(revision.DeploymentInfo) > 0 {
					_, _, _ = admin.UndeployRevision(ctx, apiID, revision.Id, revision.DeploymentInfo)
				}

				_, _, _ = admin.DeleteRevision(ctx, apiID, revision.Id)
			}

			_, _ = admin.DeleteAPI(ctx, apiID)
		})
	})

	Context("When APIs transition through lifecycle states", func() {
		Describe("Given a newly created API", func() {
			It("should be in the created state", func() {
				created, _, err := admin.GetAPI(ctx, apiID)
				Expect(err).NotTo(HaveOccurred())
				Expect(created.LifeCycleStatus).To(Equal(openapi.LifecycleStatusCreated))
			})

			It("should reject publishing without a deployed revision", func() {
				_, resp, err := admin.ChangeLifecycle(ctx, apiID, openapi.LifecycleActionPublish)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})

		Describe("Given a deployed revision", func() {
			It("should deploy a revision", func() {
				revision, _, err := admin.CreateRevision(ctx, apiID, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(revision.DisplayName).To(Equal("Revision 1"))

				revisionID = revision.Id

				deployed, _, err := admin.DeployRevision(ctx, apiID, revisionID, deployments)
				Expect(err).NotTo(HaveOccurred())
				Expect(deployed).To(HaveLen(1))
				Expect(deployed[0].RevisionUuid).To(Equal(revisionID))
			})

			It("should publish the API", func() {
				response, _, err := admin.ChangeLifecycle(ctx, apiID, openapi.LifecycleActionPublish)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.WorkflowStatus).To(Equal(openapi.WorkflowStatusApproved))
				Expect(response.LifecycleState).NotTo(BeNil())
				Expect(response.LifecycleState.State).To(Equal(openapi.LifecycleStatusPublished))
			})

			It("should reject transitions that skip a state", func() {
				_, resp, err := admin.ChangeLifecycle(ctx, apiID, openapi.LifecycleActionRetire)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject deleting a deployed revision", func() {
				_, resp, err := admin.DeleteRevision(ctx, apiID, revisionID)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject deleting an API with a deployed revision", func() {
				resp, err := admin.DeleteAPI(ctx, apiID)
				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			})

			It("should demote the API back to created", func() {
				response, _, err := admin.ChangeLifecycle(ctx, apiID, openapi.LifecycleActionDemoteToCreated)
				Expect(err).NotTo(HaveOccurred())
				Expect(response.LifecycleState.State).To(Equal(openapi.LifecycleStatusCreated))
			})
		})

		Describe("Given the revision limit", func() {
			It("should refuse more revisions than the limit", func() {
				var resp *api.Response

				var err error

				for range 5 {
					_, resp, err = admin.CreateRevision(ctx, apiID, nil)
					if err != nil {
						break
					}
				}

				Expect(err).To(MatchError(api.ErrUnexpectedStatus))
				Expect(resp.StatusCode).To(Equal(http.StatusConflict))

				revisions, _, err := admin.ListRevisions(ctx, apiID)
				Expect(err).NotTo(HaveOccurred())
				Expect(revisions.Count).To(Equal(5))
			})
		})

		Describe("Given the API is retired from the gateway", func() {
			It("should undeploy and delete every revision", func() {
				_, _, err := admin.UndeployRevision(ctx, apiID, revisionID, deployments)
				Expect(err).NotTo(HaveOccurred())

				revisions, _, err := admin.ListRevisions(ctx, apiID)
				Expect(err).NotTo(HaveOccurred())

				for _, revision := range revisions.List {
					Expect(revision.DeploymentInfo).To(BeEmpty())

					_, _, err := admin.DeleteRevision(ctx, apiID, revision.Id)
					Expect(err).NotTo(HaveOccurred())
				}
			})

			It("should delete the API", func() {
				_, err := admin.DeleteAPI(ctx, apiID)
				Expect(err).NotTo(HaveOccurred())

				Eventually(func() error {
					_, _, err := admin.GetAPI(ctx, apiID)
					return err
				}).WithTimeout(config.TestTimeout).WithPolling(time.Second).Should(MatchError(api.ErrResourceNotFound))
			})
		})
	})
})
