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

//nolint:revive
package handler

import (
	"net/http"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/pkg/server/auth"
	"github.com/unikorn-cloud/apim/pkg/server/handler/api"
	"github.com/unikorn-cloud/apim/pkg/server/handler/application"
	"github.com/unikorn-cloud/apim/pkg/server/handler/endpoint"
	"github.com/unikorn-cloud/apim/pkg/server/store"
	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"
)

type Options struct {
	API         api.Options
	Application application.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	o.API.AddFlags(f)
	o.Application.AddFlags(f)
}

type Handler struct {
	// store holds all tenant resources.
	store *store.Store

	// issuer creates credentials for application keys.
	issuer *auth.Issuer

	// options allows behaviour to be defined on the CLI.
	options *Options
}

// Ensure the handler implements every route.
var _ openapi.ServerInterface = &Handler{}

func New(store *store.Store, issuer *auth.Issuer, options *Options) (*Handler, error) {
	h := &Handler{
		store:   store,
		issuer:  issuer,
		options: options,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) apiClient(info *auth.Info) *api.Client {
	return api.NewClient(h.store, &h.options.API, info.Tenant, info.Subject)
}

func (h *Handler) endpointClient(info *auth.Info) *endpoint.Client {
	return endpoint.NewClient(h.store, info.Tenant)
}

func (h *Handler) applicationClient(info *auth.Info) *application.Client {
	return application.NewClient(h.store, h.issuer, &h.options.Application, info.Tenant)
}

func (h *Handler) PostApiAmPublisherV4Apis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPICreate)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.API{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).Create(ctx, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) PostApiAmPublisherV4ApisChangeLifecycle(w http.ResponseWriter, r *http.Request, params openapi.PostApiAmPublisherV4ApisChangeLifecycleParams) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIPublish)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).ChangeLifecycle(ctx, params)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) GetApiAmPublisherV4ApisApiId(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIView)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).Get(ctx, apiID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) DeleteApiAmPublisherV4ApisApiId(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIDelete)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.apiClient(info).Delete(ctx, apiID); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetApiAmPublisherV4ApisApiIdRevisions(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIView)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).ListRevisions(ctx, apiID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiAmPublisherV4ApisApiIdRevisions(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIPublish)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.APIRevision{}

	// The revision description is optional, and so is the body carrying it.
	if r.ContentLength != 0 {
		if err := util.ReadJSONBody(r, request); err != nil {
			errors.HandleError(w, r, err)
			return
		}
	}

	result, err := h.apiClient(info).CreateRevision(ctx, apiID, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) DeleteApiAmPublisherV4ApisApiIdRevisionsRevisionId(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter, revisionID openapi.RevisionIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIPublish)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).DeleteRevision(ctx, apiID, revisionID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiAmPublisherV4ApisApiIdDeployRevision(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter, params openapi.PostApiAmPublisherV4ApisApiIdDeployRevisionParams) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIPublish)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	var request []openapi.APIRevisionDeployment

	if err := util.ReadJSONBody(r, &request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).DeployRevision(ctx, apiID, params, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) PostApiAmPublisherV4ApisApiIdUndeployRevision(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter, params openapi.PostApiAmPublisherV4ApisApiIdUndeployRevisionParams) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIPublish)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	var request []openapi.APIRevisionDeployment

	if err := util.ReadJSONBody(r, &request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.apiClient(info).UndeployRevision(ctx, apiID, params, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) GetApiAmPublisherV4ApisApiIdEndpoints(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIView)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.endpointClient(info).List(ctx, apiID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiAmPublisherV4ApisApiIdEndpoints(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPICreate)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.APIEndpoint{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.endpointClient(info).Create(ctx, apiID, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) GetApiAmPublisherV4ApisApiIdEndpointsEndpointId(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter, endpointID openapi.EndpointIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPIView)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.endpointClient(info).Get(ctx, apiID, endpointID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PutApiAmPublisherV4ApisApiIdEndpointsEndpointId(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter, endpointID openapi.EndpointIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPICreate)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.APIEndpoint{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.endpointClient(info).Update(ctx, apiID, endpointID, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) DeleteApiAmPublisherV4ApisApiIdEndpointsEndpointId(w http.ResponseWriter, r *http.Request, apiID openapi.ApiIdParameter, endpointID openapi.EndpointIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAPICreate)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.endpointClient(info).Delete(ctx, apiID, endpointID); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) PostApiAmDevportalV3Applications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAppManage)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.Application{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.applicationClient(info).Create(ctx, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}

func (h *Handler) DeleteApiAmDevportalV3ApplicationsApplicationId(w http.ResponseWriter, r *http.Request, applicationID openapi.ApplicationIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAppManage)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	if err := h.applicationClient(info).Delete(ctx, applicationID); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) PostApiAmDevportalV3ApplicationsApplicationIdGenerateKeys(w http.ResponseWriter, r *http.Request, applicationID openapi.ApplicationIdParameter) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeAppManage)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.ApplicationKeyGenerateRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.applicationClient(info).GenerateKeys(ctx, applicationID, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiAmDevportalV3Subscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := auth.AllowScope(ctx, auth.ScopeSubscribe)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	request := &openapi.Subscription{}

	if err := util.ReadJSONBody(r, request); err != nil {
		errors.HandleError(w, r, err)
		return
	}

	result, err := h.applicationClient(info).Subscribe(ctx, request)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, result)
}
