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

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/apim/pkg/openapi"
	servererrors "github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"
)

// Authenticator serves client registration and token issuance, and guards
// the management APIs.
type Authenticator struct {
	users  Users
	issuer *Issuer
}

// New returns an authenticator for the given users.
func New(users Users, issuer *Issuer) *Authenticator {
	return &Authenticator{
		users:  users,
		issuer: issuer,
	}
}

// RegisterClient implements dynamic client registration, the caller
// authenticates as a tenant user with basic authentication.
func (a *Authenticator) RegisterClient(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		servererrors.HandleError(w, r, servererrors.OAuth2AccessDenied("basic authentication required"))
		return
	}

	user, err := a.users.Authenticate(username, password)
	if err != nil {
		servererrors.HandleError(w, r, servererrors.OAuth2AccessDenied("invalid user credentials").WithError(err))
		return
	}

	request := &openapi.ClientRegistrationRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		servererrors.HandleError(w, r, err)
		return
	}

	if request.ClientName == "" {
		servererrors.HandleError(w, r, servererrors.OAuth2InvalidRequest("clientName is required"))
		return
	}

	if request.Owner != "" && request.Owner != user.Username {
		servererrors.HandleError(w, r, servererrors.HTTPForbidden("clients may only be registered for the authenticated user"))
		return
	}

	client := a.issuer.RegisterClient(user, request.ClientName, strings.Fields(request.GrantType))

	logr.FromContextOrDiscard(r.Context()).Info("client registered", "tenant", user.Tenant, "owner", user.Username, "clientID", client.ID)

	response := &openapi.ClientRegistration{
		ClientId:     client.ID,
		ClientSecret: client.Secret,
		ClientName:   client.Name,
		CallBackURL:  request.CallbackUrl,
		IsSaasApp:    request.SaasApp,
	}

	util.WriteJSONResponse(w, r, http.StatusOK, response)
}

// writeOAuth2Error renders a token endpoint error as RFC 6749 section 5.2
// describes it, invalid_client is a 401 with a Basic challenge.
func writeOAuth2Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	code := "invalid_request"

	switch {
	case errors.Is(err, ErrInvalidClient):
		status = http.StatusUnauthorized
		code = "invalid_client"

		w.Header().Set("WWW-Authenticate", `Basic realm="oauth2"`)
	case errors.Is(err, ErrInvalidGrant):
		code = "invalid_grant"
	case errors.Is(err, ErrUnsupportedGrantType):
		code = "unsupported_grant_type"
	}

	logr.FromContextOrDiscard(r.Context()).Info("token request rejected", "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(&openapi.Error{
		Error:            code,
		ErrorDescription: err.Error(),
	})
}

// validityPeriod reads the optional client credentials validity in seconds.
func validityPeriod(r *http.Request) (time.Duration, error) {
	value := r.PostForm.Get("validity_period")
	if value == "" {
		return 0, nil
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("validity_period must be an integer number of seconds: %w", err)
	}

	return Lifetime(seconds), nil
}

// Token implements the OAuth2 token endpoint for the password and client
// credentials grants.  Clients authenticate either with basic authentication
// or form parameters.
func (a *Authenticator) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeOAuth2Error(w, r, err)
		return
	}

	clientID, clientSecret, ok := r.BasicAuth()
	if !ok {
		clientID = r.PostForm.Get("client_id")
		clientSecret = r.PostForm.Get("client_secret")
	}

	scope := r.PostForm.Get("scope")

	var token *Token

	var err error

	switch grantType := r.PostForm.Get("grant_type"); grantType {
	case openapi.GrantTypePassword:
		token, err = a.issuer.PasswordGrant(a.users, clientID, clientSecret, r.PostForm.Get("username"), r.PostForm.Get("password"), scope)
	case openapi.GrantTypeClientCredentials:
		lifetime, verr := validityPeriod(r)
		if verr != nil {
			writeOAuth2Error(w, r, verr)
			return
		}

		token, err = a.issuer.ClientCredentialsGrant(clientID, clientSecret, scope, lifetime)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedGrantType, grantType)
	}

	if err != nil {
		writeOAuth2Error(w, r, err)
		return
	}

	response := &openapi.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(token.ExpiresIn / time.Second),
		Scope:       strings.Join(token.Scopes, " "),
	}

	w.Header().Set("Cache-Control", "no-store")

	util.WriteJSONResponse(w, r, http.StatusOK, response)
}
