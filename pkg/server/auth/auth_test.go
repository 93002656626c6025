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

package auth_test

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/pkg/server/auth"
	servererrors "github.com/unikorn-cloud/core/pkg/server/errors"
)

func newIssuer(t *testing.T) *auth.Issuer {
	t.Helper()

	issuer, err := auth.NewIssuer()
	require.NoError(t, err)

	return issuer
}

func TestParseUser(t *testing.T) {
	t.Parallel()

	user, err := auth.ParseUser("wso2.com:admin:secret")
	require.NoError(t, err)
	require.Equal(t, "wso2.com", user.Tenant)
	require.Equal(t, "admin@wso2.com", user.Username)
	require.Equal(t, "secret", user.Password)

	user, err = auth.ParseUser("carbon.super:admin:pa:ss")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Username)
	require.Equal(t, "pa:ss", user.Password)

	_, err = auth.ParseUser("carbon.super:admin@wso2.com:admin")
	require.ErrorIs(t, err, auth.ErrInvalidUser)

	_, err = auth.ParseUser("wso2.com:admin")
	require.ErrorIs(t, err, auth.ErrInvalidUser)
}

func TestTenantOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "carbon.super", auth.TenantOf("admin"))
	require.Equal(t, "wso2.com", auth.TenantOf("admin@wso2.com"))
	require.Equal(t, "carbon.super", auth.TenantOf("trailing@"))
}

func TestPasswordGrant(t *testing.T) {
	t.Parallel()

	users := auth.DefaultUsers()
	issuer := newIssuer(t)

	client := issuer.RegisterClient(users["admin@wso2.com"], "rest_api_publisher", []string{"password"})

	token, err := issuer.PasswordGrant(users, client.ID, client.Secret, "admin@wso2.com", "admin", "apim:api_create bogus apim:subscribe")
	require.NoError(t, err)
	require.Equal(t, []string{auth.ScopeAPICreate, auth.ScopeSubscribe}, token.Scopes)

	info, err := issuer.Validate(token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "wso2.com", info.Tenant)
	require.Equal(t, auth.KindUser, info.Kind)

	_, err = issuer.PasswordGrant(users, client.ID, "wrong", "admin@wso2.com", "admin", "")
	require.ErrorIs(t, err, auth.ErrInvalidClient)

	_, err = issuer.PasswordGrant(users, client.ID, client.Secret, "admin@wso2.com", "wrong", "")
	require.ErrorIs(t, err, auth.ErrInvalidGrant)

	// Users cannot obtain tokens through another tenant's client.
	_, err = issuer.PasswordGrant(users, client.ID, client.Secret, "admin", "admin", "")
	require.ErrorIs(t, err, auth.ErrInvalidGrant)

	_, err = issuer.ClientCredentialsGrant(client.ID, client.Secret, "", 0)
	require.ErrorIs(t, err, auth.ErrUnsupportedGrantType)
}

func TestRevokeClient(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t)

	client := issuer.RegisterApplicationClient("carbon.super", "app", []string{"client_credentials"})

	token, err := issuer.ClientCredentialsGrant(client.ID, client.Secret, "", 0)
	require.NoError(t, err)
	require.Equal(t, []string{auth.ScopeDefault}, token.Scopes)

	info, err := issuer.Validate(token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, auth.KindApplication, info.Kind)
	require.Equal(t, "app", info.Subject)

	issuer.RevokeClient(client.ID)

	_, err = issuer.Validate(token.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	a := auth.New(auth.DefaultUsers(), newIssuer(t))

	protected := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := auth.AllowScope(r.Context(), auth.ScopeAPICreate)
		if err != nil {
			servererrors.HandleError(w, r, err)
			return
		}

		_, _ = w.Write([]byte(info.Tenant))
	}))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", a.RegisterClient)
	mux.HandleFunc("POST /token", a.Token)
	mux.Handle("/protected", protected)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func register(t *testing.T, server *httptest.Server, username, password string) *openapi.ClientRegistration {
	t.Helper()

	body := `{"clientName":"rest_api_publisher","owner":"` + username + `","grantType":"password client_credentials","saasApp":true}`

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, server.URL+"/register", strings.NewReader(body))
	require.NoError(t, err)

	req.SetBasicAuth(username, password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	registration := &openapi.ClientRegistration{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(registration))
	require.NotEmpty(t, registration.ClientId)
	require.True(t, registration.IsSaasApp)

	return registration
}

func token(t *testing.T, server *httptest.Server, registration *openapi.ClientRegistration, form url.Values) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, server.URL+"/token", strings.NewReader(form.Encode()))
	require.NoError(t, err)

	req.SetBasicAuth(registration.ClientId, registration.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp, body
}

func get(t *testing.T, server *httptest.Server, accessToken string) int {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL+"/protected", nil)
	require.NoError(t, err)

	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	return resp.StatusCode
}

func TestTokenEndpoint(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	registration := register(t, server, "admin@wso2.com", "admin")

	resp, body := token(t, server, registration, url.Values{
		"grant_type": {"password"},
		"username":   {"admin@wso2.com"},
		"password":   {"admin"},
		"scope":      {"apim:api_create"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Bearer", body["token_type"])
	require.Equal(t, "apim:api_create", body["scope"])

	userToken, ok := body["access_token"].(string)
	require.True(t, ok)

	require.Equal(t, http.StatusOK, get(t, server, userToken))

	resp, body = token(t, server, registration, url.Values{
		"grant_type": {"client_credentials"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	applicationToken, ok := body["access_token"].(string)
	require.True(t, ok)

	require.Equal(t, http.StatusUnauthorized, get(t, server, applicationToken))
	require.Equal(t, http.StatusUnauthorized, get(t, server, ""))
	require.Equal(t, http.StatusUnauthorized, get(t, server, "not-a-token"))

	resp, body = token(t, server, registration, url.Values{
		"grant_type": {"authorization_code"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "unsupported_grant_type", body["error"])

	resp, body = token(t, server, &openapi.ClientRegistration{ClientId: "nobody"}, url.Values{
		"grant_type": {"client_credentials"},
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "invalid_client", body["error"])
}

func TestMissingScope(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	registration := register(t, server, "admin", "admin")

	_, body := token(t, server, registration, url.Values{
		"grant_type": {"password"},
		"username":   {"admin"},
		"password":   {"admin"},
		"scope":      {"apim:subscribe"},
	})

	accessToken, ok := body["access_token"].(string)
	require.True(t, ok)

	require.Equal(t, http.StatusForbidden, get(t, server, accessToken))
}

func TestAccessTokensAreSignedJWTs(t *testing.T) {
	t.Parallel()

	users := auth.DefaultUsers()
	issuer := newIssuer(t)

	client := issuer.RegisterClient(users["admin@wso2.com"], "rest_api_publisher", nil)

	token, err := issuer.PasswordGrant(users, client.ID, client.Secret, "admin@wso2.com", "admin", "apim:api_view")
	require.NoError(t, err)

	parsed, err := jwt.ParseSigned(token.AccessToken, []jose.SignatureAlgorithm{jose.EdDSA})
	require.NoError(t, err)
	require.Equal(t, "JWT", parsed.Headers[0].ExtraHeaders[jose.HeaderType])

	var claims jwt.Claims

	require.NoError(t, parsed.UnsafeClaimsWithoutVerification(&claims))
	require.Equal(t, auth.TokenIssuer, claims.Issuer)
	require.Equal(t, "admin@wso2.com", claims.Subject)
	require.NotEmpty(t, claims.ID)

	// Rewriting the payload breaks the signature.
	parts := strings.Split(token.AccessToken, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	forged := strings.Replace(string(payload), `"tenant":"wso2.com"`, `"tenant":"carbon.super"`, 1)
	require.NotEqual(t, string(payload), forged)

	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	_, err = issuer.Validate(strings.Join(parts, "."))
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	// Another control plane's key does not verify our tokens.
	_, err = newIssuer(t).Validate(token.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = issuer.Validate("not-a-jwt")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAccessTokensExpire(t *testing.T) {
	t.Parallel()

	issuer := newIssuer(t)

	client := issuer.RegisterApplicationClient("carbon.super", "app", nil)

	token, err := issuer.ClientCredentialsGrant(client.ID, client.Secret, "", time.Minute)
	require.NoError(t, err)
	require.Equal(t, time.Minute, token.ExpiresIn)

	info, err := issuer.Validate(token.AccessToken)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Minute), info.Expiry, 5*time.Second)

	auth.SetClock(issuer, func() time.Time {
		return time.Now().Add(2 * time.Minute)
	})

	_, err = issuer.Validate(token.AccessToken)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
	require.ErrorIs(t, err, jwt.ErrExpired)
}

func TestLifetime(t *testing.T) {
	t.Parallel()

	require.Equal(t, time.Duration(0), auth.Lifetime(0))
	require.Equal(t, time.Duration(0), auth.Lifetime(-1))
	require.Equal(t, time.Hour, auth.Lifetime(3600))
	require.Equal(t, auth.MaxTokenLifetime, auth.Lifetime(10_000_000_000))
	require.Equal(t, auth.MaxTokenLifetime, auth.Lifetime(math.MaxInt64))
}

func TestTokenEndpointClampsValidity(t *testing.T) {
	t.Parallel()

	server := newServer(t)

	registration := register(t, server, "admin", "admin")

	resp, body := token(t, server, registration, url.Values{
		"grant_type":      {"client_credentials"},
		"validity_period": {strconv.FormatInt(math.MaxInt64, 10)},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.InDelta(t, auth.MaxTokenLifetime.Seconds(), body["expires_in"], 0)

	resp, body = token(t, server, registration, url.Values{
		"grant_type":      {"client_credentials"},
		"validity_period": {"forever"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "invalid_request", body["error"])
}
