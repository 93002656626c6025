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
	"context"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	servererrors "github.com/unikorn-cloud/core/pkg/server/errors"
)

type contextKey int

//nolint:gochecknoglobals
var infoKey contextKey

// NewContext attaches token information to a context.
func NewContext(ctx context.Context, info *Info) context.Context {
	return context.WithValue(ctx, infoKey, info)
}

// FromContext returns the token information of the authenticated caller.
func FromContext(ctx context.Context) (*Info, bool) {
	info, ok := ctx.Value(infoKey).(*Info)

	return info, ok
}

// Middleware requires a valid user bearer token.  Application tokens are only
// good for invoking APIs through the gateway, not for managing them.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			servererrors.HandleError(w, r, servererrors.OAuth2AccessDenied("bearer token required"))

			return
		}

		info, err := a.issuer.Validate(token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			servererrors.HandleError(w, r, servererrors.OAuth2AccessDenied("invalid access token").WithError(err))

			return
		}

		if info.Kind != KindUser {
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			servererrors.HandleError(w, r, servererrors.OAuth2AccessDenied("application tokens cannot access management APIs"))

			return
		}

		ctx := NewContext(r.Context(), info)
		ctx = logr.NewContext(ctx, logr.FromContextOrDiscard(ctx).WithValues("tenant", info.Tenant, "subject", info.Subject))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AllowScope returns the caller's token information if it carries the scope.
func AllowScope(ctx context.Context, scope string) (*Info, error) {
	info, ok := FromContext(ctx)
	if !ok {
		return nil, servererrors.OAuth2AccessDenied("request is not authenticated")
	}

	if !info.HasScope(scope) {
		return nil, servererrors.HTTPForbidden("token lacks scope " + scope)
	}

	return info, nil
}
