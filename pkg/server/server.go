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

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/apim/pkg/constants"
	"github.com/unikorn-cloud/apim/pkg/openapi"
	"github.com/unikorn-cloud/apim/pkg/server/auth"
	"github.com/unikorn-cloud/apim/pkg/server/handler"
	"github.com/unikorn-cloud/apim/pkg/server/middleware/logging"
	"github.com/unikorn-cloud/apim/pkg/server/middleware/metrics"
	openapimiddleware "github.com/unikorn-cloud/apim/pkg/server/middleware/openapi"
	"github.com/unikorn-cloud/apim/pkg/server/store"
	"github.com/unikorn-cloud/core/pkg/server/errors"
)

type Options struct {
	// ListenAddress tells the server what to listen on, you shouldn't
	// need to change this, its already non-privileged and the default
	// should be modified to avoid clashes with other services e.g prometheus.
	ListenAddress string

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	WriteTimeout time.Duration

	// Tenants are additional tenant users as domain:username:password.
	Tenants []string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":9443", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.StringArrayVar(&o.Tenants, "tenant", nil, "Additional tenant user as domain:username:password, may be specified more than once.")
}

type Server struct {
	// Options are server specific options e.g. listener address etc.
	Options Options

	// HandlerOptions sets options for the HTTP handler.
	HandlerOptions handler.Options
}

func (s *Server) AddFlags(f *pflag.FlagSet) {
	s.Options.AddFlags(f)
	s.HandlerOptions.AddFlags(f)
}

func (s *Server) users() (auth.Users, error) {
	users := auth.DefaultUsers()

	for _, tenant := range s.Options.Tenants {
		user, err := auth.ParseUser(tenant)
		if err != nil {
			return nil, err
		}

		users.Add(user)
	}

	return users, nil
}

// GetHandler builds the complete control plane, every call returns an
// independent instance with its own state.
func (s *Server) GetHandler(ctx context.Context, logger logr.Logger) (http.Handler, error) {
	users, err := s.users()
	if err != nil {
		return nil, err
	}

	schema, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	validator, err := openapimiddleware.NewValidator(schema)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	requestMetrics, err := metrics.New(registry)
	if err != nil {
		return nil, err
	}

	issuer, err := auth.NewIssuer()
	if err != nil {
		return nil, err
	}

	authenticator := auth.New(users, issuer)

	handlerInterface, err := handler.New(store.New(), issuer, &s.HandlerOptions)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logging.Middleware(logger))
	router.Use(requestMetrics.Middleware)
	router.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.HandleError(w, r, errors.HTTPNotFound())
	}))
	router.MethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.HandleError(w, r, errors.HTTPMethodNotAllowed())
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Post(constants.RegistrationPath, authenticator.RegisterClient)
	router.Post(constants.TokenPath, authenticator.Token)

	router.Group(func(r chi.Router) {
		r.Use(authenticator.Middleware)
		r.Use(validator.Middleware)

		chiServerOptions := openapi.ChiServerOptions{
			BaseRouter: r,
			ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
				errors.HandleError(w, r, errors.OAuth2InvalidRequest(err.Error()))
			},
		}

		openapi.HandlerWithOptions(handlerInterface, chiServerOptions)
	})

	return router, nil
}

func (s *Server) GetServer(ctx context.Context, logger logr.Logger) (*http.Server, error) {
	handler, err := s.GetHandler(ctx, logger)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadTimeout:       s.Options.ReadTimeout,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		WriteTimeout:      s.Options.WriteTimeout,
		Handler:           handler,
	}

	return server, nil
}
