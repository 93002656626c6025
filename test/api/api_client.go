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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/apim/pkg/openapi"
)

var (
	// ErrUnexpectedStatus is raised when the server responds with a status
	// code other than the one the operation expects.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrResourceNotFound accompanies ErrUnexpectedStatus on a 404.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMissingIdentifier is raised when a created resource has no identifier.
	ErrMissingIdentifier = errors.New("response is missing a resource identifier")

	// ErrInvalidResource is raised when a fixture file is not valid JSON.
	ErrInvalidResource = errors.New("resource is not valid JSON")
)

// Response is the raw outcome of an API call.
type Response struct {
	StatusCode int
	Body       []byte
	TraceID    string
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	validator routers.Router
}

// NewAPIClient returns a client for the configured control plane.
func NewAPIClient(config *TestConfig) (*APIClient, error) {
	return NewAPIClientWithBaseURL(config, config.BaseURL)
}

// NewAPIClientWithBaseURL returns a client for an explicit control plane.
func NewAPIClientWithBaseURL(config *TestConfig, baseURL string) (*APIClient, error) {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateResponses {
		schema, err := openapi.GetSwagger()
		if err != nil {
			return nil, fmt.Errorf("loading openapi schema: %w", err)
		}

		router, err := gorillamux.NewRouter(schema)
		if err != nil {
			return nil, fmt.Errorf("creating openapi router: %w", err)
		}

		c.validator = router
	}

	return c, nil
}

// WithAuthToken returns a copy of the client that authenticates with a
// different token.
func (c *APIClient) WithAuthToken(token string) *APIClient {
	out := *c
	out.authToken = token

	return &out
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// validateResponse checks a successful response against the OpenAPI document,
// requests the document does not describe are ignored.
func (c *APIClient) validateResponse(ctx context.Context, req *http.Request, resp *http.Response, body []byte) error {
	if c.validator == nil {
		return nil
	}

	route, params, err := c.validator.FindRoute(req)
	if err != nil {
		return nil //nolint:nilerr // undocumented routes are not validated
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: params,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   io.NopCloser(bytes.NewReader(body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("response failed schema validation: %w", err)
	}

	return nil
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int, mutators ...func(*http.Request)) (*Response, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	for _, mutator := range mutators {
		mutator(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		cause := ErrUnexpectedStatus
		if resp.StatusCode == http.StatusNotFound {
			cause = fmt.Errorf("%w: %w", ErrUnexpectedStatus, ErrResourceNotFound)
		}

		return response, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", cause, expectedStatus, resp.StatusCode, string(respBody), response.TraceID)
	}

	if err := c.validateResponse(ctx, req, resp, respBody); err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "validating response")
		return response, err
	}

	return response, nil
}

// marshal encodes an optional request body.
func marshal(request any) (io.Reader, error) {
	if request == nil {
		return nil, nil
	}

	data, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

func unmarshal(resp *Response, result any) error {
	if err := json.Unmarshal(resp.Body, result); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}

	return nil
}

// doJSON sends an optional JSON body and decodes an optional JSON result.
func (c *APIClient) doJSON(ctx context.Context, method, path string, request any, expectedStatus int, result any) (*Response, error) {
	body, err := marshal(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, method, path, body, expectedStatus)
	if err != nil {
		return resp, err
	}

	if result != nil {
		if err := unmarshal(resp, result); err != nil {
			return resp, err
		}
	}

	return resp, nil
}
