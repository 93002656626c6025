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

// Package api provides integration test utilities for the API manager
// publisher and developer portal REST APIs.
//
// # Separate Client Implementation
//
// This package intentionally maintains a separate HTTP client implementation
// (APIClient) instead of a generated OpenAPI client. Having an independent
// client serves as a form of triangulation on API correctness: any legitimate
// change to the OpenAPI document must have a compensating change here, making
// API evolution explicit and reviewable.
//
// The client includes features tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Validation of successful responses against the OpenAPI document
//   - Direct access to HTTP status codes and response bodies
//
// # Fixtures
//
// A Fixture is an application subscribed to a published API, created by the
// administrator of a tenancy mode.  NewFixture is called from a BeforeAll node
// and registers teardown with DeferCleanup.  When APIM_BASE_URL is unset the
// suites run against an in-memory control plane, see StartControlPlane.
package api
