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

package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
)

// Middleware attaches a request scoped logger to the context and logs the
// outcome of every request.  The traceparent sent by clients is logged so
// failures can be correlated with client side reports.
func Middleware(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			log := logger.WithValues("method", r.Method, "path", r.URL.Path)

			if traceParent := r.Header.Get("Traceparent"); traceParent != "" {
				log = log.WithValues("traceparent", traceParent)
			}

			writer := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(writer, r.WithContext(logr.NewContext(r.Context(), log)))

			log.V(1).Info("request served", "status", writer.Status(), "bytes", writer.BytesWritten(), "duration", time.Since(start))
		})
	}
}
