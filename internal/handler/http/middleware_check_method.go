// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adrián Velasco

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// checkHTTPMethod returns an [http.HandlerFunc] that is registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method is
// not handled. This override responds with the normalized 404 payload
// instead, hiding the existence of the route from callers that use an
// unsupported method — the same shape an unknown path produces.
//
// If the requested method IS registered for the matched route, the request
// is forwarded to the router's normal ServeHTTP pipeline.
func (h *Handler) checkHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		// Search for a route whose pattern exactly matches the requested path.
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			h.respondError(w, r, http.StatusNotFound, "Not Found")
			return
		}

		router.ServeHTTP(w, r)
	}
}
