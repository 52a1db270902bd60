// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router. A request for a known path with an unsupported
// method is answered with 404 too, so route existence is not leaked.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound, "")
}
