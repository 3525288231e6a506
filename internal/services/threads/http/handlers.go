// Package http provides http transport for threads
package http

import (
	stdhttp "net/http"

	"skythread/internal/modkit/httpkit"
	"skythread/internal/services/threads/domain"
	tsvc "skythread/internal/services/threads/service"
)

// Register mounts threads endpoints on the given router
func Register(r httpkit.Router, s tsvc.Service) {
	h := &handlers{svc: s}

	// locator normalization without fetching
	httpkit.PostJSON[domain.ResolveInput](r, "/resolve", h.resolve)

	// flattened thread for an embed
	httpkit.PostJSON[domain.FetchInput](r, "/fetch", h.fetch)
}

type handlers struct{ svc tsvc.Service }

// swagger:route POST /threads/resolve Threads threadsResolve
// @Summary Normalize a post locator into web URL and at-URI forms
// @Tags Threads
// @Accept json
// @Produce json
// @Param payload body domain.ResolveInput true "Locator"
// @Success 200 {object} domain.ResolvedPost "ok"
// @Router /threads/resolve [post]
func (h *handlers) resolve(r *stdhttp.Request, in domain.ResolveInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}

// swagger:route POST /threads/fetch Threads threadsFetch
// @Summary Fetch and flatten the thread behind a post locator
// @Tags Threads
// @Accept json
// @Produce json
// @Param payload body domain.FetchInput true "Locator and render options"
// @Success 200 {object} domain.ThreadView "ok"
// @Router /threads/fetch [post]
func (h *handlers) fetch(r *stdhttp.Request, in domain.FetchInput) (any, error) {
	return h.svc.Fetch(r.Context(), in)
}
