// Package http provides http transport for views
package http

import (
	stdhttp "net/http"

	"skythread/internal/modkit/httpkit"
	"skythread/internal/services/views/domain"
	vsvc "skythread/internal/services/views/service"
)

// Register mounts views endpoints on the given router
func Register(r httpkit.Router, s *vsvc.Service) {
	h := &handlers{svc: s}

	// loads per day
	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary)

	// most loaded posts in window
	httpkit.PostJSON[domain.TopInput](r, "/top", h.top)
}

type handlers struct{ svc *vsvc.Service }

// swagger:route POST /views/summary Views viewsSummary
// @Summary Thread loads per day
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput true "Query"
// @Success 200 {array} domain.SummaryRow "ok"
// @Router /views/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}

// swagger:route POST /views/top Views viewsTop
// @Summary Most loaded posts in a window
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.TopInput true "Query"
// @Success 200 {array} domain.TopPostRow "ok"
// @Router /views/top [post]
func (h *handlers) top(r *stdhttp.Request, in domain.TopInput) (any, error) {
	return h.svc.Top(r.Context(), in)
}
