package module

import (
	"context"
	"time"

	"skythread/internal/adapters/appview"
	"skythread/internal/core/thread"
	perr "skythread/internal/platform/errors"
	"skythread/internal/services/threads/domain"
	tsvc "skythread/internal/services/threads/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// ServicePorts are the ports other modules and binaries consume
type ServicePorts struct {
	Threads     domain.ServicePort
	Maintenance domain.MaintenancePort

	// Upstream satisfies the meta Pinger check for the AppView dependency
	Upstream any
}

// appviewPort adapts the XRPC client to the service's AppViewPort.
// The union classification happens here so the service only ever sees the
// closed node shape
type appviewPort struct{ c *appview.Client }

func (p appviewPort) Thread(ctx context.Context, uri string, depth int) (*thread.Post, []thread.Node, error) {
	th, err := p.c.GetPostThread(ctx, uri, depth)
	if err != nil {
		return nil, nil, err
	}

	root := th.Thread
	if !root.IsThreadViewPost() {
		// blocked and deleted anchors read the same from the outside
		return nil, nil, perr.NotFoundf("post %s is not available", uri)
	}
	return appview.MapPost(root.Post), appview.MapNodes(root.Replies), nil
}

func (p appviewPort) ResolveHandle(ctx context.Context, handle string) (string, error) {
	return p.c.ResolveHandle(ctx, handle)
}

func (p appviewPort) Ping(ctx context.Context) error { return p.c.Ping(ctx) }

// adaptThreadsPort exposes service methods as module ports for cross-module usage
type adaptThreadsPort struct{ svc *tsvc.Svc }

func (a adaptThreadsPort) Resolve(ctx context.Context, in domain.ResolveInput) (domain.ResolvedPost, error) {
	return a.svc.Resolve(ctx, in)
}

func (a adaptThreadsPort) Fetch(ctx context.Context, in domain.FetchInput) (domain.ThreadView, error) {
	return a.svc.Fetch(ctx, in)
}

func (a adaptThreadsPort) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	return a.svc.Prune(ctx, olderThan)
}
