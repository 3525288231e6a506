// Package module wires threads into the API using modkit
package module

import (
	"net/http"

	"skythread/internal/adapters/appview"
	modkit "skythread/internal/modkit"
	"skythread/internal/modkit/httpkit"
	"skythread/internal/modkit/repokit"
	str "skythread/internal/platform/strings"

	tdom "skythread/internal/services/threads/domain"
	thttp "skythread/internal/services/threads/http"
	trepo "skythread/internal/services/threads/repo"
	tsvc "skythread/internal/services/threads/service"
)

// Ports declares the optional injected analytics port for this module
type Ports struct {
	Recorder tdom.LoadRecorderPort
}

// Module implements the threads module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *tsvc.Svc
}

// New constructs the threads module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("threads"),
		modkit.WithPrefix("/threads"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	avc := appview.NewClient(appview.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
	})

	av := appviewPort{c: avc}
	svc := tsvc.New(repokit.TxRunner(deps.PG), trepo.NewPG(), tsvc.Options{
		CacheTTL: cfg.CacheTTL,
		MaxDepth: cfg.MaxDepth,
		AppView:  av,
		Recorder: injected.Recorder,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	adapt := adaptThreadsPort{svc: svc}
	m.ports = ServicePorts{Threads: adapt, Maintenance: adapt, Upstream: av}

	external := b.Register
	m.register = func(r httpkit.Router) {
		thttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
