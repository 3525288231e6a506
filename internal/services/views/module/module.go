// Package module wires views into the API using modkit
package module

import (
	"net/http"

	modkit "skythread/internal/modkit"
	"skythread/internal/modkit/httpkit"
	str "skythread/internal/platform/strings"

	tdom "skythread/internal/services/threads/domain"
	vdom "skythread/internal/services/views/domain"
	vhttp "skythread/internal/services/views/http"
	vrepo "skythread/internal/services/views/repo"
	vsvc "skythread/internal/services/views/service"
)

// Ports exposed by the views module
// Recorder is the glue the threads module consumes for per-load analytics
type Ports struct {
	Writer   vdom.WriterPort
	Query    vdom.QueryPort
	Recorder tdom.LoadRecorderPort
}

// Module implements the views module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *vsvc.Service
}

// New constructs the views module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("views"),
		modkit.WithPrefix("/views"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	svc := vsvc.New(vrepo.NewCH(deps.CH), vsvc.Config{
		HardLimit: cfg.HardLimit,
	})

	mws := b.Mw
	if cfg.AdminToken != "" {
		mws = append(mws, httpkit.Auth(tokenAuth{token: cfg.AdminToken}))
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       mws,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Writer:   svc,
		Query:    svc,
		Recorder: loadRecorder{w: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		vhttp.Register(r, m.svc)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
