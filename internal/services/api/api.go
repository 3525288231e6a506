// Package api provides the HTTP API for the application
package api

import (
	"skythread/internal/platform/config"
	"skythread/internal/platform/logger"
	phttp "skythread/internal/platform/net/http"
	"skythread/internal/platform/store"

	"skythread/internal/modkit"
	"skythread/internal/modkit/httpkit"
	"skythread/internal/modkit/module"
	"skythread/internal/modkit/swaggerkit"

	metamod "skythread/internal/services/api/meta/module"
	threadsmod "skythread/internal/services/threads/module"
	viewsmod "skythread/internal/services/views/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Views owns the analytics writer; threads consumes it as its load recorder
	views := viewsmod.New(deps)
	recorder := module.MustPortsOf[viewsmod.Ports](views).Recorder

	threads := threadsmod.New(
		deps,
		modkit.WithPorts(threadsmod.Ports{Recorder: recorder}),
	)

	// Meta probes the same AppView client the threads module fetches with
	upstream := module.MustPortsOf[threadsmod.ServicePorts](threads).Upstream
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{AppView: upstream}))

	mods := []module.Module{
		meta,
		views,
		threads,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
