// Package api provides the HTTP API for the application
package api

import (
	"hugin/internal/platform/cache"
	"hugin/internal/platform/config"
	"hugin/internal/platform/logger"
	phttp "hugin/internal/platform/net/http"
	"hugin/internal/platform/store"

	"hugin/internal/modkit"
	"hugin/internal/modkit/httpkit"
	"hugin/internal/modkit/module"
	"hugin/internal/modkit/swaggerkit"

	businessesmod "hugin/internal/services/api/businesses/module"
	facetsmod "hugin/internal/services/api/facets/module"
	listsmod "hugin/internal/services/api/lists/module"
	metamod "hugin/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Cache          *cache.Cache
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Cache: opt.Cache,
	}

	mods := []module.Module{
		metamod.New(deps),
		businessesmod.New(deps),
		facetsmod.New(deps),
		listsmod.New(deps),
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
