// Package api provides the HTTP API for the application
package api

import (
	"authorcheck/internal/adapters/classifier"
	"authorcheck/internal/adapters/paraphraser"
	"authorcheck/internal/core/patterns"
	"authorcheck/internal/core/version"
	"authorcheck/internal/platform/config"
	"authorcheck/internal/platform/logger"
	"authorcheck/internal/platform/metrics"
	phttp "authorcheck/internal/platform/net/http"

	"authorcheck/internal/modkit"
	"authorcheck/internal/modkit/httpkit"
	"authorcheck/internal/modkit/swaggerkit"

	metamod "authorcheck/internal/services/api/meta/module"
	detectmod "authorcheck/internal/services/detect/module"
	humanizemod "authorcheck/internal/services/humanize/module"
)

// Options are the API options
type Options struct {
	Config      config.Conf
	Logger      *logger.Logger
	Scanner     *patterns.Scanner
	Classifier  *classifier.Adapter
	Paraphraser *paraphraser.Adapter

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// FromConfig reads the surface toggles from CORE_API_ keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  c.MayBool("SWAGGER", true),
		EnableProfiler: c.MayBool("PROFILER", false),
		EnableMetrics:  c.MayBool("METRICS", true),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:         opt.Config,
		Scanner:     opt.Scanner,
		Classifier:  opt.Classifier,
		Paraphraser: opt.Paraphraser,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	deps = deps.WithDefaults()

	builders := []modkit.Builder{metamod.New, detectmod.New, humanizemod.New}
	mods := make([]modkit.Module, 0, len(builders))
	for _, build := range builders {
		mods = append(mods, build(deps))
	}

	httpkit.MountRoot(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		swaggerkit.Mount(api, opt.EnableSwagger, version.Info().Version)
		phttp.MountProfiler(api, "/debug", opt.EnableProfiler)
		if opt.EnableMetrics {
			api.Handle("/metrics", metrics.Handler())
		}

		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
