package api

import (
	"context"

	"authorcheck/internal/adapters/classifier"
	"authorcheck/internal/adapters/paraphraser"
	"authorcheck/internal/platform/config"
	"authorcheck/internal/platform/logger"
	phttp "authorcheck/internal/platform/net/http"
)

// Serve opens both model backends, mounts the API and runs the HTTP server until ctx ends.
// Backends that fail to open leave the server up with those endpoints answering 503
func Serve(ctx context.Context, cfg config.Conf) error {
	l := logger.Get()
	l.Info().Msg("initializing hybrid detection engine")

	opt := FromConfig(cfg)
	opt.Logger = l
	opt.Classifier = classifier.Open(ctx, classifier.FromConfig(cfg))
	opt.Paraphraser = paraphraser.Open(ctx, paraphraser.FromConfig(cfg))

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(cfg.Prefix("CORE_API_"))
	Mount(srv.Router(), opt)

	return srv.Run(ctx)
}
