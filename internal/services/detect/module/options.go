package module

import (
	"authorcheck/internal/platform/config"
	"authorcheck/internal/platform/net/http/bind"
)

// Options holds configuration settings for the detect module
type Options struct {
	MaxBodyBytes int64
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		MaxBodyBytes: int64(c.MayInt("MAX_BODY_BYTES", int(bind.DefaultMaxBytes))),
	}
}
