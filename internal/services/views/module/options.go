package module

import "skythread/internal/platform/config"

// Options holds configuration settings for the views module
type Options struct {
	HardLimit int

	// AdminToken protects the query routes when set; empty leaves them open
	AdminToken string
}

// FromConfig reads VIEWS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	vc := cfg.Prefix("VIEWS_")
	return Options{
		HardLimit:  vc.MayInt("HARD_LIMIT", 20),
		AdminToken: vc.MayString("ADMIN_TOKEN", ""),
	}
}
