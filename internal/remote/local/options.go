package local

import "github.com/19smabtahinoor/Vocab-FlashCard/internal/config"

// OptionsFrom maps the auth section of the config.
func OptionsFrom(cfg config.AuthConfig) Options {
	return Options{
		JWTSecret:         cfg.JWTSecret,
		AccessTTL:         cfg.AccessTTL,
		RefreshTTL:        cfg.RefreshTTL,
		AutoConfirm:       cfg.AutoConfirm,
		BcryptCost:        cfg.BcryptCost,
		RateLimitBurst:    cfg.RateLimit.Burst,
		RateLimitInterval: cfg.RateLimit.Interval,
	}
}
