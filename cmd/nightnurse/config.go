package main

import (
	"encoding/base64"
	"fmt"

	"nightnurse/pkg/types"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Insecure built-in admin credentials and cookie keys. A fresh deploy is
// reachable without any configuration, at the cost of loud warnings in the
// logs. Both keys are base64 of 32 bytes, the sizes securecookie expects.
const (
	fallbackAdminUser = "admin"
	fallbackAdminPass = "changeme123"

	fallbackCookieHashKey  = "dGFob2UtbmlnaHQtbnVyc2UtaW5zZWN1cmUtaGFzaCE=" // "tahoe-night-nurse-insecure-hash!"
	fallbackCookieBlockKey = "dGFob2UtbmlnaHQtbnVyc2UtaW5zZWN1cmUtYmxjayE=" // "tahoe-night-nurse-insecure-blck!"
)

func loadConfig(logger *logrus.Logger) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if c.AdminUser == "" {
		c.AdminUser = fallbackAdminUser
		logger.Warn("BASIC_AUTH_USER not set, using the built-in default")
	}

	if c.AdminPass == "" {
		c.AdminPass = fallbackAdminPass
		logger.Warn("BASIC_AUTH_PASS not set, using the built-in default - change this in production")
	}

	if c.CookieHashKey == "" {
		c.CookieHashKey = fallbackCookieHashKey
		logger.Warn("COOKIE_HASH_KEY not set, using the built-in default - change this in production")
	}

	if c.CookieBlockKey == "" {
		c.CookieBlockKey = fallbackCookieBlockKey
		logger.Warn("COOKIE_BLOCK_KEY not set, using the built-in default - change this in production")
	}

	if _, err := base64.StdEncoding.DecodeString(c.CookieHashKey); err != nil {
		return nil, fmt.Errorf("decode COOKIE_HASH_KEY: %w", err)
	}

	blockKey, err := base64.StdEncoding.DecodeString(c.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode COOKIE_BLOCK_KEY: %w", err)
	}
	switch len(blockKey) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("COOKIE_BLOCK_KEY must decode to 16, 24, or 32 bytes, got %d", len(blockKey))
	}

	return c, nil
}
