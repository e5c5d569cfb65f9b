package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Operator login. The defaults are a documented weakness, kept so a fresh
	// deploy is reachable; loadConfig warns loudly when they are in effect.
	AdminUser string `envconfig:"BASIC_AUTH_USER"`
	AdminPass string `envconfig:"BASIC_AUTH_PASS"`

	// Admin session cookie
	CookieName       string `envconfig:"SESSION_COOKIE_NAME" default:"tnn_admin"`
	SessionMaxAgeSec int    `envconfig:"SESSION_MAX_AGE_SEC" default:"86400"` // 24 hours

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Outbound mail. All four must be set for notifications to be active;
	// otherwise the notifier is a logged no-op.
	SMTPHost   string `envconfig:"SMTP_HOST"`
	SMTPPort   int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser   string `envconfig:"SMTP_USER"`
	SMTPPass   string `envconfig:"SMTP_PASS"`
	AdminEmail string `envconfig:"ADMIN_EMAIL"`
}

// MailConfigured reports whether the notifier has everything it needs to
// dispatch mail.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPass != "" && c.AdminEmail != ""
}
