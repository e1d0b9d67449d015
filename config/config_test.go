package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should fall back to the original site's email variables", func(t *testing.T) {
		t.Setenv("EMAIL_USER", "studio@gmail.com")
		t.Setenv("EMAIL_PASSWORD", "app-password")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "studio@gmail.com", cfg.SMTPUsername)
		assert.Equal(t, "studio@gmail.com", cfg.MailFrom)
		assert.Equal(t, "app-password", cfg.SMTPPassword)
		assert.Equal(t, "info@sportloodsoost.nl", cfg.ContactEmailTo)
	})

	t.Run("Should parse typed values and trim the site URL", func(t *testing.T) {
		t.Setenv("SITE_URL", "https://example.nl/")
		t.Setenv("SMTP_PORT", "465")
		t.Setenv("MAILGUN_EU", "false")
		t.Setenv("MAIL_TRANSPORT", "Mailgun")
		t.Setenv("ALLOWED_ORIGINS", "http://a.test/, ,http://b.test")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://example.nl", cfg.SiteURL)
		assert.Equal(t, 465, cfg.SMTPPort)
		assert.False(t, cfg.MailgunEU)
		assert.Equal(t, "mailgun", cfg.MailTransport)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	})

	t.Run("Should ignore invalid numbers", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_CONTACT_THRESHOLD", "many")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.RateLimitContactThreshold)
	})
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{GinMode: "release"}).IsProduction())
	assert.False(t, (&Config{GinMode: "debug"}).IsProduction())
}
