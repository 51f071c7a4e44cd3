package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("INVITE_TTL", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_NAME")

	LoadConfig()

	assert.Equal(t, "scrumish", DbName)
	assert.Equal(t, 72*time.Hour, InviteTTL)
	assert.Equal(t, 587, SMTPPort)
	assert.Equal(t, "no-reply@example.com", MailFrom)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("INVITE_TTL", "2h")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("ENVIRONMENT", "production")

	LoadConfig()

	assert.Equal(t, 2*time.Hour, InviteTTL)
	assert.Equal(t, 2525, SMTPPort)
	assert.True(t, MinioUseSSL)
	assert.True(t, IsProduction)
}

func TestLoadFileOverlay(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	LoadConfig()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  public_base_url: https://tracker.example.com
database:
  name: tracker
mail:
  host: smtp.example.com
  port: 465
  use_ssl: true
invite:
  ttl: 24h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, LoadFile(path))

	assert.Equal(t, "9090", ServerPort)
	assert.Equal(t, "https://tracker.example.com", PublicBaseURL)
	assert.Equal(t, "tracker", DbName)
	assert.Equal(t, "smtp.example.com", SMTPHost)
	assert.Equal(t, 465, SMTPPort)
	assert.True(t, SMTPUseSSL)
	assert.Equal(t, 24*time.Hour, InviteTTL)
}

func TestLoadFileMissing(t *testing.T) {
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "nope.yaml")))
}
