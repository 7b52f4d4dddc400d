package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/dsn")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("MAIL_HOST", "smtp.example.com")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://env/dsn", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"token_sign_key": "json-key", "token_duration": "1h", "link_ttl": "24h"},
		"storage": {"db": {"dsn": "postgres://json/dsn"}, "files": {"upload_dir": "/srv/uploads"}},
		"server": {"http_address": "localhost:7070", "request_timeout": "15s"},
		"mail": {"host": "mail.example.com", "port": 465, "from": "noreply@example.com"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.App.LinkTTL)
	assert.Equal(t, "postgres://json/dsn", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 465, cfg.Mail.Port)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"30m"`)))
	assert.Equal(t, 30*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}

func TestBuilder_MergePriority(t *testing.T) {
	b := newConfigBuilder()

	// Earlier sources win: simulate flags over env over defaults.
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "flag-key"}},
		&StructuredConfig{
			App:     App{TokenSignKey: "env-key", TokenIssuer: "env-issuer"},
			Storage: Storage{DB: DBConfig{DSN: "postgres://env/dsn"}},
		},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "postgres://env/dsn", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration, "default should fill the gap")
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestBuilder_ValidationFailures(t *testing.T) {
	t.Run("missing dsn", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "key"}})
		b = b.withDefaults()

		_, err := b.build()
		assert.True(t, errors.Is(err, ErrInvalidStorageConfigs))
	})

	t.Run("missing sign key", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{
			Storage: Storage{DB: DBConfig{DSN: "postgres://x"}},
		})
		b = b.withDefaults()

		_, err := b.build()
		assert.True(t, errors.Is(err, ErrInvalidAppConfigs))
	})
}

func TestBuilder_JSONPathDiscovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": {"token_sign_key": "from-json"}}`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage:      Storage{DB: DBConfig{DSN: "postgres://x"}},
		JSONFilePath: path,
	})
	b = b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
}
