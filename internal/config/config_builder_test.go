package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.SessionSignKey = "secret"
	return cfg
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{SessionSignKey: "from-env"}},
		&StructuredConfig{App: App{SessionSignKey: "from-flags", SessionIssuer: "flags-issuer"}},
	)
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.SessionSignKey)
	assert.Equal(t, "flags-issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	p := writeJSONFile(t, `{"app": {"session_sign_key": "json-key"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON().withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.SessionSignKey)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestGetStructuredConfig_EnvAndFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_SIGN_KEY": "env-key",
	})

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:9999"})

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.SessionSignKey)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.SessionSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero remember duration", mutate: func(c *StructuredConfig) { c.App.RememberDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too low", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 1 }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
