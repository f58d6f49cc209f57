package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes the test independent of the environment it runs in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		envRedisAddr, envHTTPPort, envGRPCPort, envConfigPath, envCheckInterval, envCheckGuard,
		envPublishPresence, envRelayChannel, envDevMode,
	} {
		t.Setenv(name, "")
	}
	for _, name := range []string{envInstancePrefix, envKeyPrefix} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envRedisAddr, "redis://localhost:6379")
	t.Setenv(envHTTPPort, "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 0, cfg.GRPCPort)
	assert.Equal(t, 60*time.Second, cfg.CheckInterval)
	assert.Equal(t, 20*time.Second, cfg.CheckGuard)
	assert.Equal(t, "", cfg.InstancePrefix)
	assert.False(t, cfg.PublishPresence)
	assert.Equal(t, "", cfg.KeyPrefix)
	assert.Equal(t, "presence-relay", cfg.RelayChannel)
	assert.False(t, cfg.DevMode)
}

func TestLoadConfig_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv(envRedisAddr, "redis://redis:6379/1")
	t.Setenv(envHTTPPort, "8081")
	t.Setenv(envGRPCPort, "50051")
	t.Setenv(envCheckInterval, "5")
	t.Setenv(envCheckGuard, "2")
	t.Setenv(envInstancePrefix, "chat-")
	t.Setenv(envPublishPresence, "true")
	t.Setenv(envKeyPrefix, "app:")
	t.Setenv(envRelayChannel, "relay")
	t.Setenv(envDevMode, "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 5*time.Second, cfg.CheckInterval)
	assert.Equal(t, 2*time.Second, cfg.CheckGuard)
	assert.Equal(t, "chat-", cfg.InstancePrefix)
	assert.True(t, cfg.PublishPresence)
	assert.Equal(t, "app:", cfg.KeyPrefix)
	assert.Equal(t, "relay", cfg.RelayChannel)
	assert.True(t, cfg.DevMode)
}

func TestLoadConfig_YAML(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "presence.yaml")
	content := `
redis_addr: redis://redis:6379
http_port: 9000
grpc_port: 9001
check_interval_sec: 30
publish_presence: true
key_prefix: "tenant:"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	t.Setenv(envConfigPath, cfgPath)
	t.Setenv(envHTTPPort, "9100")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://redis:6379", cfg.Redis.Addr)
	// Env wins over the file.
	assert.Equal(t, 9100, cfg.HTTPPort)
	assert.Equal(t, 9001, cfg.GRPCPort)
	assert.Equal(t, 30*time.Second, cfg.CheckInterval)
	assert.Equal(t, 20*time.Second, cfg.CheckGuard)
	assert.True(t, cfg.PublishPresence)
	assert.Equal(t, "tenant:", cfg.KeyPrefix)
	assert.Equal(t, "presence-relay", cfg.RelayChannel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing REDIS_ADDR",
			env:  map[string]string{envHTTPPort: "8080"},
		},
		{
			name: "missing SERVICE_PORT_HTTP",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379"},
		},
		{
			name: "invalid SERVICE_PORT_HTTP",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379", envHTTPPort: "http"},
		},
		{
			name: "port out of range",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379", envHTTPPort: "70000"},
		},
		{
			name: "zero check interval",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379", envHTTPPort: "8080", envCheckInterval: "0"},
		},
		{
			name: "negative check guard",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379", envHTTPPort: "8080", envCheckGuard: "-1"},
		},
		{
			name: "invalid PUBLISH_PRESENCE",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379", envHTTPPort: "8080", envPublishPresence: "maybe"},
		},
		{
			name: "missing config file",
			env:  map[string]string{envRedisAddr: "redis://localhost:6379", envHTTPPort: "8080", envConfigPath: "/nonexistent/presence.yaml"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "presence.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("http_port: [not a port"), 0o644))
	t.Setenv(envConfigPath, cfgPath)
	t.Setenv(envRedisAddr, "redis://localhost:6379")
	t.Setenv(envHTTPPort, "8080")

	_, err := LoadConfig()
	require.Error(t, err)
}
