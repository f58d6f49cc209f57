package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mypresence/adapters/myredis"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envRedisAddr       = "REDIS_ADDR"
	envHTTPPort        = "SERVICE_PORT_HTTP"
	envGRPCPort        = "SERVICE_PORT_GRPC"
	envConfigPath      = "CONFIG_PATH"
	envCheckInterval   = "CHECK_INTERVAL_SEC"
	envCheckGuard      = "CHECK_GUARD_SEC"
	envInstancePrefix  = "INSTANCE_PREFIX"
	envPublishPresence = "PUBLISH_PRESENCE"
	envKeyPrefix       = "KEY_PREFIX"
	envRelayChannel    = "RELAY_CHANNEL"
	envDevMode         = "DEV_MODE"
)

const (
	defaultCheckIntervalSec = 60
	defaultCheckGuardSec    = 20
	defaultRelayChannel     = "presence-relay"
)

// Config holds the service configuration loaded by LoadConfig.
type Config struct {
	Redis           myredis.RedisConfig
	HTTPPort        int           `validate:"min=1,max=65535"`
	GRPCPort        int           `validate:"min=0,max=65535"`
	CheckInterval   time.Duration `validate:"gt=0"`
	CheckGuard      time.Duration `validate:"gte=0"`
	InstancePrefix  string
	PublishPresence bool
	KeyPrefix       string
	RelayChannel    string `validate:"required_if=PublishPresence true"`
	DevMode         bool
}

// yamlConfig mirrors Config in the optional YAML file. Keys missing from the file keep their defaults.
type yamlConfig struct {
	RedisAddr        string `yaml:"redis_addr"`
	HTTPPort         int    `yaml:"http_port"`
	GRPCPort         int    `yaml:"grpc_port"`
	CheckIntervalSec int    `yaml:"check_interval_sec"`
	CheckGuardSec    int    `yaml:"check_guard_sec"`
	InstancePrefix   string `yaml:"instance_prefix"`
	PublishPresence  bool   `yaml:"publish_presence"`
	KeyPrefix        string `yaml:"key_prefix"`
	RelayChannel     string `yaml:"relay_channel"`
	DevMode          bool   `yaml:"dev_mode"`
}

func defaultYAMLConfig() yamlConfig {
	return yamlConfig{
		CheckIntervalSec: defaultCheckIntervalSec,
		CheckGuardSec:    defaultCheckGuardSec,
		RelayChannel:     defaultRelayChannel,
	}
}

// loadYAMLConfig reads the YAML file at path over the defaults.
func loadYAMLConfig(path string, out *yamlConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// LoadConfig builds the configuration from the YAML file at CONFIG_PATH (optional) and environment variables.
// Environment variables win over the file. REDIS_ADDR and SERVICE_PORT_HTTP are required from either source.
func LoadConfig() (*Config, error) {
	raw := defaultYAMLConfig()
	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		if err := loadYAMLConfig(configPath, &raw); err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
	}

	if err := applyEnv(&raw); err != nil {
		return nil, err
	}

	if raw.RedisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}
	if raw.HTTPPort == 0 {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}

	config := &Config{
		Redis: myredis.RedisConfig{
			Addr: raw.RedisAddr,
		},
		HTTPPort:        raw.HTTPPort,
		GRPCPort:        raw.GRPCPort,
		CheckInterval:   time.Duration(raw.CheckIntervalSec) * time.Second,
		CheckGuard:      time.Duration(raw.CheckGuardSec) * time.Second,
		InstancePrefix:  raw.InstancePrefix,
		PublishPresence: raw.PublishPresence,
		KeyPrefix:       raw.KeyPrefix,
		RelayChannel:    raw.RelayChannel,
		DevMode:         raw.DevMode,
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func applyEnv(raw *yamlConfig) error {
	if v := os.Getenv(envRedisAddr); v != "" {
		raw.RedisAddr = v
	}
	for _, e := range []struct {
		name string
		dst  *int
	}{
		{envHTTPPort, &raw.HTTPPort},
		{envGRPCPort, &raw.GRPCPort},
		{envCheckInterval, &raw.CheckIntervalSec},
		{envCheckGuard, &raw.CheckGuardSec},
	} {
		if err := envInt(e.name, e.dst); err != nil {
			return err
		}
	}
	for _, e := range []struct {
		name string
		dst  *bool
	}{
		{envPublishPresence, &raw.PublishPresence},
		{envDevMode, &raw.DevMode},
	} {
		if err := envBool(e.name, e.dst); err != nil {
			return err
		}
	}
	if v, ok := os.LookupEnv(envInstancePrefix); ok {
		raw.InstancePrefix = v
	}
	if v, ok := os.LookupEnv(envKeyPrefix); ok {
		raw.KeyPrefix = v
	}
	if v := os.Getenv(envRelayChannel); v != "" {
		raw.RelayChannel = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = b
	return nil
}
