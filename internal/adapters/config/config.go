package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	configDirName = "guard-limiter"
	configFile    = "config.toml"
	fileMode      = 0o600
	dirMode       = 0o700

	gatewayURLKey  = "gateway.url"
	callTimeoutKey = "gateway.call_timeout"
	aggressiveKey  = "session.aggressive"
	logCapacityKey = "log.capacity"

	envPrefix = "GL"
)

const (
	DefaultGatewayURL  = "http://127.0.0.1:7181"
	DefaultCallTimeout = 30 * time.Second
	DefaultLogCapacity = 1000
)

// Config is the client configuration. It configures the client only; session
// state itself is never persisted.
type Config struct {
	GatewayURL  string
	CallTimeout time.Duration
	Aggressive  bool
	LogCapacity int
}

// Load reads config.toml from the user config directory, with GL_* environment
// variables taking precedence. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(gatewayURLKey, DefaultGatewayURL)
	cfg.SetDefault(callTimeoutKey, DefaultCallTimeout)
	cfg.SetDefault(aggressiveKey, false)
	cfg.SetDefault(logCapacityKey, DefaultLogCapacity)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		GatewayURL:  strings.TrimSpace(cfg.GetString(gatewayURLKey)),
		CallTimeout: cfg.GetDuration(callTimeoutKey),
		Aggressive:  cfg.GetBool(aggressiveKey),
		LogCapacity: cfg.GetInt(logCapacityKey),
	}

	if loaded.GatewayURL == "" {
		return Config{}, errors.New("gateway url is empty")
	}
	if loaded.CallTimeout <= 0 {
		loaded.CallTimeout = DefaultCallTimeout
	}
	if loaded.LogCapacity <= 0 {
		loaded.LogCapacity = DefaultLogCapacity
	}

	return loaded, nil
}

type fileSchema struct {
	Gateway gatewaySchema `toml:"gateway"`
	Session sessionSchema `toml:"session"`
	Log     logSchema     `toml:"log"`
}

type gatewaySchema struct {
	URL         string `toml:"url"`
	CallTimeout string `toml:"call_timeout"`
}

type sessionSchema struct {
	Aggressive bool `toml:"aggressive"`
}

type logSchema struct {
	Capacity int `toml:"capacity"`
}

// WriteDefault writes a default config file and returns its path. An existing
// file is left untouched.
func WriteDefault() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(fileSchema{
		Gateway: gatewaySchema{
			URL:         DefaultGatewayURL,
			CallTimeout: DefaultCallTimeout.String(),
		},
		Session: sessionSchema{Aggressive: false},
		Log:     logSchema{Capacity: DefaultLogCapacity},
	})
	if err != nil {
		return "", fmt.Errorf("encode config file: %w", err)
	}

	if err := os.WriteFile(path, data, fileMode); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}

	return filepath.Join(base, configDirName), nil
}
