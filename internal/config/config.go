package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyBaseURL        = "base_url"
	KeyStateDir       = "state_dir"
	KeyRequestTimeout = "request_timeout"
	KeyLogFile        = "log_file"
	KeyStateBackend   = "state_backend"

	EnvPrefix         = "DCMS"
	DefaultBaseURL    = "http://localhost:5000"
	DefaultStateDir   = ".dcms"
	DefaultConfigName = "config.toml"
	DefaultTimeout    = 30 * time.Second

	// StateBackendFile keeps state under StateDir. StateBackendPass keeps it in the pass
	// password store and falls back to StateDir when pass fails.
	StateBackendFile = "file"
	StateBackendPass = "pass"
)

type Config struct {
	BaseURL        string
	StateDir       string
	RequestTimeout time.Duration
	LogFile        string
	StateBackend   string
}

// Load resolves configuration from defaults, the config file in the state directory, a
// .env file in the working directory and DCMS_* environment variables, in that order.
// Flags bound to v before Load take precedence over all of them.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyStateDir, filepath.Join(homeDir, DefaultStateDir))
	v.SetDefault(KeyRequestTimeout, DefaultTimeout)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyStateBackend, StateBackendFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, filepath.Join(v.GetString(KeyStateDir), DefaultConfigName)); err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:        strings.TrimSpace(v.GetString(KeyBaseURL)),
		StateDir:       expandHome(v.GetString(KeyStateDir), homeDir),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		LogFile:        expandHome(v.GetString(KeyLogFile), homeDir),
		StateBackend:   strings.ToLower(strings.TrimSpace(v.GetString(KeyStateBackend))),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	return nil
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("invalid base url %q: expected http(s)://host", c.BaseURL)
	}
	if strings.TrimSpace(c.StateDir) == "" {
		return errors.New("state directory is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.StateBackend != StateBackendFile && c.StateBackend != StateBackendPass {
		return fmt.Errorf("unknown state backend %q: expected %q or %q", c.StateBackend, StateBackendFile, StateBackendPass)
	}

	return nil
}

// OpenLogger returns a logger writing to LogFile, or one that discards output when no
// log file is configured. The returned closer is never nil.
func (c Config) OpenLogger() (*log.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return log.New(file, "dcms ", log.LstdFlags|log.Lmicroseconds), file, nil
}

func expandHome(path, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
