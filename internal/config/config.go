package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var exeDirCache string

// getExecutableDir returns the directory where the executable is located
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

// Config is the process-wide configuration, read from .connect-mcp.yaml next
// to the executable and overridable via CONNECT_MCP_* environment variables.
type Config struct {
	Transport string       `yaml:"transport"` // "stdio" or "sse"
	Port      int          `yaml:"port"`
	AWS       AWSConfig    `yaml:"aws,omitempty"`
	Cache     CacheConfig  `yaml:"cache,omitempty"`
	Wizard    WizardConfig `yaml:"wizard,omitempty"`
}

type AWSConfig struct {
	Region  string `yaml:"region,omitempty"`
	Profile string `yaml:"profile,omitempty"`
}

type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds,omitempty"`
}

type WizardConfig struct {
	// StateDir holds one JSON state file per onboarding run.
	StateDir string `yaml:"state_dir,omitempty"`
	// PollIntervalSeconds is the sleep between provisioning status checks.
	PollIntervalSeconds int `yaml:"poll_interval_seconds,omitempty"`
	// MaxPollAttempts bounds provisioning polls before the step is fatal.
	MaxPollAttempts int `yaml:"max_poll_attempts,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Transport: "stdio",
		Port:      8811,
		AWS:       AWSConfig{Region: "us-west-2"},
		Cache:     CacheConfig{TTLSeconds: 300},
		Wizard: WizardConfig{
			StateDir:            filepath.Join(getExecutableDir(), ".connect-mcp", "wizard"),
			PollIntervalSeconds: 15,
			MaxPollAttempts:     40,
		},
	}
}

// ConfigPath returns the path of the config file next to the executable.
func ConfigPath() string {
	return filepath.Join(getExecutableDir(), ".connect-mcp.yaml")
}

// Load reads the config file, falling back to defaults when it is absent.
// A .env file next to the executable or in the working directory is loaded
// first so AWS_* and CONNECT_MCP_* variables can live there.
func Load() (*Config, error) {
	_ = godotenv.Load(filepath.Join(getExecutableDir(), ".env"))
	_ = godotenv.Load() // ./.env, no-op if missing
	return LoadFromPath(ConfigPath())
}

// LoadFromPath reads the config from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if uerr := yaml.Unmarshal(data, cfg); uerr != nil {
			return nil, uerr
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CONNECT_MCP_AWS_REGION"); v != "" {
		cfg.AWS.Region = v
	}
	if v := os.Getenv("CONNECT_MCP_AWS_PROFILE"); v != "" {
		cfg.AWS.Profile = v
	}
	if v := os.Getenv("CONNECT_MCP_TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv("CONNECT_MCP_CACHE_TTL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Cache.TTLSeconds = n
		}
	}
	if v := os.Getenv("CONNECT_MCP_STATE_DIR"); v != "" {
		cfg.Wizard.StateDir = v
	}
}

func normalize(cfg *Config) {
	if cfg.Transport == "" {
		cfg.Transport = "stdio"
	}
	if cfg.Port == 0 {
		cfg.Port = 8811
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-west-2"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Wizard.StateDir == "" {
		cfg.Wizard.StateDir = filepath.Join(getExecutableDir(), ".connect-mcp", "wizard")
	}
	if cfg.Wizard.PollIntervalSeconds == 0 {
		cfg.Wizard.PollIntervalSeconds = 15
	}
	if cfg.Wizard.MaxPollAttempts == 0 {
		cfg.Wizard.MaxPollAttempts = 40
	}
}

// CacheTTL returns the read-through cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// PollInterval returns the wizard provisioning poll interval.
func (c *WizardConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}
