package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/jaundice/internal/version"
)

// Config holds the jaundice service configuration.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Batch      BatchConfig      `yaml:"batch"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Extractors ExtractorsConfig `yaml:"extractors"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// FetchConfig holds page download settings.
type FetchConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes"`
	MaxRedirects  int           `yaml:"max_redirects"`
	MaxConcurrent int           `yaml:"max_concurrent"` // 0 = unlimited
	PerHostRPS    float64       `yaml:"per_host_rps"`   // 0 = unlimited
}

// AnalysisConfig holds tokenization settings.
type AnalysisConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	YieldEvery int           `yaml:"yield_every"`
	KeepShort  []string      `yaml:"keep_short"`
}

// BatchConfig holds batch limits.
type BatchConfig struct {
	MaxURLs        int `yaml:"max_urls"`
	MaxConcurrency int `yaml:"max_concurrency"` // 0 = whole batch at once
}

// Dictionary sources.
const (
	DictionaryFiles = "files"
	DictionaryRedis = "redis"
)

// DictionaryConfig holds charged-word and lemma sources.
type DictionaryConfig struct {
	Source           string   `yaml:"source"` // files, redis (default: files)
	Dir              string   `yaml:"dir"`
	LemmasFile       string   `yaml:"lemmas_file"`
	RedisAddrs       []string `yaml:"redis_addrs"`
	RedisPassword    string   `yaml:"redis_password"`
	RedisKey         string   `yaml:"redis_key"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ExtractorsConfig holds extractor registration settings.
type ExtractorsConfig struct {
	GenericHosts []string `yaml:"generic_hosts"`
}

// Load reads configuration from a YAML file by environment name (local, dev, docker, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit YAML path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 60
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Fetch.Timeout <= 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = version.UserAgent()
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		c.Fetch.MaxBodyBytes = 10 << 20
	}
	if c.Fetch.MaxRedirects <= 0 {
		c.Fetch.MaxRedirects = 5
	}
	if c.Analysis.Timeout <= 0 {
		c.Analysis.Timeout = 3 * time.Second
	}
	if c.Analysis.YieldEvery <= 0 {
		c.Analysis.YieldEvery = 500
	}
	if c.Analysis.KeepShort == nil {
		c.Analysis.KeepShort = []string{"не"}
	}
	if c.Batch.MaxURLs <= 0 {
		c.Batch.MaxURLs = 10
	}
	if c.Dictionary.Source == "" {
		c.Dictionary.Source = DictionaryFiles
	}
	if c.Dictionary.RedisKey == "" {
		c.Dictionary.RedisKey = "jaundice:charged_words"
	}
	if c.Dictionary.ReadinessTimeout <= 0 {
		c.Dictionary.ReadinessTimeout = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if budget := c.Fetch.Timeout + c.Analysis.Timeout; time.Duration(c.HTTP.WriteTimeoutSec)*time.Second <= budget {
		return fmt.Errorf("http.write_timeout_sec must exceed fetch.timeout + analysis.timeout (%s)", budget)
	}
	if c.Fetch.PerHostRPS < 0 {
		return fmt.Errorf("fetch.per_host_rps must not be negative, got %v", c.Fetch.PerHostRPS)
	}
	if c.Batch.MaxConcurrency < 0 {
		return fmt.Errorf("batch.max_concurrency must not be negative, got %d", c.Batch.MaxConcurrency)
	}
	switch c.Dictionary.Source {
	case DictionaryFiles:
		if c.Dictionary.Dir == "" {
			return fmt.Errorf("dictionary.dir is required for source %q", DictionaryFiles)
		}
	case DictionaryRedis:
		if len(c.Dictionary.RedisAddrs) == 0 {
			return fmt.Errorf("dictionary.redis_addrs is required for source %q", DictionaryRedis)
		}
	default:
		return fmt.Errorf("dictionary.source must be %q or %q, got %q", DictionaryFiles, DictionaryRedis, c.Dictionary.Source)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
