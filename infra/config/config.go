package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL       = "https://api.wager.social/api"
	defaultPageSize     = 20
	defaultPollInterval = 5 * time.Minute
	maxPageSize         = 100
)

// Config holds application-level configuration.
type Config struct {
	APIURL       string        // e.g. "https://api.wager.social/api"
	Token        string        // Bearer token given directly; wins over TokenPath
	TokenPath    string        // Path to file containing the bearer token
	Category     string        // Initial feed category; empty means all
	Interests    []string      // Categories favored by the feed ranking
	PageSize     int           // Predictions per page
	PollInterval time.Duration // Expired-prediction check period
	LogPath      string        // Debug log file; empty disables logging
	LogLevel     string        // debug, info, warn or error
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	API          string   `yaml:"api"`
	TokenFile    string   `yaml:"token_file"`
	Category     string   `yaml:"category"`
	Interests    []string `yaml:"interests"`
	PageSize     int      `yaml:"page_size"`
	PollInterval string   `yaml:"poll_interval"`
	Log          string   `yaml:"log"`
	LogLevel     string   `yaml:"log_level"`
}

// Dir returns the configuration directory (~/.config/terminalwager).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "terminalwager"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds the configuration from defaults, the YAML file at path and
// environment variables, in increasing precedence. A missing file is not an
// error; an empty path means the default location.
//
//	TERMINALWAGER_API            API base URL (https, or http for localhost)
//	TERMINALWAGER_TOKEN          Bearer token
//	TERMINALWAGER_TOKEN_FILE     Path to token file (default: ~/.config/terminalwager/token)
//	TERMINALWAGER_CATEGORY       Initial feed category
//	TERMINALWAGER_INTERESTS      Comma-separated interest categories
//	TERMINALWAGER_PAGE_SIZE      Predictions per page (default: 20)
//	TERMINALWAGER_POLL_INTERVAL  Expiry check period, e.g. "5m"
//	TERMINALWAGER_LOG            Debug log file path
//	TERMINALWAGER_LOG_LEVEL      Log level (default: info)
func Load(path string) (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		APIURL:       defaultAPIURL,
		TokenPath:    filepath.Join(dir, "token"),
		PageSize:     defaultPageSize,
		PollInterval: defaultPollInterval,
		LogPath:      filepath.Join(dir, "debug.log"),
		LogLevel:     "info",
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}
	fc, err := readFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
	case err != nil:
		return Config{}, err
	default:
		if err := cfg.applyFile(fc); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc, nil
}

func (c *Config) applyFile(fc fileConfig) error {
	if fc.API != "" {
		c.APIURL = fc.API
	}
	if fc.TokenFile != "" {
		c.TokenPath = expandHome(fc.TokenFile)
	}
	if fc.Category != "" {
		c.Category = fc.Category
	}
	if len(fc.Interests) > 0 {
		c.Interests = fc.Interests
	}
	if fc.PageSize != 0 {
		c.PageSize = fc.PageSize
	}
	if fc.PollInterval != "" {
		d, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid poll_interval: %w", err)
		}
		c.PollInterval = d
	}
	if fc.Log != "" {
		c.LogPath = expandHome(fc.Log)
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TERMINALWAGER_API"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("TERMINALWAGER_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("TERMINALWAGER_TOKEN_FILE"); v != "" {
		c.TokenPath = expandHome(v)
	}
	if v := os.Getenv("TERMINALWAGER_CATEGORY"); v != "" {
		c.Category = v
	}
	if v := os.Getenv("TERMINALWAGER_INTERESTS"); v != "" {
		c.Interests = SplitList(v)
	}
	if v := os.Getenv("TERMINALWAGER_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TERMINALWAGER_PAGE_SIZE: %w", err)
		}
		c.PageSize = n
	}
	if v := os.Getenv("TERMINALWAGER_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TERMINALWAGER_POLL_INTERVAL: %w", err)
		}
		c.PollInterval = d
	}
	if v, ok := os.LookupEnv("TERMINALWAGER_LOG"); ok {
		c.LogPath = expandHome(v)
	}
	if v := os.Getenv("TERMINALWAGER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate normalizes the API URL and checks numeric bounds. It is run by
// Load and again after command-line overrides.
func (c *Config) Validate() error {
	api, err := normalizeAPIURL(c.APIURL)
	if err != nil {
		return err
	}
	c.APIURL = api
	if c.PageSize <= 0 || c.PageSize > maxPageSize {
		return fmt.Errorf("invalid page size %d: must be between 1 and %d", c.PageSize, maxPageSize)
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("invalid poll interval %s: must be at least 1s", c.PollInterval)
	}
	c.Category = strings.TrimSpace(c.Category)
	return nil
}

func normalizeAPIURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid API URL %q: must be an absolute URL", raw)
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !isLoopback(parsed.Hostname()) {
			return "", fmt.Errorf("invalid API URL %q: only https is allowed outside localhost", raw)
		}
	default:
		return "", fmt.Errorf("invalid API URL %q: unsupported scheme %s", raw, parsed.Scheme)
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return strings.TrimRight(parsed.String(), "/"), nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
