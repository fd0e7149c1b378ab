package config

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/pardna"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "pardna.json"

	// YAMLConfigFileName is the name of the YAML configuration file.
	YAMLConfigFileName = "pardna.yaml"

	// DefaultPort is the default dev server port.
	DefaultPort = 4000

	// DefaultHost is the default dev server host.
	DefaultHost = "127.0.0.1"

	// DefaultTimeout is the default per-request API timeout.
	DefaultTimeout = "10s"

	// DefaultCurrencySymbol prefixes money amounts.
	DefaultCurrencySymbol = pardna.DefaultCurrencySymbol
)

// Config represents the complete pardna configuration.
type Config struct {
	// API contains the GraphQL API settings.
	API APIConfig `json:"api" yaml:"api"`

	// CurrencySymbol prefixes money amounts in prompts and output.
	CurrencySymbol string `json:"currencySymbol,omitempty" yaml:"currencySymbol,omitempty"`

	// Defaults are the initial form values.
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log"`

	// Dev contains dev server configuration.
	Dev DevConfig `json:"dev" yaml:"dev"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// APIConfig contains GraphQL API settings.
type APIConfig struct {
	// Endpoint is the GraphQL URL. Empty means the local dev server.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Timeout bounds each request (e.g., "10s").
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Token is sent as a bearer token when set.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Refetch re-reads the pardna list after a create.
	Refetch *bool `json:"refetch,omitempty" yaml:"refetch,omitempty"`
}

// DefaultsConfig holds the initial form values. Unset numbers fall back to
// the standard defaults; an explicit 0 is kept.
type DefaultsConfig struct {
	Duration           *int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	ContributionAmount *float64 `json:"contributionAmount,omitempty" yaml:"contributionAmount,omitempty"`
	BankerFee          *float64 `json:"bankerFee,omitempty" yaml:"bankerFee,omitempty"`
	PaymentFrequency   string   `json:"paymentFrequency,omitempty" yaml:"paymentFrequency,omitempty"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// DevConfig contains dev server settings.
type DevConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// MetricsNamespace prefixes the dev server's Prometheus metrics.
	MetricsNamespace string `json:"metricsNamespace,omitempty" yaml:"metricsNamespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from dir, preferring pardna.json over pardna.yaml.
func Load(dir string) (*Config, error) {
	jsonPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(jsonPath); err == nil {
		return LoadFile(jsonPath)
	}
	yamlPath := filepath.Join(dir, YAMLConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return LoadFile(yamlPath)
	}
	return nil, errors.New("P120").
		WithDetail("No " + ConfigFileName + " or " + YAMLConfigFileName + " found in " + dir).
		WithSuggestion("Create " + ConfigFileName + " or pass flags on the command line")
}

// LoadFile reads configuration from path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("P120").Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("P121").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path in the format its extension names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("P120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("P120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	std := pardna.StandardDefaults()

	if c.API.Timeout == "" {
		c.API.Timeout = DefaultTimeout
	}
	if c.CurrencySymbol == "" {
		c.CurrencySymbol = DefaultCurrencySymbol
	}

	if c.Defaults.Duration == nil {
		c.Defaults.Duration = ptr(std.Duration)
	}
	if c.Defaults.ContributionAmount == nil {
		c.Defaults.ContributionAmount = ptr(std.ContributionAmount.InexactFloat64())
	}
	if c.Defaults.BankerFee == nil {
		c.Defaults.BankerFee = ptr(std.BankerFee.InexactFloat64())
	}
	if c.Defaults.PaymentFrequency == "" {
		c.Defaults.PaymentFrequency = string(std.PaymentFrequency)
	} else {
		c.Defaults.PaymentFrequency = strings.ToUpper(c.Defaults.PaymentFrequency)
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.MetricsNamespace == "" {
		c.Dev.MetricsNamespace = "pardna"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.API),
		validation.Field(&c.Defaults),
		validation.Field(&c.Log),
		validation.Field(&c.Dev),
	)
	if err != nil {
		return errors.New("P122").WithDetail(err.Error())
	}
	return nil
}

// Validate implements validation.Validatable.
func (a APIConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Endpoint, is.URL),
		validation.Field(&a.Timeout, validation.By(isDuration)),
	)
}

// Validate implements validation.Validatable.
func (d DefaultsConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Duration, validation.Min(0), validation.Max(pardna.MaxDuration)),
		validation.Field(&d.ContributionAmount, validation.Min(0.0)),
		validation.Field(&d.BankerFee, validation.Min(0.0), validation.Max(float64(pardna.MaxBankerFee))),
		validation.Field(&d.PaymentFrequency, validation.In(frequencies()...)),
	)
}

// Validate implements validation.Validatable.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Format, validation.In("text", "json")),
	)
}

// Validate implements validation.Validatable.
func (d DevConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Port, validation.Min(0), validation.Max(65535)),
	)
}

func isDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return stderrors.New("must be a duration such as 10s")
	}
	return nil
}

func ptr[V any](v V) *V {
	return &v
}

func frequencies() []interface{} {
	out := make([]interface{}, 0, len(pardna.Frequencies()))
	for _, f := range pardna.Frequencies() {
		out = append(out, string(f))
	}
	return out
}

// Timeout returns the parsed API timeout. Invalid values yield zero.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Refetch reports whether the pardna list is re-read after a create.
func (c *Config) Refetch() bool {
	return c.API.Refetch == nil || *c.API.Refetch
}

// FormDefaults converts the configured defaults for pardna.NewForm.
func (c *Config) FormDefaults() pardna.Defaults {
	d := pardna.StandardDefaults()
	if c.Defaults.Duration != nil {
		d.Duration = *c.Defaults.Duration
	}
	if c.Defaults.ContributionAmount != nil {
		d.ContributionAmount = decimal.NewFromFloat(*c.Defaults.ContributionAmount)
	}
	if c.Defaults.BankerFee != nil {
		d.BankerFee = decimal.NewFromFloat(*c.Defaults.BankerFee)
	}
	if f, err := pardna.ParseFrequency(c.Defaults.PaymentFrequency); err == nil {
		d.PaymentFrequency = f
	}
	return d
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the configured logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the GraphQL URL of the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress() + "/graphql"
}

// Endpoint returns the API endpoint, falling back to the dev server.
func (c *Config) Endpoint() string {
	if c.API.Endpoint != "" {
		return c.API.Endpoint
	}
	return c.DevURL()
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("P120").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent holding a config file.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
