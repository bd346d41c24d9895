package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vangoui/internal/errors"
)

const (
	// ConfigFileName is the base name of the configuration file.
	ConfigFileName = "vangoui"

	// DefaultPort is the default preview server port.
	DefaultPort = 4100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTitle is the default gallery page title.
	DefaultTitle = "vangoui gallery"

	// DefaultStylesheet is the Tailwind build the gallery links by default.
	DefaultStylesheet = "https://cdn.jsdelivr.net/npm/tailwindcss@2/dist/tailwind.min.css"

	// DefaultKey is the default object key for published snapshots.
	DefaultKey = "index.html"

	// DefaultRegion is the default S3 region.
	DefaultRegion = "us-east-1"
)

// extensions lists the accepted file extensions in lookup order.
var extensions = []string{".json", ".yaml", ".yml"}

// Config represents the complete vangoui configuration.
type Config struct {
	// Title is the gallery page title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty" yaml:"preview,omitempty"`

	// Publish contains snapshot upload configuration.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// Stylesheets are linked from the gallery page head.
	Stylesheets []string `json:"stylesheets,omitempty" yaml:"stylesheets,omitempty"`
}

// PublishConfig contains S3 snapshot settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Key is the object key of the snapshot.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint for compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// PathStyle addresses the bucket in the path instead of the host.
	PathStyle bool `json:"pathStyle,omitempty" yaml:"pathStyle,omitempty"`

	// CacheControl is sent with the uploaded object.
	CacheControl string `json:"cacheControl,omitempty" yaml:"cacheControl,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Title: DefaultTitle,
		Preview: PreviewConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			Stylesheets: []string{DefaultStylesheet},
		},
		Publish: PublishConfig{
			Key:          DefaultKey,
			Region:       DefaultRegion,
			CacheControl: "no-cache",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for vangoui.json, vangoui.yaml and vangoui.yml in that order.
func Load(dir string) (*Config, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, ConfigFileName+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E141").
		WithDetail("No vangoui.json or vangoui.yaml found in " + dir).
		WithSuggestion("Create vangoui.json, or run without --config to use defaults")
}

// LoadOrDefault is like Load but returns defaults when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.HasCode(err, "E141") {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path. The format
// follows the file extension.
func LoadFile(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No configuration file at " + path).
				WithSuggestion("Check the --config path")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if format == "json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid " + strings.ToUpper(format)).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", errors.New("E121").
			WithDetail("Cannot read " + filepath.Base(path)).
			WithSuggestion("Rename the file to vangoui.json or vangoui.yaml")
	}
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path in the format its
// extension names.
func (c *Config) SaveTo(path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	if format == "json" {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	if format == "json" {
		// Add newline at end of file
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}

	// Preview
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}

	// Publish
	if c.Publish.Key == "" {
		c.Publish.Key = DefaultKey
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port " + strconv.Itoa(c.Preview.Port) + " is out of range")
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E123").WithDetail("Unknown log level " + strconv.Quote(c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("E123").WithDetail("Unknown log format " + strconv.Quote(c.Log.Format))
	}
	return nil
}

// PreviewAddress returns the listen address for the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps Level to a slog level. Unknown values mean info.
func (l LogConfig) SlogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(l.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// NewLogger builds a logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
