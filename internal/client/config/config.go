package config

import "time"

const (
	DefaultAPIURL   = "https://datav-app-api.onrender.com"
	DefaultDataDir  = ".datav"
	DefaultLogLevel = "info"

	VariantFull   = "full"
	VariantLegacy = "legacy"

	TracingOff    = "off"
	TracingStdout = "stdout"
	TracingOTLP   = "otlp"
)

// Config holds runtime settings for the DataV CLI.
//
// APIURL and LegacyAPIURL are the base URLs of the two API variants; Variant
// picks one. RequestTimeout of zero leaves calls unbounded.
type Config struct {
	APIURL         string
	LegacyAPIURL   string
	Variant        string
	DataDir        string
	RequestTimeout time.Duration
	LogLevel       string
	Tracing        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.LegacyAPIURL = DefaultAPIURL
	c.Variant = VariantFull
	c.DataDir = DefaultDataDir
	c.RequestTimeout = 0
	c.LogLevel = DefaultLogLevel
	c.Tracing = TracingOff
}

// BaseURL returns the API URL of the selected variant.
func (c *Config) BaseURL() string {
	if c.Variant == VariantLegacy {
		return c.LegacyAPIURL
	}
	return c.APIURL
}

// Load builds a Config from defaults, the JSON file named in args, the
// environment and finally the flags in args. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
