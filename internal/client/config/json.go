package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vltrn/datav/internal/flagx"
	"github.com/vltrn/datav/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep the values set by earlier stages.
type JSONConfig struct {
	APIURL         *string         `json:"api_url"`
	LegacyAPIURL   *string         `json:"legacy_api_url"`
	Variant        *string         `json:"variant"`
	DataDir        *string         `json:"data_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	Tracing        *string         `json:"tracing"`
}

// parseJSON overlays cfg with the file given by -c/-config in args.
// Without the flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIURL, jc.APIURL)
	setString(&cfg.LegacyAPIURL, jc.LegacyAPIURL)
	setString(&cfg.Variant, jc.Variant)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.Tracing, jc.Tracing)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
