// Package config loads runtime configuration for the DataV CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. A .env file in the working directory, then DATAV_* environment
//     variables (see parseEnv). Variables already set are not overwritten
//     by the .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the DataV API
//	-v string   API variant: full or legacy
//	-d string   local data directory
//	-t int      request timeout in seconds (0 = none)
//
// # JSON schema
//
//	{
//	  "api_url": "https://datav-app-api.onrender.com",
//	  "legacy_api_url": "https://datav-app-api.onrender.com",
//	  "variant": "full",
//	  "data_dir": ".datav",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "tracing": "off"
//	}
//
// Environment variables use the same names upper-cased with a DATAV_ prefix,
// e.g. DATAV_API_URL or DATAV_REQUEST_TIMEOUT=30s.
package config
