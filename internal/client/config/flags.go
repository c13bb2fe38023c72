package config

import (
	"flag"
	"io"
	"time"

	"github.com/vltrn/datav/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL of the selected variant
//	-v string   API variant
//	-d string   data directory
//	-t int      request timeout in seconds
//
// args are filtered with flagx.FilterArgs so flags owned by other stages
// (such as -c) do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-v", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var apiURL string
	fs.StringVar(&apiURL, "a", "", "API base URL")
	fs.StringVar(&cfg.Variant, "v", cfg.Variant, "API variant: full or legacy")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds), 0 for none")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -a applies to whichever variant is in effect after -v
	if apiURL != "" {
		if cfg.Variant == VariantLegacy {
			cfg.LegacyAPIURL = apiURL
		} else {
			cfg.APIURL = apiURL
		}
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
