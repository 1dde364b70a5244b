package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command line.
//
// Flags:
//
//	-a vault service base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-u account e-mail
//	-log-file log file path
//	-clipboard-ttl how long a copied password stays on the clipboard
//	-refresh fetch from the network and drop the cache
//	-cache-backend file, sqlite or none
//	-cache-dir file cache directory
//	-cache-dsn sqlite cache DSN
//	-c/-config json file path with configs
//
// The first positional argument is the account to copy.
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		username       string
		logFile        string
		clipboardTTL   time.Duration
		refresh        bool
		cacheBackend   string
		cacheDir       string
		cacheDSN       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Vault service base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&username, "u", "", "Account e-mail")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&clipboardTTL, "clipboard-ttl", 0, "Clipboard clear delay (e.g., 5m)")
	fs.BoolVar(&refresh, "refresh", false, "Fetch from the network and drop the cache")
	fs.StringVar(&cacheBackend, "cache-backend", "", "Cache backend: file, sqlite or none")
	fs.StringVar(&cacheDir, "cache-dir", "", "File cache directory")
	fs.StringVar(&cacheDSN, "cache-dsn", "", "SQLite cache DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Username:     username,
			LogFile:      logFile,
			ClipboardTTL: clipboardTTL,
			Refresh:      refresh,
			Account:      fs.Arg(0),
		},
		Cache: Cache{
			Backend: cacheBackend,
			Dir:     cacheDir,
			DSN:     cacheDSN,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "clipboard-ttl":
			cfg.explicit.clipboardTTL = true
		case "refresh":
			cfg.explicit.refresh = true
		}
	})

	return cfg, nil
}
