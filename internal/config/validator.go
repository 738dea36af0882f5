package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("config validation errors")

// Validate checks the config for:
//   - Required fields
//   - A known store driver, with a dsn where the driver needs one
//   - Empty keys in the toolbar title table and skip list
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be text or json", cfg.Log.Format))
	}
	switch cfg.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if cfg.Store.DSN == "" {
			errs = append(errs, "store.dsn is required for the sqlite driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("store.driver %q is not one of %s, %s", cfg.Store.Driver, DriverMemory, DriverSQLite))
	}
	if strings.ContainsAny(cfg.Settings.Prefix, " \t\n") || cfg.Settings.Prefix == "" {
		errs = append(errs, fmt.Sprintf("settings.prefix %q must be a non-empty token", cfg.Settings.Prefix))
	}
	for id := range cfg.Toolbar.Titles {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, "toolbar.titles: node id must not be empty")
		}
	}
	for i, id := range cfg.Toolbar.SkipIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Sprintf("toolbar.skip_ids[%d]: must not be empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}
