package tinylog

import (
	"strconv"
)

// ApplyOverride applies "key=value" overrides to the configuration.
// All overrides are checked before any is applied; on error c is left unchanged.
//
// Example:
//
//	cfg := tinylog.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "name=sensor",
//	    "level=debug",
//	    "base=hex",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	next := c.Clone()

	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(next, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineErrors(errs)
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*c = *next
	return nil
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "name":
		cfg.Name = value

	case "level":
		// Accept numeric ranks as well as names
		if rank, err := strconv.Atoi(value); err == nil {
			if rank < int(LevelTrace) || rank > int(LevelDisabled) {
				return fmtErrorf("level rank out of range: %d", rank)
			}
			cfg.Level = Level(rank).String()
			return nil
		}
		if _, err := ParseLevel(value); err != nil {
			return err
		}
		cfg.Level = value

	case "base":
		if _, err := ParseBase(value); err != nil {
			return err
		}
		cfg.Base = value

	case "print_date", "timestamps", "enable_console":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for %s: '%s'", key, value)
		}
		switch key {
		case "print_date":
			cfg.PrintDate = b
		case "timestamps":
			cfg.Timestamps = b
		case "enable_console":
			cfg.EnableConsole = b
		}

	case "console_target":
		cfg.ConsoleTarget = value

	case "sanitization":
		cfg.Sanitization = value

	default:
		return fmtErrorf("unknown config key in override: '%s'", key)
	}

	return nil
}
