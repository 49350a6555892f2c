package tinylog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"

	"github.com/lixenwraith/tinylog/sanitizer"
	"github.com/lixenwraith/tinylog/sink"
)

// Config holds the settings NewFromConfig turns into a ready logger
type Config struct {
	// Identity and filtering
	Name  string `toml:"name"`  // Truncated to MaxNameLen-1 bytes
	Level string `toml:"level"` // trace, debug, info, warn, error, fatal, disabled

	// Formatting
	Base       string `toml:"base"`       // Initial integer base: bin, oct, dec, hex
	PrintDate  bool   `toml:"print_date"` // Include the date in the timestamp tag
	Timestamps bool   `toml:"timestamps"` // Attach the system clock as time source

	// Console sink
	EnableConsole bool   `toml:"enable_console"` // Register a stdout/stderr sink
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	Sanitization  string `toml:"sanitization"`   // Console policy: raw, txt, escape
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Name:  "log",
	Level: "info",

	Base:       "dec",
	PrintDate:  false,
	Timestamps: true,

	EnableConsole: true,
	ConsoleTarget: "stdout",
	Sanitization:  string(sanitizer.PolicyRaw),
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// NewConfigFromFile loads the [log] table of a TOML file over the defaults.
// A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies typed overrides
// keyed by toml tag
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies loader values into cfg, fields without a value keep their default
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with type checking
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("log name cannot be empty")
	}

	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}

	if _, err := ParseBase(c.Base); err != nil {
		return err
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	// shell strips whitespace, which would eat the header padding and separator
	if !sanitizer.IsPolicy(c.Sanitization) || sanitizer.PolicyPreset(c.Sanitization) == sanitizer.PolicyShell {
		return fmtErrorf("invalid sanitization: '%s' (use raw, txt, or escape)", c.Sanitization)
	}

	return nil
}

// NewFromConfig builds a logger from a validated configuration
func NewFromConfig(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}

	// Validate guarantees both parse
	level, _ := ParseLevel(cfg.Level)
	base, _ := ParseBase(cfg.Base)

	l := New(cfg.Name)
	l.SetLevel(level)
	l.Radix(base)
	l.SetPrintDate(cfg.PrintDate)

	if cfg.Timestamps {
		l.SetTimeSource(SystemTimeSource())
	}

	if cfg.EnableConsole {
		console := sink.Console(cfg.ConsoleTarget)
		if policy := sanitizer.PolicyPreset(cfg.Sanitization); policy != sanitizer.PolicyRaw {
			console = sink.Sanitized(console, sanitizer.New().Policy(policy))
		}
		l.AddSink(console)
	}

	return l, nil
}
