package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/tinylog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  name = "simple"
  level = "debug"
  base = "dec"
  print_date = true
  console_target = "stdout"
  sanitization = "txt"
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write example config: %v\n", err)
		// Continue with defaults, a missing file is not an error
	} else {
		fmt.Printf("Created example config file: %s\n", configFile)
		defer os.Remove(configFile)
	}

	cfg, err := tinylog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Command-line style overrides win over the file
	if err := cfg.ApplyOverride(os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid override: %v\n", err)
		os.Exit(1)
	}

	// --- Initialize Logger ---
	logger, err := tinylog.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// --- Logging ---
	start := time.Now()
	logger.Debug("This is a debug message. user_id=").Int(123)
	logger.Info("Application starting...")
	logger.Warn("Register value ").Radix(tinylog.BaseHex).Uint(0xBEEF).
		Str(" mask ").Radix(tinylog.BaseBin).Uint(0b1010)
	logger.Error("An error occurred! code=").Radix(tinylog.BaseDec).Int(500)
	logger.Trace("Filtered out at debug level").Str(" and so is this")

	// Generic values and control characters through the txt sanitizer
	logger.Info("mixed: ").Append("tab\there", " ", tinylog.BaseOct, 64, " ", true)

	logger.Info("elapsed ").Dur(time.Since(start).Truncate(time.Microsecond))

	fmt.Println()
	fmt.Println("--- Example Finished ---")
}
