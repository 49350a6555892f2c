package tinylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverride(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		verify    func(t *testing.T, cfg *Config)
		wantError string
	}{
		{
			name:      "basic overrides",
			overrides: []string{"name=sensor", "level=debug", "base=hex"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sensor", cfg.Name)
				assert.Equal(t, "debug", cfg.Level)
				assert.Equal(t, "hex", cfg.Base)
			},
		},
		{
			name:      "level by rank",
			overrides: []string{"level=4"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "error", cfg.Level)
			},
		},
		{
			name:      "boolean values",
			overrides: []string{"print_date=true", "timestamps=false", "enable_console=0"},
			verify: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.PrintDate)
				assert.False(t, cfg.Timestamps)
				assert.False(t, cfg.EnableConsole)
			},
		},
		{
			name:      "console settings",
			overrides: []string{"console_target=stderr", "sanitization=escape"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "stderr", cfg.ConsoleTarget)
				assert.Equal(t, "escape", cfg.Sanitization)
			},
		},
		{
			name:      "missing separator",
			overrides: []string{"invalid"},
			wantError: "expected key=value",
		},
		{
			name:      "unknown key",
			overrides: []string{"directory=/tmp"},
			wantError: "unknown config key",
		},
		{
			name:      "rank out of range",
			overrides: []string{"level=12"},
			wantError: "level rank out of range",
		},
		{
			name:      "bad boolean",
			overrides: []string{"print_date=maybe"},
			wantError: "invalid boolean value for print_date",
		},
		{
			name:      "invalid after apply",
			overrides: []string{"console_target=printer"},
			wantError: "invalid console_target",
		},
		{
			name:      "multiple errors combined",
			overrides: []string{"level=loud", "base=roman"},
			wantError: "multiple configuration errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ApplyOverride(tt.overrides...)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.Equal(t, DefaultConfig(), cfg, "config must be unchanged on error")
				return
			}

			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}
}
