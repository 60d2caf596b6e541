package config

import (
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://10.0.0.1:5000/api", "-m", "gemini-2.5-pro", "-d", "/tmp/fd", "-l", "debug", "-o", "#/cuentas"},
			expected: &Config{
				APIBaseURL: "http://10.0.0.1:5000/api", Model: "gemini-2.5-pro", DataDir: "/tmp/fd",
				LogLevel: "debug", StartFragment: "#/cuentas",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-x", "1", "-o=#token=abc123", "-c", "cfg.json"},
			expected: &Config{StartFragment: "#token=abc123"},
		},
		{name: "missing value", args: []string{"cmd", "-a"}, expectErr: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			err := parseFlags(config)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
