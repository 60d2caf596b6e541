package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	clientFlags := []string{"-a", "-m", "-d", "-l", "-o"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "config file flags are left to their own stage",
			args:    []string{"-c", "findash.json", "-a", "http://api:5000/api", "-l", "debug"},
			allowed: clientFlags,
			want:    []string{"-a", "http://api:5000/api", "-l", "debug"},
		},
		{
			name:    "equals form",
			args:    []string{"-m=gemini-2.5-pro", "--config=x.json"},
			allowed: clientFlags,
			want:    []string{"-m=gemini-2.5-pro"},
		},
		{
			name:    "deep link value is kept whole",
			args:    []string{"-o", "findash://auth#token=abc.def.ghi"},
			allowed: clientFlags,
			want:    []string{"-o", "findash://auth#token=abc.def.ghi"},
		},
		{
			name:    "dash-starting token is not a value",
			args:    []string{"-d", "-l", "info"},
			allowed: clientFlags,
			want:    []string{"-d", "-l", "info"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-a"},
			allowed: clientFlags,
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-x", "1", "positional"},
			allowed: clientFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigPath([]string{"-a", "http://x", "-config", "/path/long.json"}))
	assert.Equal(t, "eq.json", ConfigPath([]string{"--config=eq.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1", "-y", "2"}))
	assert.Empty(t, ConfigPath(nil))
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"findash", "-c", "/etc/findash.json"}
	assert.Equal(t, "/etc/findash.json", JsonConfigFlags())
}

func TestLookupEnv(t *testing.T) {
	t.Setenv("FLAGX_PRIMARY", "")
	t.Setenv("FLAGX_FALLBACK", " value ")

	v, ok := LookupEnv("FLAGX_PRIMARY", "FLAGX_FALLBACK")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = LookupEnv("FLAGX_MISSING_FOR_SURE")
	assert.False(t, ok)
}
