package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "StudentContextMCP", cfg.MCP.ServerName)
	assert.Equal(t, "/mcp", cfg.MCP.EndpointPath)
	assert.True(t, cfg.MCP.Stateless)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Docs.Enabled)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", EnvProduction)
	t.Setenv("PORT", "9100")
	t.Setenv("MCP_ENDPOINT_PATH", "rpc/")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "/rpc", cfg.MCP.EndpointPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Docs.Enabled)
}

func TestLoadClientFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MCP_SERVER_URL", "http://env.example/mcp")

	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	fs.String("server", "", "")
	fs.Duration("timeout", 0, "")
	require.NoError(t, fs.Parse([]string{"--timeout=5s"}))

	cfg, err := LoadClient(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/mcp", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	require.NoError(t, fs.Parse([]string{"--server=http://flag.example/mcp"}))
	cfg, err = LoadClient(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example/mcp", cfg.ServerURL)
}
