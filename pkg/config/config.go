package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	MCP     MCPConfig
	HTTP    HTTPConfig
	CORS    CORSConfig
	Log     LogConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

// MCPConfig describes the MCP server identity and its HTTP endpoint.
type MCPConfig struct {
	ServerName    string
	ServerVersion string
	EndpointPath  string
	Stateless     bool
}

// HTTPConfig tunes the listening server.
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// DocsConfig toggles the Swagger UI outside production.
type DocsConfig struct {
	Enabled bool
}

// ClientConfig configures the MCP probe client.
type ClientConfig struct {
	ServerURL string
	Timeout   time.Duration
	Log       LogConfig
}

func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.MCP = MCPConfig{
		ServerName:    v.GetString("MCP_SERVER_NAME"),
		ServerVersion: v.GetString("MCP_SERVER_VERSION"),
		EndpointPath:  normalizePath(v.GetString("MCP_ENDPOINT_PATH")),
		Stateless:     v.GetBool("MCP_STATELESS"),
	}

	cfg.HTTP = HTTPConfig{
		ReadHeaderTimeout: parseDuration(v.GetString("READ_HEADER_TIMEOUT"), 5*time.Second),
		ShutdownTimeout:   parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), 10*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}
	cfg.Docs = DocsConfig{Enabled: v.GetBool("ENABLE_DOCS") && cfg.Env != EnvProduction}

	return cfg, nil
}

// LoadClient reads the client configuration. Flags registered on fs take
// precedence over the environment.
func LoadClient(fs *pflag.FlagSet) (*ClientConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if fs != nil {
		if err := v.BindPFlag("MCP_SERVER_URL", fs.Lookup("server")); err != nil {
			return nil, err
		}
		if err := v.BindPFlag("CLIENT_TIMEOUT", fs.Lookup("timeout")); err != nil {
			return nil, err
		}
	}

	return &ClientConfig{
		ServerURL: v.GetString("MCP_SERVER_URL"),
		Timeout:   parseDuration(v.GetString("CLIENT_TIMEOUT"), 30*time.Second),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}, nil
}

func newViper() (*viper.Viper, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8000)

	v.SetDefault("MCP_SERVER_NAME", "StudentContextMCP")
	v.SetDefault("MCP_SERVER_VERSION", "1.0.0")
	v.SetDefault("MCP_ENDPOINT_PATH", "/mcp")
	v.SetDefault("MCP_STATELESS", true)

	v.SetDefault("READ_HEADER_TIMEOUT", "5s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_DOCS", true)

	v.SetDefault("MCP_SERVER_URL", "http://localhost:8000/mcp")
	v.SetDefault("CLIENT_TIMEOUT", "30s")
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	if len(raw) > 1 {
		raw = strings.TrimRight(raw, "/")
	}
	return raw
}
