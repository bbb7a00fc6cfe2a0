package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Thoronador/hex2sv/internal/literal"
	"github.com/Thoronador/hex2sv/internal/logging"
)

type Config struct {
	LogLevel    string
	Declaration literal.Declaration
	Server      ServerConfig
}

type ServerConfig struct {
	Addr         string
	CorsOrigins  []string
	MaxBodyBytes int64
	// AuthToken, when set, is required as a bearer token on /v1/encode.
	AuthToken    string
}

type fileConfig struct {
	LogLevel    string              `toml:"log_level"`
	Declaration literal.Declaration `toml:"declaration"`
	Server      fileServer          `toml:"server"`
}

type fileServer struct {
	Addr         string   `toml:"addr"`
	CorsOrigins  []string `toml:"cors_origins"`
	MaxBodyBytes int64    `toml:"max_body_bytes"`
	AuthToken    string   `toml:"auth_token"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "",
		Declaration: literal.DefaultDeclaration(),
		Server: ServerConfig{
			Addr:         ":9420",
			CorsOrigins:  []string{},
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Load reads path over DefaultConfig. Keys missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("declaration", "qualifier") {
		cfg.Declaration.Qualifier = strings.TrimSpace(raw.Declaration.Qualifier)
	}
	if meta.IsDefined("declaration", "name") {
		cfg.Declaration.Name = strings.TrimSpace(raw.Declaration.Name)
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "cors_origins") {
		cfg.Server.CorsOrigins = normalizeOrigins(raw.Server.CorsOrigins)
	}
	if meta.IsDefined("server", "max_body_bytes") {
		cfg.Server.MaxBodyBytes = raw.Server.MaxBodyBytes
	}
	if meta.IsDefined("server", "auth_token") {
		cfg.Server.AuthToken = strings.TrimSpace(raw.Server.AuthToken)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
		}
	}
	if err := cfg.Declaration.Validate(); err != nil {
		return fmt.Errorf("declaration: %w", err)
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max_body_bytes must be positive, got %d", cfg.Server.MaxBodyBytes)
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
