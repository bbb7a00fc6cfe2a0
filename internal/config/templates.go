package config

import (
	"bytes"
	"fmt"
	"os"

	gotoml "github.com/pelletier/go-toml/v2"
)

const templateHeader = "# hex2sv configuration. Every key is optional.\n\n"

// Template renders DefaultConfig as TOML.
func Template() (string, error) {
	cfg := DefaultConfig()
	raw := fileConfig{
		LogLevel:    "warn",
		Declaration: cfg.Declaration,
		Server: fileServer{
			Addr:         cfg.Server.Addr,
			CorsOrigins:  []string{"http://localhost:3000"},
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
		},
	}
	data, err := gotoml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return templateHeader + string(data), nil
}

func WriteTemplate(path string, overwrite bool) error {
	template, err := Template()
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

// CheckStrict loads path and additionally rejects keys the loader would
// silently ignore.
func CheckStrict(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	dec := gotoml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var raw fileConfig
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return Load(path)
}
