package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Thoronador/hex2sv/internal/config"
	"github.com/Thoronador/hex2sv/internal/literal"
	"github.com/Thoronador/hex2sv/internal/logging"
	"github.com/Thoronador/hex2sv/internal/record"
	"github.com/rs/zerolog"
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hex2sv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional TOML config file")
	name := fs.String("name", "", "variable name of the declaration (overrides config)")
	verify := fs.Bool("verify", false, "re-lex the output and fail unless it yields the input bytes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *name != "" {
		cfg.Declaration.Name = *name
		if err := cfg.Declaration.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	logCfg := logging.DefaultConfig(logging.ProfileCLI)
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logCfg.Level = lvl
	}
	logging.ApplyEnv(&logCfg)
	logCfg.Out = stderr
	logger := logging.New(logCfg)

	raw, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Could not read from standard input! %v\n", err)
		return 1
	}

	data, err := literal.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		if errors.Is(err, literal.ErrEmptyInput) {
			fmt.Fprintln(stderr, "Error: Input is empty!")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	inspectHeader(logger, data)

	body := literal.EncodeBytes(data)
	if *verify {
		if err := literal.Verify(data, body); err != nil {
			fmt.Fprintf(stderr, "Error: Output does not round-trip! %v\n", err)
			return 1
		}
		logger.Debug().Int("bytes", len(data)).Msg("round-trip verified")
	}

	fmt.Fprintln(stdout, cfg.Declaration.Format(body))
	return 0
}

func inspectHeader(logger zerolog.Logger, data []byte) {
	h, err := record.ParseHeader(data)
	if err != nil {
		logger.Debug().Int("bytes", len(data)).Msg("input shorter than a record header")
		return
	}
	logger.Debug().
		Str("tag", h.Name()).
		Uint32("data_size", h.DataSize).
		Uint32("flags", h.Flags).
		Str("form_id", fmt.Sprintf("%08X", h.FormID)).
		Msg("record header")
	if err := h.CheckBody(len(data) - record.HeaderSize); err != nil {
		logger.Warn().Err(err).Msg("record data size does not match input")
	}
}
