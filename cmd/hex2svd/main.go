package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Thoronador/hex2sv/internal/config"
	"github.com/Thoronador/hex2sv/internal/logging"
	"github.com/Thoronador/hex2sv/internal/observability"
	"github.com/Thoronador/hex2sv/internal/server"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hex2svd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logging.ConfigureService(cfg.LogLevel)
	logger := observability.InitLogger("hex2svd")
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
