// Command server serves the greeter API and the embedded web client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"

	"github.com/vcrobe/nojs-greeter/internal/config"
	"github.com/vcrobe/nojs-greeter/internal/logger"
	"github.com/vcrobe/nojs-greeter/internal/server"
	"github.com/vcrobe/nojs-greeter/web"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	list := flag.Bool("list", false, "print the served assets and exit")
	dotenv := flag.String("env", ".env", "dotenv file read before the environment")
	assetsDir := flag.String("assets", "", "serve assets from this directory instead of the embedded copy (overrides ASSETS_DIR)")
	flag.Parse()

	cfg, err := config.Load(*dotenv)
	if err != nil {
		return exitConfig, err
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}

	log := logger.NewConsole(cfg.LogLevel)

	assets, opts := web.Assets(), []server.Option(nil)
	if cfg.AssetsDir != "" {
		if assets, err = web.Dir(cfg.AssetsDir); err != nil {
			return exitConfig, err
		}
		opts = append(opts, server.WithLiveIndex())
		log.Info().Str("dir", cfg.AssetsDir).Msg("serving assets from disk")
	}

	srv, err := server.New(cfg, logger.Component(log, "server"), assets, opts...)
	if err != nil {
		return exitRuntime, err
	}

	if *list {
		listed, err := srv.Assets()
		if err != nil {
			return exitRuntime, err
		}
		server.WriteTable(os.Stdout, listed)
		return exitOK, nil
	}

	fmt.Println(color.New(color.FgCyan, color.OpBold).Render("nojs greeter") +
		" listening on " + color.New(color.FgGreen).Render("http://"+cfg.Addr()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
