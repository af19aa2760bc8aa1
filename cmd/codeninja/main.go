// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command codeninja serves, exports and inspects the CodeNinjaHub language guide.
//
// # Commands
//
//	codeninja [serve]            run the HTTP server (default)
//	codeninja export [--out DIR] write the site as static files
//	codeninja validate           check the catalog contract
//	codeninja resolve IDENTIFIER print the record an identifier resolves to
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/config"
	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
	"github.com/codeninjahub/codeninjahub/internal/site"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "codeninja",
		Short:         "CodeNinjaHub programming language guide",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		newServeCommand(),
		newExportCommand(),
		newValidateCommand(),
		newResolveCommand(),
	)
	return root
}

// newLogger builds the root JSON logger. Every entry carries the app name.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))

	slog.SetDefault(log)
	return log
}

// loadRuntime loads configuration and the logger shared by serve and export.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := newLogger(cfg.Debug)
	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.SiteBaseURL),
	)
	return cfg, log, nil
}

// newCatalogService wires the builtin catalog behind the language service.
func newCatalogService(log *slog.Logger) *language.Service {
	return language.NewService(language.NewCatalog(language.BuiltinLanguages()...), log)
}

func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	return site.NewRenderer(site.NewMeta(cfg.SiteBaseURL))
}
