// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/apperr"
	"github.com/codeninjahub/codeninjahub/internal/site"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "export",
		Short:         "Write the whole site as static files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadRuntime()
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = cfg.ExportDir
			}

			renderer, err := newRenderer(cfg)
			if err != nil {
				return err
			}

			exporter := site.NewExporter(newCatalogService(log), renderer, log)
			written, err := exporter.Export(cmd.Context(), out)
			if err != nil {
				log.Error("export_failed", slog.String("dir", out), slog.Any("error", err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", len(written), out)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output directory (default $EXPORT_DIR or ./public)")
	return cmd
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "validate",
		Short:         "Check the language catalog contract",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := language.NewCatalog(language.BuiltinLanguages()...)
			if err := catalog.Validate(); err != nil {
				printValidation(cmd.ErrOrStderr(), err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d languages\n", catalog.Len())
			return nil
		},
	}
}

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "resolve IDENTIFIER",
		Short:         "Print the catalog record an identifier resolves to",
		Example:       "  codeninja resolve C++\n  codeninja resolve python",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := language.NewCatalog(language.BuiltinLanguages()...).Resolve(args[0])
			if err != nil {
				return fmt.Errorf("resolve %q: %w", args[0], err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(lang)
		},
	}
}

func printValidation(w io.Writer, err error) {
	fmt.Fprintln(w, err)
	if appErr := apperr.As(err); appErr != nil {
		for _, detail := range appErr.Details {
			fmt.Fprintf(w, "  %s: %s\n", detail.Field, detail.Message)
		}
	}
}
