/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/suparena/filestore"
	"github.com/suparena/filestore/config"
	"github.com/suparena/filestore/logging"
	"github.com/suparena/filestore/models"
)

// app holds the flag values shared by every subcommand.
type app struct {
	configPath string
	logOutput  io.Writer
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logOutput: os.Stderr}

	rootCmd := &cobra.Command{
		Use:   "filestore",
		Short: "Manage objects kept in a single JSON document",
		Long: fmt.Sprintf(`filestore keeps objects in memory and persists all of them as one JSON
document.

Types: %s

The document lives in file.json by default. Use --config or FILESTORE_*
environment variables to select the dynamodb, sqlite or memory backend.`,
			strings.Join(models.NewRegistry().Types(), ", ")),
		Version:       filestore.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")

	rootCmd.AddCommand(newCreateCommand(a))
	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newAllCommand(a))
	rootCmd.AddCommand(newDestroyCommand(a))
	rootCmd.AddCommand(newUpdateCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// withService loads the configuration, opens the store, runs fn and releases
// the store again.
func (a *app) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *filestore.Service) error) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, a.logOutput)
	ctx := logger.WithContext(cmd.Context())

	svc, closeFn, err := filestore.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil {
			logger.Warn().Err(cerr).Msg("close store")
		}
	}()

	return fn(ctx, svc)
}
