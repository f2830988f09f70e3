/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/suparena/filestore"
)

func newCreateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "create <Type>",
		Short:   "Create an object and print its id",
		Example: `  filestore create User`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.withService(cmd, func(ctx context.Context, svc *filestore.Service) error {
				id, err := svc.Create(ctx, argAt(args, 0))
				if err != nil {
					if explain(out, err) {
						return nil
					}
					return err
				}
				zerolog.Ctx(ctx).Debug().Str("type", args[0]).Str("id", id).Msg("object created")
				fmt.Fprintln(out, id)
				return nil
			})
		},
	}
}
