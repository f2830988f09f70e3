/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/suparena/filestore"
)

func newDestroyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "destroy <Type> <id>",
		Short:   "Delete an object",
		Example: `  filestore destroy User 246c227a-d5c1-403d-9bc7-6a47bb9f0f68`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.withService(cmd, func(ctx context.Context, svc *filestore.Service) error {
				err := svc.Destroy(ctx, argAt(args, 0), argAt(args, 1))
				if err != nil && explain(out, err) {
					return nil
				}
				return err
			})
		},
	}
}
