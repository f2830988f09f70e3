/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/filestore"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show <Type> <id>",
		Short:   "Print an object",
		Example: `  filestore show User 246c227a-d5c1-403d-9bc7-6a47bb9f0f68`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.withService(cmd, func(ctx context.Context, svc *filestore.Service) error {
				ent, found, err := svc.Show(argAt(args, 0), argAt(args, 1))
				if err != nil {
					if explain(out, err) {
						return nil
					}
					return err
				}
				if !found {
					fmt.Fprintln(out, msgNoInstance)
					return nil
				}
				fmt.Fprintln(out, ent)
				return nil
			})
		},
	}
}
