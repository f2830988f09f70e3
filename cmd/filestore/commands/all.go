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

func newAllCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all [Type]",
		Short: "Print every object, or every object of one type",
		Example: `  filestore all
  filestore all Place`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.withService(cmd, func(ctx context.Context, svc *filestore.Service) error {
				ents, err := svc.List(argAt(args, 0))
				if err != nil {
					if explain(out, err) {
						return nil
					}
					return err
				}
				for _, ent := range ents {
					fmt.Fprintln(out, ent)
				}
				return nil
			})
		},
	}
}
