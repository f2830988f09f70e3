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

func newUpdateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <Type> <id> <attribute> <value>",
		Short: "Set one attribute of an object",
		Long: `Set one attribute of an object. The value is converted to the type the
attribute already holds (string, integer, float or boolean); new attributes are
stored as strings. id, created_at and updated_at cannot be changed.`,
		Example: `  filestore update User 246c227a-d5c1-403d-9bc7-6a47bb9f0f68 email "aibnb@mail.com"`,
		Args:    cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.withService(cmd, func(ctx context.Context, svc *filestore.Service) error {
				typeName, id, attr := argAt(args, 0), argAt(args, 1), argAt(args, 2)

				if len(args) < 4 {
					// Report the first missing piece in argument order.
					_, found, err := svc.Show(typeName, id)
					switch {
					case err != nil:
						if explain(out, err) {
							return nil
						}
						return err
					case !found:
						fmt.Fprintln(out, msgNoInstance)
					case attr == "":
						fmt.Fprintln(out, msgAttributeMissing)
					default:
						fmt.Fprintln(out, msgValueMissing)
					}
					return nil
				}

				err := svc.Update(ctx, typeName, id, attr, args[3])
				if err != nil && explain(out, err) {
					return nil
				}
				return err
			})
		},
	}
}
