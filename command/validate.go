package command

import (
	"errors"
	"fmt"

	"github.com/frantjc/resman"
	"github.com/frantjc/resman/android"
	"github.com/frantjc/resman/internal/resmanerr"
	"github.com/spf13/cobra"
)

func newValidate() *cobra.Command {
	var (
		locate bool
		cmd    = &cobra.Command{
			Use:   "validate ROOT...",
			Short: "Check that each project has a manifest and res directories",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx  = cmd.Context()
					log  = resman.LoggerFrom(ctx)
					errs = []error{}
				)

				for _, root := range args {
					d, err := android.NewDescriptorFromProject(root, android.WithLogger(log))
					if err != nil {
						errs = append(errs, fmt.Errorf("validate %s: %w", root, err))
						continue
					}

					if locate {
						_, err = d.ResourcePaths(android.NewGenDirLocator(root))
					} else {
						err = d.Validate()
					}
					if err != nil {
						errs = append(errs, fmt.Errorf("validate %s: %w", root, err))
						continue
					}

					fmt.Fprintln(cmd.OutOrStdout(), "ok", root)
				}

				return resmanerr.WithExitCode(errors.Join(errs...))
			},
		}
	)

	cmd.Flags().BoolVar(&locate, "locate", false, "also locate each project's generated R class")

	return cmd
}
