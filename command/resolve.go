package command

import (
	"fmt"
	"runtime"

	"github.com/frantjc/resman"
	"github.com/frantjc/resman/android"
	"github.com/frantjc/resman/internal/resmanerr"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newResolve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve ROOT...",
		Short: "Print the res directories of each project, library projects included, in precedence order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ctx     = cmd.Context()
				log     = resman.LoggerFrom(ctx)
				results = make([][]string, len(args))
				eg      = new(errgroup.Group)
			)

			eg.SetLimit(runtime.GOMAXPROCS(0))

			for i, root := range args {
				eg.Go(func() error {
					log.V(1).Info("resolving", "root", root)

					dirs, err := android.ResolveResourceDirs(root)
					if err != nil {
						return fmt.Errorf("resolve %s: %w", root, err)
					}

					results[i] = dirs

					return nil
				})
			}

			if err := eg.Wait(); err != nil {
				return resmanerr.WithExitCode(err)
			}

			w := cmd.OutOrStdout()
			for i, dirs := range results {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "%s:\n", args[i])
				}

				for _, dir := range dirs {
					fmt.Fprintln(w, dir)
				}
			}

			return nil
		},
	}

	return cmd
}
