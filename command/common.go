package command

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/frantjc/resman"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
)

const (
	EnvVerbose = "RESMAN_VERBOSE"
	EnvOutput  = "RESMAN_OUTPUT"
	EnvBlobURL = "RESMAN_BLOB_URL"
)

func isTruthy(s string) bool {
	return xslice.Some([]string{"1", "y", "yes", "true", "t"}, func(truthy string, _ int) bool {
		return strings.EqualFold(truthy, s)
	})
}

func SetCommon(cmd *cobra.Command, version string) *cobra.Command {
	var verbosity int
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "V", fmt.Sprintf("Verbosity for %s.", cmd.Name()))
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbosity < 2 && isTruthy(os.Getenv(EnvVerbose)) {
			verbosity = 2
		}

		cmd.SetContext(
			resman.WithLogger(
				cmd.Context(), resman.NewLogger(cmd.ErrOrStderr(), verbosity),
			),
		)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Version = version
	cmd.SetVersionTemplate("{{ .Name }} {{ .Version }} " + runtime.Version() + "\n")

	return cmd
}
