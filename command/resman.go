package command

import (
	"github.com/frantjc/resman"
	"github.com/spf13/cobra"
)

// NewResman returns the root command for
// resman which acts as its CLI entrypoint.
func NewResman() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resman",
		Short: "Resolve the manifest and resource directories of Android projects",
	}

	cmd.AddCommand(newResolve(), newValidate(), newDescribe())

	return SetCommon(cmd, resman.SemVer())
}
