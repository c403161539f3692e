package cmd

import (
	"github.com/spf13/cobra"

	"github.com/buildmaster/cli/internal/output"
	"github.com/buildmaster/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	output.Println(version.GetInfo().String())
	return nil
}
