package commands

import (
	"fmt"

	"github.com/braidnetworks/braid/src/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd produces a command that prints the version string
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Version)
		},
	}
}
