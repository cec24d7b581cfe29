package main

import (
	"os"

	cmd "github.com/braidnetworks/braid/cmd/braid/commands"
)

func main() {
	rootCmd := cmd.RootCmd

	rootCmd.AddCommand(
		cmd.NewKeygenCmd(),
		cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
