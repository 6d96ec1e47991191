package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuiltAt   = "unknown"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show current version of drived",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf(`Built At: %s
Go Version: %s
Version: %s
Commit ID: %s
`, BuiltAt, runtime.Version(), Version, GitCommit)
		os.Exit(0)
	},
}

func init() {
	RootCmd.AddCommand(VersionCmd)
}
