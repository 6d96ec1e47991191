package cmd

import (
	"fmt"
	"os"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "drived",
	Short: "A personal file drive split into small services",
	Long: `A personal file drive: identity, files, folders, quota, audit and
sharing services over one relational store, fronted by a gateway.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&conf.DataDir, "data", "data", "data folder")
	RootCmd.PersistentFlags().BoolVar(&conf.Debug, "debug", false, "start with debug mode")
}
