package main

import (
	"fmt"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of godeck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("godeck version %s\n", godeck.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
