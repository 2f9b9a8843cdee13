package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var (
	extractGlob string
	extractDir  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file.pptx>",
	Short: "Extract parts from a presentation package",
	Long: `Write package parts matching a glob to a directory, preserving their
paths. Useful for pulling media or individual slide XML out of a deck.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pkg, err := godeck.OpenPackage(args[0])
		if err != nil {
			fatal("Failed to open package", err)
		}

		entries, err := pkg.PartsMatching(extractGlob)
		if err != nil {
			fatal("Bad glob pattern", err)
		}
		if len(entries) == 0 {
			fmt.Printf("No parts match %q\n", extractGlob)
			return
		}

		for _, entry := range entries {
			dest := filepath.Join(extractDir, filepath.FromSlash(entry.Name))
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				fatal("Failed to create directory", err)
			}
			if err := os.WriteFile(dest, entry.Data, 0644); err != nil {
				fatal("Failed to write part", err)
			}
			fmt.Println(dest)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractGlob, "glob", "**/*", "Part name glob (doublestar syntax)")
	extractCmd.Flags().StringVarP(&extractDir, "dir", "d", ".", "Destination directory")
}
