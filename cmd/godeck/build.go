package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var (
	buildOutline string
	buildOutput  string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a presentation from a YAML outline",
	Long: `Build a .pptx from a YAML outline file.

An outline looks like:

  title: Quarterly Review
  subtitle: FY26 Q2
  slides:
    - title: Revenue
      bullets:
        - Up 12% year over year
        - text: Mostly the new tier
          level: 1
      notes: Lead with the chart.
    - layout: Section Header
      title: Costs`,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(buildOutline)
		if err != nil {
			fatal("Failed to read outline", err)
		}
		outline, err := godeck.ParseOutline(data)
		if err != nil {
			fatal("Failed to parse outline", err)
		}

		pres, err := godeck.Build(outline, godeck.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to build presentation", err)
		}
		if err := pres.Save(buildOutput); err != nil {
			fatal("Failed to save presentation", err)
		}

		count := pres.SlideCount()
		fmt.Printf("Built %s (%d slides)\n", buildOutput, count)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutline, "file", "f", "", "Outline YAML file")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "deck.pptx", "Output .pptx path")
	buildCmd.MarkFlagRequired("file")
}
