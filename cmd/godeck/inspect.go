package main

import (
	"fmt"
	"os"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	inspectParts bool
)

type slideReport struct {
	Number       int      `yaml:"number"`
	Part         string   `yaml:"part"`
	Title        string   `yaml:"title,omitempty"`
	Placeholders []string `yaml:"placeholders,omitempty"`
	Notes        string   `yaml:"notes,omitempty"`
}

type layoutReport struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type,omitempty"`
}

type partReport struct {
	Name        string `yaml:"name"`
	ContentType string `yaml:"content_type"`
	Size        int    `yaml:"size"`
}

type inspectReport struct {
	File    string         `yaml:"file"`
	Slides  []slideReport  `yaml:"slides"`
	Layouts []layoutReport `yaml:"layouts"`
	Parts   []partReport   `yaml:"parts,omitempty"`
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pptx>",
	Short: "Describe a presentation as YAML",
	Long:  `Print the slides, layouts and optionally the raw parts of a presentation.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pres, err := godeck.Open(args[0])
		if err != nil {
			fatal("Failed to open presentation", err)
		}

		report := inspectReport{File: args[0]}

		for n := 1; n <= pres.SlideCount(); n++ {
			slide, err := pres.Slide(n)
			if err != nil {
				fatal(fmt.Sprintf("Failed to read slide %d", n), err)
			}
			title, _ := slide.Title()
			notes, _ := slide.Notes()
			placeholders, _ := slide.Placeholders()
			report.Slides = append(report.Slides, slideReport{
				Number:       n,
				Part:         slide.Name(),
				Title:        title,
				Placeholders: placeholders,
				Notes:        notes,
			})
		}

		layouts, err := pres.Layouts()
		if err != nil {
			fatal("Failed to read layouts", err)
		}
		for _, l := range layouts {
			report.Layouts = append(report.Layouts, layoutReport{
				Index: l.Index,
				Name:  l.Name,
				Type:  l.Type,
			})
		}

		if inspectParts {
			for _, entry := range pres.Package().Parts() {
				report.Parts = append(report.Parts, partReport{
					Name:        entry.Name,
					ContentType: pres.Package().ContentTypes().Resolve(entry.Name),
					Size:        len(entry.Data),
				})
			}
		}

		encoder := yaml.NewEncoder(os.Stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			fatal("Failed to encode report", err)
		}
		encoder.Close()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectParts, "parts", false, "Include the raw part listing")
}
