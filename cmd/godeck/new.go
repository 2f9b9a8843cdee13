package main

import (
	"fmt"
	"log/slog"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var (
	newTitle    string
	newSubtitle string
	newCreator  string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <file.pptx>",
	Short: "Create a blank presentation",
	Long:  `Create a presentation from the built-in template, optionally with a title slide.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := []godeck.Option{godeck.WithLogger(slog.Default())}
		if newCreator != "" {
			opts = append(opts, godeck.WithCreator(newCreator))
		}

		pres, err := godeck.New(opts...)
		if err != nil {
			fatal("Failed to create presentation", err)
		}

		if newTitle != "" {
			slide, err := pres.AddSlide("Title Slide")
			if err != nil {
				fatal("Failed to add title slide", err)
			}
			if err := slide.SetTitle(newTitle); err != nil {
				fatal("Failed to set title", err)
			}
			if newSubtitle != "" {
				if err := slide.SetPlaceholderText("subtitle", newSubtitle); err != nil {
					fatal("Failed to set subtitle", err)
				}
			}
		}

		if err := pres.Save(args[0]); err != nil {
			fatal("Failed to save presentation", err)
		}
		fmt.Printf("Created %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Title slide text")
	newCmd.Flags().StringVar(&newSubtitle, "subtitle", "", "Title slide subtitle")
	newCmd.Flags().StringVar(&newCreator, "creator", "", "Author recorded in document properties")
}
