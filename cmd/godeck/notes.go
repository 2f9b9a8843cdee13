package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var (
	notesSet    string
	notesAppend string
)

// notesCmd represents the notes command
var notesCmd = &cobra.Command{
	Use:   "notes <file.pptx> <slide>",
	Short: "Read or edit a slide's speaker notes",
	Long: `Without flags, print the speaker notes of the given slide (1-indexed).
With --set or --append, edit them and save the file in place.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Bad slide number", err)
		}

		pres, err := godeck.Open(args[0], godeck.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open presentation", err)
		}
		slide, err := pres.Slide(n)
		if err != nil {
			fatal("Failed to find slide", err)
		}

		if notesSet == "" && notesAppend == "" {
			notes, err := slide.Notes()
			if err != nil {
				fatal("Failed to read notes", err)
			}
			fmt.Println(notes)
			return
		}

		if notesSet != "" {
			if err := slide.SetNotes(notesSet); err != nil {
				fatal("Failed to set notes", err)
			}
		}
		if notesAppend != "" {
			if err := slide.AppendNotes(notesAppend); err != nil {
				fatal("Failed to append notes", err)
			}
		}
		if err := pres.Save(args[0]); err != nil {
			fatal("Failed to save presentation", err)
		}
		fmt.Printf("Updated notes on slide %d\n", n)
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.Flags().StringVar(&notesSet, "set", "", "Replace the notes text")
	notesCmd.Flags().StringVar(&notesAppend, "append", "", "Append a paragraph to the notes")
}
