package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var (
	reorderRemove int
)

// reorderCmd represents the reorder command
var reorderCmd = &cobra.Command{
	Use:   "reorder <file.pptx> [from] [to]",
	Short: "Move or remove slides",
	Long: `Move the slide at position from to position to (both 1-indexed), or
remove a slide with --remove. Slide numbering is positional: after either
operation the remaining slides renumber contiguously.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		pres, err := godeck.Open(args[0], godeck.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open presentation", err)
		}

		switch {
		case reorderRemove > 0:
			if err := pres.RemoveSlide(reorderRemove); err != nil {
				fatal("Failed to remove slide", err)
			}
			fmt.Printf("Removed slide %d\n", reorderRemove)
		case len(args) == 3:
			from, err := strconv.Atoi(args[1])
			if err != nil {
				fatal("Bad from position", err)
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				fatal("Bad to position", err)
			}
			if err := pres.MoveSlide(from, to); err != nil {
				fatal("Failed to move slide", err)
			}
			fmt.Printf("Moved slide %d to position %d\n", from, to)
		default:
			fatal("Nothing to do", fmt.Errorf("pass from and to positions, or --remove"))
		}

		if err := pres.Save(args[0]); err != nil {
			fatal("Failed to save presentation", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
	reorderCmd.Flags().IntVar(&reorderRemove, "remove", 0, "Remove the slide at this position instead of moving")
}
