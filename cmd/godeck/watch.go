package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/godeck/godeck"
	"github.com/spf13/cobra"
)

var (
	watchOutput string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <outline.yaml>",
	Short: "Rebuild a presentation whenever its outline changes",
	Long: `Watch a YAML outline file and rebuild the output .pptx on every save.
Editors that replace the file on write are handled by watching the parent
directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outlinePath, err := filepath.Abs(args[0])
		if err != nil {
			fatal("Bad outline path", err)
		}

		rebuild := func() {
			data, err := os.ReadFile(outlinePath)
			if err != nil {
				slog.Error("read outline", "error", err)
				return
			}
			outline, err := godeck.ParseOutline(data)
			if err != nil {
				slog.Error("parse outline", "error", err)
				return
			}
			pres, err := godeck.Build(outline, godeck.WithLogger(slog.Default()))
			if err != nil {
				slog.Error("build presentation", "error", err)
				return
			}
			if err := pres.Save(watchOutput); err != nil {
				slog.Error("save presentation", "error", err)
				return
			}
			count := pres.SlideCount()
			fmt.Printf("Rebuilt %s (%d slides)\n", watchOutput, count)
		}

		rebuild()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("Failed to create watcher", err)
		}
		defer watcher.Close()

		// Watch the directory: editors rename over the file on save, which
		// would orphan a watch on the file itself.
		if err := watcher.Add(filepath.Dir(outlinePath)); err != nil {
			fatal("Failed to watch directory", err)
		}
		fmt.Printf("Watching %s\n", outlinePath)

		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != outlinePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				// Debounce: editors fire several events per save.
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(200*time.Millisecond, rebuild)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watch", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "deck.pptx", "Output .pptx path")
}
