package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/blogtools/blogbuild/builder"
	"github.com/blogtools/blogbuild/config"
	"github.com/blogtools/blogbuild/markdown"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the blog whenever a source file changes",
	Long: `The watch command performs an initial build, then watches the
source directory and the page template for changes and re-runs the
full build automatically. Every rebuild is a complete pass; nothing
is rebuilt incrementally.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Printf("Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		conv := markdown.New(cfg.HighlightStyle)
		if err := conv.Verify(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: markdown conversion is unavailable: %v\n", err)
			os.Exit(2)
		}

		b := builder.New(cfg, conv, os.Stdout)

		log.Println("Performing initial build...")
		if _, err := b.Run(); err != nil {
			log.Fatalf("Initial build failed: %v. Please fix issues and try again.", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Fatalf("Failed to create file watcher: %v", err)
		}
		defer watcher.Close()

		go func() {
			// Rebuilds are debounced so a burst of events from one
			// save triggers a single pass.
			var buildTimer *time.Timer
			debounceDuration := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

						if buildTimer != nil {
							buildTimer.Stop()
						}
						buildTimer = time.AfterFunc(debounceDuration, func() {
							log.Println("Rebuilding blog due to changes...")
							if _, err := b.Run(); err != nil {
								log.Printf("Error during rebuild: %v", err)
							} else {
								log.Println("Blog rebuilt successfully.")
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()

		for _, path := range []string{cfg.SourceDir, cfg.TemplateFile} {
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				log.Printf("Path '%s' not found, not watching.", path)
				continue
			}
			if err := watcher.Add(path); err != nil {
				log.Printf("Failed to watch %s: %v", path, err)
			}
		}

		log.Println("Watching for changes. Press Ctrl+C to stop.")
		select {}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
