package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blogtools/blogbuild/builder"
	"github.com/blogtools/blogbuild/config"
	"github.com/blogtools/blogbuild/markdown"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build all blog posts and update the listing page",
	Long: `The build command converts every Markdown file in the source
directory into an HTML page under the output directory, then rewrites
the post list region of the listing page.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBuild()
	},
}

func runBuild() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	conv := markdown.New(cfg.HighlightStyle)
	if err := conv.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: markdown conversion is unavailable: %v\n", err)
		fmt.Fprintln(os.Stderr, "Posts cannot be generated without a working converter.")
		os.Exit(2)
	}

	if _, err := builder.New(cfg, conv, os.Stdout).Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
