package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blogtools/blogbuild/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "blogbuild",
	Short: "blogbuild - convert Markdown blog posts to static HTML",
	Long: `blogbuild converts Markdown posts with optional frontmatter into
static HTML pages and keeps the blog listing page up to date.
Invoked without arguments it runs a full build.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBuild()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file with directory and path overrides")
}
