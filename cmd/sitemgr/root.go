package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"fieldnote.dev/consultant-site/internal/logging"
	"fieldnote.dev/consultant-site/internal/manager"
)

var (
	v      = viper.New()
	logger *zap.Logger

	cfgContentDir string
	cfgRepoRoot   string
	gitAfter      bool
)

var rootCmd = &cobra.Command{
	Use:   "sitemgr",
	Short: "Local manager for the site content document",
	Long: `sitemgr edits the JSON content document that drives the site: scripted
updates, natural-language updates through a local model, timestamped
backups with rollback, an MCP tool server for editor agents, and a static
preview of the rendered page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// .env is optional; missing files are fine.
		_ = godotenv.Load()

		v.SetDefault("content_dir", "content")
		v.SetDefault("repo_root", ".")
		v.SetEnvPrefix("SITEMGR")
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

		if cmd.Flags().Changed("content-dir") {
			v.Set("content_dir", cfgContentDir)
		}
		if cmd.Flags().Changed("repo-root") {
			v.Set("repo_root", cfgRepoRoot)
		}

		var err error
		logger, err = logging.NewStderr()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgContentDir, "content-dir", "content", "content directory holding site.json")
	rootCmd.PersistentFlags().StringVar(&cfgRepoRoot, "repo-root", ".", "repository root for git operations")
	rootCmd.PersistentFlags().BoolVar(&gitAfter, "git", false, "git add/commit/push content changes")
}

func newManager() *manager.Manager {
	return manager.New(v.GetString("content_dir"))
}

func repoRoot() string {
	return v.GetString("repo_root")
}

// printResult writes result JSON to stdout. Logs go to stderr, so scripted
// callers can consume results cleanly.
func printResult(value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	fmt.Println(string(data))
}
