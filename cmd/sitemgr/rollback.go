package main

import (
	"github.com/spf13/cobra"

	"fieldnote.dev/consultant-site/internal/manager"
)

var rollbackBackup string

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List available backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		names, err := newManager().ListBackups(manager.AllowedFile)
		if err != nil {
			return err
		}
		printResult(map[string]any{"file": manager.AllowedFile, "backups": names})
		return nil
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Restore the content document from a backup",
	Long: `Restore site.json from a backup under content/.backups. Without
--backup the latest backup is restored. The current file is backed up
before it is overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := newManager().RestoreBackup(manager.AllowedFile, rollbackBackup)
		if err != nil {
			return err
		}
		printResult(result)
		return maybeGit(cmd, result.File, "AI rollback: "+result.File)
	},
}

func init() {
	rollbackCmd.Flags().StringVar(&rollbackBackup, "backup", "", "backup filename to restore (default: latest)")
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(rollbackCmd)
}
