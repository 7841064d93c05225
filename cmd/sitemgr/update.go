package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fieldnote.dev/consultant-site/internal/gitops"
	"fieldnote.dev/consultant-site/internal/manager"
)

var updateCmd = &cobra.Command{
	Use:   "update [payload-file]",
	Short: "Apply a scripted update payload (file or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}

		payload, err := manager.DecodePayload(data)
		if err != nil {
			return err
		}

		result, err := newManager().ApplyUpdate(payload)
		if err != nil {
			return err
		}
		printResult(result)
		return maybeGit(cmd, result.File, fmt.Sprintf("AI update: %s (%s)", result.File, result.Operation))
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func maybeGit(cmd *cobra.Command, file, message string) error {
	if !gitAfter {
		return nil
	}
	result, err := gitops.StageCommitPush(cmd.Context(), repoRoot(), []string{"content/" + file}, message)
	if err != nil {
		return err
	}
	printResult(map[string]any{"git": result})
	return nil
}
