package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fieldnote.dev/consultant-site/internal/chat"
	"fieldnote.dev/consultant-site/internal/manager"
)

var (
	chatModel string
	chatHost  string
	chatNoLLM bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Edit site content through natural-language instructions",
	Long: `Interactive loop: each instruction is converted into an update payload
by a local OpenAI-compatible model and applied. With --no-llm, paste
payload JSON directly. Type 'exit' to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		model := chatModel
		if model == "" {
			model = v.GetString("model")
		}
		host := chatHost
		if host == "" {
			host = v.GetString("host")
		}
		client := chat.New(chat.Options{Model: model, BaseURL: host})
		mgr := newManager()

		fmt.Fprintln(os.Stderr, "Site content manager (local). Type 'exit' to quit.")
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(os.Stderr, "> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if low := strings.ToLower(line); low == "exit" || low == "quit" {
				break
			}
			if err := handleInstruction(cmd, client, mgr, line); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		}
		return scanner.Err()
	},
}

func handleInstruction(cmd *cobra.Command, client *chat.Client, mgr *manager.Manager, line string) error {
	var payload manager.Payload
	if chatNoLLM {
		var err error
		payload, err = manager.DecodePayload([]byte(line))
		if err != nil {
			return err
		}
	} else {
		var err error
		payload, err = client.Payload(cmd.Context(), line)
		if err != nil {
			return err
		}
	}

	result, err := mgr.ApplyUpdate(payload)
	if err != nil {
		return err
	}
	printResult(result)
	return maybeGit(cmd, result.File, fmt.Sprintf("AI update: %s (%s)", result.File, result.Operation))
}

func init() {
	v.SetDefault("model", chat.DefaultModel)
	v.SetDefault("host", chat.DefaultBaseURL)
	chatCmd.Flags().StringVar(&chatModel, "model", "", "model name (default from SITEMGR_MODEL)")
	chatCmd.Flags().StringVar(&chatHost, "host", "", "OpenAI-compatible base URL (default from SITEMGR_HOST)")
	chatCmd.Flags().BoolVar(&chatNoLLM, "no-llm", false, "paste payload JSON manually")
	rootCmd.AddCommand(chatCmd)
}
