// Package mcptool exposes the content manager as Model Context Protocol
// tools over stdio, so editor agents can edit the site safely.
package mcptool

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"fieldnote.dev/consultant-site/internal/gitops"
	"fieldnote.dev/consultant-site/internal/manager"
)

// Server wires the manager into an MCP server.
type Server struct {
	mgr      *manager.Manager
	log      *zap.Logger
	repoRoot string
}

// New builds the tool server. repoRoot is used for the optional git step.
func New(mgr *manager.Manager, log *zap.Logger, repoRoot string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{mgr: mgr, log: log, repoRoot: repoRoot}
}

// updateArgs mirrors the update payload. The Inspector wraps arguments as
// {"payload": {...}}; both shapes are accepted.
type updateArgs struct {
	File      string         `json:"file,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Content   map[string]any `json:"content,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type rollbackArgs struct {
	File    string         `json:"file,omitempty"`
	Backup  string         `json:"backup,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// toolResult carries the manager result plus the optional git outcome.
type toolResult struct {
	manager.Result
	Error string         `json:"error,omitempty"`
	Git   *gitops.Result `json:"git,omitempty"`
}

// Run serves the tools over stdio until the context ends. Nothing but
// protocol frames may touch stdout; all logging goes to stderr.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "consultant-site-manager",
		Version: "0.2.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name: "update_website_content",
		Description: "Safely update website content JSON. Payload: {file: \"site.json\", " +
			"operation: replace|append|delete, content: {...}}. Validates against the " +
			"content schema and creates a backup before writing.",
	}, s.updateTool)

	mcp.AddTool(server, &mcp.Tool{
		Name: "rollback_website_content",
		Description: "Rollback a website content JSON file to a previous backup. Payload: " +
			"{file: \"site.json\", backup: \"<backup filename>\"} (backup optional; latest " +
			"when omitted).",
	}, s.rollbackTool)

	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) updateTool(ctx context.Context, _ *mcp.CallToolRequest, args updateArgs) (*mcp.CallToolResult, any, error) {
	payload := manager.Payload{File: args.File, Operation: args.Operation, Content: args.Content}
	inner, err := unwrapPayload(args.Payload, args.File)
	if err != nil {
		return errorResult(err), nil, nil
	}
	if inner != nil {
		payload = *inner
	}

	result, err := s.mgr.ApplyUpdate(payload)
	if err != nil {
		return errorResult(err), nil, nil
	}
	out := toolResult{Result: result}
	s.maybeGit(ctx, &out, "AI update: "+result.File+" ("+result.Operation+")")
	return okResult(out), nil, nil
}

func (s *Server) rollbackTool(ctx context.Context, _ *mcp.CallToolRequest, args rollbackArgs) (*mcp.CallToolResult, any, error) {
	file, backup := args.File, args.Backup
	if len(args.Payload) > 0 && file == "" {
		for key := range args.Payload {
			switch key {
			case "file", "backup":
			default:
				return errorResult(manager.UpdateError("unexpected payload key: " + key)), nil, nil
			}
		}
		file, _ = args.Payload["file"].(string)
		backup, _ = args.Payload["backup"].(string)
	}

	result, err := s.mgr.RestoreBackup(file, backup)
	if err != nil {
		return errorResult(err), nil, nil
	}
	out := toolResult{Result: result}
	s.maybeGit(ctx, &out, "AI rollback: "+result.File)
	return okResult(out), nil, nil
}

// unwrapPayload handles the Inspector's {"payload": {...}} argument shape.
// Keys beyond file/operation/content are rejected, not dropped.
func unwrapPayload(wrapped map[string]any, file string) (*manager.Payload, error) {
	if len(wrapped) == 0 || file != "" {
		return nil, nil
	}
	p := manager.Payload{}
	for key, value := range wrapped {
		switch key {
		case "file":
			p.File, _ = value.(string)
		case "operation":
			p.Operation, _ = value.(string)
		case "content":
			p.Content, _ = value.(map[string]any)
		default:
			return nil, manager.UpdateError("unexpected payload key: " + key)
		}
	}
	return &p, nil
}

// maybeGit stages and pushes the changed file when AUTO_GIT_PUSH is set.
func (s *Server) maybeGit(ctx context.Context, out *toolResult, message string) {
	if !autoGitPush() {
		return
	}
	git, err := gitops.StageCommitPush(ctx, s.repoRoot, []string{"content/" + out.File}, message)
	if err != nil {
		s.log.Warn("git push failed", zap.Error(err))
		out.Git = &gitops.Result{Status: "error"}
		return
	}
	out.Git = &git
}

func autoGitPush() bool {
	switch strings.TrimSpace(os.Getenv("AUTO_GIT_PUSH")) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	}
	return false
}

// errorResult reports rejected updates as tool results, not protocol
// failures, so agents can read and correct them.
func errorResult(err error) *mcp.CallToolResult {
	var ue manager.UpdateError
	if !errors.As(err, &ue) {
		err = errors.New("unexpected error: " + err.Error())
	}
	return okResult(toolResult{Result: manager.Result{Status: "error"}, Error: err.Error()})
}

func okResult(out toolResult) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(out, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
