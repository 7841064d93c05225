package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fieldnote.dev/consultant-site/internal/content"
	"fieldnote.dev/consultant-site/internal/render"
)

var (
	previewPage  string
	previewOut   string
	previewWatch bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the current content document to a static HTML file",
	Long: `Runs the same load → render pass as the site server and writes the
result to a file, so edits can be checked before pushing. --watch keeps
re-rendering whenever the content document changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		contentPath := filepath.Join(v.GetString("content_dir"), "site.json")
		if err := renderPreview(cmd.Context(), previewPage, contentPath, previewOut); err != nil {
			return err
		}
		logger.Info("preview written", zap.String("out", previewOut))
		if !previewWatch {
			return nil
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()
		// Watch the directory: editors replace files rather than write in
		// place, which drops watches on the file itself.
		if err := watcher.Add(filepath.Dir(contentPath)); err != nil {
			return fmt.Errorf("watch %s: %w", contentPath, err)
		}
		logger.Info("watching for content changes", zap.String("path", contentPath))

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != filepath.Base(contentPath) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				// Give the writer a moment to finish the replace.
				time.Sleep(100 * time.Millisecond)
				if err := renderPreview(cmd.Context(), previewPage, contentPath, previewOut); err != nil {
					logger.Warn("re-render failed", zap.Error(err))
					continue
				}
				logger.Info("preview re-rendered", zap.String("out", previewOut))
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watch error", zap.Error(err))
			}
		}
	},
}

func renderPreview(ctx context.Context, pagePath, contentPath, outPath string) error {
	markup, err := os.ReadFile(pagePath)
	if err != nil {
		return fmt.Errorf("read host page: %w", err)
	}
	page, err := render.ParsePage(bytes.NewReader(markup))
	if err != nil {
		return err
	}
	render.SetYear(page, time.Now())

	doc, err := content.NewLoader(contentPath).Load(ctx)
	if err != nil {
		return err
	}
	render.Paint(page, doc)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	var buf bytes.Buffer
	if err := page.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

func init() {
	previewCmd.Flags().StringVar(&previewPage, "page", "public/index.html", "host page markup file")
	previewCmd.Flags().StringVar(&previewOut, "out", "preview/index.html", "output file")
	previewCmd.Flags().BoolVar(&previewWatch, "watch", false, "re-render when the content document changes")
	rootCmd.AddCommand(previewCmd)
}
