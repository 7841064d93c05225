package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fieldnote.dev/consultant-site/internal/config"
	"fieldnote.dev/consultant-site/internal/logging"
)

func main() {
	var (
		cfgPath   string
		addr      string
		contentAt string
		pagePath  string
		assetsDir string
	)
	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	flag.StringVar(&contentAt, "content", "", "content document path or URL (overrides config)")
	flag.StringVar(&pagePath, "page", "", "host page file (overrides config)")
	flag.StringVar(&assetsDir, "assets", "", "static assets directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if contentAt != "" {
		cfg.Content = contentAt
	}
	if pagePath != "" {
		cfg.Page = pagePath
	}
	if assetsDir != "" {
		cfg.AssetsDir = assetsDir
	}

	logger, err := logging.New()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	handler, err := newRouter(cfg, logger)
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", cfg.Addr), zap.String("content", cfg.Content))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
}
