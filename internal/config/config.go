// Package config loads the site server configuration from an optional YAML
// file; flags and environment fill the gaps.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config drives the site server.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// Content is the content document source: a local path or an http(s)
	// URL.
	Content string `yaml:"content"`
	// Page is the host page markup file.
	Page string `yaml:"page"`
	// AssetsDir holds static assets served under /assets/.
	AssetsDir string `yaml:"assets_dir"`
}

// Default returns the conventional layout rooted at the working directory.
func Default() Config {
	port := os.Getenv("SITE_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	return Config{
		Addr:      ":" + port,
		Content:   "content/site.json",
		Page:      "public/index.html",
		AssetsDir: "public/assets",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
