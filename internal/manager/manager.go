// Package manager applies scripted edits to the site content document. Every
// write path validates against the embedded schema, takes a timestamped
// backup first, and refuses to touch anything outside the content directory.
package manager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AllowedFile is the only content file the manager will edit.
const AllowedFile = "site.json"

// backupsDirName sits inside the content directory.
const backupsDirName = ".backups"

// UpdateError marks a rejected update: bad payload, schema violation, or an
// unsafe path. Callers report it and keep running.
type UpdateError string

func (e UpdateError) Error() string { return string(e) }

func updateErrf(format string, args ...any) error {
	return UpdateError(fmt.Sprintf(format, args...))
}

// Payload is a scripted content edit.
type Payload struct {
	File      string         `json:"file"`
	Operation string         `json:"operation"`
	Content   map[string]any `json:"content"`
}

// DecodePayload parses payload JSON strictly: keys other than file,
// operation, and content are rejected, not dropped. Every ingest point
// (CLI, chat, MCP) decodes through here.
func DecodePayload(data []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var p Payload
	if err := dec.Decode(&p); err != nil {
		return Payload{}, updateErrf("invalid payload: %v", err)
	}
	return p, nil
}

// Result describes what an update or restore changed.
type Result struct {
	Status          string `json:"status"`
	File            string `json:"file"`
	Operation       string `json:"operation,omitempty"`
	Backup          string `json:"backup,omitempty"`
	RestoredFrom    string `json:"restored_from,omitempty"`
	BackupOfCurrent string `json:"backup_of_current,omitempty"`
}

// Manager edits content files under a single content directory.
type Manager struct {
	contentDir string
	// now is swappable for deterministic backup names in tests.
	now func() time.Time
}

// New constructs a Manager rooted at contentDir.
func New(contentDir string) *Manager {
	contentDir = strings.TrimSpace(contentDir)
	if contentDir == "" {
		contentDir = "content"
	}
	return &Manager{contentDir: contentDir, now: time.Now}
}

// ContentDir returns the managed content directory.
func (m *Manager) ContentDir() string { return m.contentDir }

// BackupsDir returns the backup directory for the content files.
func (m *Manager) BackupsDir() string {
	return filepath.Join(m.contentDir, backupsDirName)
}

// ApplyUpdate validates and applies a payload, backing up the current file
// first.
func (m *Manager) ApplyUpdate(payload Payload) (Result, error) {
	if err := coercePayload(&payload); err != nil {
		return Result{}, err
	}
	path, err := m.allowedPath(payload.File)
	if err != nil {
		return Result{}, err
	}
	current, err := readJSON(path)
	if err != nil {
		return Result{}, err
	}
	if err := validateDocument(current); err != nil {
		return Result{}, err
	}

	updated, err := applyOperation(payload.Operation, current, payload.Content)
	if err != nil {
		return Result{}, err
	}
	if err := validateDocument(updated); err != nil {
		return Result{}, err
	}

	backup, err := m.backupFile(path)
	if err != nil {
		return Result{}, err
	}
	if err := writeJSON(path, updated); err != nil {
		return Result{}, err
	}
	return Result{
		Status:    "ok",
		File:      payload.File,
		Operation: payload.Operation,
		Backup:    backup,
	}, nil
}

func coercePayload(p *Payload) error {
	if p.File != AllowedFile {
		return updateErrf("invalid or unsupported file")
	}
	switch p.Operation {
	case "replace", "append", "delete":
	default:
		return updateErrf("invalid operation")
	}
	if p.Content == nil {
		return updateErrf("content must be an object")
	}
	return nil
}

// allowedPath resolves a content file name and refuses anything that would
// escape the content directory.
func (m *Manager) allowedPath(file string) (string, error) {
	if filepath.Base(file) != file || strings.Contains(file, "..") {
		return "", updateErrf("refusing to access outside content directory")
	}
	path := filepath.Join(m.contentDir, file)
	if _, err := os.Stat(path); err != nil {
		return "", updateErrf("content file does not exist: %s", file)
	}
	return path, nil
}

func (m *Manager) backupFile(path string) (string, error) {
	if err := os.MkdirAll(m.BackupsDir(), 0o755); err != nil {
		return "", fmt.Errorf("manager: create backups dir: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("manager: read %s: %w", path, err)
	}
	stamp := m.now().UTC().Format("20060102T150405Z")
	name := fmt.Sprintf("%s.%s.bak", filepath.Base(path), stamp)
	backup := filepath.Join(m.BackupsDir(), name)
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return "", fmt.Errorf("manager: write backup: %w", err)
	}
	return name, nil
}

func readJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manager: read %s: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, updateErrf("parse %s: %v", path, err)
	}
	return doc, nil
}

func writeJSON(path string, doc map[string]any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("manager: encode %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
