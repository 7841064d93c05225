package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListBackups returns backup filenames for a content file, newest first. The
// UTC stamp in the name sorts lexicographically.
func (m *Manager) ListBackups(file string) ([]string, error) {
	if file != AllowedFile {
		return nil, updateErrf("invalid or unsupported file")
	}
	entries, err := os.ReadDir(m.BackupsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("manager: read backups dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, file+".") || !strings.HasSuffix(name, ".bak") {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// RestoreBackup replaces a content file with a previous backup. An empty
// backup name restores the latest. The restored document is validated and
// the current file is backed up before it is overwritten.
func (m *Manager) RestoreBackup(file, backup string) (Result, error) {
	path, err := m.allowedPath(file)
	if err != nil {
		return Result{}, err
	}
	available, err := m.ListBackups(file)
	if err != nil {
		return Result{}, err
	}
	if len(available) == 0 {
		return Result{}, updateErrf("no backups found for %s", file)
	}

	chosen := backup
	if chosen == "" {
		chosen = available[0]
	} else {
		// Backup must be a filename from the backups directory, never a path.
		if filepath.Base(chosen) != chosen {
			return Result{}, updateErrf("backup must be a filename, not a path")
		}
		if !strings.HasPrefix(chosen, file+".") || !strings.HasSuffix(chosen, ".bak") {
			return Result{}, updateErrf("backup filename does not match target file")
		}
		found := false
		for _, name := range available {
			if name == chosen {
				found = true
				break
			}
		}
		if !found {
			return Result{}, updateErrf("backup not found")
		}
	}

	restored, err := readJSON(filepath.Join(m.BackupsDir(), chosen))
	if err != nil {
		return Result{}, err
	}
	if err := validateDocument(restored); err != nil {
		return Result{}, err
	}

	currentBackup, err := m.backupFile(path)
	if err != nil {
		return Result{}, err
	}
	if err := writeJSON(path, restored); err != nil {
		return Result{}, err
	}
	return Result{
		Status:          "ok",
		File:            file,
		RestoredFrom:    chosen,
		BackupOfCurrent: currentBackup,
	}, nil
}
