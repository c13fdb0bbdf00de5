// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-reporting R2 (fix application);
//
//	docs/ARCHITECTURE § Reporting.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Apply deletes the removal lines from the file at path. Each line is
// verified to still spell its include directive before anything is
// written, so a file edited since the analysis is left untouched. The
// write is atomic: a temp file in the same directory, then a rename.
func Apply(path string, removals []Removal) error {
	if len(removals) == 0 {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	lines := strings.SplitAfter(string(content), "\n")

	remove := make(map[int]bool, len(removals))
	for _, rm := range removals {
		if rm.Line < 1 || rm.Line > len(lines) {
			return fmt.Errorf("%s:%d: include moved, no fix applied", path, rm.Line)
		}
		line := lines[rm.Line-1]
		if !strings.Contains(line, "#") || !strings.Contains(line, "include") ||
			!strings.Contains(line, rm.Directive) {
			return fmt.Errorf("%s:%d: expected include of %s, no fix applied",
				path, rm.Line, rm.Directive)
		}
		remove[rm.Line] = true
	}

	var b strings.Builder
	for i, line := range lines {
		if remove[i+1] {
			continue
		}
		b.WriteString(line)
	}
	return writeAtomic(path, []byte(b.String()))
}

// writeAtomic writes content to path via a temp file and rename,
// preserving the original permissions.
func writeAtomic(path string, content []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".include-audit-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	success = true
	return nil
}
