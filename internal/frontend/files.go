// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package frontend parses one C/C++ translation unit with tree-sitter:
// it resolves and loads included headers, scans preprocessor
// directives, builds the declaration table, and lowers the unit's own
// syntax to the analysis tree model.
// Implements: prd002-frontend R1 (file table), R3 (include
// resolution), R5 (lowering);
//
//	docs/ARCHITECTURE § Front End.
package frontend

import (
	"github.com/petar-djukic/include-audit/pkg/types"
)

// FileSet numbers the files loaded for one unit and answers the
// oracle queries the analysis needs. FileID 0 is reserved for
// "unknown"; the first added file is the unit's main file.
type FileSet struct {
	byPath map[string]types.FileID
	files  []fileInfo
}

type fileInfo struct {
	path    string
	content []byte
	guarded bool
}

// NewFileSet creates an empty file table.
func NewFileSet() *FileSet {
	return &FileSet{byPath: make(map[string]types.FileID)}
}

// Add registers a file's content and returns its ID. Adding the same
// path twice returns the original ID and keeps the original content.
func (fs *FileSet) Add(path string, content []byte) types.FileID {
	if id, ok := fs.byPath[path]; ok {
		return id
	}
	fs.files = append(fs.files, fileInfo{
		path:    path,
		content: content,
		guarded: hasIncludeGuard(content),
	})
	id := types.FileID(len(fs.files))
	fs.byPath[path] = id
	return id
}

// Lookup returns the ID of an already-added path.
func (fs *FileSet) Lookup(path string) (types.FileID, bool) {
	id, ok := fs.byPath[path]
	return id, ok
}

// Content returns a file's bytes, or nil for an unknown ID.
func (fs *FileSet) Content(id types.FileID) []byte {
	if id < 1 || int(id) > len(fs.files) {
		return nil
	}
	return fs.files[id-1].content
}

// IsMainFile reports whether id is the unit's main file.
func (fs *FileSet) IsMainFile(id types.FileID) bool {
	return id == 1 && len(fs.files) > 0
}

// IsBuiltin reports whether id is the predefines sentinel.
func (fs *FileSet) IsBuiltin(id types.FileID) bool {
	return id == types.BuiltinFile
}

// HasIncludeGuard reports whether the file starts with a #ifndef /
// #define prologue or contains #pragma once.
func (fs *FileSet) HasIncludeGuard(id types.FileID) bool {
	if id < 1 || int(id) > len(fs.files) {
		return false
	}
	return fs.files[id-1].guarded
}

// Path returns the file's path, or "" for an unknown ID.
func (fs *FileSet) Path(id types.FileID) string {
	if id < 1 || int(id) > len(fs.files) {
		return ""
	}
	return fs.files[id-1].path
}
