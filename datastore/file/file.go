/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package file stores the document as a JSON file on local disk.
package file

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/suparena/filestore/errors"
)

// DefaultPath is the document location used when none is configured.
const DefaultPath = "file.json"

// FileStore implements datastore.DocumentStore over a single file.
type FileStore struct {
	path string
	perm os.FileMode
}

// New returns a FileStore for path. An empty path selects DefaultPath.
func New(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path, perm: 0o644}
}

// Location returns the file path.
func (f *FileStore) Location() string {
	return f.path
}

// Load reads the whole file. A missing file yields a NotFoundError.
func (f *FileStore) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("document", f.path)
		}
		return nil, errors.NewIOError("read", f.path, err)
	}
	return data, nil
}

// Store writes data to a temp file next to the target and renames it into place,
// so a crash mid-write never leaves a truncated document behind.
func (f *FileStore) Store(ctx context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errors.NewIOError("write", f.path, err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIOError("write", f.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(f.perm); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewIOError("write", f.path, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIOError("write", f.path, fmt.Errorf("replace: %w", err))
	}
	return nil
}
