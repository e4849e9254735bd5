package sessionfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/fsm-go/internal/core/domain"
)

// emptyDocument is written when the file does not exist yet.
const emptyDocument = "{}\n"

const indent = "    "

// File is a JSON-file backed session store.
type File struct {
	path string
}

// New creates a store for the file at path. Nothing is touched on disk.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the location of the sessions file.
func (f *File) Path() string {
	return f.path
}

// Ensure creates the file (and its directory) with an empty mapping if
// it does not exist. It reports whether the file was created.
func (f *File) Ensure() (bool, error) {
	if _, err := os.Stat(f.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, domain.ErrStoreIO.WithDetails(f.path).WithCause(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0750); err != nil {
		return false, domain.ErrStoreIO.WithDetails(f.path).WithCause(err)
	}
	if err := os.WriteFile(f.path, []byte(emptyDocument), 0644); err != nil {
		return false, domain.ErrStoreIO.WithDetails(f.path).WithCause(err)
	}
	return true, nil
}

// Load reads the whole store, creating the file first if needed.
func (f *File) Load() (domain.Sessions, error) {
	if _, err := f.Ensure(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, domain.ErrStoreIO.WithDetails(f.path).WithCause(err)
	}

	sessions := make(domain.Sessions)
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, domain.ErrStoreIO.WithDetails(f.path).WithCause(fmt.Errorf("parse: %w", err))
	}
	if sessions == nil {
		// A literal null document.
		sessions = make(domain.Sessions)
	}
	return sessions, nil
}

// Save replaces the file content with sessions.
func (f *File) Save(sessions domain.Sessions) error {
	data, err := Marshal(sessions)
	if err != nil {
		return domain.ErrStoreIO.WithDetails(f.path).WithCause(err)
	}
	if err := writeFileAtomic(f.path, data); err != nil {
		return domain.ErrStoreIO.WithDetails(f.path).WithCause(err)
	}
	return nil
}

// Marshal renders sessions the way they are stored: 4-space indentation,
// URLs unescaped and no trailing newline.
func Marshal(sessions domain.Sessions) ([]byte, error) {
	if sessions == nil {
		sessions = domain.Sessions{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(sessions); err != nil {
		return nil, fmt.Errorf("marshal sessions: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeFileAtomic writes data to a temp file next to path and renames it.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tmp.Name()
	defer os.Remove(tempPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
