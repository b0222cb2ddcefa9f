// Package filex contains filesystem helpers for the application data
// directory and portfolio image imports.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureDir creates dir (and parents) if it does not exist and returns it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// EnsureSubDir creates a subdirectory under base and returns its full path.
func EnsureSubDir(base, name string) (string, error) {
	return EnsureDir(filepath.Join(base, name))
}

// ImportImage copies the file at srcPath into the "images" subdirectory of
// dataDir under a fresh uuid-based name, preserving the original extension.
// It returns the reference to store on the portfolio row, relative to
// dataDir (e.g. "images/3f1c....png").
func ImportImage(srcPath, dataDir string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	dir, err := EnsureSubDir(dataDir, "images")
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(srcPath)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create image copy: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}

	return filepath.Join("images", name), nil
}
