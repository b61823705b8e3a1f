package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps files under baseDir. Paths that resolve outside it are
// rejected with ErrInvalidPath.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage resolves baseDir to an absolute path. The directory does
// not need to exist until something is read or written.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &LocalStorage{baseDir: abs}, nil
}

func (s *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case err != nil:
		if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadFile, err)
	}
	return data, nil
}

// Write replaces the file at path atomically: data goes to a temporary file
// in the same directory, which is then renamed over the target. Readers see
// either the old or the new content, never a partial file.
func (s *LocalStorage) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs, err := s.resolvePath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(abs)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToWriteFile, err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	abs, err := s.resolvePath(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrFailedToStatPath, err)
	}
	return !info.IsDir(), nil
}

// resolvePath joins path onto baseDir and checks the result stays inside it.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	root := s.baseDir
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if !strings.HasPrefix(abs, root) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return abs, nil
}
