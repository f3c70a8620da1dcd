package files

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"deepgram-transcriber/internal/app/model"
)

// StagedFile is an upload copied to local storage for the lifetime of one request
type StagedFile struct {
	Path string
	Info model.FileInfo
}

// Cleanup removes the staged file. It is safe to call more than once.
func (s *StagedFile) Cleanup() error {
	if s == nil || s.Path == "" {
		return nil
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove staged file: %w", err)
	}
	return nil
}

// EnsureDir creates dir if it does not exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// StageUpload copies src into a uniquely named file under dir, keeping the
// original extension so the format can still be derived from the path. The
// SHA-256 of the content is recorded in Info.Hash.
// Concurrent callers never share a path. An empty dir means os.TempDir().
func StageUpload(dir string, src io.Reader, originalName string) (*StagedFile, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	f, err := os.CreateTemp(dir, "upload-"+uuid.NewString()+"-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}

	staged := &StagedFile{Path: f.Name()}

	// Hash while copying so the staged file is read only by the provider
	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(f, hash), src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = staged.Cleanup()
		return nil, fmt.Errorf("failed to write staging file: %w", err)
	}

	stat, err := os.Stat(staged.Path)
	if err != nil {
		_ = staged.Cleanup()
		return nil, fmt.Errorf("failed to stat staging file: %w", err)
	}

	staged.Info = model.FileInfo{
		FullPath: staged.Path,
		Name:     filepath.Base(originalName),
		Size:     size,
		Hash:     hex.EncodeToString(hash.Sum(nil)),
		ModTime:  stat.ModTime(),
	}
	return staged, nil
}
