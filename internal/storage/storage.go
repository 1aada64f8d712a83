// Package storage stores uploaded report images on the local disk.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/apperror"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// ImageStore saves validated image files under a base directory and
// hands back the relative path to persist on the report.
type ImageStore struct {
	baseDir  string
	maxBytes int64
	logger   *logrus.Logger
}

func NewImageStore(baseDir string, maxBytes int64, logger *logrus.Logger) (*ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: could not create upload dir %s: %w", baseDir, err)
	}
	return &ImageStore{
		baseDir:  baseDir,
		maxBytes: maxBytes,
		logger:   logger,
	}, nil
}

// Save writes the uploaded content to disk. The stored name is a
// content hash prefix plus a random suffix, so identical filenames
// never collide and user input never reaches the filesystem.
func (s *ImageStore) Save(filename string, size int64, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", apperror.Validation("image", fmt.Sprintf("file type %q not allowed, use .jpg, .jpeg, .png or .webp", ext))
	}
	if size > s.maxBytes {
		return "", apperror.Validation("image", fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxBytes))
	}

	data, err := io.ReadAll(io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("storage: could not read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", apperror.Validation("image", fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxBytes))
	}

	sum := sha256.Sum256(data)
	name := hex.EncodeToString(sum[:8]) + "_" + uuid.NewString()[:8] + ext
	fullPath := filepath.Join(s.baseDir, name)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: could not write %s: %w", fullPath, err)
	}

	s.logger.WithFields(logrus.Fields{
		"path": name,
		"size": len(data),
	}).Debug("Image stored")
	return name, nil
}

// Remove deletes a previously stored image. Missing files are not an
// error.
func (s *ImageStore) Remove(relPath string) error {
	clean := filepath.Base(relPath)
	err := os.Remove(filepath.Join(s.baseDir, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: could not remove %s: %w", clean, err)
	}
	return nil
}
