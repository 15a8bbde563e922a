package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/phrazzld/trackascholar/internal/platform/logger"
	"github.com/phrazzld/trackascholar/internal/store"
)

// FileStorage reads and writes the applicant document at a fixed path.
type FileStorage struct {
	path   string
	logger *slog.Logger
}

// NewFileStorage creates a FileStorage for the document at path.
// If logger is nil, a default logger will be used.
func NewFileStorage(path string, logger *slog.Logger) *FileStorage {
	if path == "" {
		panic("path cannot be empty")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FileStorage{
		path:   path,
		logger: logger.With(slog.String("component", "file_storage")),
	}
}

// Path returns the location of the data file.
func (s *FileStorage) Path() string {
	return s.path
}

// ReadRegistry loads the registry from the data file.
// Returns ErrNoData if the file does not exist, and the errors of ToModel if
// its content is invalid.
func (s *FileStorage) ReadRegistry(ctx context.Context) (*store.Registry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	r, err := ToModel(data)
	if err != nil {
		return nil, err
	}

	log.Debug("registry loaded", slog.Int("applicant_count", r.Len()))
	return r, nil
}

// SaveRegistry serializes r and writes it to the data file.
func (s *FileStorage) SaveRegistry(ctx context.Context, r store.ReadOnlyRegistry) error {
	data, err := Serialize(r)
	if err != nil {
		return err
	}
	return s.WriteDocument(ctx, data)
}

// WriteDocument replaces the data file with data. The write goes to a
// temporary file in the same directory which is then renamed over the data
// file, so readers never observe a partially written document.
func (s *FileStorage) WriteDocument(ctx context.Context, data []byte) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary data file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temporary data file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temporary data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	log.Debug("data file written", slog.Int("bytes", len(data)))
	return nil
}
