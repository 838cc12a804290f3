package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-board/internal/codec"
	"github.com/rxtech-lab/argo-board/internal/logger"
	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// FileStorage stores each board as a JSON file in a directory, one file per
// board name. Writes go through a temp file and rename so a crashed save
// never leaves a half-written document behind.
type FileStorage struct {
	dir    string
	codec  *codec.Codec
	logger *logger.Logger
}

// NewFileStorage creates a file-backed storage rooted at dir, creating the
// directory if needed.
func NewFileStorage(dir string, log *logger.Logger) (*FileStorage, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeStorageUnavailable, err, "failed to create storage directory %s", dir)
	}

	return &FileStorage{
		dir:    dir,
		codec:  codec.NewCodec(log),
		logger: log,
	}, nil
}

func (s *FileStorage) SaveBoard(name string, board types.Board) error {
	blob, err := s.codec.Encode(board)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to encode board %s", name)
	}

	path := s.boardPath(name)

	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf(".%s-*.tmp", name))
	if err != nil {
		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to create temp file for board %s", name)
	}

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to write board %s", name)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to close temp file for board %s", name)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to replace board file %s", path)
	}

	return nil
}

func (s *FileStorage) LoadBoard(name string) (types.Board, error) {
	blob, err := os.ReadFile(s.boardPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return types.NewBoard(), nil
		}

		s.logger.Warn("failed to read board file, falling back to empty board",
			zap.String("name", name),
			zap.Error(err))

		return types.NewBoard(), errors.Wrapf(errors.ErrCodeStorageLoadFailed, err, "failed to read board %s", name)
	}

	return s.codec.Decode(blob), nil
}

func (s *FileStorage) ClearBoard(name string) error {
	if err := os.Remove(s.boardPath(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(errors.ErrCodeStorageClearFailed, err, "failed to remove board %s", name)
	}

	return nil
}

// ListBoards returns the names of all saved boards in lexical order.
func (s *FileStorage) ListBoards() ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorageLoadFailed, "failed to list boards", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		base := filepath.Base(entry)
		names = append(names, base[:len(base)-len(".json")])
	}

	return names, nil
}

func (s *FileStorage) boardPath(name string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", name))
}
