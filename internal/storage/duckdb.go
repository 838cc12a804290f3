package storage

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-board/internal/codec"
	"github.com/rxtech-lab/argo-board/internal/logger"
	"github.com/rxtech-lab/argo-board/internal/types"
	"github.com/rxtech-lab/argo-board/pkg/errors"
)

// DuckDBStorage keeps a library of named boards in a DuckDB database. Use
// ":memory:" as the path for an ephemeral library.
type DuckDBStorage struct {
	db     *sql.DB
	codec  *codec.Codec
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

func NewDuckDBStorage(path string, log *logger.Logger) (*DuckDBStorage, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeStorageUnavailable, err, "failed to open board database %s", path)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS boards (
			name TEXT PRIMARY KEY,
			document TEXT,
			updated_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeStorageUnavailable, "failed to create boards table", err)
	}

	return &DuckDBStorage{
		db:     db,
		codec:  codec.NewCodec(log),
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (s *DuckDBStorage) SaveBoard(name string, board types.Board) error {
	blob, err := s.codec.Encode(board)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to encode board %s", name)
	}

	query := s.sq.
		Insert("boards").
		Columns("name", "document", "updated_at").
		Values(name, string(blob), time.Now().UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to build save query for board %s", name)
	}

	if _, err := s.db.Exec(sqlStr, args...); err != nil {
		return errors.Wrapf(errors.ErrCodeStorageSaveFailed, err, "failed to save board %s", name)
	}

	return nil
}

func (s *DuckDBStorage) LoadBoard(name string) (types.Board, error) {
	query := s.sq.
		Select("document").
		From("boards").
		Where(squirrel.Eq{"name": name})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return types.NewBoard(), errors.Wrapf(errors.ErrCodeStorageLoadFailed, err, "failed to build load query for board %s", name)
	}

	var document string
	if err := s.db.QueryRow(sqlStr, args...).Scan(&document); err != nil {
		if err == sql.ErrNoRows {
			return types.NewBoard(), nil
		}

		s.logger.Warn("failed to load board, falling back to empty board",
			zap.String("name", name),
			zap.Error(err))

		return types.NewBoard(), errors.Wrapf(errors.ErrCodeStorageLoadFailed, err, "failed to load board %s", name)
	}

	return s.codec.Decode([]byte(document)), nil
}

func (s *DuckDBStorage) ClearBoard(name string) error {
	query := s.sq.
		Delete("boards").
		Where(squirrel.Eq{"name": name})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return errors.Wrapf(errors.ErrCodeStorageClearFailed, err, "failed to build clear query for board %s", name)
	}

	if _, err := s.db.Exec(sqlStr, args...); err != nil {
		return errors.Wrapf(errors.ErrCodeStorageClearFailed, err, "failed to clear board %s", name)
	}

	return nil
}

// ListBoards returns the names of all saved boards in lexical order.
func (s *DuckDBStorage) ListBoards() ([]string, error) {
	query := s.sq.
		Select("name").
		From("boards").
		OrderBy("name")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorageLoadFailed, "failed to build list query", err)
	}

	rows, err := s.db.Query(sqlStr, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorageLoadFailed, "failed to list boards", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorageLoadFailed, "failed to scan board name", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorageLoadFailed, "failed to iterate board names", err)
	}

	return names, nil
}

// Close closes the underlying database.
func (s *DuckDBStorage) Close() error {
	return s.db.Close()
}
