package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/migrations"
)

const credentialsTable = "credentials"

// sqliteProvider stores the token in the credentials table of a local
// SQLite database.
type sqliteProvider struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteProvider opens the database file at path, creating it when
// missing, and applies pending migrations.
func NewSQLiteProvider(ctx context.Context, path string, log *logger.Logger) (Provider, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewSQLiteProvider").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteProvider").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteProvider").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteProvider").Msg("connected to database successfully")

	return &sqliteProvider{db: conn, logger: log}, nil
}

func (s *sqliteProvider) Get() (string, error) {
	query, args, err := sq.Select("value").
		From(credentialsTable).
		Where(sq.Eq{"key": TokenKey}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(context.Background(), query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteProvider.Get").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sqliteProvider) Set(token string) error {
	query, args, err := sq.Insert(credentialsTable).
		Columns("key", "value", "updated_at").
		Values(TokenKey, token, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(context.Background(), query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteProvider.Set").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteProvider) Clear() error {
	query, args, err := sq.Delete(credentialsTable).
		Where(sq.Eq{"key": TokenKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(context.Background(), query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteProvider.Clear").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteProvider) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
