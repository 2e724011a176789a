// ABOUTME: SQLite fixture store persists the latest fixture list across restarts
// ABOUTME: ReplaceAll swaps the whole list inside one transaction so readers never see a partial refresh

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
)

// FixtureStore implements FixtureStorage using SQLite
type FixtureStore struct {
	db       *sql.DB
	filePath string
}

// NewFixtureStore opens (or creates) the database at filePath
func NewFixtureStore(filePath string) (*FixtureStore, error) {
	if filePath == "" {
		filePath = "fixtures.db"
	}

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &FixtureStore{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the fixtures table if it doesn't exist
func (s *FixtureStore) initSchema() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}

	query := `
		CREATE TABLE IF NOT EXISTS fixtures (
			id TEXT PRIMARY KEY,
			kickoff INTEGER NOT NULL,
			opponent TEXT NOT NULL,
			home_team TEXT NOT NULL,
			away_team TEXT NOT NULL,
			competition TEXT NOT NULL,
			is_home INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_fixtures_kickoff ON fixtures(kickoff);
	`

	_, err := s.db.Exec(query)
	return err
}

// ReplaceAll deletes every stored fixture and inserts the given ones atomically
func (s *FixtureStore) ReplaceAll(ctx context.Context, fixtures []domain.Fixture) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM fixtures"); err != nil {
		return fmt.Errorf("failed to clear fixtures: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO fixtures (id, kickoff, opponent, home_team, away_team, competition, is_home)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range fixtures {
		if err = f.Validate(); err != nil {
			return coreerrors.WrapError(err, fmt.Sprintf("invalid fixture %q", f.ID))
		}
		if _, err = stmt.ExecContext(ctx, f.ID, f.Date.Unix(), f.Opponent, f.HomeTeam, f.AwayTeam, f.Competition, f.IsHome); err != nil {
			return fmt.Errorf("failed to insert fixture %s: %w", f.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List returns every stored fixture, newest first
func (s *FixtureStore) List(ctx context.Context) ([]domain.Fixture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kickoff, opponent, home_team, away_team, competition, is_home
		FROM fixtures ORDER BY kickoff DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	defer rows.Close()

	fixtures := make([]domain.Fixture, 0)
	for rows.Next() {
		f, err := scanFixture(rows)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, *f)
	}

	return fixtures, rows.Err()
}

// Get retrieves a fixture by ID
func (s *FixtureStore) Get(ctx context.Context, id string) (*domain.Fixture, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, kickoff, opponent, home_team, away_team, competition, is_home
		FROM fixtures WHERE id = ?
	`, id)

	f, err := scanFixture(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &coreerrors.NotFoundError{Resource: "fixture", ID: id}
	}
	return f, err
}

// Count returns the number of stored fixtures
func (s *FixtureStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fixtures").Scan(&count)
	return count, err
}

// Close closes the database connection
func (s *FixtureStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFixture(row scanner) (*domain.Fixture, error) {
	var (
		f       domain.Fixture
		kickoff int64
	)
	if err := row.Scan(&f.ID, &kickoff, &f.Opponent, &f.HomeTeam, &f.AwayTeam, &f.Competition, &f.IsHome); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan fixture: %w", err)
	}
	f.Date = time.Unix(kickoff, 0).UTC()
	return &f, nil
}
