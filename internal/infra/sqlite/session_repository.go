package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fardannozami/health-coach/internal/domain"
)

const (
	keyUserID   = "user_id"
	keyUserName = "user_name"
)

// SessionRepository keeps device-local key/value pairs, the registered
// user's identifier and display name among them.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS local_storage (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// Get returns "" and false when key is absent.
func (r *SessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *SessionRepository) Set(ctx context.Context, key, value string) error {
	return set(ctx, r.db, key, value)
}

func (r *SessionRepository) Load(ctx context.Context) (*domain.Session, error) {
	userID, ok, err := r.Get(ctx, keyUserID)
	if err != nil {
		return nil, err
	}
	if !ok || userID == "" {
		return nil, nil
	}

	name, _, err := r.Get(ctx, keyUserName)
	if err != nil {
		return nil, err
	}

	return &domain.Session{UserID: userID, Name: name}, nil
}

func (r *SessionRepository) Save(ctx context.Context, s domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := set(ctx, tx, keyUserID, s.UserID); err != nil {
		return fmt.Errorf("save %s: %w", keyUserID, err)
	}
	if err := set(ctx, tx, keyUserName, s.Name); err != nil {
		return fmt.Errorf("save %s: %w", keyUserName, err)
	}
	return tx.Commit()
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key IN (?, ?)`, keyUserID, keyUserName)
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func set(ctx context.Context, db execer, key, value string) error {
	query := `
		INSERT INTO local_storage (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := db.ExecContext(ctx, query, key, value)
	return err
}
