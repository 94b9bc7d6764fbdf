package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fardannozami/health-coach/internal/domain"
	"github.com/fardannozami/health-coach/internal/infra/sqlite"
)

// =============================================================================
// SQLITE SESSION REPOSITORY TESTS
// =============================================================================
//
// Runs against an in-memory database; every test gets a fresh one.
//
// =============================================================================

func setupTestDB(t *testing.T) (*sql.DB, *sqlite.SessionRepository, func()) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	// A second pooled connection would see a different :memory: database.
	db.SetMaxOpenConns(1)

	repo := sqlite.NewSessionRepository(db)
	if err := repo.InitTable(context.Background()); err != nil {
		t.Fatalf("Failed to initialize table: %v", err)
	}

	cleanup := func() {
		db.Close()
	}

	return db, repo, cleanup
}

func TestSessionRepository_Load_Empty(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	s, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s != nil {
		t.Errorf("Expected nil session on a fresh device, got %+v", s)
	}
}

func TestSessionRepository_SaveAndLoad(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := repo.Save(ctx, domain.Session{UserID: "1718000000.123", Name: "Alice"}); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	s, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if s == nil {
		t.Fatal("Expected session to be found")
	}
	if s.UserID != "1718000000.123" {
		t.Errorf("UserID: expected '1718000000.123', got '%s'", s.UserID)
	}
	if s.Name != "Alice" {
		t.Errorf("Name: expected 'Alice', got '%s'", s.Name)
	}
}

func TestSessionRepository_Save_Overwrites(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_ = repo.Save(ctx, domain.Session{UserID: "old", Name: "Old Name"})
	if err := repo.Save(ctx, domain.Session{UserID: "new", Name: "New Name"}); err != nil {
		t.Fatalf("Failed to overwrite session: %v", err)
	}

	s, _ := repo.Load(ctx)
	if s == nil || s.UserID != "new" || s.Name != "New Name" {
		t.Errorf("Expected overwritten session, got %+v", s)
	}
}

func TestSessionRepository_Clear_OnlySessionKeys(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_ = repo.Save(ctx, domain.Session{UserID: "u1", Name: "Bob"})
	if err := repo.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Failed to set unrelated key: %v", err)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear: %v", err)
	}

	s, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s != nil {
		t.Errorf("Expected no session after clear, got %+v", s)
	}
	if _, ok, _ := repo.Get(ctx, "user_name"); ok {
		t.Error("user_name should be removed by Clear")
	}

	theme, ok, _ := repo.Get(ctx, "theme")
	if !ok || theme != "dark" {
		t.Errorf("Unrelated key should survive Clear, got '%s' (present=%v)", theme, ok)
	}
}

func TestSessionRepository_Load_NameMissing(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_ = repo.Set(ctx, "user_id", "u2")

	s, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s == nil || s.UserID != "u2" || s.Name != "" {
		t.Errorf("Expected session with empty name, got %+v", s)
	}
}

func TestSessionRepository_InitTable_Idempotent(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	if err := repo.InitTable(context.Background()); err != nil {
		t.Errorf("Second InitTable should succeed, got %v", err)
	}
}
