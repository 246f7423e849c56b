package service

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/marjuksajid/SkillChronicle/internal/db"
	"github.com/marjuksajid/SkillChronicle/internal/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db init failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	return database
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)))
}

func newTrackerServices(t *testing.T) (*AuthService, *GoalService, *SkillService) {
	t.Helper()

	database := newTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(database))
	goals := NewGoalService(repository.NewGoalRepository(database), repository.NewProgressRepository(database))
	skills := NewSkillService(repository.NewSkillRepository(database))

	return auth, goals, skills
}
