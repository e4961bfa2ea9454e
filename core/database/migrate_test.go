package database

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/m3rciful/cockfight/core/logger"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	if err := logger.Init(logger.Settings{Level: "error", Format: "text"}); err != nil {
		t.Fatal(err)
	}
}

func TestMigrateDatabaseURLAcceptsRelativePath(t *testing.T) {
	cases := []string{
		"data/cockfight.db",
		"cockfight.db",
		"/var/lib/cockfight/cockfight.db",
	}
	for _, path := range cases {
		u := migrateDatabaseURL(Config{Path: path})
		parsed, err := url.Parse(u)
		if err != nil {
			t.Errorf("url for path %q does not parse: %v", path, err)
			continue
		}
		if parsed.Scheme != "sqlite3" {
			t.Errorf("url for path %q has scheme %q", path, parsed.Scheme)
		}
		if parsed.Query().Get("_journal_mode") != "WAL" {
			t.Errorf("url for path %q lost driver params: %q", path, u)
		}
	}
}

func TestRunMigrationsRelativeDatabasePath(t *testing.T) {
	initTestLogger(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	migDir := filepath.Join(dir, "migrations")
	if err := os.MkdirAll(migDir, 0o755); err != nil {
		t.Fatal(err)
	}
	up := `CREATE TABLE votes (
	chat_id      INTEGER NOT NULL,
	fight_number INTEGER NOT NULL,
	user_id      INTEGER NOT NULL,
	fighter_name TEXT    NOT NULL,
	PRIMARY KEY (chat_id, fight_number, user_id)
);`
	if err := os.WriteFile(filepath.Join(migDir, "0001_create_votes.up.sql"), []byte(up), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(migDir, "0001_create_votes.down.sql"), []byte("DROP TABLE votes;"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatal(err)
	}

	// The default config ships a relative database path.
	cfg := Config{Path: "data/cockfight.db"}
	if err := RunMigrations(cfg); err != nil {
		t.Fatalf("migrations with a relative database path: %v", err)
	}
	// Second run must be a no-op, not an error.
	if err := RunMigrations(cfg); err != nil {
		t.Fatalf("repeated migration run: %v", err)
	}
}
