package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/angelmondragon/zencrm-backend/pkg/migrate"
)

func TestCoreMigrationContainsSchemas(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_core_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no core migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS contacts",
		"CREATE TABLE IF NOT EXISTS interactions",
		"CREATE TABLE IF NOT EXISTS tasks",
		"CREATE TABLE IF NOT EXISTS deals",
		"CREATE UNIQUE INDEX IF NOT EXISTS users_email_key",
		"CREATE INDEX IF NOT EXISTS idx_contacts_owner_id",
		"CREATE INDEX IF NOT EXISTS idx_interactions_contact_id",
		"CREATE INDEX IF NOT EXISTS idx_interactions_user_id",
		"CREATE INDEX IF NOT EXISTS idx_deals_owner_id",
		"CREATE INDEX IF NOT EXISTS idx_deals_stage",
		"user_id uuid NOT NULL REFERENCES users (id)",
		"owner_id uuid NOT NULL REFERENCES users (id)",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
