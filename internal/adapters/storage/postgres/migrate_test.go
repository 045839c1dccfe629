package postgres

import (
	"reflect"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	in := `
-- comentario
CREATE TABLE a (
    id BIGINT
);

CREATE INDEX idx_a ON a(id);
`
	got := splitStatements(in)
	want := []string{
		"CREATE TABLE a (\n    id BIGINT\n);",
		"CREATE INDEX idx_a ON a(id);",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected statements:\n got: %q\nwant: %q", got, want)
	}
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	b, err := migrationsFS.ReadFile("migrations/001_init.sql")
	if err != nil {
		t.Fatalf("missing embedded migration: %v", err)
	}
	if len(splitStatements(string(b))) < 10 {
		t.Fatalf("expected full schema, got %d statements", len(splitStatements(string(b))))
	}
}
