package msgcat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaults(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Msg("auth.login_failed"); got != "Login failed" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Msg("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestOverrideDirWins(t *testing.T) {
	dir := t.TempDir()
	override := "auth:\n  login_failed: \"No se pudo iniciar sesión\"\n"
	if err := os.WriteFile(filepath.Join(dir, "messages.es.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Msg("auth.login_failed"); got != "No se pudo iniciar sesión" {
		t.Fatalf("override not applied: %q", got)
	}
	// untouched keys keep their defaults
	if got := c.Msg("friend.list_failed"); got != "Could not load friends" {
		t.Fatalf("default lost: %q", got)
	}
}

func TestRender(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := c.Render("cli.logged_in", map[string]string{"Nickname": "alice", "Email": "a@example.com"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Logged in as alice <a@example.com>" {
		t.Fatalf("unexpected render: %q", out)
	}
	if _, err := c.Render("missing.key", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}
