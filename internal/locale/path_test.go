package locale

import (
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	got := Path("/srv/app", "config/locales", "client", "fr")
	want := filepath.Join("/srv/app", "config/locales", "client.fr.yml")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestTargets(t *testing.T) {
	targets := Targets("/b", []string{"d1", "d2"}, []string{"client", "server"}, []string{"de", "fr"})
	if len(targets) != 8 {
		t.Fatalf("expected 8 targets, got %d", len(targets))
	}

	first, last := targets[0], targets[len(targets)-1]
	if first.Dir != "d1" || first.Prefix != "client" || first.Language != "de" {
		t.Errorf("unexpected first target %+v", first)
	}
	if last.Dir != "d2" || last.Prefix != "server" || last.Language != "fr" {
		t.Errorf("unexpected last target %+v", last)
	}
	if last.Path != filepath.Join("/b", "d2", "server.fr.yml") {
		t.Errorf("last.Path = %q", last.Path)
	}
}

func TestTargets_NoLanguages(t *testing.T) {
	if got := Targets("/b", []string{"d"}, []string{"p"}, nil); len(got) != 0 {
		t.Errorf("expected no targets, got %d", len(got))
	}
}
