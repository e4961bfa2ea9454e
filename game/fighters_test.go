package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFightersScansRoster(t *testing.T) {
	dir := t.TempDir()
	for _, name := range rosterNames {
		writeFile(t, filepath.Join(dir, name, "image.png"))
		writeFile(t, filepath.Join(dir, name, "telegram-photo.jpg"))
	}
	writeFile(t, filepath.Join(dir, "petro", "presentation.png"))

	reg, err := LoadFighters(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(reg.Fighters()); got != 6 {
		t.Fatalf("loaded %d fighters, want 6", got)
	}

	petro, ok := reg.ByName("petro")
	if !ok {
		t.Fatal("petro not loaded")
	}
	if petro.DisplayName != "Пітух Петро" {
		t.Errorf("display name = %q", petro.DisplayName)
	}
	if petro.PresentationImagePath == "" {
		t.Error("presentation image should be picked up when present")
	}
	if petro.Description == "" {
		t.Error("description should not be empty")
	}

	oleg, _ := reg.ByName("oleg")
	if oleg.PresentationImagePath != "" {
		t.Error("presentation image should be empty when absent")
	}
}

func TestLoadFightersSkipsIncomplete(t *testing.T) {
	dir := t.TempDir()
	// roma has everything, petro lacks the rooster image,
	// oleg lacks a trainer photo, the rest have no directory.
	writeFile(t, filepath.Join(dir, "roma", "image.png"))
	writeFile(t, filepath.Join(dir, "roma", "image copy.png"))
	writeFile(t, filepath.Join(dir, "petro", "telegram-a.jpg"))
	writeFile(t, filepath.Join(dir, "oleg", "image.png"))

	reg, err := LoadFighters(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(reg.Fighters()); got != 1 {
		t.Fatalf("loaded %d fighters, want 1", got)
	}
	if _, ok := reg.ByName("roma"); !ok {
		t.Error("roma should be loaded via the png fallback photo")
	}
}

func TestFindHumanPhotoPrefersTelegram(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "image copy.png"))
	writeFile(t, filepath.Join(dir, "telegram-cloud.jpg"))

	got := findHumanPhoto(dir)
	if filepath.Base(got) != "telegram-cloud.jpg" {
		t.Errorf("findHumanPhoto = %q, want telegram-cloud.jpg", got)
	}
}
