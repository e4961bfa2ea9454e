package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStoreImageRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	got, err := store.LoadImage(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("missing image should load as nil")
	}

	if err := store.SaveImage(1, []byte("png-bytes")); err != nil {
		t.Fatal(err)
	}
	got, err = store.LoadImage(1)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "png-bytes" {
		t.Errorf("image = %q", got)
	}
}

func TestStoreDialogueRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	d := &Dialogue{
		Fighter1:            "petro",
		Fighter1DisplayName: "Пітух Петро",
		Fighter2:            "oleg",
		Fighter2DisplayName: "Пітух Олег",
		FightNumber:         2,
		Messages: Messages{
			OrganizerComment:  "Оце буде бій!",
			OrganizerQuestion: "Готовий?",
		},
	}
	if err := store.SaveDialogue(2, d); err != nil {
		t.Fatal(err)
	}

	got, err := store.LoadDialogue(2)
	if err != nil {
		t.Fatal(err)
	}
	if got.Fighter1DisplayName != "Пітух Петро" || got.FightNumber != 2 {
		t.Errorf("dialogue = %+v", got)
	}
	if got.Messages.OrganizerComment != "Оце буде бій!" {
		t.Errorf("messages = %+v", got.Messages)
	}

	// The persisted record uses the stable field names.
	raw, err := os.ReadFile(store.DialoguePath(2))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"organizer_comment", "fighter1_trashtalk", "fight_number"} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("serialized dialogue missing key %q", key)
		}
	}
}

func TestStorePathsLayout(t *testing.T) {
	store := NewStore("/data/draw")
	if got := store.ImagePath(3); got != filepath.Join("/data/draw", "fight_3", "vs_image.png") {
		t.Errorf("image path = %q", got)
	}
	if got := store.DialoguePath(1); got != filepath.Join("/data/draw", "fight_1", "dialogue.json") {
		t.Errorf("dialogue path = %q", got)
	}
}

func TestStoreAtomicWriteLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := store.SaveImage(1, []byte("x")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(store.FightDir(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
