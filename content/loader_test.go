package content

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/m3rciful/cockfight/game"
	"github.com/m3rciful/cockfight/genai"
)

type fakeText struct {
	calls   int
	failAt  int
	answers []string
}

func (f *fakeText) GenerateText(context.Context, string) (string, error) {
	f.calls++
	if f.failAt > 0 && f.calls >= f.failAt {
		return "", errors.New("text model down")
	}
	if len(f.answers) > 0 {
		return f.answers[(f.calls-1)%len(f.answers)], nil
	}
	return "згенерований текст", nil
}

type fakeImage struct {
	calls    int
	failures int
	data     []byte
}

func (f *fakeImage) GenerateImage(context.Context, genai.ImageRequest) ([]byte, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("image model down")
	}
	if f.data != nil {
		return f.data, nil
	}
	return []byte("poster"), nil
}

func testPair() game.Pair {
	return game.Pair{
		First:  game.Fighter{Name: "roma", DisplayName: "Пітух Рома", Description: "діджей"},
		Second: game.Fighter{Name: "andrew_3", DisplayName: "Пітух Три Андрія", Description: "троє"},
	}
}

func testLoader(t *testing.T, text *fakeText, image *fakeImage) (*Loader, *Store) {
	t.Helper()
	store := NewStore(t.TempDir())
	loader := NewLoader(store, text, image, LoaderOptions{
		ImageMaxRetries: 3,
		ImageRetryDelay: time.Millisecond,
	})
	return loader, store
}

func TestFightContentGeneratesAndPersists(t *testing.T) {
	text := &fakeText{}
	image := &fakeImage{}
	loader, store := testLoader(t, text, image)

	fc, err := loader.FightContent(context.Background(), testPair(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if string(fc.Image) != "poster" {
		t.Errorf("image = %q", fc.Image)
	}
	if fc.Dialogue.FightNumber != 1 || fc.Dialogue.Fighter1 != "roma" {
		t.Errorf("dialogue header: %+v", fc.Dialogue)
	}
	// organizer question is a template, the other five messages hit the model
	if text.calls != 5 {
		t.Errorf("text calls = %d, want 5", text.calls)
	}
	if image.calls != 1 {
		t.Errorf("image calls = %d, want 1", image.calls)
	}

	if _, err := os.Stat(store.ImagePath(1)); err != nil {
		t.Errorf("poster not persisted: %v", err)
	}
	if _, err := os.Stat(store.DialoguePath(1)); err != nil {
		t.Errorf("dialogue not persisted: %v", err)
	}
}

func TestFightContentUsesCache(t *testing.T) {
	text := &fakeText{}
	image := &fakeImage{}
	loader, _ := testLoader(t, text, image)

	if _, err := loader.FightContent(context.Background(), testPair(), 2); err != nil {
		t.Fatal(err)
	}
	textCalls, imageCalls := text.calls, image.calls

	fc, err := loader.FightContent(context.Background(), testPair(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if text.calls != textCalls || image.calls != imageCalls {
		t.Errorf("cached fight must not call generators (text %d->%d, image %d->%d)",
			textCalls, text.calls, imageCalls, image.calls)
	}
	if fc.Dialogue == nil || len(fc.Image) == 0 {
		t.Error("cached content incomplete")
	}
}

func TestImageRetrySucceedsWithinBudget(t *testing.T) {
	text := &fakeText{}
	image := &fakeImage{failures: 2}
	loader, _ := testLoader(t, text, image)

	fc, err := loader.FightContent(context.Background(), testPair(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if image.calls != 3 {
		t.Errorf("image calls = %d, want 3 (two failures then success)", image.calls)
	}
	if string(fc.Image) != "poster" {
		t.Errorf("image = %q", fc.Image)
	}
}

func TestImageRetryExhaustedDegradesToTextOnly(t *testing.T) {
	text := &fakeText{}
	image := &fakeImage{failures: 10}
	loader, store := testLoader(t, text, image)

	fc, err := loader.FightContent(context.Background(), testPair(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if image.calls != 3 {
		t.Errorf("image calls = %d, want 3", image.calls)
	}
	if fc.Image != nil {
		t.Errorf("image = %q, want nil after exhausted retries", fc.Image)
	}
	if fc.Dialogue == nil {
		t.Error("dialogue must still be generated without a poster")
	}
	if _, statErr := os.Stat(store.ImagePath(1)); !os.IsNotExist(statErr) {
		t.Error("no poster should be persisted after failure")
	}
}

func TestDialogueAllOrNothing(t *testing.T) {
	// Third model call fails; the dialogue chain must abort and persist nothing.
	text := &fakeText{failAt: 3}
	image := &fakeImage{}
	loader, store := testLoader(t, text, image)

	_, err := loader.FightContent(context.Background(), testPair(), 1)
	if err == nil {
		t.Fatal("expected dialogue generation error")
	}
	if _, statErr := os.Stat(store.DialoguePath(1)); !os.IsNotExist(statErr) {
		t.Error("no dialogue should be persisted after a mid-chain failure")
	}
	// The poster succeeded before the dialogue failed and stays cached, so a
	// later attempt only regenerates text.
	imageCalls := image.calls
	text.failAt = 0
	text.calls = 0
	if _, err := loader.FightContent(context.Background(), testPair(), 1); err != nil {
		t.Fatal(err)
	}
	if image.calls != imageCalls {
		t.Error("poster should have been served from cache on retry")
	}
}

func TestDialogueOrdered(t *testing.T) {
	d := &Dialogue{Messages: Messages{
		OrganizerComment:    "a",
		OrganizerQuestion:   "b",
		Fighter1TrashTalk:   "c",
		OrganizerReaction:   "d",
		Fighter2TrashTalk:   "e",
		OrganizerConclusion: "f",
	}}
	got := d.Ordered()
	want := []string{"a", "b", "c", "d", "e", "f"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordered[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
