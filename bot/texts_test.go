package bot

import (
	"strings"
	"testing"

	"github.com/m3rciful/cockfight/game"
)

func testPairings() []game.Pair {
	return []game.Pair{
		{First: game.Fighter{Name: "roma"}, Second: game.Fighter{Name: "andrew_3"}},
		{First: game.Fighter{Name: "petro"}, Second: game.Fighter{Name: "oleg"}},
		{First: game.Fighter{Name: "bohdan"}, Second: game.Fighter{Name: "vadym"}},
	}
}

func TestAnnouncedFights(t *testing.T) {
	state := game.NewState(testPairings())

	if got := announcedFights(state); got != 0 {
		t.Fatalf("fresh state: announced = %d, want 0", got)
	}

	state.AdvanceFight()
	if got := announcedFights(state); got != 1 {
		t.Fatalf("after one draw: announced = %d, want 1", got)
	}

	state.AdvanceFight()
	state.AdvanceFight()
	if got := announcedFights(state); got != 3 {
		t.Fatalf("all drawn: announced = %d, want 3", got)
	}
}

func TestTrimCaption(t *testing.T) {
	short := "коротко"
	if got := trimCaption(short); got != short {
		t.Fatalf("short caption modified: %q", got)
	}

	long := strings.Repeat("й", captionLimit+100)
	got := trimCaption(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("long caption not ellipsized: %q", got[len(got)-10:])
	}
	if n := len([]rune(got)); n > captionLimit {
		t.Fatalf("trimmed caption is %d runes, want <= %d", n, captionLimit)
	}
}

func TestFormatResults(t *testing.T) {
	out := formatResults(2, []string{
		resultsLine("Пітух Рома", 3, 75),
		resultsLine("Пітух Три Андрія", 1, 25),
	})
	if !strings.Contains(out, "БІЙ 2") {
		t.Fatalf("missing fight number: %q", out)
	}
	if !strings.Contains(out, "Пітух Рома: 3 (75%)") {
		t.Fatalf("missing winner line: %q", out)
	}
	if !strings.Contains(out, "Пітух Три Андрія: 1 (25%)") {
		t.Fatalf("missing runner-up line: %q", out)
	}
}
