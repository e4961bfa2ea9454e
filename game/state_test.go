package game

import (
	"context"
	"testing"
)

func testPairings() []Pair {
	fighters := []Fighter{
		{Name: "roma", DisplayName: "Пітух Рома"},
		{Name: "andrew_3", DisplayName: "Пітух Три Андрія"},
		{Name: "petro", DisplayName: "Пітух Петро"},
		{Name: "oleg", DisplayName: "Пітух Олег"},
		{Name: "bohdan", DisplayName: "Пітух Богдан"},
		{Name: "vadym", DisplayName: "Пітух Вадим"},
	}
	return ResolvePairings(context.Background(), NewRegistry(fighters))
}

func TestResolvePairingsFixedOrder(t *testing.T) {
	pairs := testPairings()
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairings, got %d", len(pairs))
	}
	want := [][2]string{
		{"roma", "andrew_3"},
		{"petro", "oleg"},
		{"bohdan", "vadym"},
	}
	for i, w := range want {
		if pairs[i].First.Name != w[0] || pairs[i].Second.Name != w[1] {
			t.Errorf("pairing %d: got %s vs %s, want %s vs %s",
				i, pairs[i].First.Name, pairs[i].Second.Name, w[0], w[1])
		}
	}
}

func TestResolvePairingsPartitionRoster(t *testing.T) {
	pairs := testPairings()
	seen := map[string]bool{}
	for _, p := range pairs {
		if p.First.Name == p.Second.Name {
			t.Errorf("pairing %s vs %s is not two distinct fighters", p.First.Name, p.Second.Name)
		}
		for _, name := range []string{p.First.Name, p.Second.Name} {
			if seen[name] {
				t.Errorf("fighter %s appears in more than one pairing", name)
			}
			seen[name] = true
		}
	}
	if len(seen) != 6 {
		t.Errorf("pairings cover %d fighters, want all 6", len(seen))
	}
}

func TestResolvePairingsDropsUnresolved(t *testing.T) {
	reg := NewRegistry([]Fighter{
		{Name: "roma"},
		{Name: "andrew_3"},
		{Name: "petro"},
	})
	pairs := ResolvePairings(context.Background(), reg)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 resolvable pairing, got %d", len(pairs))
	}
	if pairs[0].First.Name != "roma" {
		t.Errorf("unexpected pairing: %s vs %s", pairs[0].First.Name, pairs[0].Second.Name)
	}
}

func TestFightTrackProgression(t *testing.T) {
	st := NewState(testPairings())

	for fight := 1; fight <= 3; fight++ {
		if got := st.CurrentFightNumber(); got != fight {
			t.Fatalf("fight number: got %d, want %d", got, fight)
		}
		pair, ok := st.CurrentFight()
		if !ok {
			t.Fatalf("fight %d: expected a current fight", fight)
		}
		if pair.First.Name == "" || pair.Second.Name == "" {
			t.Fatalf("fight %d: empty pair", fight)
		}
		hasMore := st.AdvanceFight()
		if want := fight < 3; hasMore != want {
			t.Errorf("fight %d: AdvanceFight = %v, want %v", fight, hasMore, want)
		}
	}

	if !st.IsDrawComplete() {
		t.Error("draw should be complete after three fights")
	}
	if got := st.CurrentFightNumber(); got != 0 {
		t.Errorf("fight number after completion: got %d, want 0", got)
	}
	if _, ok := st.CurrentFight(); ok {
		t.Error("CurrentFight should report no fight after completion")
	}
}

func TestConferenceTrackIndependentOfFights(t *testing.T) {
	st := NewState(testPairings())

	// Exhaust the fight track entirely.
	for st.AdvanceFight() {
	}

	// The conference track is untouched.
	if !st.IsConferenceActive() {
		t.Fatal("conference should still be active")
	}
	pair, ok := st.CurrentPair()
	if !ok || pair.First.Name != "roma" {
		t.Fatalf("conference should start at the first pair, got %v %v", pair.First.Name, ok)
	}
	conf, totalConf, round, totalRounds := st.ConferenceProgress()
	if conf != 1 || totalConf != 3 || round != 1 || totalRounds != 3 {
		t.Errorf("progress: got (%d,%d,%d,%d), want (1,3,1,3)", conf, totalConf, round, totalRounds)
	}
}

func TestConferenceRounds(t *testing.T) {
	st := NewState(testPairings())

	if !st.AdvanceRound() {
		t.Error("round 2 should be available")
	}
	if st.AdvanceRound() {
		t.Error("conference should be out of rounds after the third")
	}

	if !st.AdvanceConference() {
		t.Error("second conference should be available")
	}
	_, _, round, _ := st.ConferenceProgress()
	if round != 1 {
		t.Errorf("round should reset on conference advance, got %d", round)
	}

	st.AdvanceConference()
	if st.AdvanceConference() {
		t.Error("no conferences should remain after the third")
	}
	if st.IsConferenceActive() {
		t.Error("conference should be inactive after the last pair")
	}
	if _, ok := st.CurrentPair(); ok {
		t.Error("CurrentPair should report nothing after the last pair")
	}
}

func TestResetZeroesBothTracks(t *testing.T) {
	st := NewState(testPairings())
	st.AdvanceFight()
	st.AdvanceFight()
	st.AdvanceRound()
	st.AdvanceConference()

	st.Reset()

	if got := st.CurrentFightNumber(); got != 1 {
		t.Errorf("fight number after reset: got %d, want 1", got)
	}
	conf, _, round, _ := st.ConferenceProgress()
	if conf != 1 || round != 1 {
		t.Errorf("conference progress after reset: got (%d,%d), want (1,1)", conf, round)
	}
	if len(st.Pairings()) != 3 {
		t.Error("pairings should survive reset")
	}
}

func TestEmptyPairings(t *testing.T) {
	st := NewState(nil)
	if st.IsConferenceActive() {
		t.Error("no conference without pairings")
	}
	if _, ok := st.CurrentPair(); ok {
		t.Error("CurrentPair should report nothing without pairings")
	}
	if !st.IsDrawComplete() {
		t.Error("draw is trivially complete without pairings")
	}
	_, totalConf, _, _ := st.ConferenceProgress()
	if totalConf != 3 {
		t.Errorf("display total should fall back to 3, got %d", totalConf)
	}
}
