package game

import (
	"context"
	"sync"
	"testing"
)

func testStore() *Store {
	fighters := []Fighter{
		{Name: "roma"}, {Name: "andrew_3"},
		{Name: "petro"}, {Name: "oleg"},
		{Name: "bohdan"}, {Name: "vadym"},
	}
	return NewStore(context.Background(), NewRegistry(fighters))
}

func TestStoreIsolatesChats(t *testing.T) {
	store := testStore()
	ctx := context.Background()

	a := store.GetOrCreate(ctx, 100)
	b := store.GetOrCreate(ctx, 200)

	a.AdvanceFight()
	a.AdvanceFight()

	if got := b.CurrentFightNumber(); got != 1 {
		t.Errorf("chat 200 should be unaffected, fight number = %d", got)
	}
	if got := a.CurrentFightNumber(); got != 3 {
		t.Errorf("chat 100 fight number = %d, want 3", got)
	}
}

func TestStoreGetOrCreateReturnsSameState(t *testing.T) {
	store := testStore()
	ctx := context.Background()

	first := store.GetOrCreate(ctx, 42)
	first.AdvanceFight()

	second := store.GetOrCreate(ctx, 42)
	if second != first {
		t.Fatal("GetOrCreate should return the existing state")
	}
	if got := second.CurrentFightNumber(); got != 2 {
		t.Errorf("fight number = %d, want 2", got)
	}
}

func TestStoreRemoveStartsFresh(t *testing.T) {
	store := testStore()
	ctx := context.Background()

	st := store.GetOrCreate(ctx, 7)
	st.AdvanceFight()

	store.Remove(ctx, 7)

	fresh := store.GetOrCreate(ctx, 7)
	if fresh == st {
		t.Fatal("Remove should drop the old state")
	}
	if got := fresh.CurrentFightNumber(); got != 1 {
		t.Errorf("fresh state fight number = %d, want 1", got)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := testStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	states := make([]*State, 32)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i] = store.GetOrCreate(ctx, 555)
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(states); i++ {
		if states[i] != states[0] {
			t.Fatal("concurrent GetOrCreate returned different states")
		}
	}
}
