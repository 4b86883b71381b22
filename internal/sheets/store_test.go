package sheets

import (
	"errors"
	"testing"
)

func TestOpenReplacesPayloadWholesale(t *testing.T) {
	store := NewStore()

	if err := store.Open(Contact, Payload{Subject: "PT-intro"}); err != nil {
		t.Fatalf("open contact: %v", err)
	}
	state, err := store.Get(Contact)
	if err != nil {
		t.Fatalf("get contact: %v", err)
	}
	if !state.Open || state.Payload.Subject != "PT-intro" {
		t.Fatalf("unexpected state: %+v", state)
	}

	// Reopening with a new payload must not merge with the old one.
	if err := store.Open(Contact, Payload{}); err != nil {
		t.Fatalf("reopen contact: %v", err)
	}
	state, _ = store.Get(Contact)
	if state.Payload.Subject != "" {
		t.Fatalf("stale payload survived reopen: %+v", state)
	}
}

func TestCloseClearsPayload(t *testing.T) {
	store := NewStore()
	if err := store.Open(GroupTraining, Payload{ClassType: "yoga", Gym: "tungelsta"}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Close(GroupTraining); err != nil {
		t.Fatalf("close: %v", err)
	}
	state, _ := store.Get(GroupTraining)
	if state.Open || state.Payload != (Payload{}) {
		t.Fatalf("close must reset state: %+v", state)
	}
}

func TestCloseAll(t *testing.T) {
	store := NewStore()
	store.Open(PT, Payload{TrainerID: "filip"})
	store.Open(PTDetail, Payload{TrainerID: "filip"})
	store.Open(Contact, Payload{Subject: "Medlemskap"})

	store.CloseAll()

	for name, state := range store.Snapshot() {
		if state.Open {
			t.Fatalf("sheet %s still open after close-all", name)
		}
		if state.Payload != (Payload{}) {
			t.Fatalf("sheet %s kept payload after close-all: %+v", name, state)
		}
	}
}

func TestUnknownSheet(t *testing.T) {
	store := NewStore()
	if err := store.Open("mystery", Payload{}); !errors.Is(err, ErrUnknownSheet) {
		t.Fatalf("expected ErrUnknownSheet, got %v", err)
	}
	if err := store.Close("mystery"); !errors.Is(err, ErrUnknownSheet) {
		t.Fatalf("expected ErrUnknownSheet, got %v", err)
	}
	if _, err := store.Get("mystery"); !errors.Is(err, ErrUnknownSheet) {
		t.Fatalf("expected ErrUnknownSheet, got %v", err)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := NewStore()
	b := NewStore()
	a.Open(PT, Payload{TrainerID: "denise"})

	state, _ := b.Get(PT)
	if state.Open {
		t.Fatal("stores must not share state")
	}
}
