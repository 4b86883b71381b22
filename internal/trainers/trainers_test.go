package trainers

import (
	"fmt"
	"testing"
)

type fakeImages struct{}

func (fakeImages) ImageURL(key string, width, height int) string {
	return fmt.Sprintf("https://img.test/get?id=%s&w=%d&h=%d", key, width, height)
}

func TestAllResolvesImageURLs(t *testing.T) {
	directory := NewDirectory(fakeImages{})
	all := directory.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 trainers, got %d", len(all))
	}
	for _, trainer := range all {
		want := fmt.Sprintf("https://img.test/get?id=%s&w=400&h=400", trainer.ImageKey)
		if trainer.ImageURL != want {
			t.Fatalf("%s: unexpected image url %q", trainer.ID, trainer.ImageURL)
		}
	}
}

func TestByID(t *testing.T) {
	directory := NewDirectory(fakeImages{})

	trainer, ok := directory.ByID("michan")
	if !ok {
		t.Fatal("expected michan to exist")
	}
	if trainer.Name != "Michaela Beutler Fristål" || trainer.ShortName != "PT Michan" {
		t.Fatalf("unexpected trainer: %+v", trainer)
	}
	if len(trainer.Specialties) == 0 || len(trainer.Reviews) == 0 {
		t.Fatal("profile fields must be populated")
	}

	if _, ok := directory.ByID("okand"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	directory := NewDirectory(fakeImages{})

	first, _ := directory.ByID("filip")
	first.Specialties[0] = "ändrad"
	first.Reviews[0].Author = "ändrad"

	second, _ := directory.ByID("filip")
	if second.Specialties[0] != "Styrketräning" {
		t.Fatal("callers must not be able to mutate the roster")
	}
	if second.Reviews[0].Author != "Emma K." {
		t.Fatal("callers must not be able to mutate roster reviews")
	}
}
