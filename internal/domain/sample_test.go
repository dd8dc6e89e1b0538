package domain_test

import (
	"testing"

	"github.com/RisingZenByte/tianji-api/internal/domain"
)

func letters(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestSample_PoolSwapRemove(t *testing.T) {
	// All-zero draws: take pool[0], then the tail element is moved into slot 0.
	rng := &deterministicRNG{values: []int{0}}

	got, err := domain.Sample(letters(10), 3, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "j", "i"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSample_LargePopulationRejectsDuplicates(t *testing.T) {
	// 30 > setsize(21) for k=3, so indices are drawn into a set; the repeated 5 is redrawn.
	rng := &deterministicRNG{values: []int{5, 5, 7, 1}}

	got, err := domain.Sample(letters(30), 3, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"f", "h", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSample_Unique(t *testing.T) {
	rng := &deterministicRNG{values: []int{3, 1, 4, 1, 5, 9, 2, 6}}

	got, err := domain.Sample(letters(27), 8, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 items, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate item: %s", s)
		}
		seen[s] = true
	}
}

func TestSample_TooLarge(t *testing.T) {
	rng := &deterministicRNG{values: []int{0}}

	for _, k := range []int{-1, 6} {
		_, err := domain.Sample(letters(5), k, rng)
		if err != domain.ErrSampleTooLarge {
			t.Errorf("k=%d: expected ErrSampleTooLarge, got %v", k, err)
		}
	}
}

func TestSample_Zero(t *testing.T) {
	got, err := domain.Sample(letters(5), 0, &deterministicRNG{values: []int{0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty sample, got %v", got)
	}
}
