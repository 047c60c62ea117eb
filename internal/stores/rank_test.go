package stores

import (
	"testing"
)

type scored struct {
	name  string
	score int64
}

func score(s scored) int64 { return s.score }

func TestTopBy_SortsTruncatesAndKeepsTies(t *testing.T) {
	input := []scored{
		{"a", 3}, {"b", 9}, {"c", 3}, {"d", 1}, {"e", 9}, {"f", 5}, {"g", 3},
	}
	orig := cloneSlice(input)

	got := topBy(input, TopN, score)
	want := []string{"b", "e", "f", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].name != name {
			t.Fatalf("topBy[%d] = %q, want %q (got %v)", i, got[i].name, name, got)
		}
	}
	for i := range input {
		if input[i] != orig[i] {
			t.Fatalf("input modified at %d: %v, want %v", i, input[i], orig[i])
		}
	}
}

func TestTopBy_ShortAndEmptyInputs(t *testing.T) {
	got := topBy([]scored{{"x", 1}, {"y", 2}}, TopN, score)
	if len(got) != 2 || got[0].name != "y" {
		t.Fatalf("topBy = %v, want [y x]", got)
	}

	empty := topBy[scored](nil, TopN, score)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("topBy(nil) = %#v, want empty non-nil slice", empty)
	}
}

func TestBestBy(t *testing.T) {
	if got := bestBy[scored](nil, score); got != nil {
		t.Fatalf("bestBy(nil) = %v, want nil", got)
	}
	got := bestBy([]scored{{"a", 2}, {"b", 7}, {"c", 7}}, score)
	if got == nil || got.name != "b" {
		t.Fatalf("bestBy = %v, want b", got)
	}
}
