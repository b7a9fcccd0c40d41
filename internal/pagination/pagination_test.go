package pagination

import "testing"

func TestParseNumber(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"2":   2,
		"15":  15,
	}
	for raw, want := range cases {
		if got := ParseNumber(raw); got != want {
			t.Errorf("ParseNumber(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{13, 2},
		{20, 2},
		{21, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(10, tc.total); got != tc.want {
			t.Errorf("TotalPages(10, %d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestClampLandsOnLastPage(t *testing.T) {
	if got := Clamp(99, 10, 13); got != 2 {
		t.Fatalf("expected clamp to last page 2, got %d", got)
	}
	if got := Clamp(2, 10, 13); got != 2 {
		t.Fatalf("expected valid page kept, got %d", got)
	}
	if got := Clamp(5, 10, 0); got != 1 {
		t.Fatalf("expected page 1 for empty set, got %d", got)
	}
}

func TestPageNavigation(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 2, 10, 23)

	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}
	if !page.HasPrev() || !page.HasNext() {
		t.Fatal("middle page must have both neighbors")
	}
	if page.PrevNumber() != 1 || page.NextNumber() != 3 {
		t.Fatalf("bad neighbors: prev=%d next=%d", page.PrevNumber(), page.NextNumber())
	}

	last := NewPage([]int{1, 2, 3}, 3, 10, 23)
	if last.HasNext() {
		t.Fatal("last page must not have a next page")
	}

	if Offset(2, 10) != 10 {
		t.Fatalf("Offset(2, 10) = %d", Offset(2, 10))
	}
}
