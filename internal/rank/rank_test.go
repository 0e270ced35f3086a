package rank

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		completed int
		want      string
	}{
		{0, "rookie"},
		{1, "cadet"},
		{4, "cadet"},
		{5, "officer"},
		{9, "officer"},
		{10, "detective"},
		{16, "detective"},
		{17, "sergeant"},
		{25, "lieutenant"},
		{32, "lieutenant"},
		{33, "chief"},
		{100, "chief"},
	}
	for _, tt := range tests {
		got := Resolve(tt.completed, Ranks())
		if got.ID != tt.want {
			t.Errorf("Resolve(%d) = %q, want %q", tt.completed, got.ID, tt.want)
		}
	}
}

func TestResolveZeroIsFloor(t *testing.T) {
	if got := Resolve(0, Ranks()); got != Floor() {
		t.Errorf("Resolve(0) = %+v, want floor %+v", got, Floor())
	}
}

func TestResolveTieTakesHighestEntry(t *testing.T) {
	table := []Rank{
		{ID: "a", RequiredCases: 0},
		{ID: "b", RequiredCases: 3},
		{ID: "c", RequiredCases: 3},
	}
	if got := Resolve(3, table); got.ID != "c" {
		t.Errorf("Resolve(3) on tied table = %q, want %q", got.ID, "c")
	}
}

func TestRanksAscending(t *testing.T) {
	table := Ranks()
	if table[0].RequiredCases != 0 {
		t.Fatalf("first rank threshold = %d, want 0", table[0].RequiredCases)
	}
	for i := 1; i < len(table); i++ {
		if table[i].RequiredCases <= table[i-1].RequiredCases {
			t.Errorf("rank %q threshold %d not above %q threshold %d",
				table[i].ID, table[i].RequiredCases, table[i-1].ID, table[i-1].RequiredCases)
		}
	}
}

func TestRanksReturnsCopy(t *testing.T) {
	a := Ranks()
	a[0].ID = "mutated"
	if Ranks()[0].ID != "rookie" {
		t.Error("Ranks() exposes internal table to mutation")
	}
}
