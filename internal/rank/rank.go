package rank

// Rank is a cosmetic title awarded for completed cases.
type Rank struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	RequiredCases int    `json:"requiredCases"`
}

// ranks is the canonical ladder, ascending by RequiredCases. The first
// entry has threshold 0 so Resolve always finds a match.
var ranks = []Rank{
	{ID: "rookie", Title: "Rookie", RequiredCases: 0},
	{ID: "cadet", Title: "Cadet", RequiredCases: 1},
	{ID: "officer", Title: "Officer", RequiredCases: 5},
	{ID: "detective", Title: "Detective", RequiredCases: 10},
	{ID: "sergeant", Title: "Sergeant", RequiredCases: 17},
	{ID: "lieutenant", Title: "Lieutenant", RequiredCases: 25},
	{ID: "chief", Title: "Chief", RequiredCases: 33},
}

// Ranks returns the canonical ladder from lowest to highest.
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// Floor returns the lowest rank (threshold 0).
func Floor() Rank {
	return ranks[0]
}

// Resolve returns the highest rank in table whose threshold is satisfied
// by completedCases. The table must be ascending by RequiredCases with the
// first entry at 0; on an empty table the zero Rank is returned. Equal
// thresholds resolve to the later (higher) entry.
func Resolve(completedCases int, table []Rank) Rank {
	for i := len(table) - 1; i >= 0; i-- {
		if completedCases >= table[i].RequiredCases {
			return table[i]
		}
	}
	if len(table) == 0 {
		return Rank{}
	}
	return table[0]
}
