package world

import "sort"

// Sort directions for Rank
const (
	Descending = "desc"
	Ascending  = "asc"
)

// RankRow is one derived leaderboard entry
type RankRow struct {
	CountryID string
	Name      string
	Value     float64
}

// Rank derives a sorted leaderboard for one indicator. Countries without a
// value for the indicator are excluded, so the output may be shorter than
// the input. Ties keep the original input order (stable sort). Direction is
// "asc" or "desc"; anything else means descending.
func Rank(countries []Country, indicator, direction string) []RankRow {
	rows := make([]RankRow, 0, len(countries))
	for _, c := range countries {
		v, ok := c.Indicators[indicator]
		if !ok {
			continue
		}
		rows = append(rows, RankRow{CountryID: c.ID, Name: c.Name, Value: v})
	}

	asc := direction == Ascending
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].Value > rows[j].Value
	})
	return rows
}
