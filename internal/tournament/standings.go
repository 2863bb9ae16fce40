package tournament

import "sort"

// Standing is one row of a computed tournament table.
type Standing struct {
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Points       int    `json:"points"`
}

// ComputeStandings builds the table from finished matches only. The table
// is a projection of match results, never stored: regenerating fixtures or
// correcting a score automatically corrects the standings. Ordering is
// points, then goal difference, then goals for, then name.
func ComputeStandings(participants []string, matches []Match) []Standing {
	rows := make(map[string]*Standing, len(participants))
	for _, name := range participants {
		rows[name] = &Standing{Team: name}
	}

	for i := range matches {
		m := &matches[i]
		if m.Status != MatchFinished || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		home, okH := rows[m.HomeTeam]
		away, okA := rows[m.AwayTeam]
		if !okH || !okA {
			continue
		}

		hs, as := *m.HomeScore, *m.AwayScore
		home.Played++
		away.Played++
		home.GoalsFor += hs
		home.GoalsAgainst += as
		away.GoalsFor += as
		away.GoalsAgainst += hs

		switch {
		case hs > as:
			home.Won++
			home.Points += 3
			away.Lost++
		case hs < as:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	table := make([]Standing, 0, len(rows))
	for _, row := range rows {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
		table = append(table, *row)
	}
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	return table
}
