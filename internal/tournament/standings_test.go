package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func finished(home, away string, hs, as int) Match {
	return Match{
		HomeTeam: home, AwayTeam: away,
		HomeScore: intPtr(hs), AwayScore: intPtr(as),
		Status: MatchFinished,
	}
}

func TestComputeStandingsPointsAndOrdering(t *testing.T) {
	participants := []string{"A", "B", "C"}
	matches := []Match{
		finished("A", "B", 2, 0), // A wins
		finished("B", "C", 1, 1), // draw
		finished("C", "A", 0, 3), // A wins
	}

	table := ComputeStandings(participants, matches)
	require.Len(t, table, 3)

	assert.Equal(t, "A", table[0].Team)
	assert.Equal(t, 6, table[0].Points)
	assert.Equal(t, 2, table[0].Played)
	assert.Equal(t, 5, table[0].GoalsFor)
	assert.Equal(t, 0, table[0].GoalsAgainst)
	assert.Equal(t, 5, table[0].GoalDiff)

	assert.Equal(t, "B", table[1].Team)
	assert.Equal(t, 1, table[1].Points)
	assert.Equal(t, 0, table[1].Won)
	assert.Equal(t, 1, table[1].Drawn)
	assert.Equal(t, 1, table[1].Lost)

	assert.Equal(t, "C", table[2].Team)
	assert.Equal(t, 1, table[2].Points)
}

func TestComputeStandingsIgnoresUnfinishedMatches(t *testing.T) {
	participants := []string{"A", "B"}
	matches := []Match{
		{HomeTeam: "A", AwayTeam: "B", Status: MatchScheduled},
		{HomeTeam: "A", AwayTeam: "B", Status: MatchLive, HomeScore: intPtr(1), AwayScore: intPtr(0)},
		{HomeTeam: "A", AwayTeam: "B", Status: MatchFinished}, // finished but no scores recorded
	}

	table := ComputeStandings(participants, matches)
	require.Len(t, table, 2)
	for _, row := range table {
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
	}
}

func TestComputeStandingsTieBreakers(t *testing.T) {
	participants := []string{"A", "B", "C", "D"}
	matches := []Match{
		// A and B both win twice: equal points, B ahead on goal difference.
		finished("A", "C", 1, 0),
		finished("A", "D", 3, 2),
		finished("B", "C", 2, 0),
		finished("B", "D", 2, 1),
	}

	table := ComputeStandings(participants, matches)
	require.Len(t, table, 4)
	assert.Equal(t, "B", table[0].Team) // +3 GD, 4 GF
	assert.Equal(t, "A", table[1].Team) // +2 GD
}

func TestComputeStandingsEqualRowsSortByName(t *testing.T) {
	table := ComputeStandings([]string{"Zeta", "Alfa"}, nil)
	require.Len(t, table, 2)
	assert.Equal(t, "Alfa", table[0].Team)
	assert.Equal(t, "Zeta", table[1].Team)
}

func TestComputeStandingsSkipsUnknownTeams(t *testing.T) {
	table := ComputeStandings([]string{"A", "B"}, []Match{
		finished("A", "Ghost", 5, 0),
		finished("A", "B", 1, 0),
	})
	require.Len(t, table, 2)
	assert.Equal(t, "A", table[0].Team)
	assert.Equal(t, 1, table[0].Played)
	assert.Equal(t, 1, table[0].GoalsFor)
}
