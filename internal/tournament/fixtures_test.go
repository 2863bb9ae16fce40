package tournament

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureStart = time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func TestGenerateRoundRobinMatchCount(t *testing.T) {
	tests := []struct {
		teams  int
		rounds int
	}{
		{2, 1}, {4, 1}, {4, 2}, {5, 1}, {5, 2}, {8, 1}, {9, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_teams_%d_rounds", tt.teams, tt.rounds), func(t *testing.T) {
			names := make([]string, tt.teams)
			for i := range names {
				names[i] = fmt.Sprintf("Club %c", 'A'+i)
			}
			fixtures := GenerateRoundRobin(names, tt.rounds, fixtureStart, 7*24*time.Hour)
			assert.Len(t, fixtures, tt.rounds*tt.teams*(tt.teams-1)/2)
		})
	}
}

func TestGenerateRoundRobinEveryPairOncePerRound(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	fixtures := GenerateRoundRobin(names, 2, fixtureStart, 7*24*time.Hour)

	meetings := map[int]map[string]int{1: {}, 2: {}}
	for _, m := range fixtures {
		require.NotEqual(t, m.HomeTeam, m.AwayTeam)
		meetings[m.Round][pairKey(m.HomeTeam, m.AwayTeam)]++
	}
	for round, pairs := range meetings {
		assert.Len(t, pairs, 10, "round %d", round)
		for pair, count := range pairs {
			assert.Equal(t, 1, count, "round %d pair %s", round, pair)
		}
	}
}

func TestGenerateRoundRobinSwapsVenuesOnSecondRound(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	fixtures := GenerateRoundRobin(names, 2, fixtureStart, 7*24*time.Hour)

	homeByRound := map[int]map[string]string{1: {}, 2: {}}
	for _, m := range fixtures {
		homeByRound[m.Round][pairKey(m.HomeTeam, m.AwayTeam)] = m.HomeTeam
	}
	for pair, firstHome := range homeByRound[1] {
		secondHome, ok := homeByRound[2][pair]
		require.True(t, ok, "pair %s missing in round 2", pair)
		assert.NotEqual(t, firstHome, secondHome, "pair %s", pair)
	}
}

func TestGenerateRoundRobinMatchdaysAndDates(t *testing.T) {
	gap := 7 * 24 * time.Hour
	fixtures := GenerateRoundRobin([]string{"A", "B", "C", "D"}, 2, fixtureStart, gap)

	// 4 teams: 3 matchdays per round, 6 across the double round-robin.
	seen := map[int]bool{}
	for _, m := range fixtures {
		seen[m.Matchday] = true
		assert.Equal(t, MatchScheduled, m.Status)
		assert.Equal(t, fixtureStart.Add(time.Duration(m.Matchday-1)*gap), m.Date)
	}
	assert.Len(t, seen, 6)
	for day := 1; day <= 6; day++ {
		assert.True(t, seen[day], "matchday %d missing", day)
	}
}

func TestGenerateRoundRobinDegenerateInputs(t *testing.T) {
	assert.Nil(t, GenerateRoundRobin(nil, 1, fixtureStart, time.Hour))
	assert.Nil(t, GenerateRoundRobin([]string{"A"}, 1, fixtureStart, time.Hour))
	assert.Nil(t, GenerateRoundRobin([]string{"A", "B"}, 0, fixtureStart, time.Hour))
}
