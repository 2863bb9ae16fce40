package tournament

import "time"

// GenerateRoundRobin builds a full fixture list for the given participant
// names: every unordered pair meets exactly once per round, R rounds in
// total, so R*N*(N-1)/2 matches. Pairings use the circle method; an odd
// participant count gets a bye slot that produces no match. Home and away
// are swapped on even rounds so double round-robins alternate venues.
//
// Matchdays are numbered consecutively across rounds and each matchday is
// spaced gap apart starting at start. The function is pure: it touches no
// storage.
func GenerateRoundRobin(participants []string, rounds int, start time.Time, gap time.Duration) []Match {
	n := len(participants)
	if n < 2 || rounds < 1 {
		return nil
	}

	// Circle method works on an even count; pad with a bye.
	names := make([]string, n)
	copy(names, participants)
	if n%2 != 0 {
		names = append(names, "")
		n++
	}

	matchdaysPerRound := n - 1
	matchesPerDay := n / 2
	var fixtures []Match

	matchday := 0
	for round := 1; round <= rounds; round++ {
		// Reset the circle at the start of each round.
		ring := make([]string, n)
		copy(ring, names)

		for day := 0; day < matchdaysPerRound; day++ {
			matchday++
			date := start.Add(time.Duration(matchday-1) * gap)

			for i := 0; i < matchesPerDay; i++ {
				home := ring[i]
				away := ring[n-1-i]
				if home == "" || away == "" {
					continue // bye
				}
				if round%2 == 0 {
					home, away = away, home
				}
				fixtures = append(fixtures, Match{
					Round:    round,
					Matchday: matchday,
					HomeTeam: home,
					AwayTeam: away,
					Status:   MatchScheduled,
					Date:     date,
				})
			}

			// Rotate all but the first position.
			last := ring[n-1]
			copy(ring[2:], ring[1:n-1])
			ring[1] = last
		}
	}
	return fixtures
}
