package leagues

import (
	"errors"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/schedule"
)

// Matchup pairs two teams for one round of play. A team with no opponent in
// an odd-sized league sits the round out and gets no matchup.
type Matchup struct {
	Round    int
	HomeTeam dbgen.Team
	AwayTeam dbgen.Team
}

// WeekMatchup binds a matchup to the calendar week it plays on.
type WeekMatchup struct {
	Week    dbgen.SeasonWeek
	Matchup Matchup
}

// BuildRoundRobinRounds produces a full round robin using the circle method:
// every team plays every other team exactly once across len(teams)-1 rounds
// (len(teams) rounds when the count is odd, each with one bye). Home side
// alternates for the fixed seat so no team is home every round.
func BuildRoundRobinRounds(teams []dbgen.Team) ([][]Matchup, error) {
	if len(teams) < 2 {
		return nil, errors.New("at least two teams are required")
	}

	working := make([]*dbgen.Team, 0, len(teams)+1)
	for i := range teams {
		working = append(working, &teams[i])
	}
	if len(working)%2 == 1 {
		working = append(working, nil)
	}

	roundCount := len(working) - 1
	rounds := make([][]Matchup, 0, roundCount)

	for round := 0; round < roundCount; round++ {
		matchups := make([]Matchup, 0, len(working)/2)
		for i := 0; i < len(working)/2; i++ {
			left := working[i]
			right := working[len(working)-1-i]
			if left == nil || right == nil {
				continue
			}
			home := *left
			away := *right
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			matchups = append(matchups, Matchup{
				Round:    round + 1,
				HomeTeam: home,
				AwayTeam: away,
			})
		}
		rounds = append(rounds, matchups)
		rotateTeams(working)
	}

	return rounds, nil
}

func rotateTeams(teams []*dbgen.Team) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}

// AssignWeekMatchups maps round robin rounds onto the regular play weeks of a
// generated schedule, cycling back to round one once every pairing has been
// played. Break weeks, blackout weeks, and playoffs get no matchups.
func AssignWeekMatchups(weeks []dbgen.SeasonWeek, teams []dbgen.Team) ([]WeekMatchup, error) {
	rounds, err := BuildRoundRobinRounds(teams)
	if err != nil {
		return nil, err
	}

	var assigned []WeekMatchup
	roundIdx := 0
	for _, week := range weeks {
		if week.WeekType != string(schedule.WeekTypeRegular) {
			continue
		}
		for _, matchup := range rounds[roundIdx%len(rounds)] {
			assigned = append(assigned, WeekMatchup{Week: week, Matchup: matchup})
		}
		roundIdx++
	}
	return assigned, nil
}
