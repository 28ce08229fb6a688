package leagues

import (
	"testing"
	"time"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

func makeTeams(names ...string) []dbgen.Team {
	teams := make([]dbgen.Team, 0, len(names))
	for i, name := range names {
		teams = append(teams, dbgen.Team{ID: int64(i + 1), SeasonID: 1, Name: name})
	}
	return teams
}

func TestBuildRoundRobinRoundsEvenTeams(t *testing.T) {
	teams := makeTeams("A", "B", "C", "D")

	rounds, err := BuildRoundRobinRounds(teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("expected 3 rounds for 4 teams, got %d", len(rounds))
	}

	type pairKey struct{ low, high int64 }
	seen := make(map[pairKey]int)
	for _, round := range rounds {
		if len(round) != 2 {
			t.Fatalf("expected 2 matchups per round, got %d", len(round))
		}
		playing := make(map[int64]bool)
		for _, m := range round {
			if playing[m.HomeTeam.ID] || playing[m.AwayTeam.ID] {
				t.Fatalf("team plays twice in round %d", m.Round)
			}
			playing[m.HomeTeam.ID] = true
			playing[m.AwayTeam.ID] = true

			key := pairKey{m.HomeTeam.ID, m.AwayTeam.ID}
			if key.low > key.high {
				key.low, key.high = key.high, key.low
			}
			seen[key]++
		}
	}

	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct pairings, got %d", len(seen))
	}
	for key, count := range seen {
		if count != 1 {
			t.Fatalf("pairing %v played %d times", key, count)
		}
	}
}

func TestBuildRoundRobinRoundsOddTeamsGetByes(t *testing.T) {
	teams := makeTeams("A", "B", "C", "D", "E")

	rounds, err := BuildRoundRobinRounds(teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rounds) != 5 {
		t.Fatalf("expected 5 rounds for 5 teams, got %d", len(rounds))
	}

	byes := make(map[int64]int)
	for _, round := range rounds {
		if len(round) != 2 {
			t.Fatalf("expected 2 matchups per round with a bye, got %d", len(round))
		}
		playing := make(map[int64]bool)
		for _, m := range round {
			playing[m.HomeTeam.ID] = true
			playing[m.AwayTeam.ID] = true
		}
		for _, team := range teams {
			if !playing[team.ID] {
				byes[team.ID]++
			}
		}
	}

	for _, team := range teams {
		if byes[team.ID] != 1 {
			t.Fatalf("team %d should sit out exactly once, sat out %d times", team.ID, byes[team.ID])
		}
	}
}

func TestBuildRoundRobinRoundsRejectsSingleTeam(t *testing.T) {
	if _, err := BuildRoundRobinRounds(makeTeams("A")); err == nil {
		t.Fatal("expected error for fewer than two teams")
	}
}

func TestAssignWeekMatchupsSkipsNonRegularWeeks(t *testing.T) {
	teams := makeTeams("A", "B")
	base := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	weeks := []dbgen.SeasonWeek{
		{ID: 1, WeekNumber: 1, WeekType: "regular", ScheduledDate: base},
		{ID: 2, WeekNumber: 1, WeekType: "week-off", ScheduledDate: base.AddDate(0, 0, 7)},
		{ID: 3, WeekNumber: 2, WeekType: "regular", ScheduledDate: base.AddDate(0, 0, 14)},
		{ID: 4, WeekNumber: 2, WeekType: "playoffs", ScheduledDate: base.AddDate(0, 0, 21)},
	}

	assigned, err := AssignWeekMatchups(weeks, teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("expected matchups for 2 regular weeks, got %d", len(assigned))
	}
	for _, wm := range assigned {
		if wm.Week.WeekType != "regular" {
			t.Fatalf("matchup assigned to %s week", wm.Week.WeekType)
		}
	}
	if assigned[0].Week.ID != 1 || assigned[1].Week.ID != 3 {
		t.Fatalf("matchups assigned to wrong weeks: %d, %d", assigned[0].Week.ID, assigned[1].Week.ID)
	}
}

func TestAssignWeekMatchupsCyclesRounds(t *testing.T) {
	teams := makeTeams("A", "B", "C", "D")
	base := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	weeks := make([]dbgen.SeasonWeek, 0, 6)
	for i := 0; i < 6; i++ {
		weeks = append(weeks, dbgen.SeasonWeek{
			ID:            int64(i + 1),
			WeekNumber:    int64(i + 1),
			WeekType:      "regular",
			ScheduledDate: base.AddDate(0, 0, 7*i),
		})
	}

	assigned, err := AssignWeekMatchups(weeks, teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 rounds of 2 matchups, played twice over 6 weeks
	if len(assigned) != 12 {
		t.Fatalf("expected 12 matchups, got %d", len(assigned))
	}

	firstRound := []WeekMatchup{assigned[0], assigned[1]}
	repeatRound := []WeekMatchup{assigned[6], assigned[7]}
	for i := range firstRound {
		if firstRound[i].Matchup.HomeTeam.ID != repeatRound[i].Matchup.HomeTeam.ID ||
			firstRound[i].Matchup.AwayTeam.ID != repeatRound[i].Matchup.AwayTeam.ID {
			t.Fatal("expected round robin to restart from round one after a full cycle")
		}
	}
	if repeatRound[0].Week.ID != 4 {
		t.Fatalf("repeat round should land on week 4, got week ID %d", repeatRound[0].Week.ID)
	}
}
