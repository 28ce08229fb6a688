package handicap

import (
	"context"
	"database/sql"
	"testing"
	"time"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/testutil"
)

func seedSeason(t *testing.T, q *dbgen.Queries, name string) dbgen.Season {
	t.Helper()
	season, err := q.CreateSeason(context.Background(), dbgen.CreateSeasonParams{
		LeagueName:          name,
		GameType:            "8_ball",
		Format:              "8_man",
		StartDate:           time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
		DayOfWeek:           int64(time.Wednesday),
		SeasonLength:        16,
		SeasonEndBreakWeeks: 1,
		Status:              "active",
	})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	return season
}

func seedMatchWithGames(t *testing.T, q *dbgen.Queries, season dbgen.Season, playerID int64, wins, losses int, playedAt time.Time) {
	t.Helper()
	ctx := context.Background()

	home, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{SeasonID: season.ID, Name: "Home", Status: "active"})
	if err != nil {
		t.Fatalf("create home team: %v", err)
	}
	away, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{SeasonID: season.ID, Name: "Away", Status: "active"})
	if err != nil {
		t.Fatalf("create away team: %v", err)
	}
	match, err := q.CreateMatch(ctx, dbgen.CreateMatchParams{
		SeasonID:      season.ID,
		HomeTeamID:    home.ID,
		AwayTeamID:    away.ID,
		ScheduledDate: playedAt,
		Status:        "completed",
		WinningTeamID: sql.NullInt64{Int64: home.ID, Valid: true},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	opponent, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{FirstName: "Opp", LastName: "Onent", Status: "active"})
	if err != nil {
		t.Fatalf("create opponent: %v", err)
	}

	for i := 0; i < wins+losses; i++ {
		winner := playerID
		if i >= wins {
			winner = opponent.ID
		}
		if _, err := q.CreateGame(ctx, dbgen.CreateGameParams{
			MatchID:        match.ID,
			SeasonID:       season.ID,
			GameType:       season.GameType,
			HomePlayerID:   playerID,
			AwayPlayerID:   opponent.ID,
			WinnerPlayerID: winner,
			PlayedAt:       playedAt.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("create game: %v", err)
		}
	}
}

func TestCalculatePlayerHandicapFromStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	ctx := context.Background()

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{FirstName: "Jo", LastName: "Pool", Status: "active"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	season := seedSeason(t, q, "Wednesday 8-Ball")
	seedMatchWithGames(t, q, season, player.ID, 7, 3, time.Date(2025, time.February, 5, 19, 0, 0, 0, time.UTC))

	got := CalculatePlayerHandicap(ctx, q, player.ID, Options{
		Format:          FormatEightMan,
		Variant:         VariantStandard,
		GameType:        "8_ball",
		CurrentSeasonID: season.ID,
	})
	if got != 70 {
		t.Fatalf("expected handicap 70, got %d", got)
	}
}

func TestCalculatePlayerHandicapPrefersCurrentSeason(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	ctx := context.Background()

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{FirstName: "Sam", LastName: "Rack", Status: "active"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	oldSeason := seedSeason(t, q, "Fall 8-Ball")
	currentSeason := seedSeason(t, q, "Spring 8-Ball")

	// All losses in the old season, all wins in the current one. With the
	// game limit matching the current season's count, only current-season
	// games are eligible.
	seedMatchWithGames(t, q, oldSeason, player.ID, 0, 10, time.Date(2024, time.October, 1, 19, 0, 0, 0, time.UTC))
	seedMatchWithGames(t, q, currentSeason, player.ID, 10, 0, time.Date(2025, time.February, 5, 19, 0, 0, 0, time.UTC))

	got := CalculatePlayerHandicap(ctx, q, player.ID, Options{
		Format:          FormatEightMan,
		Variant:         VariantStandard,
		GameType:        "8_ball",
		CurrentSeasonID: currentSeason.ID,
		GameLimit:       10,
	})
	if got != 100 {
		t.Fatalf("expected current-season games to win the limit, got %d", got)
	}
}

func TestCalculatePlayerHandicapIgnoresOtherGameTypes(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	ctx := context.Background()

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{FirstName: "Pat", LastName: "Cue", Status: "active"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	season := seedSeason(t, q, "Wednesday 8-Ball")
	seedMatchWithGames(t, q, season, player.ID, 5, 0, time.Date(2025, time.February, 5, 19, 0, 0, 0, time.UTC))

	got := CalculatePlayerHandicap(ctx, q, player.ID, Options{
		Format:          FormatEightMan,
		Variant:         VariantStandard,
		GameType:        "9_ball",
		CurrentSeasonID: season.ID,
	})
	if got != 40 {
		t.Fatalf("expected default 40 with no eligible 9-ball games, got %d", got)
	}
}

func TestCalculatePlayerHandicapAbsorbsQueryFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries

	// A closed connection makes every query fail; the calculator must fall
	// back to the format default instead of surfacing the error.
	if err := database.Close(); err != nil {
		t.Fatalf("close database: %v", err)
	}

	got := CalculatePlayerHandicap(context.Background(), q, 1, Options{
		Format:   FormatEightMan,
		Variant:  VariantStandard,
		GameType: "8_ball",
	})
	if got != 40 {
		t.Fatalf("expected default 40 on query failure, got %d", got)
	}

	got = CalculatePlayerHandicap(context.Background(), q, 1, Options{
		Format:   FormatFiveMan,
		Variant:  VariantStandard,
		GameType: "8_ball",
	})
	if got != 0 {
		t.Fatalf("expected default 0 on query failure, got %d", got)
	}
}

func TestCalculateTeamHandicap(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	ctx := context.Background()

	season := seedSeason(t, q, "Wednesday 8-Ball")
	home, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{SeasonID: season.ID, Name: "Chalk It Up", Status: "active"})
	if err != nil {
		t.Fatalf("create home team: %v", err)
	}
	away, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{SeasonID: season.ID, Name: "Rack Attack", Status: "active"})
	if err != nil {
		t.Fatalf("create away team: %v", err)
	}

	addWin := func(teamID int64, when time.Time) {
		if _, err := q.CreateMatch(ctx, dbgen.CreateMatchParams{
			SeasonID:      season.ID,
			HomeTeamID:    home.ID,
			AwayTeamID:    away.ID,
			ScheduledDate: when,
			Status:        "completed",
			WinningTeamID: sql.NullInt64{Int64: teamID, Valid: true},
		}); err != nil {
			t.Fatalf("create match: %v", err)
		}
	}

	when := time.Date(2025, time.January, 8, 19, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		addWin(home.ID, when.AddDate(0, 0, 7*i))
	}
	addWin(away.ID, when.AddDate(0, 0, 42))

	// winDifference = 5 - 1 = 4: standard 4/2 = 2, reduced floor(4/3) = 1.
	if got := CalculateTeamHandicap(ctx, q, home.ID, away.ID, season.ID, VariantStandard); got != 2 {
		t.Fatalf("expected standard bonus 2, got %d", got)
	}
	if got := CalculateTeamHandicap(ctx, q, home.ID, away.ID, season.ID, VariantReduced); got != 1 {
		t.Fatalf("expected reduced bonus 1, got %d", got)
	}
	if got := CalculateTeamHandicap(ctx, q, home.ID, away.ID, season.ID, VariantNone); got != 0 {
		t.Fatalf("expected no bonus for variant none, got %d", got)
	}

	// A trailing home team takes a negative bonus, floored.
	if got := CalculateTeamHandicap(ctx, q, away.ID, home.ID, season.ID, VariantReduced); got != -2 {
		t.Fatalf("expected floored bonus -2, got %d", got)
	}
}
