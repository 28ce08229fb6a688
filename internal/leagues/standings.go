package leagues

import (
	"context"
	"errors"
	"sort"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

type TeamStanding struct {
	TeamID           int64  `json:"teamId"`
	TeamName         string `json:"teamName"`
	MatchesPlayed    int    `json:"matchesPlayed"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	GamesWon         int    `json:"gamesWon"`
	GamesLost        int    `json:"gamesLost"`
	GameDifferential int    `json:"gameDifferential"`
}

type teamStats struct {
	TeamStanding
	headToHeadWins     map[int64]int
	headToHeadGameDiff map[int64]int
}

// CalculateStandings ranks a season's teams by completed match wins. Ties are
// broken by head-to-head wins within the tied group, then overall game
// differential, then head-to-head game differential, then team name.
func CalculateStandings(ctx context.Context, q *dbgen.Queries, seasonID int64) ([]TeamStanding, error) {
	if q == nil {
		return nil, errors.New("queries are required")
	}
	if seasonID <= 0 {
		return nil, errors.New("season ID is required")
	}

	rows, err := q.GetSeasonStandingsData(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	teams := make(map[int64]*teamStats)
	for _, row := range rows {
		entry, ok := teams[row.TeamID]
		if !ok {
			entry = &teamStats{
				TeamStanding: TeamStanding{
					TeamID:   row.TeamID,
					TeamName: row.TeamName,
				},
				headToHeadWins:     make(map[int64]int),
				headToHeadGameDiff: make(map[int64]int),
			}
			teams[row.TeamID] = entry
		}

		if !row.MatchID.Valid {
			continue
		}

		gamesWon, gamesLost, opponentID := resolveMatchGames(row, entry.TeamID)

		entry.MatchesPlayed++
		entry.GamesWon += gamesWon
		entry.GamesLost += gamesLost
		entry.GameDifferential = entry.GamesWon - entry.GamesLost

		if row.WinningTeamID.Valid && row.WinningTeamID.Int64 == entry.TeamID {
			entry.Wins++
			entry.headToHeadWins[opponentID]++
		} else {
			entry.Losses++
		}
		entry.headToHeadGameDiff[opponentID] += gamesWon - gamesLost
	}

	ordered := make([]*teamStats, 0, len(teams))
	for _, team := range teams {
		ordered = append(ordered, team)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Wins != ordered[j].Wins {
			return ordered[i].Wins > ordered[j].Wins
		}
		return ordered[i].TeamName < ordered[j].TeamName
	})

	sortStandingsByTiebreakers(ordered)

	standings := make([]TeamStanding, 0, len(ordered))
	for _, team := range ordered {
		standings = append(standings, team.TeamStanding)
	}
	return standings, nil
}

func resolveMatchGames(row dbgen.GetSeasonStandingsDataRow, teamID int64) (int, int, int64) {
	homeWon := int(row.HomeGamesWon.Int64)
	awayWon := int(row.AwayGamesWon.Int64)
	if teamID == row.HomeTeamID.Int64 {
		return homeWon, awayWon, row.AwayTeamID.Int64
	}
	return awayWon, homeWon, row.HomeTeamID.Int64
}

func sortStandingsByTiebreakers(ordered []*teamStats) {
	if len(ordered) < 2 {
		return
	}

	start := 0
	for start < len(ordered) {
		end := start + 1
		for end < len(ordered) && ordered[end].Wins == ordered[start].Wins {
			end++
		}

		if end-start > 1 {
			group := ordered[start:end]
			groupSet := make(map[int64]struct{}, len(group))
			for _, team := range group {
				groupSet[team.TeamID] = struct{}{}
			}

			sort.SliceStable(group, func(i, j int) bool {
				headToHeadWinsI := headToHeadWins(group[i], groupSet)
				headToHeadWinsJ := headToHeadWins(group[j], groupSet)
				if headToHeadWinsI != headToHeadWinsJ {
					return headToHeadWinsI > headToHeadWinsJ
				}
				if group[i].GameDifferential != group[j].GameDifferential {
					return group[i].GameDifferential > group[j].GameDifferential
				}
				headToHeadDiffI := headToHeadGameDiff(group[i], groupSet)
				headToHeadDiffJ := headToHeadGameDiff(group[j], groupSet)
				if headToHeadDiffI != headToHeadDiffJ {
					return headToHeadDiffI > headToHeadDiffJ
				}
				return group[i].TeamName < group[j].TeamName
			})
		}

		start = end
	}
}

func headToHeadWins(team *teamStats, group map[int64]struct{}) int {
	total := 0
	for opponentID, wins := range team.headToHeadWins {
		if _, ok := group[opponentID]; ok {
			total += wins
		}
	}
	return total
}

func headToHeadGameDiff(team *teamStats, group map[int64]struct{}) int {
	total := 0
	for opponentID, diff := range team.headToHeadGameDiff {
		if _, ok := group[opponentID]; ok {
			total += diff
		}
	}
	return total
}
