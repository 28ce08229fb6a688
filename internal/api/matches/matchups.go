// internal/api/matches/matchups.go
package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shodbyed/cueleague/internal/api/apiutil"
	appdb "github.com/shodbyed/cueleague/internal/db"
	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/leagues"
)

const (
	matchupGenerateTimeout = 15 * time.Second
	seasonIDPathKey        = "id"
	scheduledMatchStatus   = "scheduled"
)

// POST /api/v1/seasons/{id}/matchups/generate
//
// Creates a round robin match for every regular play week on the season
// schedule. Fails if the season already has matches.
func HandleGenerateMatchups(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	database := loadDB()
	if q == nil || database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := seasonIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchupGenerateTimeout)
	defer cancel()

	if _, err := q.GetSeason(ctx, seasonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to fetch season")
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return
	}

	existing, err := q.CountSeasonMatches(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to count matches")
		http.Error(w, "Failed to count matches", http.StatusInternalServerError)
		return
	}
	if existing > 0 {
		http.Error(w, "Season already has matches", http.StatusConflict)
		return
	}

	teams, err := q.ListSeasonTeams(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to list teams")
		http.Error(w, "Failed to list teams", http.StatusInternalServerError)
		return
	}
	if len(teams) < 2 {
		http.Error(w, "At least two teams are required", http.StatusConflict)
		return
	}

	weeks, err := q.ListSeasonWeeks(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to list schedule weeks")
		http.Error(w, "Failed to list schedule weeks", http.StatusInternalServerError)
		return
	}
	if len(weeks) == 0 {
		http.Error(w, "Season has no schedule; generate one first", http.StatusConflict)
		return
	}

	assigned, err := leagues.AssignWeekMatchups(weeks, teams)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	created := make([]dbgen.Match, 0, len(assigned))
	txErr := database.RunInTx(ctx, func(txDB *appdb.DB) error {
		for _, wm := range assigned {
			match, err := txDB.Queries.CreateMatch(ctx, dbgen.CreateMatchParams{
				SeasonID:      seasonID,
				WeekID:        sql.NullInt64{Int64: wm.Week.ID, Valid: true},
				HomeTeamID:    wm.Matchup.HomeTeam.ID,
				AwayTeamID:    wm.Matchup.AwayTeam.ID,
				ScheduledDate: wm.Week.ScheduledDate,
				Status:        scheduledMatchStatus,
			})
			if err != nil {
				return fmt.Errorf("create match for week %d: %w", wm.Week.WeekNumber, err)
			}
			created = append(created, match)
		}
		return nil
	})
	if txErr != nil {
		logger.Error().Err(txErr).Int64("season_id", seasonID).Msg("Failed to create matchups")
		http.Error(w, "Failed to create matchups", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Int64("season_id", seasonID).
		Int("match_count", len(created)).
		Msg("Season matchups generated")

	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{
		"seasonId": seasonID,
		"matches":  created,
	}); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write matchups response")
	}
}

func seasonIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(seasonIDPathKey))
	if raw == "" {
		return 0, fmt.Errorf("invalid season ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid season ID")
	}
	return id, nil
}
