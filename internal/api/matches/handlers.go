// internal/api/matches/handlers.go
package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shodbyed/cueleague/internal/api/apiutil"
	appdb "github.com/shodbyed/cueleague/internal/db"
	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/handicap"
)

const (
	matchQueryTimeout = 5 * time.Second
	matchIDPathKey    = "id"
)

var (
	queriesOnce sync.Once
	queries     *dbgen.Queries
	store       *appdb.DB
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
		store = database
	})
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDB() *appdb.DB {
	return store
}

type differentialRequest struct {
	Variant       string  `json:"variant"`
	HomePlayerIDs []int64 `json:"homePlayerIds"`
	AwayPlayerIDs []int64 `json:"awayPlayerIds"`
}

// POST /api/v1/matches/{id}/differential
//
// Computes the handicap differential used for scoring threshold lookups. The
// home total includes the team handicap bonus; the away total never does.
func HandleDifferential(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req differentialRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matchID, err := matchIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	variant, err := handicap.ParseVariant(req.Variant)
	if err != nil {
		http.Error(w, "variant must be standard, reduced, or none", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	match, err := q.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to fetch match")
		http.Error(w, "Failed to fetch match", http.StatusInternalServerError)
		return
	}

	season, err := q.GetSeason(ctx, match.SeasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", match.SeasonID).Msg("Failed to fetch season")
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return
	}

	format := handicap.Format(season.Format)
	lineupSize := lineupSizeForFormat(format)
	if len(req.HomePlayerIDs) != lineupSize || len(req.AwayPlayerIDs) != lineupSize {
		http.Error(w, fmt.Sprintf("each lineup must name %d players", lineupSize), http.StatusBadRequest)
		return
	}

	opts := handicap.Options{
		Format:          format,
		Variant:         variant,
		GameType:        season.GameType,
		CurrentSeasonID: season.ID,
	}

	homeTotal := 0
	homeHandicaps := make([]int, 0, lineupSize)
	for _, playerID := range req.HomePlayerIDs {
		value := handicap.CalculatePlayerHandicap(ctx, q, playerID, opts)
		homeHandicaps = append(homeHandicaps, value)
		homeTotal += value
	}
	awayTotal := 0
	awayHandicaps := make([]int, 0, lineupSize)
	for _, playerID := range req.AwayPlayerIDs {
		value := handicap.CalculatePlayerHandicap(ctx, q, playerID, opts)
		awayHandicaps = append(awayHandicaps, value)
		awayTotal += value
	}

	teamBonus := handicap.CalculateTeamHandicap(ctx, q, match.HomeTeamID, match.AwayTeamID, match.SeasonID, variant)
	homeTotal += teamBonus

	homeDiff, awayDiff := handicap.MatchDifferential(homeTotal, awayTotal)

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"matchId":          matchID,
		"variant":          variant,
		"homeHandicaps":    homeHandicaps,
		"awayHandicaps":    awayHandicaps,
		"teamBonus":        teamBonus,
		"homeTotal":        homeTotal,
		"awayTotal":        awayTotal,
		"homeDifferential": homeDiff,
		"awayDifferential": awayDiff,
	}); err != nil {
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to write differential response")
	}
}

func lineupSizeForFormat(format handicap.Format) int {
	if format == handicap.FormatEightMan {
		return 5
	}
	return 3
}

func matchIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(matchIDPathKey))
	if raw == "" {
		return 0, fmt.Errorf("invalid match ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid match ID")
	}
	return id, nil
}
