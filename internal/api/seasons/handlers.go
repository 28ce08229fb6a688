// internal/api/seasons/handlers.go
package seasons

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
	"github.com/shodbyed/cueleague/internal/email"
	"github.com/shodbyed/cueleague/internal/handicap"
)

const (
	seasonQueryTimeout  = 5 * time.Second
	seasonIDPathKey     = "id"
	blackoutIDPathKey   = "blackout_id"
	seasonDateLayout    = "2006-01-02"
	defaultSeasonStatus = "draft"
)

var (
	queriesOnce sync.Once
	queries     *dbgen.Queries
	store       *appdb.DB
	emailClient email.EmailSender
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, client email.EmailSender) {
	if database == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
		store = database
		emailClient = client
	})
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDB() *appdb.DB {
	return store
}

func loadEmailClient() email.EmailSender {
	return emailClient
}

type seasonRequest struct {
	LeagueName          string `json:"leagueName"`
	GameType            string `json:"gameType"`
	Format              string `json:"format"`
	StartDate           string `json:"startDate"`
	DayOfWeek           string `json:"dayOfWeek"`
	SeasonLength        int64  `json:"seasonLength"`
	SeasonEndBreakWeeks int64  `json:"seasonEndBreakWeeks"`
	Status              string `json:"status"`
}

// POST /api/v1/seasons
func HandleCreateSeason(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req seasonRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := seasonParamsFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	season, err := q.CreateSeason(ctx, params)
	if err != nil {
		logger.Error().Err(err).Str("league_name", params.LeagueName).Msg("Failed to create season")
		http.Error(w, "Failed to create season", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, season); err != nil {
		logger.Error().Err(err).Int64("season_id", season.ID).Msg("Failed to write season response")
	}
}

// GET /api/v1/seasons/{id}
func HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := seasonIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	season, err := q.GetSeason(ctx, seasonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Season not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to fetch season")
		http.Error(w, "Failed to fetch season", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, season); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write season response")
	}
}

// GET /api/v1/seasons/{id}/schedule
func HandleListSchedule(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := seasonIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	weeks, err := q.ListSeasonWeeks(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to list season weeks")
		http.Error(w, "Failed to list season weeks", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"weeks": weeks}); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write schedule response")
	}
}

func seasonParamsFromRequest(req seasonRequest) (dbgen.CreateSeasonParams, error) {
	var params dbgen.CreateSeasonParams

	name := strings.TrimSpace(req.LeagueName)
	if name == "" {
		return params, apiutil.FieldError{Field: "leagueName", Reason: "is required"}
	}

	gameType := strings.TrimSpace(req.GameType)
	switch gameType {
	case "8_ball", "9_ball", "10_ball":
	default:
		return params, apiutil.FieldError{Field: "gameType", Reason: "must be 8_ball, 9_ball, or 10_ball"}
	}

	format, err := handicap.ParseFormat(strings.TrimSpace(req.Format))
	if err != nil {
		return params, apiutil.FieldError{Field: "format", Reason: "must be 5_man or 8_man"}
	}

	startDate, err := apiutil.ParseDateField(req.StartDate, "startDate")
	if err != nil {
		return params, err
	}

	dayOfWeek, err := parseWeekday(req.DayOfWeek)
	if err != nil {
		return params, err
	}
	if startDate.Weekday() != dayOfWeek {
		return params, apiutil.FieldError{Field: "startDate", Reason: fmt.Sprintf("falls on %s, not %s", startDate.Weekday(), dayOfWeek)}
	}

	if req.SeasonLength <= 0 {
		return params, apiutil.FieldError{Field: "seasonLength", Reason: "must be greater than 0"}
	}
	if req.SeasonEndBreakWeeks < 0 {
		return params, apiutil.FieldError{Field: "seasonEndBreakWeeks", Reason: "must be 0 or greater"}
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = defaultSeasonStatus
	}

	return dbgen.CreateSeasonParams{
		LeagueName:          name,
		GameType:            gameType,
		Format:              string(format),
		StartDate:           startDate,
		DayOfWeek:           int64(dayOfWeek),
		SeasonLength:        req.SeasonLength,
		SeasonEndBreakWeeks: req.SeasonEndBreakWeeks,
		Status:              status,
	}, nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return 0, apiutil.FieldError{Field: "dayOfWeek", Reason: "must be a weekday name"}
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

func blackoutIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(blackoutIDPathKey))
	if raw == "" {
		return 0, fmt.Errorf("invalid blackout ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid blackout ID")
	}
	return id, nil
}

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), seasonQueryTimeout)
}
