package seasons

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shodbyed/cueleague/internal/api/apiutil"
	appdb "github.com/shodbyed/cueleague/internal/db"
	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/email"
	"github.com/shodbyed/cueleague/internal/schedule"
)

type generateScheduleRequest struct {
	Regenerate bool `json:"regenerate"`
}

// POST /api/v1/seasons/{id}/schedule/generate
func HandleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	database := loadDB()
	if q == nil || database == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req generateScheduleRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
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

	existing, err := q.ListSeasonWeeks(ctx, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to check existing schedule")
		http.Error(w, "Failed to check existing schedule", http.StatusInternalServerError)
		return
	}
	if len(existing) > 0 && !req.Regenerate {
		http.Error(w, "Schedule already exists for this season", http.StatusConflict)
		return
	}
	for _, week := range existing {
		if week.WeekCompleted {
			http.Error(w, "Completed weeks cannot be regenerated", http.StatusConflict)
			return
		}
	}

	blackouts, err := loadSeasonBlackouts(ctx, q, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to load blackout dates")
		http.Error(w, "Failed to load blackout dates", http.StatusInternalServerError)
		return
	}

	entries, err := schedule.GenerateSchedule(
		season.StartDate,
		time.Weekday(season.DayOfWeek),
		int(season.SeasonLength),
		blackouts,
		int(season.SeasonEndBreakWeeks),
	)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to generate schedule")
		http.Error(w, "Unable to generate a schedule with the current season settings", http.StatusBadRequest)
		return
	}

	var created []dbgen.SeasonWeek
	err = database.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries

		if req.Regenerate {
			if _, err := qtx.DeleteSeasonWeeks(ctx, seasonID); err != nil {
				return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to delete existing weeks", Err: err}
			}
		}

		for _, entry := range entries {
			week, err := qtx.CreateSeasonWeek(ctx, dbgen.CreateSeasonWeekParams{
				SeasonID:      seasonID,
				WeekNumber:    int64(entry.WeekNumber),
				WeekName:      entry.WeekName,
				ScheduledDate: entry.Date,
				WeekType:      string(entry.Type),
				WeekCompleted: false,
				Notes:         sql.NullString{},
			})
			if err != nil {
				return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to insert season week", Err: err}
			}
			created = append(created, week)
		}
		return nil
	})
	if err != nil {
		writeScheduleError(w, logger, seasonID, err)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{"weeks": created}); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write schedule response")
	}
}

type previewScheduleRequest struct {
	Holidays      []schedule.Holiday           `json:"holidays"`
	Championships []schedule.ChampionshipRange `json:"championships"`
}

// POST /api/v1/seasons/{id}/schedule/preview
func HandlePreviewSchedule(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req previewScheduleRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
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

	blackouts, err := loadSeasonBlackouts(ctx, q, seasonID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to load blackout dates")
		http.Error(w, "Failed to load blackout dates", http.StatusInternalServerError)
		return
	}

	entries, err := schedule.GenerateSchedule(
		season.StartDate,
		time.Weekday(season.DayOfWeek),
		int(season.SeasonLength),
		blackouts,
		int(season.SeasonEndBreakWeeks),
	)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to generate schedule preview")
		http.Error(w, "Unable to generate a schedule with the current season settings", http.StatusBadRequest)
		return
	}

	annotated := schedule.DetectScheduleConflicts(entries, req.Holidays, req.Championships, time.Weekday(season.DayOfWeek))

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"weeks": annotated}); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write preview response")
	}
}

type blackoutRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// POST /api/v1/seasons/{id}/blackouts
func HandleAddBlackout(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	database := loadDB()
	if q == nil || database == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req blackoutRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	seasonID, err := seasonIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}

	blackoutDate, err := apiutil.ParseDateField(req.Date, "date")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		http.Error(w, "reason is required", http.StatusBadRequest)
		return
	}
	if !blackoutDate.After(today()) {
		http.Error(w, "Blackout date must be in the future", http.StatusBadRequest)
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

	var blackout dbgen.BlackoutDate
	var regenerated []dbgen.SeasonWeek
	err = database.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries

		var err error
		blackout, err = qtx.CreateBlackoutDate(ctx, dbgen.CreateBlackoutDateParams{
			SeasonID:     seasonID,
			BlackoutDate: blackoutDate,
			Reason:       req.Reason,
		})
		if err != nil {
			return apiutil.HandlerError{Status: http.StatusConflict, Message: "Blackout date already exists", Err: err}
		}

		regenerated, err = schedule.RegenerateFutureWeeks(ctx, qtx, season, blackoutDate)
		if err != nil {
			if errors.Is(err, schedule.ErrCompletedWeekInRange) {
				return apiutil.HandlerError{Status: http.StatusConflict, Message: "Completed weeks cannot be regenerated", Err: err}
			}
			return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to regenerate schedule", Err: err}
		}
		return nil
	})
	if err != nil {
		writeScheduleError(w, logger, seasonID, err)
		return
	}

	notifyScheduleChange(r, q, season, req.Reason, regenerated)

	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{
		"blackout": blackout,
		"weeks":    regenerated,
	}); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write blackout response")
	}
}

// DELETE /api/v1/seasons/{id}/blackouts/{blackout_id}
func HandleRemoveBlackout(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	database := loadDB()
	if q == nil || database == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	seasonID, err := seasonIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid season ID", http.StatusBadRequest)
		return
	}
	blackoutID, err := blackoutIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid blackout ID", http.StatusBadRequest)
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

	blackout, err := q.GetBlackoutDate(ctx, blackoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Blackout date not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("blackout_id", blackoutID).Msg("Failed to fetch blackout date")
		http.Error(w, "Failed to fetch blackout date", http.StatusInternalServerError)
		return
	}
	if blackout.SeasonID != seasonID {
		http.Error(w, "Blackout date not found", http.StatusNotFound)
		return
	}
	if !blackout.BlackoutDate.After(today()) {
		http.Error(w, "Past blackout dates cannot be removed", http.StatusBadRequest)
		return
	}

	var regenerated []dbgen.SeasonWeek
	err = database.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries

		if err := qtx.DeleteBlackoutDate(ctx, blackoutID); err != nil {
			return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to delete blackout date", Err: err}
		}

		var err error
		regenerated, err = schedule.RegenerateFutureWeeks(ctx, qtx, season, blackout.BlackoutDate)
		if err != nil {
			if errors.Is(err, schedule.ErrCompletedWeekInRange) {
				return apiutil.HandlerError{Status: http.StatusConflict, Message: "Completed weeks cannot be regenerated", Err: err}
			}
			return apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to regenerate schedule", Err: err}
		}
		return nil
	})
	if err != nil {
		writeScheduleError(w, logger, seasonID, err)
		return
	}

	notifyScheduleChange(r, q, season, "blackout removed", regenerated)

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"weeks": regenerated}); err != nil {
		logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to write blackout response")
	}
}

func loadSeasonBlackouts(ctx context.Context, q *dbgen.Queries, seasonID int64) ([]schedule.BlackoutDate, error) {
	rows, err := q.ListBlackoutDates(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	blackouts := make([]schedule.BlackoutDate, 0, len(rows))
	for _, row := range rows {
		blackouts = append(blackouts, schedule.BlackoutDate{Date: row.BlackoutDate, Reason: row.Reason})
	}
	return blackouts, nil
}

func notifyScheduleChange(r *http.Request, q *dbgen.Queries, season dbgen.Season, reason string, weeks []dbgen.SeasonWeek) {
	client := loadEmailClient()
	if client == nil || len(weeks) == 0 {
		return
	}
	logger := log.Ctx(r.Context())

	teams, err := q.ListSeasonTeams(r.Context(), season.ID)
	if err != nil {
		logger.Error().Err(err).Int64("season_id", season.ID).Msg("Failed to load teams for schedule notice")
		return
	}

	notice := email.ScheduleChangeNotice(season.LeagueName, reason, weeks)
	email.NotifyCaptains(r.Context(), client, teams, notice, logger)
}

func writeScheduleError(w http.ResponseWriter, logger *zerolog.Logger, seasonID int64, err error) {
	var herr apiutil.HandlerError
	if errors.As(err, &herr) {
		logger.Error().Err(herr.Err).Int64("season_id", seasonID).Msg(herr.Message)
		http.Error(w, herr.Message, herr.Status)
		return
	}
	logger.Error().Err(err).Int64("season_id", seasonID).Msg("Failed to update schedule")
	http.Error(w, "Failed to update schedule", http.StatusInternalServerError)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
