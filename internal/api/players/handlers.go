// internal/api/players/handlers.go
package players

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

	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog/log"

	"github.com/shodbyed/cueleague/internal/api/apiutil"
	appdb "github.com/shodbyed/cueleague/internal/db"
	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/handicap"
)

const (
	playerQueryTimeout  = 5 * time.Second
	playerIDPathKey     = "id"
	defaultPhoneRegion  = "US"
	defaultPlayerStatus = "active"
)

var (
	queriesOnce sync.Once
	queries     *dbgen.Queries
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
	})
}

func loadQueries() *dbgen.Queries {
	return queries
}

type playerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// POST /api/v1/players
func HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req playerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		http.Error(w, "firstName and lastName are required", http.StatusBadRequest)
		return
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(req.Email),
		Phone:     phone,
		Status:    defaultPlayerStatus,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create player")
		http.Error(w, "Failed to create player", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, player); err != nil {
		logger.Error().Err(err).Int64("player_id", player.ID).Msg("Failed to write player response")
	}
}

// GET /api/v1/players/{id}/handicap
func HandleGetHandicap(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	playerID, err := playerIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()

	format, err := handicap.ParseFormat(query.Get("format"))
	if err != nil {
		http.Error(w, "format must be 5_man or 8_man", http.StatusBadRequest)
		return
	}
	variant, err := handicap.ParseVariant(query.Get("variant"))
	if err != nil {
		http.Error(w, "variant must be standard, reduced, or none", http.StatusBadRequest)
		return
	}
	gameType := strings.TrimSpace(query.Get("game_type"))
	if gameType == "" {
		http.Error(w, "game_type is required", http.StatusBadRequest)
		return
	}
	seasonID, err := apiutil.ParseOptionalInt64Field(query.Get("season_id"), "season_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gameLimit, err := apiutil.ParseOptionalInt64Field(query.Get("game_limit"), "game_limit")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := contextWithTimeout(r)
	defer cancel()

	if _, err := q.GetPlayer(ctx, playerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to fetch player")
		http.Error(w, "Failed to fetch player", http.StatusInternalServerError)
		return
	}

	value := handicap.CalculatePlayerHandicap(ctx, q, playerID, handicap.Options{
		Format:          format,
		Variant:         variant,
		GameType:        gameType,
		CurrentSeasonID: seasonID,
		GameLimit:       int(gameLimit),
	})

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{
		"playerId": playerID,
		"format":   format,
		"variant":  variant,
		"gameType": gameType,
		"handicap": value,
	}); err != nil {
		logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to write handicap response")
	}
}

// normalizePhone returns the E.164 form of a phone number, or an empty string
// for an empty input.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	parsed, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("phone is not a valid number")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("phone is not a valid number")
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func playerIDFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(playerIDPathKey))
	if raw == "" {
		return 0, fmt.Errorf("invalid player ID")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid player ID")
	}
	return id, nil
}

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), playerQueryTimeout)
}
