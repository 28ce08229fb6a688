package handicap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

// Format selects the handicap output scale. 5-man teams play three a side
// and use a small signed range; 8-man teams play five a side and use a
// win-percentage scale.
type Format string

const (
	FormatFiveMan  Format = "5_man"
	FormatEightMan Format = "8_man"
)

// Variant selects the magnitude cap. VariantNone short-circuits to the
// format default without touching game history.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantReduced  Variant = "reduced"
	VariantNone     Variant = "none"
)

// formatDefaults maps each format to its safe default so adding a format
// cannot silently inherit the wrong fallback.
var formatDefaults = map[Format]int{
	FormatFiveMan:  0,
	FormatEightMan: 40,
}

const (
	// DefaultGameLimit bounds how many most-recent eligible games feed a
	// player handicap.
	DefaultGameLimit = 200

	// minFiveManGames is the eligibility floor for the 5-man scale.
	minFiveManGames = 18

	// gamesPerWeek converts a game count into weeks played on the 5-man scale.
	gamesPerWeek = 6
)

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatFiveMan, FormatEightMan:
		return Format(raw), nil
	default:
		return "", fmt.Errorf("unknown format %q", raw)
	}
}

func ParseVariant(raw string) (Variant, error) {
	switch Variant(raw) {
	case VariantStandard, VariantReduced, VariantNone:
		return Variant(raw), nil
	default:
		return "", fmt.Errorf("unknown variant %q", raw)
	}
}

// Default returns the fallback value for a format.
func Default(format Format) int {
	return formatDefaults[format]
}

// Options configure a player handicap calculation.
type Options struct {
	Format   Format
	Variant  Variant
	GameType string
	// CurrentSeasonID prioritizes recency; zero means no season preference.
	CurrentSeasonID int64
	// GameLimit defaults to DefaultGameLimit when zero.
	GameLimit int
}

// CalculatePlayerHandicap returns the player's handicap for the given format
// and variant. It never fails: any fetch or computation error is logged and
// absorbed to the format default so match scoring is never blocked on a
// handicap lookup.
func CalculatePlayerHandicap(ctx context.Context, q *dbgen.Queries, playerID int64, opts Options) int {
	value, err := computePlayerHandicap(ctx, q, playerID, opts)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Int64("player_id", playerID).
			Str("format", string(opts.Format)).
			Str("variant", string(opts.Variant)).
			Msg("Handicap calculation failed, using format default")
		return Default(opts.Format)
	}
	return value
}

func computePlayerHandicap(ctx context.Context, q *dbgen.Queries, playerID int64, opts Options) (int, error) {
	if opts.Variant == VariantNone {
		return Default(opts.Format), nil
	}
	if q == nil {
		return 0, errors.New("queries are required")
	}

	limit := opts.GameLimit
	if limit <= 0 {
		limit = DefaultGameLimit
	}

	games, err := q.ListPlayerGames(ctx, dbgen.ListPlayerGamesParams{
		GameType:        opts.GameType,
		PlayerID:        playerID,
		CurrentSeasonID: opts.CurrentSeasonID,
		Limit:           int64(limit),
	})
	if err != nil {
		return 0, fmt.Errorf("list player games: %w", err)
	}

	return FromGames(playerID, games, opts.Format, opts.Variant), nil
}

// FromGames is the pure handicap computation over an already-fetched game
// history. Games are attributed to the player by winner ID; every eligible
// game the player appears in counts as played.
func FromGames(playerID int64, games []dbgen.Game, format Format, variant Variant) int {
	if variant == VariantNone || len(games) == 0 {
		return Default(format)
	}

	wins := 0
	for _, game := range games {
		if game.WinnerPlayerID == playerID {
			wins++
		}
	}
	played := len(games)
	losses := played - wins

	switch format {
	case FormatFiveMan:
		if played < minFiveManGames {
			return 0
		}
		weeksPlayed := float64(played) / gamesPerWeek
		raw := float64(wins-losses) / weeksPlayed
		cap := 2
		if variant == VariantReduced {
			cap = 1
		}
		return clamp(roundNearest(raw), -cap, cap)

	case FormatEightMan:
		winPct := float64(wins) / float64(played) * 100
		if variant == VariantReduced {
			return clamp(roundNearest(winPct/2), 0, 50)
		}
		return clamp(roundNearest(winPct), 0, 100)

	default:
		return Default(format)
	}
}

// CalculateTeamHandicap returns the home team's handicap bonus for a match:
// the difference in completed-match wins between the two teams, floor-divided
// by the variant threshold. The away team never receives a bonus. Failures
// are logged and absorbed to zero.
func CalculateTeamHandicap(ctx context.Context, q *dbgen.Queries, homeTeamID, awayTeamID, seasonID int64, variant Variant) int {
	value, err := computeTeamHandicap(ctx, q, homeTeamID, awayTeamID, seasonID, variant)
	if err != nil {
		log.Ctx(ctx).Error().
			Err(err).
			Int64("home_team_id", homeTeamID).
			Int64("away_team_id", awayTeamID).
			Int64("season_id", seasonID).
			Msg("Team handicap calculation failed, using zero")
		return 0
	}
	return value
}

func computeTeamHandicap(ctx context.Context, q *dbgen.Queries, homeTeamID, awayTeamID, seasonID int64, variant Variant) (int, error) {
	if variant == VariantNone {
		return 0, nil
	}
	if q == nil {
		return 0, errors.New("queries are required")
	}

	homeWins, err := q.CountTeamMatchWins(ctx, dbgen.CountTeamMatchWinsParams{
		SeasonID:      seasonID,
		WinningTeamID: sql.NullInt64{Int64: homeTeamID, Valid: true},
	})
	if err != nil {
		return 0, fmt.Errorf("count home team wins: %w", err)
	}
	awayWins, err := q.CountTeamMatchWins(ctx, dbgen.CountTeamMatchWinsParams{
		SeasonID:      seasonID,
		WinningTeamID: sql.NullInt64{Int64: awayTeamID, Valid: true},
	})
	if err != nil {
		return 0, fmt.Errorf("count away team wins: %w", err)
	}

	threshold := 2
	if variant == VariantReduced {
		threshold = 3
	}
	return floorDiv(int(homeWins-awayWins), threshold), nil
}

func roundNearest(value float64) int {
	return int(math.Round(value))
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// floorDiv divides rounding toward negative infinity, matching how the bonus
// penalizes a home team that trails the standings.
func floorDiv(a, b int) int {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient--
	}
	return quotient
}
