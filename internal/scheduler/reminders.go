// internal/scheduler/reminders.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/shodbyed/cueleague/internal/db"
	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
	"github.com/shodbyed/cueleague/internal/email"
)

const defaultReminderDaysOut = 1

// RegisterWeekReminderJob schedules a recurring task that emails team captains
// ahead of each upcoming league night.
func RegisterWeekReminderJob(database *db.DB, emailClient *email.SESClient, cronExpr string, daysOut int) error {
	if database == nil {
		return fmt.Errorf("week reminder job requires database")
	}
	if daysOut <= 0 {
		daysOut = defaultReminderDaysOut
	}

	jobName := "week_reminders"
	jobLogger := log.With().
		Str("component", "week_reminders_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Int("days_out", daysOut).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if emailClient == nil {
			jobLogger.Debug().Msg("Week reminder job skipped: email client not configured")
			return
		}

		now := time.Now().UTC()
		windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysOut)
		windowEnd := windowStart.AddDate(0, 0, 1)

		weeks, err := database.Queries.ListWeeksScheduledBetween(ctx, dbgen.ListWeeksScheduledBetweenParams{
			ScheduledDate:   windowStart,
			ScheduledDate_2: windowEnd,
		})
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load upcoming weeks for reminder job")
			return
		}

		for _, week := range weeks {
			weekLogger := jobLogger.With().
				Int64("season_id", week.SeasonID).
				Int64("week_id", week.ID).
				Str("week_name", week.WeekName).
				Logger()
			weekCtx := weekLogger.WithContext(ctx)

			teams, err := database.Queries.ListSeasonTeams(weekCtx, week.SeasonID)
			if err != nil {
				weekLogger.Error().Err(err).Msg("Failed to load teams for reminder job")
				continue
			}
			if len(teams) == 0 {
				continue
			}

			notice := email.WeekReminder(week.LeagueName, dbgen.SeasonWeek{
				ID:            week.ID,
				SeasonID:      week.SeasonID,
				WeekNumber:    week.WeekNumber,
				WeekName:      week.WeekName,
				ScheduledDate: week.ScheduledDate,
				WeekType:      week.WeekType,
				WeekCompleted: week.WeekCompleted,
				Notes:         week.Notes,
			})
			email.NotifyCaptains(weekCtx, emailClient, teams, notice, &weekLogger)
		}
	}, gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		return fmt.Errorf("add week reminder job: %w", err)
	}

	jobLogger.Info().Msg("Week reminder job registered")
	return nil
}
