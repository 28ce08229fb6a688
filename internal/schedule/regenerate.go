package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

var (
	// ErrCompletedWeekInRange is returned when a completed week sits on or
	// after the regeneration cutoff. Completed weeks are immutable, so the
	// edit is rejected rather than worked around.
	ErrCompletedWeekInRange = errors.New("a completed week falls on or after the cutoff date")
)

// RegenerateFutureWeeks implements the mid-season edit protocol: every
// not-completed week dated on or after cutoff is deleted and the remainder of
// the season is regenerated from the earliest removed date using the season's
// current blackout set. Weeks before the cutoff are never touched and week
// numbering resumes after the last kept regular week.
//
// The caller is expected to run this inside a transaction so the delete and
// reinsert land atomically.
func RegenerateFutureWeeks(ctx context.Context, q *dbgen.Queries, season dbgen.Season, cutoff time.Time) ([]dbgen.SeasonWeek, error) {
	if q == nil {
		return nil, errors.New("queries are required")
	}
	cutoff = truncateDate(cutoff)

	weeks, err := q.ListSeasonWeeks(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list season weeks: %w", err)
	}

	var keptRegular, keptBreak int
	var future []dbgen.SeasonWeek
	for _, week := range weeks {
		date := truncateDate(week.ScheduledDate)
		if date.Before(cutoff) {
			switch {
			case week.WeekType == string(WeekTypeRegular):
				keptRegular++
			case week.WeekType == string(WeekTypeOff) && week.WeekName == SeasonEndBreakName:
				keptBreak++
			}
			continue
		}
		if week.WeekCompleted {
			return nil, ErrCompletedWeekInRange
		}
		future = append(future, week)
	}
	if len(future) == 0 {
		return nil, nil
	}

	blackoutRows, err := q.ListBlackoutDates(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list blackout dates: %w", err)
	}
	blackouts := make([]BlackoutDate, 0, len(blackoutRows))
	for _, row := range blackoutRows {
		blackouts = append(blackouts, BlackoutDate{Date: row.BlackoutDate, Reason: row.Reason})
	}

	continueFrom := truncateDate(future[0].ScheduledDate)
	remainingRegular := int(season.SeasonLength) - keptRegular
	remainingBreak := int(season.SeasonEndBreakWeeks) - keptBreak
	if remainingBreak < 0 {
		remainingBreak = 0
	}

	var entries []WeekEntry
	if remainingRegular > 0 {
		entries, err = generateWalk(continueFrom, time.Weekday(season.DayOfWeek), remainingRegular, blackouts, remainingBreak, keptRegular+1)
		if err != nil {
			return nil, err
		}
	} else {
		// Only trailing weeks remain past the cutoff.
		entries = trailingEntries(continueFrom, remainingBreak)
	}

	if _, err := q.DeleteFutureSeasonWeeks(ctx, dbgen.DeleteFutureSeasonWeeksParams{
		SeasonID:      season.ID,
		ScheduledDate: cutoff,
	}); err != nil {
		return nil, fmt.Errorf("delete future weeks: %w", err)
	}

	inserted := make([]dbgen.SeasonWeek, 0, len(entries))
	for _, entry := range entries {
		week, err := q.CreateSeasonWeek(ctx, dbgen.CreateSeasonWeekParams{
			SeasonID:      season.ID,
			WeekNumber:    int64(entry.WeekNumber),
			WeekName:      entry.WeekName,
			ScheduledDate: entry.Date,
			WeekType:      string(entry.Type),
			WeekCompleted: false,
			Notes:         sql.NullString{},
		})
		if err != nil {
			return nil, fmt.Errorf("insert week %q: %w", entry.WeekName, err)
		}
		inserted = append(inserted, week)
	}
	return inserted, nil
}

func trailingEntries(from time.Time, breakWeeks int) []WeekEntry {
	entries := make([]WeekEntry, 0, breakWeeks+1)
	date := from
	for i := 0; i < breakWeeks; i++ {
		entries = append(entries, WeekEntry{WeekName: SeasonEndBreakName, Date: date, Type: WeekTypeOff})
		date = date.AddDate(0, 0, 7)
	}
	entries = append(entries, WeekEntry{WeekName: PlayoffsName, Date: date, Type: WeekTypePlayoffs})
	return entries
}
