package schedule

import (
	"errors"
	"fmt"
	"time"
)

type WeekType string

const (
	WeekTypeRegular  WeekType = "regular"
	WeekTypePlayoffs WeekType = "playoffs"
	WeekTypeOff      WeekType = "week-off"
)

const (
	SeasonEndBreakName = "Season End Break"
	PlayoffsName       = "Playoffs"
)

// WeekEntry is one calendar slot in a season. WeekNumber is the sequence
// index among regular weeks only; it is 0 for non-regular weeks.
type WeekEntry struct {
	WeekNumber int        `json:"weekNumber"`
	WeekName   string     `json:"weekName"`
	Date       time.Time  `json:"date"`
	Type       WeekType   `json:"type"`
	Conflicts  []Conflict `json:"conflicts,omitempty"`
}

// BlackoutDate is a date the generator must never label regular. A blackout
// that does not land on the weekly walk has no effect.
type BlackoutDate struct {
	Date   time.Time
	Reason string
}

// GenerateSchedule walks forward one week at a time from startDate, emitting
// a regular entry per visited date unless the date is blacked out, until
// seasonLength regular weeks exist. It then appends seasonEndBreakWeeks
// week-off entries and a final playoffs entry on consecutive weekly dates.
func GenerateSchedule(startDate time.Time, dayOfWeek time.Weekday, seasonLength int, blackouts []BlackoutDate, seasonEndBreakWeeks int) ([]WeekEntry, error) {
	return GenerateScheduleFrom(startDate, dayOfWeek, seasonLength, blackouts, seasonEndBreakWeeks, 1)
}

// GenerateScheduleFrom is the continuation form of GenerateSchedule: regular
// weeks are numbered starting at firstWeekNumber. Mid-season regeneration
// uses it so numbering resumes after the last kept week.
func GenerateScheduleFrom(startDate time.Time, dayOfWeek time.Weekday, seasonLength int, blackouts []BlackoutDate, seasonEndBreakWeeks int, firstWeekNumber int) ([]WeekEntry, error) {
	if seasonLength <= 0 {
		return nil, errors.New("season length must be positive")
	}
	if firstWeekNumber < 1 {
		return nil, errors.New("first week number must be at least 1")
	}
	return generateWalk(startDate, dayOfWeek, seasonLength, blackouts, seasonEndBreakWeeks, firstWeekNumber)
}

func generateWalk(startDate time.Time, dayOfWeek time.Weekday, seasonLength int, blackouts []BlackoutDate, seasonEndBreakWeeks int, firstWeekNumber int) ([]WeekEntry, error) {
	if seasonEndBreakWeeks < 0 {
		return nil, errors.New("season end break weeks cannot be negative")
	}
	startDate = truncateDate(startDate)
	if startDate.Weekday() != dayOfWeek {
		return nil, fmt.Errorf("start date %s falls on %s, not %s", startDate.Format(dateLayout), startDate.Weekday(), dayOfWeek)
	}

	blackoutByDate := make(map[string]BlackoutDate, len(blackouts))
	for _, blackout := range blackouts {
		blackoutByDate[dateKey(blackout.Date)] = blackout
	}

	entries := make([]WeekEntry, 0, seasonLength+seasonEndBreakWeeks+1)
	weekNumber := firstWeekNumber
	regularCount := 0
	date := startDate

	for regularCount < seasonLength {
		if blackout, ok := blackoutByDate[dateKey(date)]; ok {
			entries = append(entries, WeekEntry{
				WeekName: blackout.Reason,
				Date:     date,
				Type:     WeekTypeOff,
			})
		} else {
			entries = append(entries, WeekEntry{
				WeekNumber: weekNumber,
				WeekName:   fmt.Sprintf("Week %d", weekNumber),
				Date:       date,
				Type:       WeekTypeRegular,
			})
			weekNumber++
			regularCount++
		}
		date = date.AddDate(0, 0, 7)
	}

	for i := 0; i < seasonEndBreakWeeks; i++ {
		entries = append(entries, WeekEntry{
			WeekName: SeasonEndBreakName,
			Date:     date,
			Type:     WeekTypeOff,
		})
		date = date.AddDate(0, 0, 7)
	}

	entries = append(entries, WeekEntry{
		WeekName: PlayoffsName,
		Date:     date,
		Type:     WeekTypePlayoffs,
	})

	return entries, nil
}

const dateLayout = "2006-01-02"

func dateKey(value time.Time) string {
	return value.Format(dateLayout)
}

func truncateDate(value time.Time) time.Time {
	loc := value.Location()
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, loc)
}
