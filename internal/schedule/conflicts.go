package schedule

import "time"

type ConflictType string

const (
	ConflictHoliday      ConflictType = "holiday"
	ConflictChampionship ConflictType = "championship"
)

// Conflict flags a schedule entry that overlaps a holiday or a championship
// date range. Conflicts are advisory; an operator decides whether to convert
// the flagged week into a blackout and regenerate.
type Conflict struct {
	Type ConflictType `json:"type"`
	Name string       `json:"name"`
}

type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// ChampionshipRange is a multi-day tournament window (BCA, APA) that league
// players may travel to.
type ChampionshipRange struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DetectScheduleConflicts returns a copy of entries with Conflicts populated
// on every regular or playoffs entry whose date falls on a holiday or within
// a championship range. Week-off entries are never annotated. The result
// depends only on the inputs, so repeated runs yield identical annotations.
func DetectScheduleConflicts(entries []WeekEntry, holidays []Holiday, championships []ChampionshipRange, leagueNight time.Weekday) []WeekEntry {
	holidaysByDate := make(map[string][]Holiday, len(holidays))
	for _, holiday := range holidays {
		key := dateKey(truncateDate(holiday.Date))
		holidaysByDate[key] = append(holidaysByDate[key], holiday)
	}

	annotated := make([]WeekEntry, len(entries))
	copy(annotated, entries)

	for i := range annotated {
		entry := &annotated[i]
		entry.Conflicts = nil
		if entry.Type != WeekTypeRegular && entry.Type != WeekTypePlayoffs {
			continue
		}
		date := truncateDate(entry.Date)
		if date.Weekday() != leagueNight {
			continue
		}
		for _, holiday := range holidaysByDate[dateKey(date)] {
			entry.Conflicts = append(entry.Conflicts, Conflict{Type: ConflictHoliday, Name: holiday.Name})
		}
		for _, championship := range championships {
			if withinRange(date, championship.Start, championship.End) {
				entry.Conflicts = append(entry.Conflicts, Conflict{Type: ConflictChampionship, Name: championship.Name})
			}
		}
	}

	return annotated
}

func withinRange(date, start, end time.Time) bool {
	start = truncateDate(start)
	end = truncateDate(end)
	return !date.Before(start) && !date.After(end)
}
