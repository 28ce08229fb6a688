package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateScheduleSixteenWeekSeason(t *testing.T) {
	blackouts := []BlackoutDate{{Date: date(2025, time.January, 15), Reason: "Holiday Tournament"}}

	entries, err := GenerateSchedule(date(2025, time.January, 8), time.Wednesday, 16, blackouts, 1)
	if err != nil {
		t.Fatalf("generate schedule: %v", err)
	}

	if len(entries) != 18 {
		t.Fatalf("expected 18 entries, got %d", len(entries))
	}

	var regular, playoffs, breaks, off int
	for _, entry := range entries {
		switch {
		case entry.Type == WeekTypeRegular:
			regular++
		case entry.Type == WeekTypePlayoffs:
			playoffs++
		case entry.Type == WeekTypeOff && entry.WeekName == SeasonEndBreakName:
			breaks++
		case entry.Type == WeekTypeOff:
			off++
		}
	}
	if regular != 16 {
		t.Fatalf("expected 16 regular weeks, got %d", regular)
	}
	if playoffs != 1 {
		t.Fatalf("expected 1 playoffs week, got %d", playoffs)
	}
	if breaks != 1 {
		t.Fatalf("expected 1 season end break week, got %d", breaks)
	}
	if off != 1 {
		t.Fatalf("expected 1 blackout week, got %d", off)
	}

	if last := entries[len(entries)-1]; last.Type != WeekTypePlayoffs {
		t.Fatalf("expected final entry to be playoffs, got %s", last.Type)
	}

	if entries[1].Type != WeekTypeOff || entries[1].WeekName != "Holiday Tournament" {
		t.Fatalf("expected 2025-01-15 to be the blackout week, got %+v", entries[1])
	}
	if !entries[1].Date.Equal(date(2025, time.January, 15)) {
		t.Fatalf("expected blackout on 2025-01-15, got %s", entries[1].Date)
	}
	if entries[2].WeekNumber != 2 || !entries[2].Date.Equal(date(2025, time.January, 22)) {
		t.Fatalf("expected week 2 on 2025-01-22, got %+v", entries[2])
	}
}

func TestGenerateScheduleWeeklyCadence(t *testing.T) {
	entries, err := GenerateSchedule(date(2025, time.March, 3), time.Monday, 8, nil, 2)
	if err != nil {
		t.Fatalf("generate schedule: %v", err)
	}

	for i := 1; i < len(entries); i++ {
		gap := entries[i].Date.Sub(entries[i-1].Date)
		if gap != 7*24*time.Hour {
			t.Fatalf("entries %d and %d are %s apart, want 7 days", i-1, i, gap)
		}
		if !entries[i-1].Date.Before(entries[i].Date) {
			t.Fatalf("entries %d and %d are out of order", i-1, i)
		}
	}

	expected := 1
	for _, entry := range entries {
		if entry.Type != WeekTypeRegular {
			continue
		}
		if entry.WeekNumber != expected {
			t.Fatalf("expected week number %d, got %d", expected, entry.WeekNumber)
		}
		expected++
	}
}

func TestGenerateScheduleIgnoresOffWalkBlackouts(t *testing.T) {
	// Tuesday blackout in a Monday league never lands on the walk.
	blackouts := []BlackoutDate{{Date: date(2025, time.March, 4), Reason: "Venue Closed"}}

	entries, err := GenerateSchedule(date(2025, time.March, 3), time.Monday, 4, blackouts, 0)
	if err != nil {
		t.Fatalf("generate schedule: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.WeekName == "Venue Closed" {
			t.Fatalf("off-walk blackout should not appear in the schedule")
		}
	}
}

func TestGenerateScheduleConsecutiveBlackouts(t *testing.T) {
	blackouts := []BlackoutDate{
		{Date: date(2025, time.November, 26), Reason: "Thanksgiving"},
		{Date: date(2025, time.December, 24), Reason: "Christmas Eve"},
		{Date: date(2025, time.December, 31), Reason: "New Year's Eve"},
	}

	entries, err := GenerateSchedule(date(2025, time.November, 19), time.Wednesday, 10, blackouts, 2)
	if err != nil {
		t.Fatalf("generate schedule: %v", err)
	}

	// seasonLength + encountered blackouts + breaks + playoffs
	if len(entries) != 10+3+2+1 {
		t.Fatalf("expected 16 entries, got %d", len(entries))
	}

	regular := 0
	for _, entry := range entries {
		if entry.Type == WeekTypeRegular {
			regular++
		}
	}
	if regular != 10 {
		t.Fatalf("expected 10 regular weeks, got %d", regular)
	}
}

func TestGenerateScheduleRejectsBadInput(t *testing.T) {
	if _, err := GenerateSchedule(date(2025, time.January, 8), time.Wednesday, 0, nil, 1); err == nil {
		t.Fatalf("expected error for zero season length")
	}
	if _, err := GenerateSchedule(date(2025, time.January, 8), time.Wednesday, -3, nil, 1); err == nil {
		t.Fatalf("expected error for negative season length")
	}
	if _, err := GenerateSchedule(date(2025, time.January, 8), time.Wednesday, 10, nil, -1); err == nil {
		t.Fatalf("expected error for negative break weeks")
	}
	// 2025-01-08 is a Wednesday, not a Tuesday.
	if _, err := GenerateSchedule(date(2025, time.January, 8), time.Tuesday, 10, nil, 1); err == nil {
		t.Fatalf("expected error for start date off the league night")
	}
}

func TestGenerateScheduleFromResumesNumbering(t *testing.T) {
	entries, err := GenerateScheduleFrom(date(2025, time.February, 5), time.Wednesday, 6, nil, 1, 11)
	if err != nil {
		t.Fatalf("generate schedule: %v", err)
	}

	if entries[0].WeekNumber != 11 || entries[0].WeekName != "Week 11" {
		t.Fatalf("expected numbering to resume at week 11, got %+v", entries[0])
	}
	last := entries[len(entries)-2]
	if last.WeekName != SeasonEndBreakName {
		t.Fatalf("expected break before playoffs, got %+v", last)
	}
	if final := entries[len(entries)-1]; final.WeekNumber != 0 {
		t.Fatalf("playoffs week should carry no week number, got %d", final.WeekNumber)
	}
}
