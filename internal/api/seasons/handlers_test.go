package seasons

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	appdb "github.com/shodbyed/cueleague/internal/db"
	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

var testDB *appdb.DB

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "seasons-handlers-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create temp dir: %v\n", err)
		os.Exit(1)
	}

	database, err := appdb.New(filepath.Join(dir, "test.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "create test db: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}
	testDB = database
	InitHandlers(database, nil)

	code := m.Run()

	database.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

// nextWeekday returns the first occurrence of the weekday strictly after today,
// at least a week out so blackout dates derived from it stay in the future.
func nextWeekday(day time.Weekday) time.Time {
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7)
	for date.Weekday() != day {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func createTestSeason(t *testing.T, seasonLength, breakWeeks int64) dbgen.Season {
	t.Helper()
	season, err := testDB.Queries.CreateSeason(context.Background(), dbgen.CreateSeasonParams{
		LeagueName:          "Handler Test League",
		GameType:            "9_ball",
		Format:              "5_man",
		StartDate:           nextWeekday(time.Wednesday),
		DayOfWeek:           int64(time.Wednesday),
		SeasonLength:        seasonLength,
		SeasonEndBreakWeeks: breakWeeks,
		Status:              "active",
	})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	return season
}

func postJSON(t *testing.T, target, body string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return httptest.NewRecorder(), req
}

func TestHandleCreateSeason(t *testing.T) {
	start := nextWeekday(time.Tuesday)
	body := fmt.Sprintf(`{
		"leagueName": "Tuesday 8-Ball",
		"gameType": "8_ball",
		"format": "5_man",
		"startDate": %q,
		"dayOfWeek": "Tuesday",
		"seasonLength": 16,
		"seasonEndBreakWeeks": 1
	}`, start.Format("2006-01-02"))

	rec, req := postJSON(t, "/api/v1/seasons", body)
	HandleCreateSeason(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var season dbgen.Season
	if err := json.Unmarshal(rec.Body.Bytes(), &season); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if season.ID == 0 {
		t.Fatal("expected season ID in response")
	}
	if season.Status != "draft" {
		t.Fatalf("expected default draft status, got %q", season.Status)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/seasons/1", nil)
	getReq.SetPathValue("id", fmt.Sprint(season.ID))
	getRec := httptest.NewRecorder()
	HandleGetSeason(getRec, getReq)
	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching created season, got %d", getRec.Code)
	}
}

func TestHandleCreateSeasonValidation(t *testing.T) {
	wednesday := nextWeekday(time.Wednesday).Format("2006-01-02")

	cases := []struct {
		name string
		body string
	}{
		{
			name: "unknown game type",
			body: fmt.Sprintf(`{"leagueName": "L", "gameType": "snooker", "format": "5_man", "startDate": %q, "dayOfWeek": "Wednesday", "seasonLength": 10}`, wednesday),
		},
		{
			name: "weekday mismatch",
			body: fmt.Sprintf(`{"leagueName": "L", "gameType": "8_ball", "format": "5_man", "startDate": %q, "dayOfWeek": "Thursday", "seasonLength": 10}`, wednesday),
		},
		{
			name: "zero season length",
			body: fmt.Sprintf(`{"leagueName": "L", "gameType": "8_ball", "format": "5_man", "startDate": %q, "dayOfWeek": "Wednesday", "seasonLength": 0}`, wednesday),
		},
		{
			name: "unknown format",
			body: fmt.Sprintf(`{"leagueName": "L", "gameType": "8_ball", "format": "6_man", "startDate": %q, "dayOfWeek": "Wednesday", "seasonLength": 10}`, wednesday),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, req := postJSON(t, "/api/v1/seasons", tc.body)
			HandleCreateSeason(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleGenerateSchedule(t *testing.T) {
	season := createTestSeason(t, 8, 1)

	rec, req := postJSON(t, "/api/v1/seasons/1/schedule/generate", "")
	req.SetPathValue("id", fmt.Sprint(season.ID))
	HandleGenerateSchedule(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Weeks []dbgen.SeasonWeek `json:"weeks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// 8 regular + 1 break + playoffs
	if len(resp.Weeks) != 10 {
		t.Fatalf("expected 10 weeks, got %d", len(resp.Weeks))
	}
	if resp.Weeks[0].WeekName != "Week 1" {
		t.Fatalf("expected schedule to open with Week 1, got %q", resp.Weeks[0].WeekName)
	}

	// A second generate without the regenerate flag conflicts.
	rec, req = postJSON(t, "/api/v1/seasons/1/schedule/generate", "")
	req.SetPathValue("id", fmt.Sprint(season.ID))
	HandleGenerateSchedule(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for existing schedule, got %d", rec.Code)
	}

	// Regenerate replaces rather than appends.
	rec, req = postJSON(t, "/api/v1/seasons/1/schedule/generate", `{"regenerate": true}`)
	req.SetPathValue("id", fmt.Sprint(season.ID))
	HandleGenerateSchedule(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for regenerate, got %d: %s", rec.Code, rec.Body.String())
	}

	weeks, err := testDB.Queries.ListSeasonWeeks(context.Background(), season.ID)
	if err != nil {
		t.Fatalf("list weeks: %v", err)
	}
	if len(weeks) != 10 {
		t.Fatalf("regenerate should leave 10 weeks, got %d", len(weeks))
	}
}

func TestHandleGenerateScheduleSeasonNotFound(t *testing.T) {
	rec, req := postJSON(t, "/api/v1/seasons/999999/schedule/generate", "")
	req.SetPathValue("id", "999999")
	HandleGenerateSchedule(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleAddBlackoutRegeneratesSchedule(t *testing.T) {
	season := createTestSeason(t, 6, 0)

	rec, req := postJSON(t, "/api/v1/seasons/1/schedule/generate", "")
	req.SetPathValue("id", fmt.Sprint(season.ID))
	HandleGenerateSchedule(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 generating schedule, got %d", rec.Code)
	}

	// Black out what is currently week 3.
	blackoutDate := season.StartDate.AddDate(0, 0, 14)
	body := fmt.Sprintf(`{"date": %q, "reason": "venue closed"}`, blackoutDate.Format("2006-01-02"))
	rec, req = postJSON(t, "/api/v1/seasons/1/blackouts", body)
	req.SetPathValue("id", fmt.Sprint(season.ID))
	HandleAddBlackout(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 adding blackout, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Blackout dbgen.BlackoutDate `json:"blackout"`
		Weeks    []dbgen.SeasonWeek `json:"weeks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Blackout.ID == 0 {
		t.Fatal("expected persisted blackout in response")
	}
	if len(resp.Weeks) == 0 {
		t.Fatal("expected regenerated weeks in response")
	}
	if resp.Weeks[0].WeekType != "week-off" {
		t.Fatalf("blackout date should become a week off, got %q", resp.Weeks[0].WeekType)
	}

	weeks, err := testDB.Queries.ListSeasonWeeks(context.Background(), season.ID)
	if err != nil {
		t.Fatalf("list weeks: %v", err)
	}
	// 6 regular + week off + playoffs
	if len(weeks) != 8 {
		t.Fatalf("expected 8 weeks after blackout, got %d", len(weeks))
	}
	last := weeks[len(weeks)-1]
	if last.WeekName != "Playoffs" {
		t.Fatalf("schedule should still end with playoffs, got %q", last.WeekName)
	}
}

func TestHandleAddBlackoutRejectsPastDates(t *testing.T) {
	season := createTestSeason(t, 4, 0)

	body := `{"date": "2020-01-01", "reason": "too late"}`
	rec, req := postJSON(t, "/api/v1/seasons/1/blackouts", body)
	req.SetPathValue("id", fmt.Sprint(season.ID))
	HandleAddBlackout(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for past blackout date, got %d", rec.Code)
	}
}

func TestHandleStandingsEmptySeason(t *testing.T) {
	season := createTestSeason(t, 4, 0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/seasons/1/standings", nil)
	req.SetPathValue("id", fmt.Sprint(season.ID))
	rec := httptest.NewRecorder()
	HandleStandings(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Standings []json.RawMessage `json:"standings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Standings) != 0 {
		t.Fatalf("expected empty standings, got %d entries", len(resp.Standings))
	}
}
