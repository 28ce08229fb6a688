package email

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

type recordingSender struct {
	mu         sync.Mutex
	recipients []string
	err        error
	done       chan struct{}
	expected   int
}

func newRecordingSender(expected int) *recordingSender {
	return &recordingSender{done: make(chan struct{}), expected: expected}
}

func (s *recordingSender) Send(ctx context.Context, recipient, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipients = append(s.recipients, recipient)
	if len(s.recipients) == s.expected {
		close(s.done)
	}
	return s.err
}

func (s *recordingSender) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notices to send")
	}
}

func TestScheduleChangeNoticeBody(t *testing.T) {
	weeks := []dbgen.SeasonWeek{
		{WeekName: "Week 5", ScheduledDate: time.Date(2026, time.February, 4, 0, 0, 0, 0, time.UTC)},
		{WeekName: "Playoffs", ScheduledDate: time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC)},
	}

	notice := ScheduleChangeNotice("Tuesday 8-Ball", "blackout added", weeks)

	if !strings.Contains(notice.Subject, "Tuesday 8-Ball") {
		t.Fatalf("subject should name the league, got %q", notice.Subject)
	}
	if !strings.Contains(notice.Body, "blackout added") {
		t.Fatalf("body should include the reason, got %q", notice.Body)
	}
	if !strings.Contains(notice.Body, "Week 5") || !strings.Contains(notice.Body, "Playoffs") {
		t.Fatalf("body should list remaining weeks, got %q", notice.Body)
	}
	if !strings.Contains(notice.Body, "Wednesday, February 4") {
		t.Fatalf("body should format week dates, got %q", notice.Body)
	}
}

func TestWeekReminderFlagsNonRegularWeeks(t *testing.T) {
	offWeek := dbgen.SeasonWeek{
		WeekName:      "Season End Break",
		WeekType:      "week-off",
		ScheduledDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	}

	notice := WeekReminder("Tuesday 8-Ball", offWeek)
	if !strings.Contains(notice.Body, "not a regular play week") {
		t.Fatalf("off week reminder should flag the week type, got %q", notice.Body)
	}

	regular := offWeek
	regular.WeekName = "Week 3"
	regular.WeekType = "regular"
	notice = WeekReminder("Tuesday 8-Ball", regular)
	if strings.Contains(notice.Body, "not a regular play week") {
		t.Fatalf("regular week reminder should not flag the week type, got %q", notice.Body)
	}
}

func TestNotifyCaptainsSkipsTeamsWithoutEmail(t *testing.T) {
	sender := newRecordingSender(2)
	teams := []dbgen.Team{
		{Name: "Sharks", CaptainEmail: "sharks@example.com"},
		{Name: "Hustlers", CaptainEmail: ""},
		{Name: "Breakers", CaptainEmail: "  breakers@example.com  "},
	}
	notice := Notice{Subject: "subject", Body: "body"}
	logger := zerolog.Nop()

	NotifyCaptains(context.Background(), sender, teams, notice, &logger)
	sender.wait(t)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(sender.recipients))
	}
	for _, recipient := range sender.recipients {
		if strings.TrimSpace(recipient) != recipient {
			t.Fatalf("recipient should be trimmed, got %q", recipient)
		}
	}
}

func TestNotifyCaptainsNilSenderDoesNothing(t *testing.T) {
	teams := []dbgen.Team{{Name: "Sharks", CaptainEmail: "sharks@example.com"}}
	logger := zerolog.Nop()

	// Must not panic or spawn work
	NotifyCaptains(context.Background(), nil, teams, Notice{Subject: "s", Body: "b"}, &logger)
}

func TestNotifyCaptainsContinuesAfterFailure(t *testing.T) {
	sender := newRecordingSender(2)
	sender.err = errors.New("ses unavailable")
	teams := []dbgen.Team{
		{Name: "Sharks", CaptainEmail: "sharks@example.com"},
		{Name: "Hustlers", CaptainEmail: "hustlers@example.com"},
	}
	logger := zerolog.Nop()

	NotifyCaptains(context.Background(), sender, teams, Notice{Subject: "s", Body: "b"}, &logger)
	sender.wait(t)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.recipients) != 2 {
		t.Fatalf("delivery failures should not stop later sends, got %d recipients", len(sender.recipients))
	}
}
