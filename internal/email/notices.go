package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	dbgen "github.com/shodbyed/cueleague/internal/db/generated"
)

const noticeEmailTimeout = 5 * time.Second

const noticeDateLayout = "Monday, January 2"

// Notice is a plain-text message ready for delivery.
type Notice struct {
	Subject string
	Body    string
}

// ScheduleChangeNotice describes a regenerated remainder of a season.
func ScheduleChangeNotice(leagueName, reason string, weeks []dbgen.SeasonWeek) Notice {
	var body strings.Builder
	fmt.Fprintf(&body, "The %s schedule has changed", leagueName)
	if reason != "" {
		fmt.Fprintf(&body, " (%s)", reason)
	}
	body.WriteString(".\n\nUpdated remaining weeks:\n")
	for _, week := range weeks {
		fmt.Fprintf(&body, "  %s - %s\n", week.ScheduledDate.Format(noticeDateLayout), week.WeekName)
	}
	body.WriteString("\nCheck with your captain if your lineup is affected.\n")

	return Notice{
		Subject: fmt.Sprintf("%s: schedule update", leagueName),
		Body:    body.String(),
	}
}

// WeekReminder announces an upcoming league night.
func WeekReminder(leagueName string, week dbgen.SeasonWeek) Notice {
	var body strings.Builder
	fmt.Fprintf(&body, "%s is coming up on %s for %s.\n", week.WeekName, week.ScheduledDate.Format(noticeDateLayout), leagueName)
	if week.WeekType != "regular" {
		body.WriteString("This is not a regular play week.\n")
	}

	return Notice{
		Subject: fmt.Sprintf("%s: %s on %s", leagueName, week.WeekName, week.ScheduledDate.Format("Jan 2")),
		Body:    body.String(),
	}
}

// NotifyCaptains delivers a notice to every team captain with an email
// address, asynchronously. Delivery failures are logged, never surfaced.
func NotifyCaptains(ctx context.Context, sender EmailSender, teams []dbgen.Team, notice Notice, logger *zerolog.Logger) {
	if sender == nil || notice.Subject == "" || notice.Body == "" {
		return
	}

	recipients := make([]string, 0, len(teams))
	for _, team := range teams {
		recipient := strings.TrimSpace(team.CaptainEmail)
		if recipient == "" {
			continue
		}
		recipients = append(recipients, recipient)
	}
	if len(recipients) == 0 {
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), noticeEmailTimeout)
		defer cancel()
		for _, recipient := range recipients {
			if err := sender.Send(sendCtx, recipient, notice.Subject, notice.Body); err != nil {
				if logger != nil {
					logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send captain notice")
				}
				continue
			}
			if logger != nil {
				logger.Info().Str("recipient", recipient).Msg("Captain notice sent")
			}
		}
	}()
}
