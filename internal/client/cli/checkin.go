package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/churchhub/internal/client/catalog"
	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
)

var errNoCheckInEvents = errors.New("no events to check in to today")

// CheckIn lists today's events, lets the user pick one and confirms after
// the configured delay. Cancelling ctx during the delay aborts without a
// confirmation.
func (a *App) CheckIn(ctx context.Context) error {
	if _, err := a.nav.Navigate(navigation.RouteCheckIn, nil); err != nil {
		return a.fail(err)
	}
	a.heading(a.text.CheckIn)

	evs := catalog.CheckInEvents(a.now())
	if len(evs) == 0 {
		a.println("No events to check in to today.")
		return errNoCheckInEvents
	}
	for i, e := range evs {
		a.printf("  %d. %s (%s)\n", i+1, e.Title, e.Start.Format("3:04 PM"))
	}

	choice, err := getSimpleText(a.reader, "Event number (empty to cancel)", a.out)
	if err != nil {
		return err
	}
	if choice == "" {
		return nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(evs) {
		return a.fail(errors.New("pick a number from the list"))
	}
	ev := evs[n-1]

	a.println("Checking in...")
	if err := sleepCtx(ctx, a.checkInDelay); err != nil {
		a.println("Check-in cancelled.")
		return err
	}

	u, _ := a.session.User()
	confirmation := uuid.NewString()
	a.log.Info(ctx, "checked in", "user_id", u.ID, "event_id", ev.ID, "confirmation", confirmation)
	a.printf("Checked in to %s. Confirmation: %s\n", ev.Title, confirmation)
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
