package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/churchhub/internal/client/catalog"
	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/client/navigation"
)

// Open navigates to r and renders it.
func (a *App) Open(ctx context.Context, r navigation.Route, p navigation.Params) error {
	loc, err := a.nav.Navigate(r, p)
	if err != nil {
		return a.fail(err)
	}
	return a.render(ctx, loc)
}

// Back returns to the previous screen and renders it.
func (a *App) Back(ctx context.Context) error {
	loc, ok := a.nav.Back()
	if !ok {
		return nil
	}
	return a.render(ctx, loc)
}

func (a *App) showCurrent(ctx context.Context) {
	loc, ok := a.nav.Current()
	if !ok {
		return
	}
	_ = a.render(ctx, loc)
}

func (a *App) render(_ context.Context, loc navigation.Location) error {
	switch loc.Route {
	case navigation.RouteLogin:
		a.heading(a.text.Login)
		a.println("Type 'login' to sign in, 'guest' to look around or 'register' to create an account.")
	case navigation.RouteHome:
		a.home()
	case navigation.RouteGive:
		a.heading(a.text.Give)
		a.println("Type 'give' to make a donation.")
	case navigation.RouteEvents:
		a.events()
	case navigation.RouteEventDetails:
		return a.eventDetails(loc.Param(navigation.ParamEventID))
	case navigation.RouteCheckIn:
		a.heading(a.text.CheckIn)
		a.println("Type 'checkin' to check in to today's events.")
	case navigation.RouteMore:
		a.more()
	case navigation.RouteGroups:
		a.groups()
	case navigation.RouteWorship:
		a.worship()
	case navigation.RouteScheduleDetail:
		return a.scheduleDetail(loc.Param(navigation.ParamScheduleID))
	case navigation.RouteKids:
		a.kids()
	case navigation.RouteDevotional:
		a.devotional()
	case navigation.RouteProfile:
		a.profile()
	}
	return nil
}

func (a *App) home() {
	u, _ := a.session.User()
	now := a.now()

	a.heading(a.text.Home)
	a.printf("%s, %s!\n", a.text.Welcome, u.Name)

	a.println()
	a.println("Next events:")
	for _, e := range catalog.UpcomingEvents(now, 3) {
		a.printf("  [%s] %s - %s\n", e.ID, e.Title, when(e.Start, e.End))
	}

	d := catalog.DevotionalFor(now)
	a.printf("\nToday's devotional: %s (%s)\n", d.Title, d.Scripture)

	if a.session.HasPermission(models.PermViewAnalytics) {
		a.printf("\nAnalytics: %d events scheduled, %d groups, %d check-in events today\n",
			len(catalog.Events()), len(catalog.Groups()), len(catalog.CheckInEvents(now)))
	}

	a.println()
	a.println("Quick links: events, give, devotional, groups")
}

func (a *App) events() {
	a.heading(a.text.Events)
	for _, e := range catalog.Events() {
		a.printf("  [%s] %s\n      %s @ %s\n", e.ID, e.Title, when(e.Start, e.End), e.Location)
		if e.Recurrence != "" {
			a.printf("      %s\n", e.Recurrence)
		}
	}
	if a.session.HasPermission(models.PermManageEvents) {
		a.println("\nYou can manage events.")
	}
	a.println("\nType 'event <id>' for details.")
}

func (a *App) eventDetails(id string) error {
	e, err := catalog.EventByID(id)
	if err != nil {
		return a.fail(err)
	}
	a.heading(a.text.EventInfo)
	a.println(e.Title)
	a.printf("When:     %s\n", when(e.Start, e.End))
	a.printf("Where:    %s\n", e.Location)
	a.printf("Category: %s\n", e.Category)
	if e.Series != "" {
		a.printf("Series:   %s\n", e.Series)
	}
	if e.Recurrence != "" {
		a.printf("Repeats:  %s\n", e.Recurrence)
	}
	a.println()
	a.println(e.Description)
	return nil
}

func (a *App) more() {
	a.heading(a.text.More)
	a.println("Access additional features")
	for _, item := range a.gate.MoreMenu() {
		a.printf("  %-12s %s - %s\n", strings.ToLower(string(item.Route)), item.Title, item.Subtitle)
	}
}

func (a *App) groups() {
	a.heading(a.text.Groups)
	for _, g := range catalog.Groups() {
		a.printf("  %s (%s ministry)\n      Leader: %s, meets %s\n      %s\n", g.Name, g.Ministry, g.Leader, g.Meets, g.Description)
	}
}

func (a *App) worship() {
	a.heading(a.text.Worship)
	a.println("Upcoming:")
	for _, s := range catalog.Schedules(false) {
		a.printSchedule(s)
	}
	a.println("Previous:")
	for _, s := range catalog.Schedules(true) {
		a.printSchedule(s)
	}
	if a.session.HasPermission(models.PermManageWorship) {
		a.println("\nYou can edit worship schedules.")
	}
	a.println("\nType 'schedule <id>' for details.")
}

func (a *App) printSchedule(s models.WorshipSchedule) {
	a.printf("  [%s] %s - %s, %d people, %d songs\n",
		s.ID, s.Title, s.Start.Format("Mon Jan 2 15:04"), len(s.Participants), len(s.Songs))
}

func (a *App) scheduleDetail(id string) error {
	s, err := catalog.ScheduleByID(id)
	if err != nil {
		return a.fail(err)
	}
	a.heading(a.text.Schedule)
	a.printf("%s - %s\n", s.Title, s.Start.Format("Monday, January 2 2006 15:04"))

	a.println("\nSongs:")
	if len(s.Songs) == 0 {
		a.println("  (none yet)")
	}
	for i, song := range s.Songs {
		a.printf("  %d. %s - %s (%s, %s, key %s)\n", i+1, song.Title, song.Artist, song.Version, song.Genre, song.Key)
	}

	a.println("\nTeam:")
	for _, p := range s.Participants {
		a.printf("  %s - %s\n", p.Name, p.Role)
	}
	if a.session.HasPermission(models.PermManageWorship) {
		a.println("\nYou can edit this schedule.")
	}
	return nil
}

func (a *App) kids() {
	a.heading(a.text.Kids)
	for _, l := range catalog.KidsLessons() {
		a.printf("  %s  %-24s ages %-4s teacher %s\n", l.Date.Format("Jan 2"), l.Title, l.AgeRange, l.Teacher)
	}
	if a.session.HasPermission(models.PermManageKids) {
		a.println("\nYou can manage lessons and teachers.")
	}
}

func (a *App) devotional() {
	d := catalog.DevotionalFor(a.now())
	a.heading(a.text.Devotional)
	a.printf("%s\n%s - %s\n\n%s\n", d.Date.Format("Monday, January 2"), d.Title, d.Scripture, d.Body)
	if a.session.HasPermission(models.PermPostDevotional) {
		a.println("\nYou can post a new devotional.")
	}
}

func (a *App) profile() {
	u, _ := a.session.User()
	a.heading(a.text.Profile)
	a.printf("Name:       %s\n", u.Name)
	a.printf("Email:      %s\n", u.Email)
	a.printf("Phone:      %s\n", orDash(u.Phone))
	a.printf("Address:    %s\n", orDash(u.Address))
	a.printf("Role:       %s\n", u.Role)
	a.printf("Ministries: %s\n", orDash(u.Ministries.String()))
	a.println("\nType 'edit' to change your details.")
}

func when(start, end time.Time) string {
	s := start.Format("Mon Jan 2 2006, 3:04 PM")
	if end.IsZero() {
		return s
	}
	return fmt.Sprintf("%s-%s", s, end.Format("3:04 PM"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
