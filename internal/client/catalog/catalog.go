// Package catalog serves the read-only content shown by the screens:
// events, worship schedules, groups, kids lessons and devotionals.
// Lookups of unknown ids return an error wrapping common.ErrNotFound.
package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

// Events returns all events ordered by start time.
func Events() []models.Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b models.Event) int { return a.Start.Compare(b.Start) })
	return out
}

func EventByID(id string) (models.Event, error) {
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, fmt.Errorf("event %q: %w", id, common.ErrNotFound)
}

// UpcomingEvents returns up to limit events that have not ended at now.
// Weekly events are always upcoming.
func UpcomingEvents(now time.Time, limit int) []models.Event {
	var out []models.Event
	for _, e := range Events() {
		if e.End.After(now) || weekly(e) {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// CheckInEvents returns the events one can check in to on now's day: those
// dated that day and weekly ones falling on that weekday.
func CheckInEvents(now time.Time) []models.Event {
	var out []models.Event
	for _, e := range Events() {
		if sameDay(e.Start, now) || (weekly(e) && e.Start.Weekday() == now.Weekday()) {
			out = append(out, e)
		}
	}
	return out
}

// Schedules returns the upcoming or the previous worship schedules.
func Schedules(previous bool) []models.WorshipSchedule {
	var out []models.WorshipSchedule
	for _, s := range schedules {
		if s.Previous == previous {
			out = append(out, s)
		}
	}
	return out
}

func ScheduleByID(id string) (models.WorshipSchedule, error) {
	for _, s := range schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return models.WorshipSchedule{}, fmt.Errorf("schedule %q: %w", id, common.ErrNotFound)
}

func Groups() []models.Group { return slices.Clone(groups) }

func KidsLessons() []models.KidsLesson { return slices.Clone(kidsLessons) }

// DevotionalFor picks the devotional of day; it rotates daily.
func DevotionalFor(day time.Time) models.Devotional {
	d := devotionals[day.YearDay()%len(devotionals)]
	d.Date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return d
}

func weekly(e models.Event) bool {
	return e.Recurrence == "Weekly on Sundays"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
