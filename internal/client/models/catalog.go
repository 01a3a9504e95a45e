package models

import "time"

// EventCategory groups events on the Events screen.
type EventCategory string

const (
	CategoryWorship    EventCategory = "worship"
	CategoryBibleStudy EventCategory = "bible-study"
	CategoryKids       EventCategory = "kids"
	CategoryYouth      EventCategory = "youth"
	CategoryMen        EventCategory = "men"
	CategoryWomen      EventCategory = "women"
	CategoryCommunity  EventCategory = "community"
	CategoryOther      EventCategory = "other"
)

type Event struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	Category    EventCategory
	// Recurrence is a human description such as "Weekly on Sundays";
	// empty for one-off events.
	Recurrence string
	Series     string
}

// Participant is a team member serving in a worship schedule.
type Participant struct {
	ID   string
	Name string
	Role string
}

type Song struct {
	ID      string
	Title   string
	Artist  string
	Version string
	Genre   string
	Key     string
}

type WorshipSchedule struct {
	ID           string
	Title        string
	Start        time.Time
	Participants []Participant
	Songs        []Song
	Previous     bool
}

type Group struct {
	ID          string
	Name        string
	Leader      string
	Meets       string
	Ministry    Ministry
	Description string
}

type KidsLesson struct {
	ID       string
	Title    string
	AgeRange string
	Date     time.Time
	Teacher  string
}

type Devotional struct {
	ID        string
	Title     string
	Scripture string
	Body      string
	Author    string
	Date      time.Time
}
