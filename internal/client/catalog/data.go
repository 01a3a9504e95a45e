package catalog

import (
	"time"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

var events = []models.Event{
	{
		ID:    "1",
		Title: "Bible Class",
		Description: "Studying the bible helps us grow in maturity and faith. " +
			"It brings us close to God and we understand his plans and promises.",
		Start:      at(2025, time.August, 31, 8, 45),
		End:        at(2025, time.August, 31, 9, 30),
		Location:   "SFA Church",
		Category:   models.CategoryBibleStudy,
		Recurrence: "Weekly on Sundays",
		Series:     "Sunday Classes",
	},
	{
		ID:    "2",
		Title: "Worship Service",
		Description: "A time to seek God's presence and be equipped to serve him, " +
			"through the songs we sing and the message preached.",
		Start:      at(2025, time.August, 31, 10, 0),
		End:        at(2025, time.August, 31, 11, 45),
		Location:   "SFA Church, 220 Sycamore Ave, Shrewsbury, NJ, United States",
		Category:   models.CategoryWorship,
		Recurrence: "Weekly on Sundays",
		Series:     "Sunday Services",
	},
	{
		ID:    "3",
		Title: "Men's Bible Study",
		Description: "A simple continental breakfast of bagels and coffee, then teaching " +
			"and discussion of the Scriptures. Join us in the church basement.",
		Start:    at(2025, time.September, 13, 8, 0),
		End:      at(2025, time.September, 13, 10, 0),
		Location: "SFA Church Basement",
		Category: models.CategoryMen,
	},
	{
		ID:    "4",
		Title: "Kids Night",
		Description: "A free, fun-filled monthly event for kids in Kindergarten through 5th grade: " +
			"games, music, dancing, Bible lessons and snacks.",
		Start:      at(2025, time.September, 14, 17, 0),
		End:        at(2025, time.September, 14, 19, 0),
		Location:   "SFA Church",
		Category:   models.CategoryKids,
		Recurrence: "Monthly",
	},
	{
		ID:          "5",
		Title:       "SFA Garage/Yard Sale",
		Description: "Bring your gently used items. All proceeds benefit BGMC and Speed the Light.",
		Start:       at(2025, time.September, 27, 8, 0),
		End:         at(2025, time.September, 27, 12, 0),
		Location:    "SFA Church",
		Category:    models.CategoryCommunity,
	},
}

var (
	joao   = models.Participant{ID: "1", Name: "João", Role: "Vocals"}
	maria  = models.Participant{ID: "2", Name: "Maria", Role: "Guitar"}
	pedro  = models.Participant{ID: "3", Name: "Pedro", Role: "Drums"}
	ana    = models.Participant{ID: "4", Name: "Ana", Role: "Keys"}
	carlos = models.Participant{ID: "5", Name: "Carlos", Role: "Vocals"}
)

var nightServiceSongs = []models.Song{
	{ID: "1", Title: "I Surrender", Artist: "Leonardo Gonçalves", Version: "Live", Genre: "Worship", Key: "C"},
	{ID: "2", Title: "In Your Presence", Artist: "Nivea Soares", Version: "Studio", Genre: "Worship", Key: "G"},
	{ID: "3", Title: "Be Exalted", Artist: "Sozo", Version: "Live", Genre: "Praise", Key: "A"},
	{ID: "4", Title: "Agnus Dei / Can Live Here", Artist: "Projeto Vida Music", Version: "Live", Genre: "Worship", Key: "D"},
}

var schedules = []models.WorshipSchedule{
	{ID: "1", Title: "Night Service", Start: at(2025, time.June, 18, 18, 30), Participants: []models.Participant{joao, maria, pedro, ana}},
	{ID: "2", Title: "Night Service", Start: at(2025, time.June, 25, 18, 30), Participants: []models.Participant{carlos}},
	{ID: "3", Title: "Night Service", Start: at(2025, time.June, 11, 18, 30), Participants: []models.Participant{joao, maria},
		Songs: nightServiceSongs, Previous: true},
}

var groups = []models.Group{
	{ID: "1", Name: "Youth Group", Leader: "Pedro", Meets: "Fridays 7:00 PM", Ministry: models.MinistryYouth,
		Description: "Games, worship and a message for grades 6-12."},
	{ID: "2", Name: "Worship Team", Leader: "Maria", Meets: "Thursdays 7:30 PM", Ministry: models.MinistryWorship,
		Description: "Rehearsal for the Sunday services."},
	{ID: "3", Name: "Kids Teachers", Leader: "Ana", Meets: "Second Saturday 10:00 AM", Ministry: models.MinistryKids,
		Description: "Lesson planning for the kids ministry."},
	{ID: "4", Name: "Community Outreach", Leader: "Carlos", Meets: "Last Saturday 9:00 AM", Ministry: models.MinistryOutreach,
		Description: "Serving our neighbours in Shrewsbury."},
}

var kidsLessons = []models.KidsLesson{
	{ID: "1", Title: "David and Goliath", AgeRange: "K-2", Date: at(2025, time.September, 7, 10, 0), Teacher: "Ana"},
	{ID: "2", Title: "Noah's Ark", AgeRange: "K-2", Date: at(2025, time.September, 14, 10, 0), Teacher: "Ana"},
	{ID: "3", Title: "The Good Samaritan", AgeRange: "3-5", Date: at(2025, time.September, 7, 10, 0), Teacher: "João"},
	{ID: "4", Title: "Jonah and the Big Fish", AgeRange: "3-5", Date: at(2025, time.September, 14, 10, 0), Teacher: "João"},
}

var devotionals = []models.Devotional{
	{ID: "1", Title: "Peace in the Storm", Scripture: "Mark 4:39", Author: "Pastor",
		Body: "He arose and rebuked the wind. The one who calms the sea is with you today."},
	{ID: "2", Title: "Daily Bread", Scripture: "Matthew 6:11", Author: "Pastor",
		Body: "Trust him for today. Tomorrow's provision comes with tomorrow."},
	{ID: "3", Title: "Walking in Love", Scripture: "Ephesians 5:2", Author: "Pastor",
		Body: "Love is not a feeling we wait for but a path we choose to walk."},
	{ID: "4", Title: "Strength Renewed", Scripture: "Isaiah 40:31", Author: "Pastor",
		Body: "Those who wait on the Lord will run and not grow weary."},
	{ID: "5", Title: "A Lamp to My Feet", Scripture: "Psalm 119:105", Author: "Pastor",
		Body: "His word shows the next step, and the next step is enough."},
}
