package model

import (
	"cmp"
	"strings"
	"time"
)

const (
	TableName  = "slots"
	EntityName = "slot"

	FieldID           = "id"
	FieldExperienceID = "experience_id"
	FieldDate         = "date"
	FieldTime         = "time"
	FieldCapacity     = "capacity"
	FieldBookedCount  = "booked_count"

	timeLabelLayout = "3:04 pm"
)

// Slot is one dated, timed instance of an experience. Time is a free text label.
type Slot struct {
	ID           string    `db:"id"`
	ExperienceID string    `db:"experience_id"`
	Date         time.Time `db:"date"`
	Time         string    `db:"time"`
	Capacity     int       `db:"capacity"`
	BookedCount  int       `db:"booked_count"`
	CreatedAt    time.Time `db:"created_at"`
}

func (s Slot) Available() int {
	return max(s.Capacity-s.BookedCount, 0)
}

// StartMinute parses a label like "9:00 am" or "07:00 PM" into minutes after midnight.
func StartMinute(label string) (int, bool) {
	t, err := time.Parse(timeLabelLayout, strings.ToLower(strings.TrimSpace(label)))
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}

// Compare orders slots by date, then start time. Labels that do not parse sort
// after those that do, by text.
func Compare(a, b Slot) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}

	am, aOK := StartMinute(a.Time)
	bm, bOK := StartMinute(b.Time)

	switch {
	case aOK && bOK:
		if c := cmp.Compare(am, bm); c != 0 {
			return c
		}
	case aOK:
		return -1
	case bOK:
		return 1
	}

	return strings.Compare(a.Time, b.Time)
}
