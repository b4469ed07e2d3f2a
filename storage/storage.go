package storage

import (
	"time"

	"confsched/schedule"
)

type DateCursor struct {
	T time.Time
	D time.Duration
}

func Cursor(st time.Time, d time.Duration) DateCursor {
	return DateCursor{
		T: st,
		D: d,
	}
}

// Day is the cursor covering one calendar day from midnight.
func Day(date time.Time) DateCursor {
	st := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return Cursor(st, 24*time.Hour-time.Second)
}

type Saver interface {
	SaveEvents(schedule.Events) error
	SaveEvent(schedule.Event) error
}

type Loader interface {
	LoadEvents(DateCursor, ...string) (schedule.Events, error)
	LoadEvent(room string, date time.Time, id string) schedule.Event
}

type Repository interface {
	Loader
	Saver
}
