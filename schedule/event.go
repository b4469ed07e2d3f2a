package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DayFormat is the canonical calendar-day format used for filtering.
const DayFormat = "2006-01-02"

const (
	TypePlenary      = "plenary"
	TypePress        = "press"
	TypeSide         = "side"
	TypePartner      = "partner"
	TypeCoordination = "coordination"
	TypeBilateral    = "bilateral"
	TypePavilion     = "pavilion"
	TypeMedia        = "media"
	TypeUN           = "un"
	TypeOther        = "other"
)

var ValidTypes = [...]string{
	TypePlenary,
	TypePress,
	TypeSide,
	TypePartner,
	TypeCoordination,
	TypeBilateral,
	TypePavilion,
	TypeMedia,
	TypeUN,
	TypeOther,
}

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusTentative = "tbc"
	StatusBlocked   = "blocked"
)

var ValidStatuses = [...]string{
	StatusConfirmed,
	StatusPending,
	StatusTentative,
	StatusBlocked,
}

const (
	SecurityOpen       = "open"
	SecurityRestricted = "restricted"
)

const (
	OptionRecord  = "record"
	OptionWebcast = "webcast"
	OptionArchive = "archive"
)

var TypeLabels = map[string]string{
	TypePlenary:      "Plenary",
	TypePress:        "Press",
	TypeSide:         "Side event",
	TypePartner:      "Partner",
	TypeCoordination: "Coordination",
	TypeBilateral:    "Bilateral",
	TypePavilion:     "Pavilion",
	TypeMedia:        "Media",
	TypeUN:           "UN",
	TypeOther:        "Other",
}

var StatusLabels = map[string]string{
	StatusConfirmed: "Confirmed",
	StatusPending:   "Pending",
	StatusTentative: "To be confirmed",
	StatusBlocked:   "Blocked",
}

func ValidType(typ string) bool {
	for _, t := range ValidTypes {
		if t == typ {
			return true
		}
	}
	return false
}

func ValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Event is one schedulable meeting occupying a time interval in a room.
// Instances are canonical: every enumerated field has been lower-cased and
// defaulted by Normalize, and Options holds the normalized flag set.
type Event struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	RoomID    string
	RoomName  string
	Type      string
	Status    string
	Security  string
	Options   []string
	Updated   bool
}

type Events []Event

// Date is the calendar day the event belongs to, derived from its start.
func (e Event) Date() string {
	return e.StartTime.Format(DayFormat)
}

func (e Event) StartLocal() string {
	return e.StartTime.Format("15:04")
}

func (e Event) EndLocal() string {
	return e.EndTime.Format("15:04")
}

func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// CrossesMidnight reports whether the event ends on a later calendar day
// than it starts.
func (e Event) CrossesMidnight() bool {
	sy, sm, sd := e.StartTime.Date()
	ey, em, ed := e.EndTime.Date()
	return ey != sy || em != sm || ed != sd
}

func (e Event) HasOption(name string) bool {
	return inStringList(name, e.Options)
}

func (e Event) IsValid() bool {
	return len(e.ID) > 0 && !e.StartTime.IsZero() && e.EndTime.After(e.StartTime)
}

func stringArrayEqual(a1, a2 []string) bool {
	if len(a1) != len(a2) {
		return false
	}
	s1 := append(make([]string, 0, len(a1)), a1...)
	s2 := append(make([]string, 0, len(a2)), a2...)
	sort.Strings(s1)
	sort.Strings(s2)
	for k, v := range s1 {
		if v != s2[k] {
			return false
		}
	}
	return true
}

func inStringList(s string, list []string) bool {
	for _, lss := range list {
		if lss == s {
			return true
		}
	}
	return false
}

func (e Event) Equals(other Event) bool {
	return e.ID == other.ID &&
		e.Title == other.Title &&
		e.StartTime.Equal(other.StartTime) &&
		e.EndTime.Equal(other.EndTime) &&
		e.RoomID == other.RoomID &&
		e.RoomName == other.RoomName &&
		e.Type == other.Type &&
		e.Status == other.Status &&
		e.Security == other.Security &&
		stringArrayEqual(e.Options, other.Options) &&
		e.Updated == other.Updated
}

func (e Event) String() string {
	return e.GoString()
}

func (e Event) GoString() string {
	fmtDay := e.StartTime.Format(DayFormat)
	return fmt.Sprintf("<[%s] %s:%s @ %s %s %s–%s>", e.ID, e.Type, e.Status, e.RoomID, fmtDay, e.StartLocal(), e.EndLocal())
}

func (e Events) String() string {
	return e.GoString()
}

func (e Events) GoString() string {
	ss := make([]string, len(e))
	for i, ev := range e {
		ss[i] = ev.GoString()
	}
	return fmt.Sprintf("Events[%d]:\n\t%s\n", len(e), strings.Join(ss, "\n\t"))
}

func (e Events) Contains(inc Event) bool {
	for _, ev := range e {
		if ev.Equals(inc) {
			return true
		}
	}
	return false
}

// Dates returns the distinct calendar days of the collection, ascending.
func (e Events) Dates() []string {
	dates := make([]string, 0)
	for _, ev := range e {
		if d := ev.Date(); !inStringList(d, dates) {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}
