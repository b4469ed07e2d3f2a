package schedule

import "strings"

// FilterState holds the active user-selected constraints. The zero value
// imposes no constraint at all: dimensions left unset simply do not
// participate in matching. Matching is AND across dimensions and OR within
// the room and type sets.
type FilterState struct {
	// Date selects a single canonical day; when set it wins over the range.
	Date string
	// StartDate and EndDate select an inclusive day range; either side may
	// be empty for an open end. Lexical comparison is valid because the
	// canonical day format is YYYY-MM-DD.
	StartDate string
	EndDate   string

	Rooms      []string
	Types      []string
	Security   string
	RecordOnly bool
	Search     string
}

// IsZero reports whether no constraint is active.
func (f FilterState) IsZero() bool {
	return len(f.Date) == 0 && len(f.StartDate) == 0 && len(f.EndDate) == 0 &&
		len(f.Rooms) == 0 && len(f.Types) == 0 &&
		(len(f.Security) == 0 || f.Security == "all") &&
		!f.RecordOnly && len(strings.TrimSpace(f.Search)) == 0
}

// Matches reports whether the event satisfies every active criterion.
func (f FilterState) Matches(e Event) bool {
	date := e.Date()
	if len(f.Date) > 0 && date != f.Date {
		return false
	}
	if len(f.Date) == 0 {
		if len(f.StartDate) > 0 && date < f.StartDate {
			return false
		}
		if len(f.EndDate) > 0 && date > f.EndDate {
			return false
		}
	}
	if len(f.Rooms) > 0 && !inStringList(e.RoomID, f.Rooms) {
		return false
	}
	if len(f.Types) > 0 && !inStringList(e.Type, f.Types) {
		return false
	}
	if len(f.Security) > 0 && f.Security != "all" && e.Security != f.Security {
		return false
	}
	if f.RecordOnly && !e.HasOption(OptionRecord) {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); len(term) > 0 {
		if !strings.Contains(strings.ToLower(e.Title), term) {
			return false
		}
	}
	return true
}

// Apply returns the subset of events matching the filter. Events are never
// mutated; ordering follows the input (grouping and sorting happen
// downstream).
func (f FilterState) Apply(events Events) Events {
	matched := make(Events, 0, len(events))
	for _, ev := range events {
		if f.Matches(ev) {
			matched = append(matched, ev)
		}
	}
	return matched
}
