package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Raw is an event record as supplied by the event source: keys are the
// source field names, values may be missing, wrongly typed, or
// inconsistently cased. Normalize decides every shape question once, here
// at the boundary; the rest of the package only ever sees canonical Events.
type Raw map[string]interface{}

var startFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseTime(v interface{}) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	for _, f := range startFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func safeString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		if s = strings.TrimSpace(s); len(s) > 0 {
			return s
		}
	}
	return fallback
}

func safeLower(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		if s = strings.ToLower(strings.TrimSpace(s)); len(s) > 0 {
			return s
		}
	}
	return fallback
}

func safeID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		// JSON numbers decode as float64
		return fmt.Sprintf("%.0f", id)
	case int:
		return fmt.Sprintf("%d", id)
	case int64:
		return fmt.Sprintf("%d", id)
	}
	return ""
}

func safeBool(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// NormalizeOptions converts any of the option shapes found in source data
// (list of strings, single string, flag-map) to the canonical sorted flag
// list. Flag-map keys are kept when their value is boolean true or the
// string "true". Any other shape yields an empty list.
func NormalizeOptions(v interface{}) []string {
	opts := make([]string, 0)
	switch val := v.(type) {
	case []string:
		for _, o := range val {
			if o = strings.ToLower(strings.TrimSpace(o)); len(o) > 0 && !inStringList(o, opts) {
				opts = append(opts, o)
			}
		}
	case []interface{}:
		for _, el := range val {
			if o := safeLower(el, ""); len(o) > 0 && !inStringList(o, opts) {
				opts = append(opts, o)
			}
		}
	case string:
		if o := strings.ToLower(strings.TrimSpace(val)); len(o) > 0 {
			opts = append(opts, o)
		}
	case map[string]interface{}:
		for k, set := range val {
			on := safeBool(set) || safeLower(set, "") == "true"
			if k = strings.ToLower(strings.TrimSpace(k)); on && len(k) > 0 && !inStringList(k, opts) {
				opts = append(opts, k)
			}
		}
	}
	sort.Strings(opts)
	return opts
}

// Normalize converts a raw record into the canonical Event shape. It is a
// pure function of its input and never fails: malformed optional fields
// resolve to their documented defaults, and a record with an unusable
// identity or time interval comes back as an Event whose IsValid is false.
func Normalize(raw Raw) Event {
	ev := Event{
		ID:        safeID(raw["id"]),
		Title:     safeString(raw["title"], "Untitled event"),
		StartTime: parseTime(raw["start"]),
		EndTime:   parseTime(raw["end"]),
		RoomID:    safeLower(raw["roomId"], "unknown"),
		RoomName:  safeString(raw["roomName"], "Unknown room"),
		Type:      safeLower(raw["type"], TypeOther),
		Status:    safeLower(raw["status"], StatusConfirmed),
		Security:  safeLower(raw["security"], SecurityOpen),
		Options:   NormalizeOptions(raw["options"]),
		Updated:   safeBool(raw["updated"]),
	}
	if !ValidType(ev.Type) {
		ev.Type = TypeOther
	}
	switch ev.Status {
	case StatusTentative, "tentative":
		ev.Status = StatusTentative
	case "cancelled", "canceled":
		ev.Status = StatusBlocked
	default:
		if !ValidStatus(ev.Status) {
			ev.Status = StatusConfirmed
		}
	}
	if ev.Security != SecurityRestricted {
		ev.Security = SecurityOpen
	}
	return ev
}

// NormalizeAll maps Normalize over a collection of raw records.
func NormalizeAll(raws []Raw) Events {
	events := make(Events, 0, len(raws))
	for _, raw := range raws {
		events = append(events, Normalize(raw))
	}
	return events
}
