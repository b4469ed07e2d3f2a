package schedule

import (
	"testing"
	"time"
)

func TestNormalizeDefaults(t *testing.T) {
	ev := Normalize(Raw{
		"id":    "ev-1",
		"start": "2025-11-17T09:00:00",
		"end":   "2025-11-17T10:00:00",
	})

	if ev.ID != "ev-1" {
		t.Errorf("ID = %q, want %q", ev.ID, "ev-1")
	}
	if ev.Title != "Untitled event" {
		t.Errorf("Title = %q, want %q", ev.Title, "Untitled event")
	}
	if ev.RoomID != "unknown" {
		t.Errorf("RoomID = %q, want %q", ev.RoomID, "unknown")
	}
	if ev.RoomName != "Unknown room" {
		t.Errorf("RoomName = %q, want %q", ev.RoomName, "Unknown room")
	}
	if ev.Type != TypeOther {
		t.Errorf("Type = %q, want %q", ev.Type, TypeOther)
	}
	if ev.Status != StatusConfirmed {
		t.Errorf("Status = %q, want %q", ev.Status, StatusConfirmed)
	}
	if ev.Security != SecurityOpen {
		t.Errorf("Security = %q, want %q", ev.Security, SecurityOpen)
	}
	if len(ev.Options) != 0 {
		t.Errorf("Options = %v, want empty", ev.Options)
	}
	if ev.Updated {
		t.Errorf("Updated = true, want false")
	}
	if !ev.IsValid() {
		t.Errorf("expected valid event, got %v", ev)
	}
}

func TestNormalizeCasingAndTrimming(t *testing.T) {
	ev := Normalize(Raw{
		"id":       " ev-2 ",
		"title":    "  High-Level Segment  ",
		"start":    "2025-11-17T09:00:00",
		"end":      "2025-11-17T10:00:00",
		"roomId":   " Plenary-Amazonas ",
		"roomName": " Plenary Amazonas ",
		"type":     "PLENARY",
		"status":   " Confirmed ",
		"security": "RESTRICTED",
	})

	if ev.ID != "ev-2" {
		t.Errorf("ID = %q", ev.ID)
	}
	if ev.Title != "High-Level Segment" {
		t.Errorf("Title = %q", ev.Title)
	}
	if ev.RoomID != "plenary-amazonas" {
		t.Errorf("RoomID = %q", ev.RoomID)
	}
	if ev.RoomName != "Plenary Amazonas" {
		t.Errorf("RoomName = %q", ev.RoomName)
	}
	if ev.Type != TypePlenary {
		t.Errorf("Type = %q", ev.Type)
	}
	if ev.Status != StatusConfirmed {
		t.Errorf("Status = %q", ev.Status)
	}
	if ev.Security != SecurityRestricted {
		t.Errorf("Security = %q", ev.Security)
	}
}

func TestNormalizeStatusRemap(t *testing.T) {
	tests := []struct {
		raw  interface{}
		want string
	}{
		{"confirmed", StatusConfirmed},
		{"pending", StatusPending},
		{"tbc", StatusTentative},
		{"tentative", StatusTentative},
		{"cancelled", StatusBlocked},
		{"canceled", StatusBlocked},
		{"blocked", StatusBlocked},
		{"nonsense", StatusConfirmed},
		{nil, StatusConfirmed},
		{42, StatusConfirmed},
	}
	for _, tt := range tests {
		ev := Normalize(Raw{"id": "x", "status": tt.raw})
		if ev.Status != tt.want {
			t.Errorf("Normalize(status=%v).Status = %q, want %q", tt.raw, ev.Status, tt.want)
		}
	}
}

func TestNormalizeSecurityCollapses(t *testing.T) {
	tests := []struct {
		raw  interface{}
		want string
	}{
		{"open", SecurityOpen},
		{"restricted", SecurityRestricted},
		{"public", SecurityOpen},
		{"", SecurityOpen},
		{nil, SecurityOpen},
		{true, SecurityOpen},
	}
	for _, tt := range tests {
		ev := Normalize(Raw{"id": "x", "security": tt.raw})
		if ev.Security != tt.want {
			t.Errorf("Normalize(security=%v).Security = %q, want %q", tt.raw, ev.Security, tt.want)
		}
	}
}

func TestNormalizeUnknownType(t *testing.T) {
	for _, raw := range []interface{}{"gala", "", nil, 3.14} {
		ev := Normalize(Raw{"id": "x", "type": raw})
		if ev.Type != TypeOther {
			t.Errorf("Normalize(type=%v).Type = %q, want %q", raw, ev.Type, TypeOther)
		}
	}
}

func TestNormalizeNumericID(t *testing.T) {
	// decoded JSON numbers arrive as float64
	ev := Normalize(Raw{"id": float64(1042)})
	if ev.ID != "1042" {
		t.Errorf("ID = %q, want %q", ev.ID, "1042")
	}
}

func TestNormalizeUnparsableTimes(t *testing.T) {
	ev := Normalize(Raw{
		"id":    "ev-3",
		"start": "yesterday",
		"end":   12345,
	})
	if !ev.StartTime.IsZero() || !ev.EndTime.IsZero() {
		t.Errorf("expected zero times, got %s %s", ev.StartTime, ev.EndTime)
	}
	if ev.IsValid() {
		t.Errorf("event without a usable interval must be invalid")
	}
}

func TestNormalizeStartFormats(t *testing.T) {
	want := time.Date(2025, time.November, 17, 9, 30, 0, 0, time.UTC)
	tests := []string{
		"2025-11-17T09:30:00Z",
		"2025-11-17T09:30:00",
		"2025-11-17T09:30",
		"2025-11-17 09:30:00",
		"2025-11-17 09:30",
	}
	for _, raw := range tests {
		ev := Normalize(Raw{"id": "x", "start": raw})
		if !ev.StartTime.Equal(want) {
			t.Errorf("Normalize(start=%q).StartTime = %s, want %s", raw, ev.StartTime, want)
		}
	}
}

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []string
	}{
		{
			name: "list",
			raw:  []interface{}{"webcast", "record"},
			want: []string{OptionRecord, OptionWebcast},
		},
		{
			name: "single string",
			raw:  "Record",
			want: []string{OptionRecord},
		},
		{
			name: "flag map",
			raw:  map[string]interface{}{"record": true, "webcast": "true", "archive": false},
			want: []string{OptionRecord, OptionWebcast},
		},
		{
			name: "duplicates collapse",
			raw:  []interface{}{"record", "RECORD", " record "},
			want: []string{OptionRecord},
		},
		{
			name: "empty map",
			raw:  map[string]interface{}{},
			want: []string{},
		},
		{
			name: "unusable shape",
			raw:  42.0,
			want: []string{},
		},
		{
			name: "missing",
			raw:  nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOptions(tt.raw)
			if !stringArrayEqual(got, tt.want) {
				t.Errorf("NormalizeOptions(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeAllKeepsInvalid(t *testing.T) {
	events := NormalizeAll([]Raw{
		{"id": "good", "start": "2025-11-17T09:00", "end": "2025-11-17T10:00"},
		{"title": "no identity"},
	})
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if !events[0].IsValid() {
		t.Errorf("first record should be valid")
	}
	if events[1].IsValid() {
		t.Errorf("second record should be invalid")
	}
}
