package schedule

import (
	"testing"
	"time"
)

func mkEvent(id, day, start, end, roomID, roomName, typ string, mods ...func(*Event)) Event {
	st, _ := time.Parse("2006-01-02 15:04", day+" "+start)
	et, _ := time.Parse("2006-01-02 15:04", day+" "+end)
	if !et.After(st) {
		et = et.Add(24 * time.Hour)
	}
	ev := Event{
		ID:        id,
		Title:     "Session " + id,
		StartTime: st,
		EndTime:   et,
		RoomID:    roomID,
		RoomName:  roomName,
		Type:      typ,
		Status:    StatusConfirmed,
		Security:  SecurityOpen,
		Options:   []string{},
	}
	for _, mod := range mods {
		mod(&ev)
	}
	return ev
}

func restricted(ev *Event) { ev.Security = SecurityRestricted }

func withOptions(opts ...string) func(*Event) {
	return func(ev *Event) { ev.Options = opts }
}

func withTitle(title string) func(*Event) {
	return func(ev *Event) { ev.Title = title }
}

var filterFixture = Events{
	mkEvent("p1", "2025-11-17", "09:00", "11:00", "plenary-amazonas", "Plenary Amazonas", TypePlenary, withOptions(OptionRecord, OptionWebcast)),
	mkEvent("p2", "2025-11-17", "14:00", "16:00", "plenary-amazonas", "Plenary Amazonas", TypePlenary, restricted),
	mkEvent("m1", "2025-11-18", "10:00", "11:00", "meeting-19", "Meeting Room 19", TypeSide, withTitle("Adaptation finance")),
	mkEvent("m2", "2025-11-19", "10:00", "11:00", "meeting-19", "Meeting Room 19", TypeSide, withOptions(OptionRecord)),
	mkEvent("b1", "2025-11-19", "15:00", "15:30", "bilateral", "Bilateral Room", TypeBilateral),
}

func TestFilterIdentity(t *testing.T) {
	var f FilterState
	if !f.IsZero() {
		t.Errorf("zero FilterState should report IsZero")
	}
	got := f.Apply(filterFixture)
	if len(got) != len(filterFixture) {
		t.Fatalf("identity filter kept %d of %d events", len(got), len(filterFixture))
	}
	for i, ev := range got {
		if !ev.Equals(filterFixture[i]) {
			t.Errorf("event %d changed under identity filter", i)
		}
	}
}

func TestFilterSingleDate(t *testing.T) {
	f := FilterState{Date: "2025-11-17"}
	got := f.Apply(filterFixture)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(got), got)
	}
	for _, ev := range got {
		if ev.Date() != "2025-11-17" {
			t.Errorf("event %s leaked into date filter", ev.ID)
		}
	}
}

func TestFilterDateWinsOverRange(t *testing.T) {
	f := FilterState{Date: "2025-11-18", StartDate: "2025-11-01", EndDate: "2025-11-30"}
	got := f.Apply(filterFixture)
	if len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("got %v, want only m1", got)
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"both bounds", "2025-11-18", "2025-11-19", []string{"m1", "m2", "b1"}},
		{"open start", "", "2025-11-17", []string{"p1", "p2"}},
		{"open end", "2025-11-19", "", []string{"m2", "b1"}},
		{"single day range", "2025-11-18", "2025-11-18", []string{"m1"}},
		{"empty range", "2025-11-20", "2025-11-21", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FilterState{StartDate: tt.start, EndDate: tt.end}
			got := f.Apply(filterFixture)
			ids := make([]string, 0, len(got))
			for _, ev := range got {
				ids = append(ids, ev.ID)
			}
			if !stringArrayEqual(ids, append([]string{}, tt.want...)) {
				t.Errorf("got %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestFilterRoomsOrWithin(t *testing.T) {
	f := FilterState{Rooms: []string{"meeting-19", "bilateral"}}
	got := f.Apply(filterFixture)
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	for _, ev := range got {
		if ev.RoomID != "meeting-19" && ev.RoomID != "bilateral" {
			t.Errorf("event %s in room %s should not match", ev.ID, ev.RoomID)
		}
	}
}

func TestFilterTypesOrWithin(t *testing.T) {
	f := FilterState{Types: []string{TypePlenary, TypeBilateral}}
	got := f.Apply(filterFixture)
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
}

func TestFilterSecurity(t *testing.T) {
	open := FilterState{Security: SecurityOpen}.Apply(filterFixture)
	if len(open) != 4 {
		t.Errorf("open: got %d events, want 4", len(open))
	}
	res := FilterState{Security: SecurityRestricted}.Apply(filterFixture)
	if len(res) != 1 || res[0].ID != "p2" {
		t.Errorf("restricted: got %v, want only p2", res)
	}
	all := FilterState{Security: "all"}.Apply(filterFixture)
	if len(all) != len(filterFixture) {
		t.Errorf("all: got %d events, want %d", len(all), len(filterFixture))
	}
}

func TestFilterRecordOnly(t *testing.T) {
	f := FilterState{RecordOnly: true}
	got := f.Apply(filterFixture)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	for _, ev := range got {
		if !ev.HasOption(OptionRecord) {
			t.Errorf("event %s has no record option", ev.ID)
		}
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	f := FilterState{Search: "  ADAPTATION "}
	got := f.Apply(filterFixture)
	if len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("got %v, want only m1", got)
	}
}

func TestFilterComposesAcrossDimensions(t *testing.T) {
	f := FilterState{
		StartDate: "2025-11-18",
		EndDate:   "2025-11-19",
		Rooms:     []string{"meeting-19"},
		Types:     []string{TypeSide},
		Security:  SecurityOpen,
	}
	got := f.Apply(filterFixture)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	f.RecordOnly = true
	got = f.Apply(filterFixture)
	if len(got) != 1 || got[0].ID != "m2" {
		t.Errorf("got %v, want only m2", got)
	}
}

func TestFilterNoMatchIsEmptyNotNil(t *testing.T) {
	f := FilterState{Rooms: []string{"no-such-room"}}
	got := f.Apply(filterFixture)
	if got == nil {
		t.Fatalf("Apply returned nil")
	}
	if len(got) != 0 {
		t.Errorf("got %d events, want 0", len(got))
	}
}
