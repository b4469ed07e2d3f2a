package cmd

import (
	"strings"
	"testing"
	"time"

	"confsched/schedule"
)

func testEvent(id string, startHour, endHour int, typ string) schedule.Event {
	day := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)
	return schedule.Event{
		ID:        id,
		Title:     "Session " + id,
		StartTime: day.Add(time.Duration(startHour) * time.Hour),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour),
		RoomID:    "meeting-19",
		RoomName:  "Meeting Room 19",
		Type:      typ,
		Status:    schedule.StatusConfirmed,
		Security:  schedule.SecurityOpen,
	}
}

func TestRenderBar(t *testing.T) {
	w := schedule.Window{StartMinute: 9 * 60, EndMinute: 13 * 60}
	blocks := schedule.LayoutBlocks(schedule.Events{
		testEvent("a", 9, 10, schedule.TypePlenary),
	}, w)

	bar := renderBar(blocks)
	if len([]rune(bar)) != barWidth {
		t.Fatalf("bar width = %d, want %d", len([]rune(bar)), barWidth)
	}
	if !strings.HasPrefix(bar, "pppp") {
		t.Errorf("block marker missing at bar start: %q", bar)
	}
	if !strings.HasSuffix(bar, "...") {
		t.Errorf("empty span not padded: %q", bar)
	}
}

func TestRenderBarMinimalMarker(t *testing.T) {
	w := schedule.Window{StartMinute: 8 * 60, EndMinute: 20 * 60}
	ev := testEvent("tiny", 9, 9, schedule.TypeSide)
	ev.EndTime = ev.StartTime

	bar := renderBar(schedule.LayoutBlocks(schedule.Events{ev}, w))
	if !strings.ContainsRune(bar, 's') {
		t.Errorf("zero-duration event left no marker: %q", bar)
	}
}

func TestRenderAxis(t *testing.T) {
	w := schedule.Window{StartMinute: 9 * 60, EndMinute: 13 * 60}
	axis := renderAxis(w)
	if !strings.HasPrefix(axis, "09:00") {
		t.Errorf("axis = %q", axis)
	}
	if !strings.Contains(axis, "12:00") {
		t.Errorf("axis missing last hour: %q", axis)
	}

	// too many hours to label individually
	wide := schedule.Window{StartMinute: 0, EndMinute: 24 * 60}
	if got := renderAxis(wide); got != "00:00 - 24:00" {
		t.Errorf("wide axis = %q", got)
	}
}

func TestCSVRecord(t *testing.T) {
	ev := testEvent("e1", 9, 10, schedule.TypePress)
	ev.Options = []string{schedule.OptionRecord, schedule.OptionWebcast}

	rec := csvRecord(1, ev)
	if len(rec) != len(csvHeader) {
		t.Fatalf("record has %d fields, header has %d", len(rec), len(csvHeader))
	}
	want := []string{"1", "Session e1", "Meeting Room 19", "2025-11-17", "09:00", "10:00",
		schedule.TypePress, schedule.StatusConfirmed, schedule.SecurityOpen, "record webcast"}
	for i := range want {
		if rec[i] != want[i] {
			t.Errorf("field %d (%s) = %q, want %q", i, csvHeader[i], rec[i], want[i])
		}
	}
}
