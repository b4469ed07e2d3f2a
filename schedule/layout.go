package schedule

import "fmt"

const (
	minutesPerDay = 24 * 60

	// fallback window shown when there is nothing to derive one from
	fallbackStartMinute = 8 * 60
	fallbackEndMinute   = 20 * 60
)

// Window is the derived time span used to convert event timestamps into
// horizontal timeline percentages. Both bounds are minutes from midnight,
// hour aligned; EndMinute may be 1440 for an end-of-day window.
type Window struct {
	StartMinute int
	EndMinute   int
}

func fallbackWindow() Window {
	return Window{StartMinute: fallbackStartMinute, EndMinute: fallbackEndMinute}
}

func (w Window) TotalMinutes() int {
	return w.EndMinute - w.StartMinute
}

// Hours lists the hour marks of the window, one per displayed column.
func (w Window) Hours() []int {
	hours := make([]int, 0)
	for h := w.StartMinute / 60; h < w.EndMinute/60; h++ {
		hours = append(hours, h)
	}
	return hours
}

func (w Window) HourLabels() []string {
	labels := make([]string, 0)
	for _, h := range w.Hours() {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}
	return labels
}

func startMinute(e Event) int {
	return e.StartTime.Hour()*60 + e.StartTime.Minute()
}

// endMinute advances past 1440 when the event crosses midnight, so the
// block keeps a positive extent inside its start day's window.
func endMinute(e Event) int {
	m := e.EndTime.Hour()*60 + e.EndTime.Minute()
	if e.CrossesMidnight() {
		m += minutesPerDay
	}
	return m
}

// TimelineWindow derives the display window from the events: the earliest
// start floored to its hour, to the latest end ceiled to its hour plus one
// hour of padding, capped at end of day. Zero events, or a degenerate
// result, fall back to the fixed 08:00-20:00 span.
func TimelineWindow(events Events) Window {
	if len(events) == 0 {
		return fallbackWindow()
	}

	minStart := minutesPerDay * 2
	maxEnd := 0
	for _, ev := range events {
		if s := startMinute(ev); s < minStart {
			minStart = s
		}
		if e := endMinute(ev); e > maxEnd {
			maxEnd = e
		}
	}

	startHour := minStart / 60
	lastHour := maxEnd / 60
	if maxEnd%60 > 0 {
		lastHour++
	}
	endHour := lastHour + 1
	if endHour > 24 {
		endHour = 24
	}

	w := Window{StartMinute: startHour * 60, EndMinute: endHour * 60}
	if w.TotalMinutes() <= 0 {
		return fallbackWindow()
	}
	return w
}

// Block is an event positioned on the horizontal timeline. Left and Width
// are percentages of the window span; a zero-duration event keeps Width 0
// and is the renderer's to draw as a minimal marker.
type Block struct {
	Event Event
	Left  float64
	Width float64
}

// LayoutBlocks positions events inside the window. Ends past the window are
// clamped; durations never go negative.
func LayoutBlocks(events Events, w Window) []Block {
	total := w.TotalMinutes()
	if total <= 0 {
		w = fallbackWindow()
		total = w.TotalMinutes()
	}

	blocks := make([]Block, 0, len(events))
	for _, ev := range events {
		start := startMinute(ev) - w.StartMinute
		end := endMinute(ev) - w.StartMinute
		if end > total {
			end = total
		}
		duration := end - start
		if duration < 0 {
			duration = 0
		}
		blocks = append(blocks, Block{
			Event: ev,
			Left:  float64(start) / float64(total) * 100,
			Width: float64(duration) / float64(total) * 100,
		})
	}
	return blocks
}
