package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli"

	"confsched/schedule"
	"confsched/storage"
)

var TimelineCmd = cli.Command{
	Name:  "timeline",
	Usage: "Renders the per-room timeline of a day",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "date",
			Usage: "Which day to render",
			Value: defaultStartTime.Format(schedule.DayFormat),
		},
	}, filterFlags...),
	Action: showTimeline,
}

const barWidth = 72

func renderBar(blocks []schedule.Block) string {
	bar := []rune(strings.Repeat(".", barWidth))
	for _, b := range blocks {
		from := int(b.Left / 100 * barWidth)
		span := int(b.Width / 100 * barWidth)
		if span < 1 {
			// zero-duration events still get a minimal marker
			span = 1
		}
		mark := '#'
		if len(b.Event.Type) > 0 {
			mark = rune(b.Event.Type[0])
		}
		for i := from; i < from+span && i < barWidth; i++ {
			bar[i] = mark
		}
	}
	return string(bar)
}

func renderAxis(w schedule.Window) string {
	hours := w.HourLabels()
	if len(hours) == 0 {
		return ""
	}
	cell := barWidth / len(hours)
	if cell < 6 {
		return fmt.Sprintf("%02d:00 - %02d:00", w.StartMinute/60, w.EndMinute/60)
	}
	axis := strings.Builder{}
	for _, label := range hours {
		axis.WriteString(label)
		axis.WriteString(strings.Repeat(" ", cell-len(label)))
	}
	return axis.String()
}

func showTimeline(c *cli.Context) error {
	date, err := time.Parse(schedule.DayFormat, c.String("date"))
	if err != nil {
		date = defaultStartTime
	}

	f := filterState(c)
	f.Date = date.Format(schedule.DayFormat)

	st := openStorage(c)
	events, err := st.LoadEvents(storage.Day(date), f.Rooms...)
	if err != nil {
		return fmt.Errorf("unable to load events: %w", err)
	}

	filtered := f.Apply(events)
	if len(filtered) == 0 {
		fmt.Printf("nothing found\n")
		return nil
	}

	groups := schedule.GroupByRoom(filtered, schedule.DefaultRooms)
	window := schedule.TimelineWindow(filtered)

	infFn("%s: %d events", f.Date, len(filtered))
	infFn("%s", renderAxis(window))
	for _, g := range groups {
		header := g.Room
		if !g.Meta.IsZero() {
			header = fmt.Sprintf("%s | %s — %s", g.Room, g.Meta.Capacity, g.Meta.Area)
		}
		infFn("%s", header)
		infFn("%s", renderBar(schedule.LayoutBlocks(g.Events, window)))
		for _, ev := range g.Events {
			infFn("\t%s–%s %s", ev.StartLocal(), ev.EndLocal(), ev.Title)
		}
	}
	return nil
}
