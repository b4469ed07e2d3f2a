package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"confsched/schedule"
	"confsched/storage"
)

var ListCmd = cli.Command{
	Name:  "list",
	Usage: "Lists stored schedule events",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "start",
			Usage: "Date at which to start",
			Value: defaultStartTime.Format(schedule.DayFormat),
		},
		&cli.DurationFlag{
			Name:  "end",
			Usage: "Date interval to check",
			Value: defaultDuration,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
	}, filterFlags...),
	Action: listEvents,
}

func loadFiltered(c *cli.Context) (schedule.Events, schedule.FilterState, error) {
	start := startDate(c)
	duration := c.Duration("end")
	if duration <= 0 {
		duration = defaultDuration
	}

	f := filterState(c)
	f.StartDate = start.Format(schedule.DayFormat)
	f.EndDate = start.Add(duration).Format(schedule.DayFormat)

	st := openStorage(c)
	events, err := st.LoadEvents(storage.Cursor(start, duration), f.Rooms...)
	if err != nil {
		return nil, f, fmt.Errorf("unable to load events: %w", err)
	}
	return f.Apply(events), f, nil
}

func listEvents(c *cli.Context) error {
	if c.Bool("debug") || c.GlobalBool("debug") {
		start := startDate(c)
		infFn("Loading events for period: %s - %s",
			start.Format("2006-01-02 Mon, 15:04"),
			start.Add(c.Duration("end")).Format("2006-01-02 Mon, 15:04"))
	}

	events, _, err := loadFiltered(c)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Printf("nothing found\n")
		return nil
	}

	for _, e := range events {
		printEvent(e)
	}
	return nil
}

func printEvent(e schedule.Event) {
	fmtTime := e.StartTime.Format("2006-01-02 15:04")
	line := fmt.Sprintf("[%s] %s:%s @ %s %s//%s", e.ID, e.Type, e.Status, e.RoomName, fmtTime, e.Duration())
	if e.Security == schedule.SecurityRestricted {
		line += " (restricted)"
	}
	if e.Updated {
		line += " (updated)"
	}
	infFn("%s", line)
	if e.Title != "" {
		infFn("%v", e.Title)
	}
}
