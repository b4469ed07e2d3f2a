package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"confsched/schedule"
)

var ExportCmd = cli.Command{
	Name:  "export",
	Usage: "Exports filtered events as CSV",
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
		&cli.StringFlag{
			Name:  "out",
			Usage: "File to write to, defaults to stdout",
		},
	}, filterFlags...),
	Action: exportEvents,
}

var csvHeader = []string{"#", "Title", "Room", "Date", "Start", "End", "Type", "Status", "Security", "Options"}

func csvRecord(i int, e schedule.Event) []string {
	return []string{
		strconv.Itoa(i),
		e.Title,
		e.RoomName,
		e.Date(),
		e.StartLocal(),
		e.EndLocal(),
		e.Type,
		e.Status,
		e.Security,
		strings.Join(e.Options, " "),
	}
}

func exportEvents(c *cli.Context) error {
	events, _, err := loadFiltered(c)
	if err != nil {
		return err
	}

	out := os.Stdout
	if path := c.String("out"); len(path) > 0 {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for i, e := range events {
		if err := w.Write(csvRecord(i+1, e)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
