package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"confsched/schedule"
	"confsched/storage"
)

var ImportCmd = cli.Command{
	Name:  "import",
	Usage: "Imports schedule events from a raw records file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "Path of the raw schedule records JSON file",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Don't persist events",
		},
	},
	Action: importEvents,
}

func importEvents(c *cli.Context) error {
	src := c.String("source")
	if len(src) == 0 {
		src = c.Args().First()
	}
	if len(src) == 0 {
		return fmt.Errorf("no source file has been passed")
	}
	debug := c.Bool("debug") || c.GlobalBool("debug")
	dryRun := c.Bool("dry-run")

	events, err := schedule.FileSource(src).Load()
	if err != nil {
		return err
	}

	saved, skipped := saveEvents(openStorage(c), events, debug, dryRun)

	infFn("%d events imported, %d skipped", saved, skipped)
	return nil
}

func saveEvents(st storage.Repository, events schedule.Events, debug, dryRun bool) (int, int) {
	saved, skipped := 0, 0
	for _, ev := range events {
		if !ev.IsValid() {
			skipped++
			if debug {
				errFn("Skipping invalid record %v", ev)
			}
			continue
		}
		if debug {
			infFn("%v", ev)
		}
		if dryRun {
			saved++
			continue
		}
		old := st.LoadEvent(ev.RoomID, ev.StartTime, ev.ID)
		if old.Equals(ev) {
			continue
		}
		if err := st.SaveEvent(ev); err != nil {
			errFn("Error saving %s: %s", ev.ID, err)
			continue
		}
		saved++
	}
	return saved, skipped
}
