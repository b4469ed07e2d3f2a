package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"

	"confsched/schedule"
	"confsched/storage"
	"confsched/storage/boltdb"
)

var now = time.Now()

var defaultStartTime = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

const (
	AppName    = "confsched"
	AppVersion = "(unknown)"

	defaultDuration = 24*time.Hour - time.Second
)

type logFn func(string, ...interface{})

var infFn logFn = func(s string, args ...interface{}) {
	fmt.Printf(s, args...)
	fmt.Println()
}

var errFn logFn = func(s string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, s, args...)
	fmt.Fprintln(os.Stderr)
}

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	xdgDataPath := filepath.Join(homeDir, ".local", "share")
	appPath := filepath.Join(xdgDataPath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		err := MkDirIfNotExists(appPath)
		if err != nil {
			log.Fatalf("Error: %s", err.Error())
		}
	}
	return appPath
}

func openStorage(c *cli.Context) storage.Repository {
	return boltdb.New(boltdb.Config{
		Path: filepath.Join(c.GlobalString("path"), boltdb.DefaultFile),
	})
}

// filterFlags are shared by every command that narrows down the event set.
var filterFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:  "room",
		Usage: "Which rooms to include",
	},
	&cli.StringSliceFlag{
		Name:  "type",
		Usage: "Which event types to include",
	},
	&cli.StringFlag{
		Name:  "security",
		Usage: "Security level to include (open, restricted)",
		Value: "all",
	},
	&cli.BoolFlag{
		Name:  "record-only",
		Usage: "Only events requiring recording",
	},
	&cli.StringFlag{
		Name:  "search",
		Usage: "Title substring to search for",
	},
}

func filterState(c *cli.Context) schedule.FilterState {
	return schedule.FilterState{
		Rooms:      c.StringSlice("room"),
		Types:      c.StringSlice("type"),
		Security:   c.String("security"),
		RecordOnly: c.Bool("record-only"),
		Search:     c.String("search"),
	}
}

func startDate(c *cli.Context) time.Time {
	start := defaultStartTime
	if sf := c.String("start"); len(sf) > 0 {
		if sfp, err := time.Parse(schedule.DayFormat, sf); err == nil {
			start = sfp
		}
	}
	return start
}
