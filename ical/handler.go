package ical

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soh335/ical"

	"confsched/schedule"
	"confsched/storage"
	"confsched/storage/boltdb"
)

type cal struct {
	Version string
	path    string
}

func NewHandler(path string) cal {
	return cal{path: path}
}

func eventSummary(ev schedule.Event) string {
	label, ok := schedule.TypeLabels[ev.Type]
	if !ok {
		label = schedule.TypeLabels[schedule.TypeOther]
	}
	return fmt.Sprintf("[%s] %s", label, ev.Title)
}

func eventDescription(ev schedule.Event) string {
	pieces := make([]string, 0)
	pieces = append(pieces, ev.RoomName)
	if ev.Security == schedule.SecurityRestricted {
		pieces = append(pieces, "Restricted")
	}
	if status, ok := schedule.StatusLabels[ev.Status]; ok && ev.Status != schedule.StatusConfirmed {
		pieces = append(pieces, status)
	}
	if len(ev.Options) > 0 {
		pieces = append(pieces, strings.Join(ev.Options, ", "))
	}
	return strings.Join(pieces, " — ")
}

func (c cal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// /{date} or /{date}/{room}
	dateURL := strings.ToLower(chi.URLParam(r, "date"))
	room := strings.ToLower(chi.URLParam(r, "room"))

	date, err := time.Parse(schedule.DayFormat, dateURL)
	if err != nil {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	rooms := make([]string, 0)
	if room != "" {
		rooms = append(rooms, room)
	}

	st := boltdb.New(boltdb.Config{
		Path: filepath.Join(c.path, boltdb.DefaultFile),
	})
	events, err := st.LoadEvents(storage.Day(date), rooms...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("%s", err)))
		return
	}

	feed := ical.NewBasicVCalendar()
	feed.PRODID = fmt.Sprintf("-//confsched//SCHEDULE-CAL//EN/%s", c.Version)

	feed.VERSION = "2.0"
	feed.URL = fmt.Sprintf("/ical/%s", date.Format(schedule.DayFormat))

	name := "ConferenceSchedule"
	description := fmt.Sprintf("Conference schedule, meetings for %s", date.Format(schedule.DayFormat))
	if room != "" {
		description = fmt.Sprintf("%s, room %s", description, room)
	}

	feed.NAME = name
	feed.X_WR_CALNAME = name
	feed.DESCRIPTION = description
	feed.X_WR_CALDESC = description

	tz := date.Location().String()
	feed.TIMEZONE_ID = tz
	feed.X_WR_TIMEZONE = tz

	feed.REFRESH_INTERVAL = "PT1H"
	feed.X_PUBLISHED_TTL = "PT1H"

	feed.CALSCALE = "GREGORIAN"
	feed.METHOD = "PUBLISH"
	for _, ev := range events {
		e := &ical.VEvent{
			UID:         ev.ID,
			DTSTAMP:     ev.StartTime,
			DTSTART:     ev.StartTime,
			DTEND:       ev.EndTime,
			SUMMARY:     eventSummary(ev),
			DESCRIPTION: eventDescription(ev),
			TZID:        tz,
			AllDay:      ev.Duration() > 24*time.Hour,
		}
		feed.VComponent = append(feed.VComponent, e)
	}

	b := &bytes.Buffer{}
	if err = feed.Encode(b); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("%s", err)))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write(b.Bytes())
}
