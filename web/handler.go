package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"confsched/schedule"
	"confsched/storage"
	"confsched/storage/boltdb"
)

// handler serves the fully-computed schedule views the rendering layer
// consumes: room groups with timeline layout percentages, and the flat
// filtered meeting list.
type handler struct {
	path  string
	rooms schedule.MetadataLookup
}

type eventView struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	RoomID   string   `json:"roomId"`
	RoomName string   `json:"roomName"`
	Type     string   `json:"type"`
	Status   string   `json:"status"`
	Security string   `json:"security"`
	Options  []string `json:"options"`
	Updated  bool     `json:"updated"`
	Left     float64  `json:"left"`
	Width    float64  `json:"width"`
}

type roomView struct {
	RoomID   string      `json:"roomId"`
	Room     string      `json:"room"`
	Capacity string      `json:"capacity,omitempty"`
	Area     string      `json:"area,omitempty"`
	Events   []eventView `json:"events"`
}

type scheduleView struct {
	Date        string     `json:"date"`
	WindowStart string     `json:"windowStart"`
	WindowEnd   string     `json:"windowEnd"`
	Hours       []string   `json:"hours"`
	Total       int        `json:"total"`
	Rooms       []roomView `json:"rooms"`
}

type meetingsView struct {
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Total     int         `json:"total"`
	Meetings  []eventView `json:"meetings"`
}

func eventToView(ev schedule.Event) eventView {
	return eventView{
		ID:       ev.ID,
		Title:    ev.Title,
		Date:     ev.Date(),
		Start:    ev.StartLocal(),
		End:      ev.EndLocal(),
		RoomID:   ev.RoomID,
		RoomName: ev.RoomName,
		Type:     ev.Type,
		Status:   ev.Status,
		Security: ev.Security,
		Options:  ev.Options,
		Updated:  ev.Updated,
	}
}

func jsonOK(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// filterFromQuery maps the request's query parameters onto a FilterState.
// Unknown filter values are kept as-is: they match nothing, which is a
// normal empty result rather than an error.
func filterFromQuery(r *http.Request) schedule.FilterState {
	q := r.URL.Query()
	return schedule.FilterState{
		Date:       strings.TrimSpace(q.Get("date")),
		StartDate:  strings.TrimSpace(q.Get("start")),
		EndDate:    strings.TrimSpace(q.Get("end")),
		Rooms:      q["room"],
		Types:      q["type"],
		Security:   strings.TrimSpace(q.Get("security")),
		RecordOnly: q.Get("record") == "1" || q.Get("record") == "true",
		Search:     q.Get("q"),
	}
}

func minuteLabel(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (h handler) loader() storage.Loader {
	return boltdb.New(boltdb.Config{
		Path: filepath.Join(h.path, boltdb.DefaultFile),
	})
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func emptySchedule(date string) scheduleView {
	window := schedule.TimelineWindow(nil)
	return scheduleView{
		Date:        date,
		WindowStart: minuteLabel(window.StartMinute),
		WindowEnd:   minuteLabel(window.EndMinute),
		Hours:       window.HourLabels(),
		Rooms:       make([]roomView, 0),
	}
}

// Schedule serves the grouped, laid-out view of a single day.
func (h handler) Schedule(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)

	date, err := time.Parse(schedule.DayFormat, f.Date)
	if err != nil {
		// a malformed day matches nothing, only an absent one means today
		if len(f.Date) > 0 {
			jsonOK(w, emptySchedule(f.Date))
			return
		}
		date = today()
		f.Date = date.Format(schedule.DayFormat)
	}
	// single-day view: the range dimension stays off
	f.StartDate, f.EndDate = "", ""

	events, err := h.loader().LoadEvents(storage.Day(date), f.Rooms...)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}

	filtered := f.Apply(events)
	groups := schedule.GroupByRoom(filtered, h.rooms)
	window := schedule.TimelineWindow(filtered)

	view := scheduleView{
		Date:        f.Date,
		WindowStart: minuteLabel(window.StartMinute),
		WindowEnd:   minuteLabel(window.EndMinute),
		Hours:       window.HourLabels(),
		Total:       len(filtered),
		Rooms:       make([]roomView, 0, len(groups)),
	}
	for _, g := range groups {
		rv := roomView{
			RoomID:   g.RoomID,
			Room:     g.Room,
			Capacity: g.Meta.Capacity,
			Area:     g.Meta.Area,
			Events:   make([]eventView, 0, len(g.Events)),
		}
		for _, block := range schedule.LayoutBlocks(g.Events, window) {
			ev := eventToView(block.Event)
			ev.Left = block.Left
			ev.Width = block.Width
			rv.Events = append(rv.Events, ev)
		}
		view.Rooms = append(view.Rooms, rv)
	}

	jsonOK(w, view)
}

// Meetings serves the flat filtered list over a date range.
func (h handler) Meetings(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	f.Date = ""

	start, err := time.Parse(schedule.DayFormat, f.StartDate)
	if err != nil {
		if len(f.StartDate) > 0 {
			jsonOK(w, meetingsView{StartDate: f.StartDate, EndDate: f.EndDate, Meetings: []eventView{}})
			return
		}
		start = today()
		f.StartDate = start.Format(schedule.DayFormat)
	}
	end, err := time.Parse(schedule.DayFormat, f.EndDate)
	if err != nil {
		if len(f.EndDate) > 0 {
			jsonOK(w, meetingsView{StartDate: f.StartDate, EndDate: f.EndDate, Meetings: []eventView{}})
			return
		}
		end = start
		f.EndDate = f.StartDate
	}
	duration := end.Sub(start) + 24*time.Hour - time.Second
	if duration < 0 {
		jsonOK(w, meetingsView{StartDate: f.StartDate, EndDate: f.EndDate, Meetings: []eventView{}})
		return
	}

	events, err := h.loader().LoadEvents(storage.Cursor(start, duration), f.Rooms...)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err)
		return
	}

	filtered := f.Apply(events)
	sort.SliceStable(filtered, func(a, b int) bool {
		return filtered[a].StartTime.Before(filtered[b].StartTime)
	})

	view := meetingsView{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Total:     len(filtered),
		Meetings:  make([]eventView, 0, len(filtered)),
	}
	for _, ev := range filtered {
		view.Meetings = append(view.Meetings, eventToView(ev))
	}

	jsonOK(w, view)
}

type roomMetaView struct {
	RoomID   string `json:"roomId"`
	Capacity string `json:"capacity,omitempty"`
	Area     string `json:"area,omitempty"`
}

// Rooms serves the static room metadata table.
func (h handler) Rooms(w http.ResponseWriter, r *http.Request) {
	static, ok := h.rooms.(schedule.StaticRooms)
	if !ok {
		jsonOK(w, []roomMetaView{})
		return
	}
	ids := make([]string, 0, len(static))
	for id := range static {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	views := make([]roomMetaView, 0, len(ids))
	for _, id := range ids {
		meta := static[id]
		views = append(views, roomMetaView{RoomID: id, Capacity: meta.Capacity, Area: meta.Area})
	}
	jsonOK(w, views)
}
