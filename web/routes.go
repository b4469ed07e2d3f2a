package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"confsched/ical"
	"confsched/schedule"
)

func Routes(path string, rooms schedule.MetadataLookup) http.Handler {
	if rooms == nil {
		rooms = schedule.DefaultRooms
	}
	h := handler{path: path, rooms: rooms}

	r := chi.NewRouter()
	r.Get("/schedule", h.Schedule)
	r.Get("/meetings", h.Meetings)
	r.Get("/rooms", h.Rooms)
	r.Mount("/ical", ical.Routes(path))
	return r
}
