package ical

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(path string) http.Handler {
	r := chi.NewRouter()
	h := NewHandler(path)
	r.Get("/", h.ServeHTTP)
	r.Get("/{date}", h.ServeHTTP)
	r.Get("/{date}/{room}", h.ServeHTTP)
	return r
}
