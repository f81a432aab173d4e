package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewChiMux(handler NotifierHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	// lambda parity
	r.Post("/", handler.Invoke)

	r.Route("/{bucket}", func(r chi.Router) {
		r.Put("/notification", handler.PutNotification)
		r.Post("/events", handler.PostEvent)
	})

	return r
}
