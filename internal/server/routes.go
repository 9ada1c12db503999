package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TimohUSik/SkidkiSteamBot/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/deals", handler(s.getV1Deals))
			r.Post("/scan", handler(s.postV1Scan))

			r.Route("/watchlists/{subscriberID}", func(r chi.Router) {
				r.Get("/", handler(s.getV1Watchlist))
				r.Post("/items", handler(s.postV1WatchlistItem))
				r.Delete("/items/{appID}", handler(s.deleteV1WatchlistItem))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
