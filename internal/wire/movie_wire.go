package wire

import (
	"moview-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// All catalog routes are public pass-throughs
	r.Get("/movies/popular", movieHandler.GetPopular)
	r.Get("/movies/search", movieHandler.Search)
	r.Get("/movies/{id}", movieHandler.GetByID)
}
