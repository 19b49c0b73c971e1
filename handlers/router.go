package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/camden-git/starblogbackend/config"
)

// NewRouter assembles the full route table. It is shared by main and the
// handler tests so both exercise the same routing.
func NewRouter(cfg config.Config, planets *PlanetHandler, characters *CharacterHandler, users *UserHandler, favorites *FavoriteHandler) chi.Router {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)
	r.Use(CurrentUser(cfg.CurrentUserID))

	r.Route("/api", func(r chi.Router) {
		// characters are read at /people, written at /characters
		r.Route("/people", func(r chi.Router) {
			r.Get("/", characters.ListCharacters)
			r.Get("/{character_id}", characters.GetCharacter)
		})
		r.Route("/characters", func(r chi.Router) {
			r.Post("/", characters.CreateCharacter)
			r.Delete("/{character_id}", characters.DeleteCharacter)
		})

		r.Route("/planets", func(r chi.Router) {
			r.Get("/", planets.ListPlanets)
			r.Post("/", planets.CreatePlanet)
			r.Route("/{planet_id}", func(r chi.Router) {
				r.Get("/", planets.GetPlanet)
				r.Delete("/", planets.DeletePlanet)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.ListUsers)
			r.Post("/", users.CreateUser)
			r.Get("/email/{email}", users.GetUserByEmail)
			r.Get("/favorites", favorites.ListMyFavorites)
		})

		r.Route("/favorite", func(r chi.Router) {
			r.Route("/planet/{planet_id}", func(r chi.Router) {
				r.Post("/", favorites.AddFavoritePlanet)
				r.Delete("/", favorites.DeleteFavoritePlanet)
			})
			r.Route("/people/{character_id}", func(r chi.Router) {
				r.Post("/", favorites.AddFavoriteCharacter)
				r.Delete("/", favorites.DeleteFavoriteCharacter)
			})
		})
	})

	r.Get("/", Sitemap(r))

	return r
}
