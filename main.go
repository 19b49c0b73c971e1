package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/camden-git/starblogbackend/config"
	"github.com/camden-git/starblogbackend/database"
	"github.com/camden-git/starblogbackend/handlers"
	"github.com/camden-git/starblogbackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	planetRepo := repository.NewPlanetRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo, err := repository.NewFavoriteRepository(db)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize favorite repository: %v", err)
	}

	planetHandler := &handlers.PlanetHandler{Planets: planetRepo}
	characterHandler := &handlers.CharacterHandler{Characters: characterRepo}
	userHandler := &handlers.UserHandler{Users: userRepo}
	favoriteHandler := &handlers.FavoriteHandler{Favorites: favoriteRepo}

	r := handlers.NewRouter(cfg, planetHandler, characterHandler, userHandler, favoriteHandler)

	log.Printf("Acting user id for favorites endpoints: %d", cfg.CurrentUserID)

	serverAddr := ":" + cfg.ServerPort
	fmt.Printf("Server starting on http://localhost:%s\n", cfg.ServerPort)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
