// Package rest wires the lookup API routes.
package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/palemoky/pokedex-data/internal/api/middleware"
	"github.com/palemoky/pokedex-data/internal/api/rest/handler"
	"github.com/palemoky/pokedex-data/internal/config"
	"github.com/palemoky/pokedex-data/internal/dataset"
)

// SetupRouter sets up the Gin router with all routes
func SetupRouter(cfg *config.Config, store *dataset.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(rateLimiter.Middleware())
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.HealthHandler(store))

		gameHandler := handler.NewGameHandler(store)
		v1.GET("/games", gameHandler.ListGames)
		v1.GET("/generations", gameHandler.ListGenerations)

		pokemonHandler := handler.NewPokemonHandler(store)
		v1.GET("/pokemon", pokemonHandler.ListPokemon)
		v1.GET("/pokemon/:dexNo", pokemonHandler.GetPokemon)
		v1.GET("/pokemon/:dexNo/captures", pokemonHandler.GetCaptures)
	}

	return router
}
