package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/palemoky/pokedex-data/internal/dataset"
)

// GameHandler serves version groups and generations
type GameHandler struct {
	store *dataset.Store
}

// NewGameHandler creates a new game handler
func NewGameHandler(store *dataset.Store) *GameHandler {
	return &GameHandler{store: store}
}

// ListGames returns every main-series version group with its versions
func (h *GameHandler) ListGames(c *gin.Context) {
	respondOK(c, h.store.Games())
}

// ListGenerations returns the generations that have at least one game
func (h *GameHandler) ListGenerations(c *gin.Context) {
	respondOK(c, h.store.Generations())
}
