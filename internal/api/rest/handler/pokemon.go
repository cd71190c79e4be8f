package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/palemoky/pokedex-data/internal/dataset"
	"github.com/palemoky/pokedex-data/internal/dex"
	apierrors "github.com/palemoky/pokedex-data/internal/errors"
)

// PokemonHandler serves dex entries and capture info
type PokemonHandler struct {
	store *dataset.Store
}

// NewPokemonHandler creates a new pokemon handler
func NewPokemonHandler(store *dataset.Store) *PokemonHandler {
	return &PokemonHandler{store: store}
}

// availability is one list badge: a selected group and its status
type availability struct {
	VersionGroupID string `json:"versionGroupId"`
	Label          string `json:"label"`
	Status         string `json:"status"`
}

// formatListItem formats a pokemon for list views
func formatListItem(p dex.Pokemon, captures []dataset.Capture) map[string]any {
	return map[string]any{
		"dexNo":  p.DexNo,
		"nameKo": p.Name,
		"gen":    p.Generation,
		"types":  p.Types,
		"availability": lo.Map(captures, func(cp dataset.Capture, _ int) availability {
			return availability{VersionGroupID: cp.VersionGroupID, Label: cp.Label, Status: cp.Status}
		}),
	}
}

// ListPokemon returns pokemon catchable in the selected games, by dex number
func (h *PokemonHandler) ListPokemon(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	params := ParsePagination(c)

	groups := h.store.GroupsFor(filter)
	list := h.store.ListPokemon(filter)

	page := Paginate(list, params)
	data := make([]map[string]any, len(page))
	for i, p := range page {
		data[i] = formatListItem(p, h.store.Captures(p.DexNo, groups))
	}

	c.JSON(http.StatusOK, NewPaginationResponse(data, params, len(list)))
}

// GetPokemon returns one dex entry
func (h *PokemonHandler) GetPokemon(c *gin.Context) {
	dexNo, ok := parseDexNo(c)
	if !ok {
		return
	}

	p, found := h.store.Pokemon(dexNo)
	if !found {
		respondError(c, apierrors.NotFound(fmt.Sprintf("Pokemon %d", dexNo)))
		return
	}

	respondOK(c, p)
}

// GetCaptures returns where a pokemon can be caught in the selected games
func (h *PokemonHandler) GetCaptures(c *gin.Context) {
	dexNo, ok := parseDexNo(c)
	if !ok {
		return
	}
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	if _, found := h.store.Pokemon(dexNo); !found {
		respondError(c, apierrors.NotFound(fmt.Sprintf("Pokemon %d", dexNo)))
		return
	}

	respondOK(c, h.store.Captures(dexNo, h.store.GroupsFor(filter)))
}
