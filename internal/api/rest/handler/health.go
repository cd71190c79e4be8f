package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/pokedex-data/internal/dataset"
	apierrors "github.com/palemoky/pokedex-data/internal/errors"
)

// HealthHandler reports whether a dataset is loaded
func HealthHandler(store *dataset.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || store.PokemonCount() == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  apierrors.ErrUnavailable,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"locale":  store.Locale(),
			"pokemon": store.PokemonCount(),
		})
	}
}
