// Package handler implements the lookup API endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/pokedex-data/internal/dataset"
	apierrors "github.com/palemoky/pokedex-data/internal/errors"
)

// parseDexNo extracts a positive dex number from the :dexNo path parameter.
// Returns false after sending an error response.
func parseDexNo(c *gin.Context) (int, bool) {
	dexNo, err := strconv.Atoi(c.Param("dexNo"))
	if err != nil || dexNo < 1 {
		respondError(c, apierrors.InvalidParam("dexNo", "must be a positive integer"))
		return 0, false
	}
	return dexNo, true
}

// parseFilter reads generation, series and q from the query string.
// Returns false after sending an error response.
func parseFilter(c *gin.Context) (dataset.Filter, bool) {
	f := dataset.Filter{
		Series: c.Query("series"),
		Query:  c.Query("q"),
	}

	if gen := c.Query("generation"); gen != "" {
		n, err := strconv.Atoi(gen)
		if err != nil || n < 1 {
			respondError(c, apierrors.InvalidParam("generation", "must be a positive integer"))
			return dataset.Filter{}, false
		}
		f.Generation = n
	}

	return f, true
}

// respondError sends a structured error response.
func respondError(c *gin.Context, err *apierrors.APIError) {
	c.JSON(err.HTTPStatus, gin.H{"error": err})
}

// respondOK sends a JSON success response with the given data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}
