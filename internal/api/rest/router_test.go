package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/pokedex-data/internal/config"
	"github.com/palemoky/pokedex-data/internal/dataset"
	"github.com/palemoky/pokedex-data/internal/dex"
	"github.com/palemoky/pokedex-data/internal/encounter"
	"github.com/palemoky/pokedex-data/internal/index"
	"github.com/palemoky/pokedex-data/internal/locale"
	"github.com/palemoky/pokedex-data/internal/testutil"
)

func TestSetupRouter(t *testing.T) {
	idx := index.Build(testutil.Tables(), locale.Korean)
	store := dataset.New(dex.Build(idx), encounter.Build(idx))

	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "test"},
		RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 100, Burst: 100},
	}
	router := SetupRouter(cfg, store)

	paths := []string{
		"/api/v1/health",
		"/api/v1/games",
		"/api/v1/generations",
		"/api/v1/pokemon",
		"/api/v1/pokemon/25",
		"/api/v1/pokemon/25/captures",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
