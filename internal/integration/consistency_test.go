package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pokedex-data/internal/api/rest"
	"github.com/palemoky/pokedex-data/internal/config"
	"github.com/palemoky/pokedex-data/internal/dataset"
	"github.com/palemoky/pokedex-data/internal/dex"
	"github.com/palemoky/pokedex-data/internal/encounter"
	"github.com/palemoky/pokedex-data/internal/locale"
	"github.com/palemoky/pokedex-data/internal/output"
	"github.com/palemoky/pokedex-data/internal/processor"
	"github.com/palemoky/pokedex-data/internal/source"
	"github.com/palemoky/pokedex-data/internal/testutil"
)

// setupTestEnv serves the fixture dump over HTTP, runs the generator against
// it and loads the result into a REST router
func setupTestEnv(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	csvDir := t.TempDir()
	testutil.WriteCSV(t, csvDir)
	upstream := httptest.NewServer(http.FileServer(http.Dir(csvDir)))
	t.Cleanup(upstream.Close)

	outDir := t.TempDir()
	fetcher := source.New(upstream.URL, source.Options{RequestsPerSecond: 0})
	_, err := processor.NewProcessor(fetcher, locale.Korean, outDir).Process(context.Background())
	require.NoError(t, err)

	store, err := dataset.Load(outDir)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
	}
	return rest.SetupRouter(cfg, store), outDir
}

func readDocuments(t *testing.T, dir string) (dex.Document, encounter.Document) {
	t.Helper()

	var pokedex dex.Document
	data, err := os.ReadFile(filepath.Join(dir, output.PokedexFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &pokedex))

	var encounters encounter.Document
	data, err = os.ReadFile(filepath.Join(dir, output.EncountersFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &encounters))

	return pokedex, encounters
}

// TestDocumentConsistency checks the generated documents end to end
func TestDocumentConsistency(t *testing.T) {
	_, dir := setupTestEnv(t)
	pokedex, encounters := readDocuments(t, dir)

	t.Run("one entry per species with a pokemon row", func(t *testing.T) {
		dexNos := make([]int, 0, len(pokedex.Pokemon))
		for _, p := range pokedex.Pokemon {
			dexNos = append(dexNos, p.DexNo)
		}
		assert.Equal(t, []int{1, 25, 133}, dexNos)
	})

	t.Run("height and weight are decimetres and hectograms", func(t *testing.T) {
		pikachu := pokedex.Pokemon[1]
		assert.InDelta(t, 0.4, pikachu.HeightM, 1e-9)
		assert.InDelta(t, 6.0, pikachu.WeightKg, 1e-9)
	})

	t.Run("missing stats are omitted", func(t *testing.T) {
		hp, ok := pokedex.Pokemon[1].BaseStats.Get("hp")
		require.True(t, ok)
		assert.Equal(t, 35, hp)
		_, ok = pokedex.Pokemon[1].BaseStats.Get("atk")
		assert.False(t, ok)
		_, ok = pokedex.Pokemon[2].BaseStats.Get("hp")
		assert.False(t, ok)
	})

	t.Run("only main-series groups", func(t *testing.T) {
		for _, g := range pokedex.Games {
			assert.NotEqual(t, "colosseum", g.VersionGroupID)
		}
		for id, entry := range encounters.Encounters {
			_, ok := entry.VersionGroups["colosseum"]
			assert.False(t, ok, "pokemon %s", id)
		}
	})

	t.Run("locations and methods are de-duplicated", func(t *testing.T) {
		red := encounters.Encounters["25"].VersionGroups["red-blue"].Versions["red"]
		assert.Equal(t, []string{"고요한 섬", "미확인"}, red.Locations)
		assert.Equal(t, []string{"대량발생", "호연 사운드"}, red.SpecialMethods)
	})
}

// TestGenerationDeterministic runs the pipeline twice against the same source
func TestGenerationDeterministic(t *testing.T) {
	_, first := setupTestEnv(t)
	_, second := setupTestEnv(t)

	for _, name := range []string{output.PokedexFile, output.EncountersFile} {
		a, err := os.ReadFile(filepath.Join(first, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}
}

// TestAPIConsistency checks that REST answers agree with the documents
func TestAPIConsistency(t *testing.T) {
	router, dir := setupTestEnv(t)
	pokedex, encounters := readDocuments(t, dir)

	for _, p := range pokedex.Pokemon {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pokemon/"+strconv.Itoa(p.DexNo), nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data dex.Pokemon `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, p, resp.Data)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pokemon?page_size=200", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, len(encounters.Encounters), list.Pagination.Total)
	assert.Len(t, list.Data, list.Pagination.Total)
}
