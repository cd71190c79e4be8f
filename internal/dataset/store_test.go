package dataset

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pokedex-data/internal/dex"
	"github.com/palemoky/pokedex-data/internal/encounter"
	"github.com/palemoky/pokedex-data/internal/index"
	"github.com/palemoky/pokedex-data/internal/locale"
	"github.com/palemoky/pokedex-data/internal/output"
	"github.com/palemoky/pokedex-data/internal/testutil"
)

func fixtureStore(t *testing.T) *Store {
	t.Helper()
	idx := index.Build(testutil.Tables(), locale.Korean)
	return New(dex.Build(idx), encounter.Build(idx))
}

func dexNos(list []dex.Pokemon) []int {
	return lo.Map(list, func(p dex.Pokemon, _ int) int { return p.DexNo })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	idx := index.Build(testutil.Tables(), locale.Korean)
	require.NoError(t, output.WriteJSON(dir, output.PokedexFile, dex.Build(idx)))
	require.NoError(t, output.WriteJSON(dir, output.EncountersFile, encounter.Build(idx)))

	store, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ko-KR", store.Locale())
	assert.Equal(t, 3, store.PokemonCount())

	p, ok := store.Pokemon(25)
	require.True(t, ok)
	hp, ok := p.BaseStats.Get("hp")
	assert.True(t, ok)
	assert.Equal(t, 35, hp)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestGenerations(t *testing.T) {
	assert.Equal(t, []int{1, 4}, fixtureStore(t).Generations())
}

func TestGroupsFor(t *testing.T) {
	store := fixtureStore(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all games", Filter{}, []string{"red-blue", "yellow", "platinum"}},
		{"by generation", Filter{Generation: 1}, []string{"red-blue", "yellow"}},
		{"by series", Filter{Series: "platinum"}, []string{"platinum"}},
		{"series wins", Filter{Generation: 1, Series: "platinum"}, []string{"platinum"}},
		{"unknown series", Filter{Series: "colosseum"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := store.GroupsFor(tt.filter)
			ids := lo.Map(groups, func(g dex.Game, _ int) string { return g.VersionGroupID })
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListPokemon(t *testing.T) {
	store := fixtureStore(t)

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"every game", Filter{}, []int{1, 25}},
		{"generation one", Filter{Generation: 1}, []int{1, 25}},
		{"platinum only", Filter{Series: "platinum"}, []int{1}},
		{"yellow has no encounters", Filter{Series: "yellow"}, []int{}},
		{"name search", Filter{Query: "피카"}, []int{25}},
		{"name search no match", Filter{Query: "리자몽"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dexNos(store.ListPokemon(tt.filter)))
		})
	}
}

func TestCaptures(t *testing.T) {
	store := fixtureStore(t)

	captures := store.Captures(1, store.GroupsFor(Filter{}))
	require.Len(t, captures, 2)

	redBlue := captures[0]
	assert.Equal(t, "red-blue", redBlue.VersionGroupID)
	assert.Equal(t, encounter.StatusAvailable, redBlue.Status)
	require.Len(t, redBlue.Versions, 2)

	assert.Equal(t, "red", redBlue.Versions[0].GameID)
	assert.Equal(t, StatusUnknown, redBlue.Versions[0].Status, "no red encounters for bulbasaur")
	assert.Empty(t, redBlue.Versions[0].Locations)

	assert.Equal(t, "blue", redBlue.Versions[1].GameID)
	assert.Equal(t, encounter.StatusAvailable, redBlue.Versions[1].Status)
	assert.Equal(t, []string{"미확인"}, redBlue.Versions[1].Locations)

	assert.Equal(t, "platinum", captures[1].VersionGroupID)
	assert.Equal(t, []string{"포켓트레"}, captures[1].Versions[0].SpecialMethods)
}

func TestCapturesWithoutEncounters(t *testing.T) {
	store := fixtureStore(t)

	assert.Empty(t, store.Captures(133, store.Games()))
	assert.Empty(t, store.Captures(404, store.Games()))
}
