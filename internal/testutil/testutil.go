// Package testutil provides shared fixtures for testing.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pokedex-data/internal/table"
)

type fixture struct {
	header  []string
	records [][]string
}

// fixtures is a miniature PokeAPI dump. It covers:
//   - species 999 without a pokemon row, species 133 without a Korean name,
//     types, abilities or stats
//   - a type (electric) and a version (yellow) without Korean names
//   - colosseum, a version group outside the main series
//   - two location areas of one location, an unmapped area and slot
//   - a method matching both swarm and radio-hoenn
var fixtures = map[string]fixture{
	table.Pokemon: {
		header: []string{"id", "identifier", "species_id", "height", "weight", "base_experience", "order", "is_default"},
		records: [][]string{
			{"1", "bulbasaur", "1", "7", "69", "64", "1", "1"},
			{"25", "pikachu", "25", "4", "60", "112", "35", "1"},
			{"133", "eevee", "133", "3", "65", "65", "180", "1"},
		},
	},
	table.PokemonSpecies: {
		header: []string{"id", "identifier", "generation_id", "evolves_from_species_id"},
		records: [][]string{
			{"1", "bulbasaur", "1", ""},
			{"25", "pikachu", "1", "172"},
			{"133", "eevee", "1", ""},
			{"999", "gimmighoul", "9", ""},
		},
	},
	table.PokemonSpeciesNames: {
		header: []string{"pokemon_species_id", "local_language_id", "name", "genus"},
		records: [][]string{
			{"1", "3", "이상해씨", "씨앗포켓몬"},
			{"1", "9", "Bulbasaur", "Seed Pokémon"},
			{"25", "3", "피카츄", "쥐포켓몬"},
			{"25", "9", "Pikachu", "Mouse Pokémon"},
			{"999", "3", "모으다", "보물상자포켓몬"},
		},
	},
	table.PokemonTypes: {
		header: []string{"pokemon_id", "type_id", "slot"},
		records: [][]string{
			{"1", "12", "1"},
			{"1", "4", "2"},
			{"25", "13", "1"},
		},
	},
	table.Types: {
		header: []string{"id", "identifier", "generation_id", "damage_class_id"},
		records: [][]string{
			{"4", "poison", "1", "1"},
			{"12", "grass", "1", "3"},
			{"13", "electric", "1", "3"},
		},
	},
	table.TypeNames: {
		header: []string{"type_id", "local_language_id", "name"},
		records: [][]string{
			{"4", "3", "독"},
			{"4", "9", "Poison"},
			{"12", "3", "풀"},
			{"12", "9", "Grass"},
			{"13", "9", "Electric"},
		},
	},
	table.Abilities: {
		header: []string{"id", "identifier", "generation_id", "is_main_series"},
		records: [][]string{
			{"9", "static", "3", "1"},
			{"34", "chlorophyll", "3", "1"},
			{"65", "overgrow", "3", "1"},
		},
	},
	table.AbilityNames: {
		header: []string{"ability_id", "local_language_id", "name"},
		records: [][]string{
			{"9", "3", "정전기"},
			{"34", "3", "엽록소"},
			{"65", "3", "심록"},
			{"65", "9", "Overgrow"},
		},
	},
	table.PokemonAbilities: {
		header: []string{"pokemon_id", "ability_id", "is_hidden", "slot"},
		records: [][]string{
			{"1", "65", "0", "1"},
			{"1", "34", "1", "3"},
			{"25", "9", "0", "1"},
		},
	},
	table.PokemonStats: {
		header: []string{"pokemon_id", "stat_id", "base_stat", "effort"},
		records: [][]string{
			{"1", "1", "45", "0"},
			{"1", "2", "49", "0"},
			{"1", "3", "49", "0"},
			{"1", "4", "65", "1"},
			{"1", "5", "65", "0"},
			{"1", "6", "45", "0"},
			{"1", "7", "100", "0"},
			{"25", "1", "35", "0"},
		},
	},
	table.Stats: {
		header: []string{"id", "damage_class_id", "identifier", "is_battle_only", "game_index"},
		records: [][]string{
			{"1", "", "hp", "0", "1"},
			{"2", "2", "attack", "0", "2"},
			{"3", "2", "defense", "0", "3"},
			{"4", "3", "special-attack", "0", "5"},
			{"5", "3", "special-defense", "0", "6"},
			{"6", "", "speed", "0", "4"},
			{"7", "", "accuracy", "1", ""},
		},
	},
	table.Encounters: {
		header: []string{"id", "version_id", "location_area_id", "encounter_slot_id", "pokemon_id", "min_level", "max_level"},
		records: [][]string{
			{"1", "1", "10", "100", "25", "3", "5"},
			{"2", "1", "12", "100", "25", "3", "5"},
			{"3", "1", "11", "101", "25", "4", "6"},
			{"4", "19", "10", "100", "25", "10", "10"},
			{"5", "14", "10", "102", "1", "20", "22"},
			{"6", "2", "99", "999", "1", "2", "2"},
			{"7", "1", "10", "101", "25", "5", "5"},
		},
	},
	table.Versions: {
		header: []string{"id", "version_group_id", "identifier"},
		records: [][]string{
			{"1", "1", "red"},
			{"2", "1", "blue"},
			{"3", "2", "yellow"},
			{"14", "8", "platinum"},
			{"19", "12", "colosseum"},
		},
	},
	table.VersionNames: {
		header: []string{"version_id", "local_language_id", "name"},
		records: [][]string{
			{"1", "3", "레드"},
			{"1", "9", "Red"},
			{"2", "3", "블루"},
			{"14", "3", "Pt"},
			{"19", "3", "콜로세움"},
		},
	},
	table.VersionGroups: {
		header: []string{"id", "identifier", "generation_id", "order"},
		records: [][]string{
			{"1", "red-blue", "1", "1"},
			{"2", "yellow", "1", "2"},
			{"8", "platinum", "4", "9"},
			{"12", "colosseum", "3", "13"},
		},
	},
	table.LocationAreas: {
		header: []string{"id", "location_id", "game_index", "identifier"},
		records: [][]string{
			{"10", "1", "1", "area-a"},
			{"11", "2", "2", "area-b"},
			{"12", "1", "3", "area-c"},
		},
	},
	table.LocationNames: {
		header: []string{"location_id", "local_language_id", "name", "subtitle"},
		records: [][]string{
			{"1", "3", "고요한 섬", ""},
			{"1", "9", "Silent Island", ""},
			{"2", "9", "Route 2", ""},
		},
	},
	table.Locations: {
		header: []string{"id", "region_id", "identifier"},
		records: [][]string{
			{"1", "1", "silent-island"},
			{"2", "1", "route-2"},
		},
	},
	table.EncounterSlots: {
		header: []string{"id", "version_group_id", "encounter_method_id", "slot", "rarity"},
		records: [][]string{
			{"100", "1", "1", "1", "20"},
			{"101", "1", "2", "2", "10"},
			{"102", "8", "3", "1", "5"},
		},
	},
	table.EncounterMethods: {
		header: []string{"id", "identifier", "order"},
		records: [][]string{
			{"1", "walk", "1"},
			{"2", "swarm-radio-hoenn", "2"},
			{"3", "poke-radar", "3"},
		},
	},
}

// Tables returns the fixture dump as parsed rows
func Tables() table.Set {
	set := make(table.Set, len(fixtures))
	for name, f := range fixtures {
		rows := make([]table.Row, 0, len(f.records))
		for _, rec := range f.records {
			row := make(table.Row, len(f.header))
			for i, col := range f.header {
				row[col] = rec[i]
			}
			rows = append(rows, row)
		}
		set[name] = rows
	}
	return set
}

// WriteCSV writes the fixture dump into dir, one file per table
func WriteCSV(t *testing.T, dir string) {
	t.Helper()

	for name, f := range fixtures {
		file, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err, "Failed to create fixture %s", name)

		w := csv.NewWriter(file)
		require.NoError(t, w.Write(f.header))
		require.NoError(t, w.WriteAll(f.records))
		require.NoError(t, file.Close())
	}
}

// CSV returns one fixture table rendered as CSV text
func CSV(t *testing.T, name string) string {
	t.Helper()

	dir := t.TempDir()
	WriteCSV(t, dir)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// SetupTestGin creates a test Gin engine with test mode enabled.
func SetupTestGin() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
