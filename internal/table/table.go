// Package table holds the raw CSV rows fetched from the PokeAPI data dump.
package table

import "strconv"

// Source table names, exactly as they appear under the upstream csv/ directory
const (
	Pokemon             = "pokemon.csv"
	PokemonSpecies      = "pokemon_species.csv"
	PokemonSpeciesNames = "pokemon_species_names.csv"
	PokemonTypes        = "pokemon_types.csv"
	Types               = "types.csv"
	TypeNames           = "type_names.csv"
	Abilities           = "abilities.csv"
	AbilityNames        = "ability_names.csv"
	PokemonAbilities    = "pokemon_abilities.csv"
	PokemonStats        = "pokemon_stats.csv"
	Stats               = "stats.csv"
	Encounters          = "encounters.csv"
	Versions            = "versions.csv"
	VersionNames        = "version_names.csv"
	VersionGroups       = "version_groups.csv"
	LocationAreas       = "location_areas.csv"
	LocationNames       = "location_names.csv"
	Locations           = "locations.csv"
	EncounterSlots      = "encounter_slots.csv"
	EncounterMethods    = "encounter_methods.csv"
)

// SourceFiles is the fixed fetch list, in fetch order.
// pokemon_species.csv is listed twice upstream; the second read replaces the first.
var SourceFiles = []string{
	Pokemon, PokemonSpecies, PokemonSpeciesNames, PokemonTypes,
	Types, TypeNames, Abilities, AbilityNames, PokemonAbilities,
	PokemonStats, Stats, PokemonSpecies, Encounters, Versions,
	VersionNames, VersionGroups, LocationAreas, LocationNames,
	Locations, EncounterSlots, EncounterMethods,
}

// Row is one CSV record keyed by header column
type Row map[string]string

// Int parses a column as an integer. Missing or malformed values read as 0.
func (r Row) Int(col string) int {
	n, _ := strconv.Atoi(r[col])
	return n
}

// ID returns the parsed id column
func (r Row) ID() int {
	return r.Int("id")
}

// Str returns the raw column value
func (r Row) Str(col string) string {
	return r[col]
}

// Set holds every fetched table by name
type Set map[string][]Row

// Rows returns the rows of one table, nil when the table was never fetched
func (s Set) Rows(name string) []Row {
	return s[name]
}

// ByID indexes a table by its id column. Later rows replace earlier ones.
func ByID(rows []Row) map[int]Row {
	out := make(map[int]Row, len(rows))
	for _, r := range rows {
		out[r.ID()] = r
	}
	return out
}
