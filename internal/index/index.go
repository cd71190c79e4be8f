// Package index builds the lookup structures both transformers join against.
package index

import (
	"github.com/palemoky/pokedex-data/internal/locale"
	"github.com/palemoky/pokedex-data/internal/stat"
	"github.com/palemoky/pokedex-data/internal/table"
)

// languageColumn is the language filter column shared by every *_names table
const languageColumn = "local_language_id"

// mainGroups is the allow-list of main-series version groups
var mainGroups = map[string]struct{}{
	"red-blue":                            {},
	"yellow":                              {},
	"gold-silver":                         {},
	"crystal":                             {},
	"ruby-sapphire":                       {},
	"emerald":                             {},
	"firered-leafgreen":                   {},
	"diamond-pearl":                       {},
	"platinum":                            {},
	"heartgold-soulsilver":                {},
	"black-white":                         {},
	"black-2-white-2":                     {},
	"x-y":                                 {},
	"omega-ruby-alpha-sapphire":           {},
	"sun-moon":                            {},
	"ultra-sun-ultra-moon":                {},
	"lets-go-pikachu-lets-go-eevee":       {},
	"sword-shield":                        {},
	"brilliant-diamond-and-shining-pearl": {},
	"legends-arceus":                      {},
	"scarlet-violet":                      {},
}

// IsMainGroup reports whether a version group identifier is main-series
func IsMainGroup(identifier string) bool {
	_, ok := mainGroups[identifier]
	return ok
}

// LocalizedNames maps idCol to valueCol for rows in one language.
// Duplicate ids within the language keep the last row.
func LocalizedNames(rows []table.Row, idCol, valueCol string, languageID int) map[int]string {
	out := make(map[int]string)
	for _, r := range rows {
		if r.Int(languageColumn) != languageID {
			continue
		}
		out[r.Int(idCol)] = r.Str(valueCol)
	}
	return out
}

// GroupBy appends fn(row) under the parsed parentCol, in row order
func GroupBy[T any](rows []table.Row, parentCol string, fn func(table.Row) T) map[int][]T {
	out := make(map[int][]T)
	for _, r := range rows {
		pid := r.Int(parentCol)
		out[pid] = append(out[pid], fn(r))
	}
	return out
}

// StatKeys maps stats.csv ids to canonical keys. Ids without a key are left out.
func StatKeys(rows []table.Row) map[int]stat.Key {
	out := make(map[int]stat.Key, len(rows))
	for _, r := range rows {
		if k, ok := stat.FromIdentifier(r.Str("identifier")); ok {
			out[r.ID()] = k
		}
	}
	return out
}

// Indexes holds every lookup derived from one fetch
type Indexes struct {
	Locale locale.Locale

	// Source-ordered primary tables
	SpeciesRows      []table.Row
	VersionRows      []table.Row
	VersionGroupRows []table.Row
	EncounterRows    []table.Row

	Pokemon       map[int]table.Row
	Versions      map[int]table.Row
	VersionGroups map[int]table.Row

	SpeciesNames map[int]string
	VersionNames map[int]string
	LocationName map[int]string

	// Per-pokemon localized values, in source order
	Types     map[int][]string
	Abilities map[int][]string
	Stats     map[int]*stat.Block

	AreaLocation map[int]int
	SlotMethod   map[int]int
	MethodName   map[int]string
}

// Build derives all indexes for loc from the fetched tables
func Build(tables table.Set, loc locale.Locale) *Indexes {
	lang := loc.LanguageID
	idx := &Indexes{
		Locale:           loc,
		SpeciesRows:      tables.Rows(table.PokemonSpecies),
		VersionRows:      tables.Rows(table.Versions),
		VersionGroupRows: tables.Rows(table.VersionGroups),
		EncounterRows:    tables.Rows(table.Encounters),
		Pokemon:          table.ByID(tables.Rows(table.Pokemon)),
		Versions:         table.ByID(tables.Rows(table.Versions)),
		VersionGroups:    table.ByID(tables.Rows(table.VersionGroups)),
		SpeciesNames:     LocalizedNames(tables.Rows(table.PokemonSpeciesNames), "pokemon_species_id", "name", lang),
		VersionNames:     LocalizedNames(tables.Rows(table.VersionNames), "version_id", "name", lang),
		LocationName:     LocalizedNames(tables.Rows(table.LocationNames), "location_id", "name", lang),
	}

	typeNames := LocalizedNames(tables.Rows(table.TypeNames), "type_id", "name", lang)
	idx.Types = GroupBy(tables.Rows(table.PokemonTypes), "pokemon_id", func(r table.Row) string {
		return nameOr(typeNames, r.Int("type_id"), loc.Unknown)
	})

	abilityNames := LocalizedNames(tables.Rows(table.AbilityNames), "ability_id", "name", lang)
	idx.Abilities = GroupBy(tables.Rows(table.PokemonAbilities), "pokemon_id", func(r table.Row) string {
		return nameOr(abilityNames, r.Int("ability_id"), loc.Unknown)
	})

	statKeys := StatKeys(tables.Rows(table.Stats))
	idx.Stats = make(map[int]*stat.Block)
	for _, r := range tables.Rows(table.PokemonStats) {
		k, ok := statKeys[r.Int("stat_id")]
		if !ok {
			continue
		}
		pid := r.Int("pokemon_id")
		block, ok := idx.Stats[pid]
		if !ok {
			block = &stat.Block{}
			idx.Stats[pid] = block
		}
		block.Set(k, r.Int("base_stat"))
	}

	idx.AreaLocation = columnIndex(tables.Rows(table.LocationAreas), "location_id")
	idx.SlotMethod = columnIndex(tables.Rows(table.EncounterSlots), "encounter_method_id")
	idx.MethodName = make(map[int]string)
	for _, r := range tables.Rows(table.EncounterMethods) {
		idx.MethodName[r.ID()] = r.Str("identifier")
	}

	return idx
}

// GroupOfVersion returns the version group identifier a version belongs to
func (idx *Indexes) GroupOfVersion(versionID int) (string, bool) {
	v, ok := idx.Versions[versionID]
	if !ok {
		return "", false
	}
	g, ok := idx.VersionGroups[v.Int("version_group_id")]
	if !ok {
		return "", false
	}
	return g.Str("identifier"), true
}

// columnIndex maps id to an integer column
func columnIndex(rows []table.Row, col string) map[int]int {
	out := make(map[int]int, len(rows))
	for _, r := range rows {
		out[r.ID()] = r.Int(col)
	}
	return out
}

func nameOr(names map[int]string, id int, fallback string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fallback
}
