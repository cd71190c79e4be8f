// Package dex assembles the species/stat document (pokedex.json).
package dex

import (
	"github.com/palemoky/pokedex-data/internal/index"
	"github.com/palemoky/pokedex-data/internal/stat"
	"github.com/palemoky/pokedex-data/internal/table"
)

// SchemaVersion of pokedex.json
const SchemaVersion = 1

// Document is the root of pokedex.json
type Document struct {
	SchemaVersion int       `json:"schemaVersion"`
	Locale        string    `json:"locale"`
	Games         []Game    `json:"games"`
	Pokemon       []Pokemon `json:"pokemon"`
}

// Game is one main-series version group
type Game struct {
	VersionGroupID string    `json:"versionGroupId"`
	Label          string    `json:"label"`
	Generation     int       `json:"generation"`
	Versions       []Version `json:"versions"`
}

// Version is one game inside a version group
type Version struct {
	GameID string `json:"gameId"`
	Label  string `json:"label"`
}

// Pokemon is one species' dex record
type Pokemon struct {
	DexNo      int        `json:"dexNo"`
	Name       string     `json:"nameKo"`
	Generation int        `json:"gen"`
	Types      []string   `json:"types"`
	Abilities  []string   `json:"abilities"`
	HeightM    float64    `json:"heightM"`
	WeightKg   float64    `json:"weightKg"`
	BaseStats  stat.Block `json:"baseStats"`
	Evolution  Evolution  `json:"evolution"`
}

// Evolution is kept empty; no stage here links evolution chains.
type Evolution struct {
	Prev  *int  `json:"prev"`
	Next  []int `json:"next"`
	Chain []int `json:"chain"`
	Forms []int `json:"forms"`
}

// Build produces the dex document from the prebuilt indexes
func Build(idx *index.Indexes) *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Locale:        idx.Locale.Tag,
		Games:         buildGames(idx),
		Pokemon:       buildPokemon(idx),
	}
}

func buildGames(idx *index.Indexes) []Game {
	versions := index.GroupBy(idx.VersionRows, "version_group_id", func(r table.Row) Version {
		label, ok := idx.VersionNames[r.ID()]
		if !ok {
			label = r.Str("identifier")
		}
		return Version{GameID: r.Str("identifier"), Label: label}
	})

	games := make([]Game, 0)
	for _, g := range idx.VersionGroupRows {
		identifier := g.Str("identifier")
		if !index.IsMainGroup(identifier) {
			continue
		}
		members := versions[g.ID()]
		if members == nil {
			members = []Version{}
		}
		games = append(games, Game{
			VersionGroupID: identifier,
			Label:          identifier,
			Generation:     g.Int("generation_id"),
			Versions:       members,
		})
	}
	return games
}

func buildPokemon(idx *index.Indexes) []Pokemon {
	out := make([]Pokemon, 0, len(idx.SpeciesRows))
	for _, s := range idx.SpeciesRows {
		sid := s.ID()
		form, ok := idx.Pokemon[sid]
		if !ok {
			continue
		}

		name, ok := idx.SpeciesNames[sid]
		if !ok {
			name = form.Str("identifier")
		}

		var stats stat.Block
		if b, ok := idx.Stats[sid]; ok {
			stats = *b
		}

		out = append(out, Pokemon{
			DexNo:      sid,
			Name:       name,
			Generation: s.Int("generation_id"),
			Types:      orUnknown(idx.Types[sid], idx.Locale.Unknown),
			Abilities:  orUnknown(idx.Abilities[sid], idx.Locale.Unknown),
			HeightM:    float64(form.Int("height")) / 10,
			WeightKg:   float64(form.Int("weight")) / 10,
			BaseStats:  stats,
			Evolution:  Evolution{Next: []int{}, Chain: []int{}, Forms: []int{}},
		})
	}
	return out
}

func orUnknown(values []string, unknown string) []string {
	if len(values) == 0 {
		return []string{unknown}
	}
	return values
}
