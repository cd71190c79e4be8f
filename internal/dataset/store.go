// Package dataset loads the generated documents and answers lookup queries
// over them, mirroring what the browser app does client-side.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/palemoky/pokedex-data/internal/dex"
	"github.com/palemoky/pokedex-data/internal/encounter"
	"github.com/palemoky/pokedex-data/internal/output"
)

// StatusUnknown marks a version with no encounter record
const StatusUnknown = "unknown"

// Filter selects version groups and pokemon.
// Series wins over Generation; neither selects every game.
type Filter struct {
	Generation int
	Series     string
	Query      string
}

// Capture is one selected version group's availability for a pokemon
type Capture struct {
	VersionGroupID string           `json:"versionGroupId"`
	Label          string           `json:"label"`
	Status         string           `json:"status"`
	Versions       []CaptureVersion `json:"versions"`
}

// CaptureVersion is one game's availability inside a capture
type CaptureVersion struct {
	GameID         string   `json:"gameId"`
	Label          string   `json:"label"`
	Status         string   `json:"status"`
	Locations      []string `json:"locations"`
	SpecialMethods []string `json:"specialMethods"`
}

// Store holds both documents read-only
type Store struct {
	pokedex    *dex.Document
	encounters *encounter.Document
	byDexNo    map[int]int
}

// New indexes already decoded documents
func New(pokedex *dex.Document, encounters *encounter.Document) *Store {
	byDexNo := make(map[int]int, len(pokedex.Pokemon))
	for i, p := range pokedex.Pokemon {
		byDexNo[p.DexNo] = i
	}
	if encounters.Encounters == nil {
		encounters.Encounters = make(map[string]*encounter.Entry)
	}
	return &Store{pokedex: pokedex, encounters: encounters, byDexNo: byDexNo}
}

// Load reads pokedex.json and encounters.json from dir
func Load(dir string) (*Store, error) {
	var pokedex dex.Document
	if err := readJSON(filepath.Join(dir, output.PokedexFile), &pokedex); err != nil {
		return nil, err
	}

	var encounters encounter.Document
	if err := readJSON(filepath.Join(dir, output.EncountersFile), &encounters); err != nil {
		return nil, err
	}

	return New(&pokedex, &encounters), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Locale returns the locale tag the documents were generated for
func (s *Store) Locale() string {
	return s.pokedex.Locale
}

// Games returns every version group in document order
func (s *Store) Games() []dex.Game {
	return s.pokedex.Games
}

// Generations returns the distinct game generations, ascending
func (s *Store) Generations() []int {
	gens := lo.Uniq(lo.Map(s.pokedex.Games, func(g dex.Game, _ int) int { return g.Generation }))
	slices.Sort(gens)
	return gens
}

// PokemonCount returns how many pokemon the dex holds
func (s *Store) PokemonCount() int {
	return len(s.pokedex.Pokemon)
}

// GroupsFor returns the version groups a filter selects
func (s *Store) GroupsFor(f Filter) []dex.Game {
	switch {
	case f.Series != "":
		return lo.Filter(s.pokedex.Games, func(g dex.Game, _ int) bool { return g.VersionGroupID == f.Series })
	case f.Generation > 0:
		return lo.Filter(s.pokedex.Games, func(g dex.Game, _ int) bool { return g.Generation == f.Generation })
	default:
		return s.pokedex.Games
	}
}

// ListPokemon returns pokemon whose name contains the query and that can be
// encountered in at least one selected group, sorted by dex number
func (s *Store) ListPokemon(f Filter) []dex.Pokemon {
	groups := s.GroupsFor(f)
	query := strings.TrimSpace(f.Query)

	list := lo.Filter(s.pokedex.Pokemon, func(p dex.Pokemon, _ int) bool {
		if query != "" && !strings.Contains(p.Name, query) {
			return false
		}
		entry := s.entry(p.DexNo)
		if entry == nil {
			return false
		}
		return lo.SomeBy(groups, func(g dex.Game) bool {
			_, ok := entry.VersionGroups[g.VersionGroupID]
			return ok
		})
	})

	slices.SortFunc(list, func(a, b dex.Pokemon) int { return a.DexNo - b.DexNo })
	return list
}

// Pokemon returns one dex entry
func (s *Store) Pokemon(dexNo int) (dex.Pokemon, bool) {
	i, ok := s.byDexNo[dexNo]
	if !ok {
		return dex.Pokemon{}, false
	}
	return s.pokedex.Pokemon[i], true
}

// Captures returns availability in each selected group the pokemon appears
// in. Versions without a record are reported as unknown.
func (s *Store) Captures(dexNo int, groups []dex.Game) []Capture {
	entry := s.entry(dexNo)
	if entry == nil {
		return []Capture{}
	}

	captures := make([]Capture, 0, len(groups))
	for _, g := range groups {
		data, ok := entry.VersionGroups[g.VersionGroupID]
		if !ok {
			continue
		}

		versions := make([]CaptureVersion, 0, len(g.Versions))
		for _, v := range g.Versions {
			cv := CaptureVersion{
				GameID:         v.GameID,
				Label:          v.Label,
				Status:         StatusUnknown,
				Locations:      []string{},
				SpecialMethods: []string{},
			}
			if row, ok := data.Versions[v.GameID]; ok {
				cv.Status = row.Status
				cv.Locations = row.Locations
				cv.SpecialMethods = row.SpecialMethods
			}
			versions = append(versions, cv)
		}

		captures = append(captures, Capture{
			VersionGroupID: g.VersionGroupID,
			Label:          g.Label,
			Status:         data.Status,
			Versions:       versions,
		})
	}
	return captures
}

func (s *Store) entry(dexNo int) *encounter.Entry {
	return s.encounters.Encounters[fmt.Sprint(dexNo)]
}
