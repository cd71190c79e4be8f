// Package encounter assembles the per-game encounter document (encounters.json).
package encounter

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/palemoky/pokedex-data/internal/index"
)

// SchemaVersion of encounters.json
const SchemaVersion = 1

// StatusAvailable marks a group or version with at least one encounter row
const StatusAvailable = "available"

// unknownMethod stands in for a slot whose method cannot be resolved
const unknownMethod = "unknown"

// Document is the root of encounters.json
type Document struct {
	SchemaVersion int               `json:"schemaVersion"`
	Locale        string            `json:"locale"`
	Encounters    map[string]*Entry `json:"encounters"`
}

// Entry holds one pokemon's availability per version group
type Entry struct {
	VersionGroups map[string]*Group `json:"versionGroups"`
}

// Group holds availability per version inside one version group
type Group struct {
	Status   string              `json:"status"`
	Versions map[string]*Version `json:"versions"`
}

// Version lists where and how a pokemon is found in one game
type Version struct {
	Status         string   `json:"status"`
	Locations      []string `json:"locations"`
	SpecialMethods []string `json:"specialMethods"`
}

// Entry returns the entry for pokemonID, inserting an empty one on first use
func (d *Document) Entry(pokemonID int) *Entry {
	key := strconv.Itoa(pokemonID)
	e, ok := d.Encounters[key]
	if !ok {
		e = &Entry{VersionGroups: make(map[string]*Group)}
		d.Encounters[key] = e
	}
	return e
}

// Group returns the group for groupID, inserting an available one on first use
func (e *Entry) Group(groupID string) *Group {
	g, ok := e.VersionGroups[groupID]
	if !ok {
		g = &Group{Status: StatusAvailable, Versions: make(map[string]*Version)}
		e.VersionGroups[groupID] = g
	}
	return g
}

// Version returns the version for versionID, inserting an available one on first use
func (g *Group) Version(versionID string) *Version {
	v, ok := g.Versions[versionID]
	if !ok {
		v = &Version{Status: StatusAvailable, Locations: []string{}, SpecialMethods: []string{}}
		g.Versions[versionID] = v
	}
	return v
}

// AddLocation appends name unless already listed
func (v *Version) AddLocation(name string) {
	if !lo.Contains(v.Locations, name) {
		v.Locations = append(v.Locations, name)
	}
}

// AddSpecialMethod appends label unless already listed
func (v *Version) AddSpecialMethod(label string) {
	if !lo.Contains(v.SpecialMethods, label) {
		v.SpecialMethods = append(v.SpecialMethods, label)
	}
}

// Build produces the encounter document from the prebuilt indexes.
// Rows in version groups outside the main series are dropped.
func Build(idx *index.Indexes) *Document {
	doc := &Document{
		SchemaVersion: SchemaVersion,
		Locale:        idx.Locale.Tag,
		Encounters:    make(map[string]*Entry),
	}

	for _, r := range idx.EncounterRows {
		versionID := r.Int("version_id")
		groupID, ok := idx.GroupOfVersion(versionID)
		if !ok || !index.IsMainGroup(groupID) {
			continue
		}

		v := doc.Entry(r.Int("pokemon_id")).
			Group(groupID).
			Version(idx.Versions[versionID].Str("identifier"))

		v.AddLocation(locationName(idx, r.Int("location_area_id")))

		method := methodIdentifier(idx, r.Int("encounter_slot_id"))
		for _, sm := range idx.Locale.SpecialMethods {
			if strings.Contains(method, sm.Keyword) {
				v.AddSpecialMethod(sm.Label)
			}
		}
	}

	return doc
}

func locationName(idx *index.Indexes, areaID int) string {
	locationID, ok := idx.AreaLocation[areaID]
	if !ok {
		return idx.Locale.Unidentified
	}
	name, ok := idx.LocationName[locationID]
	if !ok {
		return idx.Locale.Unidentified
	}
	return name
}

func methodIdentifier(idx *index.Indexes, slotID int) string {
	methodID, ok := idx.SlotMethod[slotID]
	if !ok {
		return unknownMethod
	}
	name, ok := idx.MethodName[methodID]
	if !ok {
		return unknownMethod
	}
	return name
}
