package encounter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pokedex-data/internal/index"
	"github.com/palemoky/pokedex-data/internal/locale"
	"github.com/palemoky/pokedex-data/internal/table"
	"github.com/palemoky/pokedex-data/internal/testutil"
)

func buildFixture(t *testing.T) *Document {
	t.Helper()
	return Build(index.Build(testutil.Tables(), locale.Korean))
}

func version(t *testing.T, doc *Document, pid, group, ver string) *Version {
	t.Helper()
	e, ok := doc.Encounters[pid]
	require.True(t, ok, "no entry for %s", pid)
	g, ok := e.VersionGroups[group]
	require.True(t, ok, "no group %s for %s", group, pid)
	v, ok := g.Versions[ver]
	require.True(t, ok, "no version %s in %s for %s", ver, group, pid)
	return v
}

func TestBuildHeader(t *testing.T) {
	doc := buildFixture(t)

	assert.Equal(t, 1, doc.SchemaVersion)
	assert.Equal(t, "ko-KR", doc.Locale)
	assert.Len(t, doc.Encounters, 2)
}

func TestLocationsDeduplicated(t *testing.T) {
	doc := buildFixture(t)

	red := version(t, doc, "25", "red-blue", "red")
	assert.Equal(t, StatusAvailable, red.Status)
	assert.Equal(t, []string{"고요한 섬", "미확인"}, red.Locations)
}

func TestSpecialMethodFanOut(t *testing.T) {
	doc := buildFixture(t)

	red := version(t, doc, "25", "red-blue", "red")
	assert.Equal(t, []string{"대량발생", "호연 사운드"}, red.SpecialMethods)

	platinum := version(t, doc, "1", "platinum", "platinum")
	assert.Equal(t, []string{"포켓트레"}, platinum.SpecialMethods)
}

func TestUnresolvedReferences(t *testing.T) {
	doc := buildFixture(t)

	blue := version(t, doc, "1", "red-blue", "blue")
	assert.Equal(t, []string{"미확인"}, blue.Locations)
	assert.Empty(t, blue.SpecialMethods)
	assert.NotNil(t, blue.SpecialMethods, "encodes as [] not null")
}

func TestNonMainGroupsNeverLeak(t *testing.T) {
	doc := buildFixture(t)

	for pid, e := range doc.Encounters {
		for group := range e.VersionGroups {
			assert.True(t, index.IsMainGroup(group), "pokemon %s leaked group %s", pid, group)
		}
	}
	assert.NotContains(t, doc.Encounters["25"].VersionGroups, "colosseum")
}

func TestNoDuplicateEntries(t *testing.T) {
	tables := testutil.Tables()
	// Repeat every encounter row to force duplicate lookups
	rows := tables.Rows(table.Encounters)
	tables[table.Encounters] = append(append([]table.Row{}, rows...), rows...)

	doc := Build(index.Build(tables, locale.Korean))

	for pid, e := range doc.Encounters {
		for group, g := range e.VersionGroups {
			assert.Equal(t, StatusAvailable, g.Status)
			for ver, v := range g.Versions {
				assert.ElementsMatch(t, uniq(v.Locations), v.Locations, "%s/%s/%s locations", pid, group, ver)
				assert.ElementsMatch(t, uniq(v.SpecialMethods), v.SpecialMethods, "%s/%s/%s methods", pid, group, ver)
			}
		}
	}
}

func TestUnknownVersionSkipped(t *testing.T) {
	tables := testutil.Tables()
	tables[table.Encounters] = []table.Row{
		{"id": "1", "version_id": "404", "location_area_id": "10", "encounter_slot_id": "100", "pokemon_id": "25"},
	}

	doc := Build(index.Build(tables, locale.Korean))
	assert.Empty(t, doc.Encounters)
}

func TestGetOrInsert(t *testing.T) {
	doc := &Document{Encounters: make(map[string]*Entry)}

	first := doc.Entry(7).Group("red-blue").Version("red")
	first.AddLocation("a")
	again := doc.Entry(7).Group("red-blue").Version("red")

	assert.Same(t, first, again)
	assert.Equal(t, []string{"a"}, again.Locations)
	assert.Len(t, doc.Encounters, 1)
}

func TestDocumentShape(t *testing.T) {
	doc := buildFixture(t)

	data, err := json.Marshal(doc.Encounters["1"])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"versionGroups": {
			"platinum": {"status": "available", "versions": {
				"platinum": {"status": "available", "locations": ["고요한 섬"], "specialMethods": ["포켓트레"]}
			}},
			"red-blue": {"status": "available", "versions": {
				"blue": {"status": "available", "locations": ["미확인"], "specialMethods": []}
			}}
		}
	}`, string(data))
}

func uniq(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
