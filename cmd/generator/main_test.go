package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/pokedex-data/internal/processor"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	err := printSummary(&buf, processor.Summary{
		Tables:           20,
		Rows:             1234,
		Games:            21,
		Pokemon:          1025,
		EncounterSpecies: 700,
		Versions:         9000,
		Duration:         time.Second,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Dataset Summary")
	assert.Contains(t, out, "1025")
	assert.Contains(t, out, "Species with encounters")
}
