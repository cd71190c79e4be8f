// Package processor runs the generator pipeline from source tables to written documents.
package processor

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/pokedex-data/internal/dex"
	"github.com/palemoky/pokedex-data/internal/encounter"
	"github.com/palemoky/pokedex-data/internal/index"
	"github.com/palemoky/pokedex-data/internal/locale"
	"github.com/palemoky/pokedex-data/internal/logger"
	"github.com/palemoky/pokedex-data/internal/output"
	"github.com/palemoky/pokedex-data/internal/source"
	"github.com/palemoky/pokedex-data/internal/table"
)

// Processor runs the fetch → index → transform → write pipeline once
type Processor struct {
	fetcher  source.Fetcher
	locale   locale.Locale
	outDir   string
	progress io.Writer
}

// Summary counts what one run produced
type Summary struct {
	Tables           int
	Rows             int
	Games            int
	Pokemon          int
	EncounterSpecies int
	Versions         int
	Duration         time.Duration
}

// Result holds both documents and the run summary
type Result struct {
	Pokedex    *dex.Document
	Encounters *encounter.Document
	Summary    Summary
}

// NewProcessor creates a processor writing into outDir
func NewProcessor(fetcher source.Fetcher, loc locale.Locale, outDir string) *Processor {
	return &Processor{
		fetcher: fetcher,
		locale:  loc,
		outDir:  outDir,
	}
}

// SetProgressOutput sets where the fetch progress bar is drawn
func (p *Processor) SetProgressOutput(w io.Writer) {
	p.progress = w
}

// Process fetches every table, builds both documents and writes them.
// Nothing is written unless every table was fetched.
func (p *Processor) Process(ctx context.Context) (*Result, error) {
	start := time.Now()

	logger.Info("Fetching source tables", zap.Int("tables", len(table.SourceFiles)))
	tables, err := source.FetchAll(ctx, p.fetcher, table.SourceFiles, p.progress)
	if err != nil {
		return nil, err
	}

	res := Transform(tables, p.locale)

	logger.Info("Writing documents", zap.String("dir", p.outDir))
	if err := output.WriteJSON(p.outDir, output.PokedexFile, res.Pokedex); err != nil {
		return nil, err
	}
	if err := output.WriteJSON(p.outDir, output.EncountersFile, res.Encounters); err != nil {
		return nil, err
	}

	res.Summary.Duration = time.Since(start)
	logger.Info("Generated documents",
		zap.Int("pokemon", res.Summary.Pokemon),
		zap.Int("games", res.Summary.Games),
		zap.Int("encounter_species", res.Summary.EncounterSpecies),
		zap.Duration("duration", res.Summary.Duration),
	)
	return res, nil
}

// Transform builds both documents from already fetched tables
func Transform(tables table.Set, loc locale.Locale) *Result {
	idx := index.Build(tables, loc)
	logger.Debug("Built indexes",
		zap.Int("species", len(idx.SpeciesRows)),
		zap.Int("forms", len(idx.Pokemon)),
		zap.Int("encounter_rows", len(idx.EncounterRows)),
	)

	res := &Result{
		Pokedex:    dex.Build(idx),
		Encounters: encounter.Build(idx),
	}
	res.Summary = summarize(tables, res)
	return res
}

func summarize(tables table.Set, res *Result) Summary {
	s := Summary{
		Tables:           len(tables),
		Games:            len(res.Pokedex.Games),
		Pokemon:          len(res.Pokedex.Pokemon),
		EncounterSpecies: len(res.Encounters.Encounters),
	}
	for _, rows := range tables {
		s.Rows += len(rows)
	}
	for _, e := range res.Encounters.Encounters {
		for _, g := range e.VersionGroups {
			s.Versions += len(g.Versions)
		}
	}
	return s
}

// String renders the summary on one line
func (s Summary) String() string {
	return fmt.Sprintf("%d pokemon, %d games, %d species with encounters", s.Pokemon, s.Games, s.EncounterSpecies)
}
