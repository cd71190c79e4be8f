// Package source fetches the PokeAPI CSV tables from a remote base URL or a
// local snapshot directory.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/palemoky/pokedex-data/internal/logger"
	"github.com/palemoky/pokedex-data/internal/table"
)

// DefaultBaseURL is the upstream PokeAPI CSV directory
const DefaultBaseURL = "https://raw.githubusercontent.com/PokeAPI/pokeapi/master/data/v2/csv/"

// Fetcher returns every row of one named table
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]table.Row, error)
}

// Options tunes how tables are fetched
type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
}

// New picks an HTTP fetcher for http(s) bases and a directory fetcher otherwise
func New(base string, opts Options) Fetcher {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return NewHTTPFetcher(base, opts)
	}
	return NewDirFetcher(base)
}

// HTTPFetcher reads tables from base+name over HTTP
type HTTPFetcher struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPFetcher creates an HTTP fetcher. A non-positive rate disables pacing.
func NewHTTPFetcher(base string, opts Options) *HTTPFetcher {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &HTTPFetcher{
		base:    base,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Fetch downloads and parses one table
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]table.Row, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.base+name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", req.URL, resp.Status)
	}

	return Parse(resp.Body)
}

// DirFetcher reads tables from files under a directory
type DirFetcher struct {
	dir string
}

// NewDirFetcher creates a directory fetcher
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{dir: dir}
}

// Fetch opens and parses dir/name
func (f *DirFetcher) Fetch(ctx context.Context, name string) ([]table.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(f.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}

// Parse reads CSV with a header row into rows keyed by column name
func Parse(r io.Reader) ([]table.Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []table.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		row := make(table.Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// FetchAll fetches every table in order, one at a time. The first failure
// aborts the run. Progress is drawn to out; nil discards it.
func FetchAll(ctx context.Context, f Fetcher, names []string, out io.Writer) (table.Set, error) {
	progress, bar := newFetchProgress(out, len(names))

	set := make(table.Set, len(names))
	for _, name := range names {
		rows, err := f.Fetch(ctx, name)
		if err != nil {
			bar.Abort(false)
			progress.Wait()
			return nil, fmt.Errorf("failed to fetch table %s: %w", name, err)
		}

		set[name] = rows
		logger.Debug("Fetched table", zap.String("table", name), zap.Int("rows", len(rows)))
		bar.Increment()
	}

	progress.Wait()
	return set, nil
}
