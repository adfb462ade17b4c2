// Package ingest runs documents through extraction and feature derivation and
// upserts the results into the knowledge store.
package ingest

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mkaneko/skills-chatbot/internal/extract"
	"github.com/mkaneko/skills-chatbot/internal/features"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
)

// extractConcurrency bounds parallel document extraction during a batch run.
// Upserts serialize on the store's write lock regardless.
const extractConcurrency = 4

// Ingestor converts files into knowledge records.
type Ingestor struct {
	features *features.Extractor
	store    *knowledge.Store
}

// New creates an ingestor writing to the given store.
func New(fx *features.Extractor, store *knowledge.Store) *Ingestor {
	return &Ingestor{features: fx, store: store}
}

// IngestFile extracts, derives features from, and stores a single document.
// Returns the stored record.
func (ing *Ingestor) IngestFile(path string) (*knowledge.Record, error) {
	text, docType, err := extract.FromFile(path)
	if err != nil {
		return nil, err
	}

	feats := ing.features.Extract(text)
	rec := &knowledge.Record{
		Source:       extract.SourceID(path),
		Type:         docType,
		Content:      text,
		Skills:       feats.Skills,
		Projects:     feats.ProjectMentions,
		Technologies: feats.Technologies,
		Insights:     feats.Insights,
		Summary:      feats.Summary,
		Timestamp:    time.Now().UTC(),
	}

	if err := ing.store.Upsert(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Sources []string // source IDs ingested
	Failed  []string // paths that were skipped after an error
}

// IngestDirs walks the given directories recursively and ingests every
// supported file. Extraction runs concurrently with a bounded worker count.
// Per-file failures are logged and collected in the summary; one bad document
// never aborts the batch. Missing directories are skipped silently.
func (ing *Ingestor) IngestDirs(ctx context.Context, dirs ...string) (*Summary, error) {
	files, err := collectFiles(dirs)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	summary := &Summary{}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)

	for _, path := range files {
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}

			rec, err := ing.IngestFile(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("skipping %s: %v", path, err)
				summary.Failed = append(summary.Failed, path)
				return nil
			}
			summary.Sources = append(summary.Sources, rec.Source)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(summary.Sources)
	sort.Strings(summary.Failed)
	return summary, nil
}

// collectFiles gathers every supported file under the directories, in walk
// order. A directory that does not exist contributes nothing.
func collectFiles(dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && extract.Supported(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
