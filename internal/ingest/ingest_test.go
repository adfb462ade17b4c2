package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaneko/skills-chatbot/internal/extract"
	"github.com/mkaneko/skills-chatbot/internal/features"
	"github.com/mkaneko/skills-chatbot/internal/knowledge"
)

func newIngestor(t *testing.T) (*Ingestor, *knowledge.Store) {
	t.Helper()
	store := knowledge.NewStore(filepath.Join(t.TempDir(), "kb.json"))
	require.NoError(t, store.Load())
	return New(features.NewExtractor(features.DefaultConfig()), store), store
}

func TestIngestFile_RoundTrip(t *testing.T) {
	ing, store := newIngestor(t)

	path := filepath.Join(t.TempDir(), "robotics-internship.txt")
	content := "I developed an autonomous robot in Python. I learned that calibration matters. The API used PostgreSQL."
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rec, err := ing.IngestFile(path)

	require.NoError(t, err)
	assert.Equal(t, "robotics-internship", rec.Source)
	assert.Equal(t, knowledge.TypeTXT, rec.Type)
	assert.Equal(t, content, rec.Content)
	assert.False(t, rec.Timestamp.IsZero())

	// Matched keywords come from the fixed lists
	cfg := features.DefaultConfig()
	for _, skill := range rec.Skills {
		assert.Contains(t, cfg.SkillKeywords, skill)
	}
	for _, tech := range rec.Technologies {
		assert.Contains(t, cfg.TechKeywords, tech)
	}

	stored, ok := store.Get("robotics-internship")
	require.True(t, ok)
	assert.Equal(t, rec.Source, stored.Source)
}

func TestIngestFile_ReingestIsIdempotent(t *testing.T) {
	ing, store := newIngestor(t)

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("I built a thing."), 0644))

	_, err := ing.IngestFile(path)
	require.NoError(t, err)
	_, err = ing.IngestFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Size())
}

func TestIngestFile_SameStemLastWriteWins(t *testing.T) {
	ing, store := newIngestor(t)

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "resume.txt"), []byte("First version built in Java."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "resume.txt"), []byte("Second version built in Python."), 0644))

	_, err := ing.IngestFile(filepath.Join(dirA, "resume.txt"))
	require.NoError(t, err)
	_, err = ing.IngestFile(filepath.Join(dirB, "resume.txt"))
	require.NoError(t, err)

	assert.Equal(t, 1, store.Size())
	rec, ok := store.Get("resume")
	require.True(t, ok)
	assert.Contains(t, rec.Content, "Second version")
}

func TestIngestFile_UnsupportedType(t *testing.T) {
	ing, _ := newIngestor(t)

	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := ing.IngestFile(path)

	var exErr *extract.ExtractionError
	assert.ErrorAs(t, err, &exErr)
}

func TestIngestDirs_WalksRecursivelyAndSkipsFailures(t *testing.T) {
	ing, store := newIngestor(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("I built project A."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.txt"), []byte("I designed project B."), 0644))
	// Corrupt PDF fails extraction and must be skipped, not fatal
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0644))
	// Unsupported extension is never collected
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.md"), []byte("x"), 0644))

	summary, err := ing.IngestDirs(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, summary.Sources)
	require.Len(t, summary.Failed, 1)
	assert.Contains(t, summary.Failed[0], "broken.pdf")
	assert.Equal(t, 2, store.Size())
}

func TestIngestDirs_MissingDirectoryIsNotAnError(t *testing.T) {
	ing, _ := newIngestor(t)

	summary, err := ing.IngestDirs(context.Background(), filepath.Join(t.TempDir(), "absent"))

	require.NoError(t, err)
	assert.Empty(t, summary.Sources)
	assert.Empty(t, summary.Failed)
}
