package index

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaym/kapchunk/loader"
)

func testChunks() []loader.Chunk {
	return []loader.Chunk{
		{
			Text:          "Hello there.",
			Source:        "https://x.test/0_abc123?t=5",
			Filename:      "Lecture 1",
			MediaID:       "0_abc123",
			Timestamp:     "00:00:05",
			CaptionID:     "1_cap",
			LanguageCode:  "en-us",
			CaptionFormat: "SRT",
			Start:         5 * time.Second,
		},
		{
			Text:          "A later entry about turbines.",
			Source:        "https://x.test/0_abc123?t=150",
			Filename:      "Lecture 1",
			MediaID:       "0_abc123",
			Timestamp:     "00:02:30",
			CaptionID:     "1_cap",
			LanguageCode:  "en-us",
			CaptionFormat: "SRT",
			Start:         150 * time.Second,
		},
		{
			Text:          "Unrelated media.",
			Source:        "https://x.test/0_def456?t=0",
			Filename:      "Lecture 2",
			MediaID:       "0_def456",
			Timestamp:     "00:00:00",
			CaptionID:     "1_other",
			LanguageCode:  "en",
			CaptionFormat: "SRT",
			Start:         0,
		},
	}
}

func buildTestIndex(t *testing.T) *Database {
	t.Helper()

	dbPath := path.Join(t.TempDir(), "chunks.db")

	builder, err := NewIndexBuilder(dbPath)
	require.NoError(t, err)
	require.NoError(t, builder.AddChunks(testChunks()))
	require.NoError(t, builder.Build())

	db, err := OpenDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSearch(t *testing.T) {
	db := buildTestIndex(t)

	results, err := db.Search(context.Background(), "turbines")
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "0_abc123", result.MediaID)
	assert.Equal(t, "Lecture 1", result.Filename)
	assert.Equal(t, "1_cap", result.CaptionID)
	assert.Equal(t, 150, result.StartSeconds)
	assert.Equal(t, "00:02:30", result.Timestamp)
	assert.Equal(t, "https://x.test/0_abc123?t=150", result.Source)
}

func TestSearchNoResults(t *testing.T) {
	db := buildTestIndex(t)

	results, err := db.Search(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListChunks(t *testing.T) {
	db := buildTestIndex(t)

	chunks, err := db.ListChunks(context.Background(), "0_abc123")
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 5, chunks[0].StartSeconds)
	assert.Equal(t, 150, chunks[1].StartSeconds)

	chunks, err = db.ListChunks(context.Background(), "0_missing")
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
