package creators

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babylon/internal/archive"
	"babylon/internal/works"
)

func writeWork(t *testing.T, root, creator, folder, content string) {
	t.Helper()
	dir := filepath.Join(root, "creators", creator, "Music", "Singles", folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(content), 0o644))
	}
}

func TestWorkCountIncludesUnparseableFolders(t *testing.T) {
	root := t.TempDir()
	writeWork(t, root, "C", "good", `{"title": "ok"}`)
	writeWork(t, root, "C", "broken", `{{{`)
	writeWork(t, root, "C", "bare", "") // no metadata at all

	scanner := archive.NewScanner(root, nil)
	agg := NewAggregator(scanner, 150, nil)

	summaries, err := agg.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	// every folder counts toward workCount...
	assert.Equal(t, 3, summaries[0].WorkCount)

	// ...but only the parseable one reaches the works listing
	records, err := works.NewNormalizer(scanner, nil).NormalizeAll("C")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCompletenessUsesPerCreatorTargets(t *testing.T) {
	root := t.TempDir()
	for _, folder := range []string{"s1", "s2", "s3"} {
		writeWork(t, root, "Hoshimachi_Suisei", folder, `{"title": "x"}`)
	}
	writeWork(t, root, "Other", "only", `{"title": "y"}`)

	agg := NewAggregator(
		archive.NewScanner(root, nil),
		150,
		map[string]int{"Hoshimachi_Suisei": 3},
	)

	summaries, err := agg.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]float64{}
	for _, s := range summaries {
		byID[s.ID] = s.Completeness
	}
	assert.InDelta(t, 1.0, byID["Hoshimachi_Suisei"], 1e-9)
	assert.InDelta(t, 1.0/150.0, byID["Other"], 1e-9)
}

func TestCompletenessIsNotClamped(t *testing.T) {
	root := t.TempDir()
	writeWork(t, root, "C", "a", `{}`)
	writeWork(t, root, "C", "b", `{}`)

	agg := NewAggregator(archive.NewScanner(root, nil), 0, map[string]int{"C": 1})
	summaries, err := agg.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 2.0, summaries[0].Completeness, 1e-9)
}

func TestDisplayNameReplacesUnderscores(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "creators", "Hoshimachi_Suisei"), 0o755))

	agg := NewAggregator(archive.NewScanner(root, nil), 150, nil)
	summaries, err := agg.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Hoshimachi Suisei", summaries[0].DisplayName)
	// no singles path yet: zero works, not an error
	assert.Equal(t, 0, summaries[0].WorkCount)
}

func TestSummariesExcludeReservedDirs(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Real_One", "collections", "raw_backups", "_wip"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "creators", name), 0o755))
	}

	agg := NewAggregator(archive.NewScanner(root, nil), 150, nil)
	summaries, err := agg.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Real_One", summaries[0].ID)
}

func TestSummariesFailWhenSinglesPathUnreadable(t *testing.T) {
	root := t.TempDir()
	musicDir := filepath.Join(root, "creators", "C", "Music")
	require.NoError(t, os.MkdirAll(musicDir, 0o755))
	// a regular file where the Singles directory should be: this is a
	// scan failure, not an empty creator, and must not report zero works
	require.NoError(t, os.WriteFile(filepath.Join(musicDir, "Singles"), []byte("x"), 0o644))

	agg := NewAggregator(archive.NewScanner(root, nil), 150, nil)
	_, err := agg.Summaries()
	require.Error(t, err)
	assert.NotErrorIs(t, err, archive.ErrCreatorNotFound)
}

func TestSummaryIncludesPortrait(t *testing.T) {
	root := t.TempDir()
	outfit := filepath.Join(root, "creators", "C", "outfit")
	require.NoError(t, os.MkdirAll(outfit, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outfit, "portrait.webp"), []byte("img"), 0o644))

	agg := NewAggregator(archive.NewScanner(root, nil), 150, nil)
	summaries, err := agg.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "creators/C/outfit/portrait.webp", summaries[0].ImagePath)
}
