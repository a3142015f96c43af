package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"babylon/internal/archive"
	"babylon/internal/works"
	"babylon/pkg/models"
)

// Filters are the structured predicates of one search request. Zero
// values mean "inactive".
type Filters struct {
	Query    string // free text
	Type     string // exact match
	Creator  string // case-insensitive substring of the creator id
	Genre    string // case-insensitive substring of the serialized genre list
	DateFrom string // inclusive, lexicographic against releaseDate
	DateTo   string // inclusive, lexicographic against releaseDate
}

// Engine answers search queries with a full scan over the archive. No
// pre-built index and no cache: at archive scale a per-request scan is
// cheaper than keeping an index consistent with out-of-band ingestion.
type Engine struct {
	Scanner    *archive.Scanner
	Normalizer *works.Normalizer
	Log        *logrus.Logger
}

func NewEngine(scanner *archive.Scanner, normalizer *works.Normalizer, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{Scanner: scanner, Normalizer: normalizer, Log: log}
}

// Search returns every record passing all active filters, in creator
// enumeration order then folder enumeration order. The order is a
// guarantee: for a fixed storage tree and filter set the result slice is
// identical across calls.
func (e *Engine) Search(ctx context.Context, f Filters) ([]models.WorkRecord, error) {
	ids, err := e.Scanner.Creators()
	if err != nil {
		return nil, err
	}

	// The scan fans out per creator. One result slot per creator keeps
	// the merge order stable no matter which goroutine finishes first.
	perCreator := make([][]models.WorkRecord, len(ids))

	g, _ := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			records, err := e.Normalizer.NormalizeAll(id)
			if err != nil {
				if errors.Is(err, archive.ErrCreatorNotFound) {
					return nil // creator without a singles path
				}
				return err
			}

			var kept []models.WorkRecord
			for _, r := range records {
				if f.Match(r) {
					kept = append(kept, r)
				}
			}
			perCreator[i] = kept
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := []models.WorkRecord{}
	for _, recs := range perCreator {
		out = append(out, recs...)
	}
	return out, nil
}

// Match applies the active predicates in a fixed order, cheapest first,
// short-circuiting on the first miss.
func (f Filters) Match(r models.WorkRecord) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Creator != "" && !containsFold(r.CreatorID, f.Creator) {
		return false
	}
	if f.Genre != "" && !containsFold(serializeTags(r.GenreTags), f.Genre) {
		return false
	}
	// Lexicographic comparison; valid for ISO YYYY-MM-DD dates only.
	if f.DateFrom != "" && r.ReleaseDate < f.DateFrom {
		return false
	}
	if f.DateTo != "" && r.ReleaseDate > f.DateTo {
		return false
	}
	if f.Query != "" && !containsFold(searchableText(r), f.Query) {
		return false
	}
	return true
}

// searchableText is the haystack for the free-text query: title, artist,
// description and the serialized tag lists.
func searchableText(r models.WorkRecord) string {
	return strings.Join([]string{
		r.Title,
		r.Artist,
		r.Description,
		serializeTags(r.ThemeTags),
	}, " ")
}

func serializeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
