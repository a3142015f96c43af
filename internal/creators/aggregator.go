package creators

import (
	"errors"
	"strings"

	"babylon/internal/archive"
	"babylon/pkg/models"
)

// Aggregator computes the per-creator summaries for the creators index.
//
// WorkCount deliberately counts every work folder, not just folders with
// parseable metadata: a folder with broken metadata still exists in the
// archive even though search and the works listing skip it. Keep the two
// counts distinct.
type Aggregator struct {
	Scanner       *archive.Scanner
	DefaultTarget int
	Targets       map[string]int // creator id -> expected corpus size
}

func NewAggregator(scanner *archive.Scanner, defaultTarget int, targets map[string]int) *Aggregator {
	return &Aggregator{
		Scanner:       scanner,
		DefaultTarget: defaultTarget,
		Targets:       targets,
	}
}

// Summaries builds one CreatorSummary per creator directory, in
// enumeration order. A missing singles path means zero works, but any
// other failure to enumerate a creator's root fails the whole request;
// a scan failure must never masquerade as an empty creator.
func (a *Aggregator) Summaries() ([]models.CreatorSummary, error) {
	ids, err := a.Scanner.Creators()
	if err != nil {
		return nil, err
	}

	out := make([]models.CreatorSummary, 0, len(ids))
	for _, id := range ids {
		s, err := a.summary(id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (a *Aggregator) summary(id string) (models.CreatorSummary, error) {
	count := 0
	folders, err := a.Scanner.WorkFolders(id)
	switch {
	case err == nil:
		count = len(folders)
	case errors.Is(err, archive.ErrCreatorNotFound):
		// creator exists but has no singles path yet
	default:
		return models.CreatorSummary{}, err
	}

	s := models.CreatorSummary{
		ID:          id,
		DisplayName: strings.ReplaceAll(id, "_", " "),
		WorkCount:   count,
	}

	target := a.DefaultTarget
	if t, ok := a.Targets[id]; ok && t > 0 {
		target = t
	}
	if target > 0 {
		// no clamping: an archive can outgrow its target
		s.Completeness = float64(count) / float64(target)
	}

	if p, ok := a.Scanner.Portrait(id); ok {
		s.ImagePath = p
	}
	return s, nil
}
