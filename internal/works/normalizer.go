package works

import (
	"errors"
	"os"
	"path"
	"path/filepath"

	"github.com/ohler55/ojg/oj"
	"github.com/sirupsen/logrus"

	"babylon/internal/archive"
	"babylon/pkg/models"
)

// Skip outcomes. Both mean "this folder contributes nothing to the
// index"; neither may abort the scan of sibling folders.
var (
	ErrNoMetadata  = errors.New("no metadata file")
	ErrBadMetadata = errors.New("unreadable metadata")
)

// Normalizer turns one work folder's on-disk metadata into the canonical
// WorkRecord, resolving the legacy field layouts via the rule table in
// rules.go. It is a pure transformation over file contents; every
// failure is reported as a skip outcome, never as a request failure.
type Normalizer struct {
	scanner *archive.Scanner
	log     *logrus.Logger
}

func NewNormalizer(scanner *archive.Scanner, log *logrus.Logger) *Normalizer {
	if log == nil {
		log = logrus.New()
	}
	return &Normalizer{scanner: scanner, log: log}
}

// Normalize builds the canonical record for one work folder, trying
// metadata.json first and the legacy {folder}_metadata.json second.
func (n *Normalizer) Normalize(creatorID, folder string) (*models.WorkRecord, error) {
	dir := n.scanner.WorkPath(creatorID, folder)

	raw, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if errors.Is(err, os.ErrNotExist) {
		raw, err = os.ReadFile(filepath.Join(dir, folder+"_metadata.json"))
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// not an error: folders without metadata are silently skipped
			return nil, ErrNoMetadata
		}
		n.log.WithFields(logrus.Fields{"creator": creatorID, "work": folder}).
			WithError(err).Warn("skipping work: metadata unreadable")
		return nil, ErrBadMetadata
	}

	doc, err := oj.Parse(raw)
	if err != nil {
		n.log.WithFields(logrus.Fields{"creator": creatorID, "work": folder}).
			WithError(err).Warn("skipping work: metadata parse failed")
		return nil, ErrBadMetadata
	}

	rec := &models.WorkRecord{
		ID:           creatorID + "/" + folder,
		CreatorID:    creatorID,
		Title:        firstString(doc, titlePaths),
		Artist:       firstString(doc, artistPaths),
		ReleaseDate:  firstString(doc, releaseDatePaths),
		Source:       firstString(doc, sourcePaths),
		Description:  firstString(doc, descriptionPaths),
		ArchivedBy:   firstString(doc, archivedByPaths),
		ArchivedDate: firstString(doc, archivedDatePaths),
		Type:         firstString(doc, typePaths),
		GenreTags:    union(stringList(doc, genrePaths)),
		ThemeTags:    union(stringList(doc, themePaths), stringList(doc, emotionalPaths)),
	}
	if rec.Type == "" {
		rec.Type = "song"
	}
	if f := firstString(doc, audioFilePaths); f != "" {
		rec.AudioPath = path.Join(folder, f)
	}
	if f := firstString(doc, thumbFilePaths); f != "" {
		rec.ThumbnailPath = path.Join(folder, f)
	}

	// analysis.md is best effort; a read failure never fails the record
	if b, err := os.ReadFile(filepath.Join(dir, "analysis.md")); err == nil {
		rec.AnalysisText = string(b)
	}

	return rec, nil
}

// NormalizeAll normalizes every work folder of a creator in folder
// enumeration order, dropping skip outcomes. One bad file never aborts
// its siblings. Passes archive.ErrCreatorNotFound through untouched.
func (n *Normalizer) NormalizeAll(creatorID string) ([]models.WorkRecord, error) {
	folders, err := n.scanner.WorkFolders(creatorID)
	if err != nil {
		return nil, err
	}

	out := make([]models.WorkRecord, 0, len(folders))
	for _, folder := range folders {
		rec, err := n.Normalize(creatorID, folder)
		if err != nil {
			continue // logged at source
		}
		out = append(out, *rec)
	}
	return out, nil
}
