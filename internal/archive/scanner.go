package archive

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrCreatorNotFound means the creator's singles path does not exist.
// Callers use it to tell "no such creator" apart from "creator exists,
// zero works".
var ErrCreatorNotFound = errors.New("creator not found")

// Directory names under creators/ that never denote a creator.
var reservedNames = map[string]bool{
	"collections": true,
	"raw_backups": true,
}

var portraitExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Scanner enumerates creators and work folders under one archive root.
// The root is injected at construction so tests can point it at a
// fixture tree. The scanner never writes; ingestion happens out-of-band.
type Scanner struct {
	root string
	log  *logrus.Logger
}

func NewScanner(root string, log *logrus.Logger) *Scanner {
	if log == nil {
		log = logrus.New()
	}
	return &Scanner{root: root, log: log}
}

func (s *Scanner) Root() string {
	return s.root
}

func (s *Scanner) CreatorsPath() string {
	return filepath.Join(s.root, "creators")
}

func (s *Scanner) SinglesPath(creatorID string) string {
	return filepath.Join(s.CreatorsPath(), creatorID, "Music", "Singles")
}

func (s *Scanner) WorkPath(creatorID, folder string) string {
	return filepath.Join(s.SinglesPath(creatorID), folder)
}

// Creators lists creator ids in enumeration order, excluding reserved
// names and anything starting with "_". Failure to read the creators
// root is the one scan error that fails a whole request.
func (s *Scanner) Creators() ([]string, error) {
	entries, err := os.ReadDir(s.CreatorsPath())
	if err != nil {
		return nil, fmt.Errorf("read creators root: %w", err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "_") || reservedNames[name] {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// WorkFolders lists the direct child directories of the creator's
// singles path. ErrCreatorNotFound when that path is absent; any other
// read failure is a real scan error.
func (s *Scanner) WorkFolders(creatorID string) ([]string, error) {
	if creatorID == "" || strings.HasPrefix(creatorID, "_") || reservedNames[creatorID] {
		return nil, ErrCreatorNotFound
	}

	entries, err := os.ReadDir(s.SinglesPath(creatorID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("read singles dir for %s: %w", creatorID, err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}

// Portrait returns the archive-relative path of the creator portrait:
// the first image file under the creator's outfit directory. A missing
// or unreadable outfit dir just means no portrait.
func (s *Scanner) Portrait(creatorID string) (string, bool) {
	outfitDir := filepath.Join(s.CreatorsPath(), creatorID, "outfit")
	entries, err := os.ReadDir(outfitDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithField("creator", creatorID).WithError(err).Warn("could not read outfit dir")
		}
		return "", false
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if portraitExts[strings.ToLower(filepath.Ext(e.Name()))] {
			return path.Join("creators", creatorID, "outfit", e.Name()), true
		}
	}
	return "", false
}
