package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ohler55/ojg/oj"
	"github.com/sirupsen/logrus"

	"babylon/internal/archive"
)

// Fields graded by how badly a work record degrades without them.
var (
	criticalFields  = []string{"title", "files"}
	importantFields = []string{"release_date", "credits", "source", "archived_date"}
)

type report struct {
	works    int
	errors   []string
	warnings []string
}

func main() {
	root := flag.String("archive", "archive", "archive root")
	creator := flag.String("creator", "", "validate a single creator")
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // scanner noise off; this tool prints its own report

	scanner := archive.NewScanner(*root, logger)

	ids, err := scanner.Creators()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read archive: %v\n", err)
		os.Exit(1)
	}
	if *creator != "" {
		ids = []string{*creator}
	}

	totalErrors := 0
	for _, id := range ids {
		r := validateCreator(scanner, id)

		fmt.Printf("%s: %d work(s), %d error(s), %d warning(s)\n",
			id, r.works, len(r.errors), len(r.warnings))
		for _, e := range r.errors {
			fmt.Printf("  ERROR   %s\n", e)
		}
		for _, w := range r.warnings {
			fmt.Printf("  WARNING %s\n", w)
		}
		totalErrors += len(r.errors)
	}

	if totalErrors > 0 {
		os.Exit(1)
	}
}

func validateCreator(scanner *archive.Scanner, id string) report {
	var r report

	folders, err := scanner.WorkFolders(id)
	if err != nil {
		if errors.Is(err, archive.ErrCreatorNotFound) {
			r.warnings = append(r.warnings, "no Music/Singles directory")
		} else {
			r.errors = append(r.errors, fmt.Sprintf("cannot read singles dir: %v", err))
		}
		return r
	}

	r.works = len(folders)
	for _, folder := range folders {
		validateWork(scanner, id, folder, &r)
	}
	return r
}

func validateWork(scanner *archive.Scanner, id, folder string, r *report) {
	dir := scanner.WorkPath(id, folder)

	raw, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if errors.Is(err, os.ErrNotExist) {
		raw, err = os.ReadFile(filepath.Join(dir, folder+"_metadata.json"))
		if err == nil {
			r.warnings = append(r.warnings, folder+": uses legacy metadata filename")
		}
	}
	if err != nil {
		r.errors = append(r.errors, folder+": no metadata file")
		return
	}

	doc, err := oj.Parse(raw)
	if err != nil {
		r.errors = append(r.errors, fmt.Sprintf("%s: metadata parse failed: %v", folder, err))
		return
	}

	m, ok := doc.(map[string]any)
	if !ok {
		r.errors = append(r.errors, folder+": metadata is not a JSON object")
		return
	}

	for _, f := range criticalFields {
		if _, ok := m[f]; !ok {
			r.errors = append(r.errors, fmt.Sprintf("%s: missing critical field %q", folder, f))
		}
	}
	for _, f := range importantFields {
		if _, ok := m[f]; !ok {
			r.warnings = append(r.warnings, fmt.Sprintf("%s: missing field %q", folder, f))
		}
	}

	// referenced media files must exist next to the metadata
	if files, ok := m["files"].(map[string]any); ok {
		for _, key := range []string{"audio", "thumbnail"} {
			name, ok := files[key].(string)
			if !ok || name == "" {
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				r.errors = append(r.errors, fmt.Sprintf("%s: %s file %q missing", folder, key, name))
			}
		}
	}
}
