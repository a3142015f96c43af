package works

import "github.com/ohler55/ojg/jp"

// Field fallback rules for the legacy metadata layouts, kept as ordered
// JSONPath lists so the resolution precedence stays auditable in one
// place. The first path that yields a usable value wins.
var (
	titlePaths        = rulePaths("$.title")
	artistPaths       = rulePaths("$.credits.artist", "$.artist")
	releaseDatePaths  = rulePaths("$.release_date", "$.Release_date")
	sourcePaths       = rulePaths("$.source", "$.source.url")
	descriptionPaths  = rulePaths("$.preservation.why_archived", "$.description")
	archivedByPaths   = rulePaths("$.archived_by")
	archivedDatePaths = rulePaths("$.archived_date")
	typePaths         = rulePaths("$.type")
	audioFilePaths    = rulePaths("$.files.audio")
	thumbFilePaths    = rulePaths("$.files.thumbnail")
	genrePaths        = rulePaths("$.classification.genre")
	themePaths        = rulePaths("$.themes")
	emotionalPaths    = rulePaths("$.emotional_tags")
)

func rulePaths(exprs ...string) []jp.Expr {
	out := make([]jp.Expr, 0, len(exprs))
	for _, e := range exprs {
		x, err := jp.ParseString(e)
		if err != nil {
			panic("bad metadata rule path " + e + ": " + err.Error())
		}
		out = append(out, x)
	}
	return out
}

// firstString evaluates the ordered paths against the parsed metadata
// document and returns the first non-empty string hit. Non-string hits
// are skipped, which is what lets "$.source" (plain string layout) fall
// through to "$.source.url" (object layout).
func firstString(doc any, paths []jp.Expr) string {
	for _, x := range paths {
		for _, v := range x.Get(doc) {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// stringList collects string elements from every matching path. A bare
// string value counts as a one-element list.
func stringList(doc any, paths []jp.Expr) []string {
	var out []string
	for _, x := range paths {
		for _, v := range x.Get(doc) {
			switch t := v.(type) {
			case []any:
				for _, item := range t {
					if s, ok := item.(string); ok {
						out = append(out, s)
					}
				}
			case string:
				out = append(out, t)
			}
		}
	}
	return out
}

// union merges tag lists preserving first-seen order.
func union(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
