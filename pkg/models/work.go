package models

// WorkRecord is the normalized, canonical form of one archived work.
//
// Every legacy metadata layout on disk is mapped into this structure
// first; aggregation, search and serialization only ever see this shape.
type WorkRecord struct {
	ID            string   `json:"id"` // "{creatorId}/{workFolder}"
	CreatorID     string   `json:"creatorId"`
	Title         string   `json:"title,omitempty"`
	Artist        string   `json:"artist,omitempty"`
	ReleaseDate   string   `json:"releaseDate,omitempty"` // ISO date or free text
	Source        string   `json:"source,omitempty"`      // origin URL
	Description   string   `json:"description,omitempty"`
	ArchivedBy    string   `json:"archivedBy,omitempty"`
	ArchivedDate  string   `json:"archivedDate,omitempty"`
	AudioPath     string   `json:"audioPath,omitempty"`     // "{workFolder}/{file}"
	ThumbnailPath string   `json:"thumbnailPath,omitempty"` // "{workFolder}/{file}"
	AnalysisText  string   `json:"analysisText,omitempty"`
	Type          string   `json:"type"` // defaults to "song"
	GenreTags     []string `json:"genreTags"`
	ThemeTags     []string `json:"themeTags"`
}
