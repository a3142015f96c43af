package models

// CreatorSummary is the per-creator aggregate shown on the creators index.
//
// WorkCount counts every work folder under the creator's singles path,
// including folders whose metadata failed to parse. Completeness is
// WorkCount divided by the configured expected corpus size; it is not
// clamped and may exceed 1 when the archive outgrows the target.
type CreatorSummary struct {
	ID           string  `json:"id"`
	DisplayName  string  `json:"displayName"` // id with underscores as spaces
	WorkCount    int     `json:"workCount"`
	Completeness float64 `json:"completeness"`
	ImagePath    string  `json:"imagePath,omitempty"` // portrait, archive-relative
}
