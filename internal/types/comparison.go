package types

// SignificantChangeThreshold is the similarity below which two versions of a
// resume are considered substantially different.
const SignificantChangeThreshold = 0.8

// ContentComparison is the result of a line-oriented diff between an original
// and a modified document. It is produced fresh on each comparison and only
// persisted as a snapshot inside an EnhancementRecord.
type ContentComparison struct {
	Similarity       float64  `json:"similarity"`
	AddedSections    []string `json:"added_sections"`
	ModifiedSections []string `json:"modified_sections"`
	RemovedSections  []string `json:"removed_sections"`
	ImprovementAreas []string `json:"improvement_areas"`
}

// HasSignificantChanges reports whether the similarity falls below the fixed
// significance threshold.
func (c ContentComparison) HasSignificantChanges() bool {
	return c.Similarity < SignificantChangeThreshold
}
