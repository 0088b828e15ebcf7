package layout

import "github.com/tsawler/redline/model"

// Words produces a reading-order stream of normalized words from raw
// runs, without any block structure. Runs are ordered by page, truncated
// Y, then X; each run is tokenized, comma-split, and normalized, and
// tokens that normalize to nothing are dropped. Every word keeps its
// source run's page and bounding box.
func Words(runs []model.TextRun) []model.Word {
	kept := make([]model.TextRun, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" || !r.BBox.IsValid() {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return nil
	}

	sortRuns(kept)

	var words []model.Word
	for _, r := range kept {
		words = append(words, runWords(r)...)
	}
	return words
}
