package redline

import (
	"fmt"
	"strings"

	"github.com/tsawler/redline/align"
	"github.com/tsawler/redline/classify"
	"github.com/tsawler/redline/match"
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/normalize"
)

// Comparison is a fluent, immutable comparison builder. Each chain method
// returns a new instance, so a configured Comparison can be shared and
// re-run safely.
type Comparison struct {
	blocksA []model.TextBlock
	blocksB []model.TextBlock
	options CompareOptions
}

// clone creates a shallow copy of the Comparison with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Comparison) clone() *Comparison {
	return &Comparison{
		blocksA: c.blocksA,
		blocksB: c.blocksB,
		options: c.options.clone(),
	}
}

// Threshold sets the minimum similarity score for accepting a block
// match, in [0,1]. The default 0.8 suits template-against-filled
// comparison; 0.6 tolerates heavier rewording.
//
// Example:
//
//	result, _, err := redline.Documents(a, b).Threshold(0.6).Run()
func (c *Comparison) Threshold(threshold float64) *Comparison {
	newCmp := c.clone()
	newCmp.options.threshold = threshold
	return newCmp
}

// SectionBonus sets the score bonus applied when both blocks carry the
// same section tag. Default 0.1.
func (c *Comparison) SectionBonus(bonus float64) *Comparison {
	newCmp := c.clone()
	newCmp.options.sectionBonus = bonus
	return newCmp
}

// Lookahead sets the word aligner's resynchronization window. Default 5.
func (c *Comparison) Lookahead(n int) *Comparison {
	newCmp := c.clone()
	newCmp.options.lookahead = n
	return newCmp
}

// MergeLimit sets the maximum number of consecutive words the aligner's
// merge-check may join into one unit. Default 5.
func (c *Comparison) MergeLimit(n int) *Comparison {
	newCmp := c.clone()
	newCmp.options.mergeLimit = n
	return newCmp
}

// WordHighlights switches modified pairs from one block rectangle per
// side to per-word rectangles: red for words removed from A, green for
// words added in B, yellow on both sides for substitutions.
//
// Example:
//
//	result, _, err := redline.Documents(a, b).WordHighlights().Run()
func (c *Comparison) WordHighlights() *Comparison {
	newCmp := c.clone()
	newCmp.options.wordHighlights = true
	return newCmp
}

// KeepPlaceholders disables placeholder suppression, reporting template
// fill-ins as ordinary modifications.
func (c *Comparison) KeepPlaceholders() *Comparison {
	newCmp := c.clone()
	newCmp.options.suppressPlaceholders = false
	return newCmp
}

// Run executes the comparison and returns the result, any non-fatal
// warnings, and an error for structurally invalid configuration. Empty
// inputs are not errors; comparing two empty documents yields an empty
// result. Identical inputs yield no records and an identity sync map.
// The run is deterministic: records come out in A order for modified and
// deleted entries, then B order for added entries.
func (c *Comparison) Run() (*model.Result, []Warning, error) {
	if err := c.validate(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning

	cleanA, skipA := sanitize(c.blocksA, "A", &warnings)
	cleanB, skipB := sanitize(c.blocksB, "B", &warnings)

	matcher := match.NewMatcherWithConfig(match.MatcherConfig{
		Threshold:    c.options.threshold,
		SectionBonus: c.options.sectionBonus,
	})
	matched := matcher.Match(cleanA, cleanB)

	classifier := classify.NewClassifierWithConfig(classify.ClassifierConfig{
		SuppressPlaceholders: c.options.suppressPlaceholders,
		Aligner: align.AlignerConfig{
			Lookahead:  c.options.lookahead,
			MergeLimit: c.options.mergeLimit,
		},
	})

	result := &model.Result{
		Sync:        matched.Sync,
		HighlightsA: make(map[int][]model.Highlight),
		HighlightsB: make(map[int][]model.Highlight),
	}

	// Modified pairs, in A order.
	for _, pair := range matched.Sync.Pairs() {
		i, j := pair[0], pair[1]
		record, ops, ok := classifier.ClassifyPair(i, j, c.blocksA[i], c.blocksB[j])
		if !ok {
			continue
		}
		result.Records = append(result.Records, record)
		c.highlightModified(result, record, ops, c.blocksA[i], c.blocksB[j])
	}

	// Blocks only in A, in A order. Blocks that normalize to nothing
	// (bullets, page numbers, decoration) are noise, not deletions.
	for _, i := range matched.UnmatchedA {
		if skipA[i] || noise(c.blocksA[i]) {
			continue
		}
		record := classifier.ClassifyDeleted(i, c.blocksA[i])
		result.Records = append(result.Records, record)
		addHighlight(result.HighlightsA, c.blocksA[i].Page, model.Highlight{
			BBox:   c.blocksA[i].BBox,
			Color:  record.Kind.Color(),
			Detail: record.Detail,
		})
	}

	// Blocks only in B, in B order.
	for _, j := range matched.UnmatchedB {
		if skipB[j] || noise(c.blocksB[j]) {
			continue
		}
		record := classifier.ClassifyAdded(j, c.blocksB[j])
		result.Records = append(result.Records, record)
		addHighlight(result.HighlightsB, c.blocksB[j].Page, model.Highlight{
			BBox:   c.blocksB[j].BBox,
			Color:  record.Kind.Color(),
			Detail: record.Detail,
		})
	}

	return result, warnings, nil
}

// validate rejects structurally invalid configuration.
func (c *Comparison) validate() error {
	if c.options.threshold < 0 || c.options.threshold > 1 {
		return fmt.Errorf("redline: threshold %v outside [0,1]", c.options.threshold)
	}
	if c.options.lookahead < 1 {
		return fmt.Errorf("redline: lookahead %d must be positive", c.options.lookahead)
	}
	if c.options.mergeLimit < 1 {
		return fmt.Errorf("redline: merge limit %d must be positive", c.options.mergeLimit)
	}
	return nil
}

// sanitize returns a matcher-ready copy of blocks in which degenerate
// entries have their text blanked, so the matcher skips them without
// disturbing block indices, plus the set of skipped indices. Each skip
// records a warning.
func sanitize(blocks []model.TextBlock, side string, warnings *[]Warning) ([]model.TextBlock, map[int]bool) {
	clean := make([]model.TextBlock, len(blocks))
	copy(clean, blocks)
	skip := make(map[int]bool)

	for i := range clean {
		if strings.TrimSpace(clean[i].Text) == "" || !clean[i].BBox.IsValid() {
			clean[i].Text = ""
			skip[i] = true
			*warnings = append(*warnings, degenerateWarning(side, i))
		}
	}
	return clean, skip
}

// highlightModified appends the highlight rectangles for a modified pair:
// per-word boxes when word granularity is on, otherwise one yellow block
// rectangle on each side.
func (c *Comparison) highlightModified(result *model.Result, record model.DiffRecord, ops []align.Op, a, b model.TextBlock) {
	if !c.options.wordHighlights {
		addHighlight(result.HighlightsA, a.Page, model.Highlight{
			BBox:   a.BBox,
			Color:  record.Kind.Color(),
			Detail: record.Detail,
		})
		addHighlight(result.HighlightsB, b.Page, model.Highlight{
			BBox:   b.BBox,
			Color:  record.Kind.Color(),
			Detail: record.Detail,
		})
		return
	}

	for _, op := range ops {
		switch op.Kind {
		case align.OpDelete:
			w := a.Words[op.IndexA]
			addHighlight(result.HighlightsA, w.Page, model.Highlight{
				BBox:   w.BBox,
				Color:  model.ColorRed,
				Detail: record.Detail,
			})
		case align.OpInsert:
			w := b.Words[op.IndexB]
			addHighlight(result.HighlightsB, w.Page, model.Highlight{
				BBox:   w.BBox,
				Color:  model.ColorGreen,
				Detail: record.Detail,
			})
		case align.OpReplace:
			wa, wb := a.Words[op.IndexA], b.Words[op.IndexB]
			addHighlight(result.HighlightsA, wa.Page, model.Highlight{
				BBox:   wa.BBox,
				Color:  model.ColorYellow,
				Detail: record.Detail,
			})
			addHighlight(result.HighlightsB, wb.Page, model.Highlight{
				BBox:   wb.BBox,
				Color:  model.ColorYellow,
				Detail: record.Detail,
			})
		}
	}
}

func addHighlight(pages map[int][]model.Highlight, page int, h model.Highlight) {
	pages[page] = append(pages[page], h)
}

// noise reports whether every token of the block normalizes to nothing:
// bullets, page numbers, and decoration that should never count as a
// deleted or added block.
func noise(b model.TextBlock) bool {
	for _, tok := range normalize.Tokenize(b.Text) {
		for _, sub := range normalize.Split(tok) {
			if normalize.Normalize(sub) != "" {
				return false
			}
		}
	}
	return true
}
