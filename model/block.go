package model

// TextRun is a single positioned piece of text as reported by an upstream
// document text extractor. Runs are the raw input to block detection.
type TextRun struct {
	// Text is the raw extracted text of the run.
	Text string

	// Page is the zero-based page index the run appears on.
	Page int

	// BBox is the run's bounding box in page coordinates.
	BBox BBox
}

// SectionType is a provenance hint attached to a text block during layout
// detection. It is only ever used as a matching bonus, never required.
type SectionType string

const (
	// SectionNone means no section information is available.
	SectionNone SectionType = ""

	// SectionMajorTitle marks a top-level section heading.
	SectionMajorTitle SectionType = "major_title"

	// SectionMinorTitle marks a sub-section heading.
	SectionMinorTitle SectionType = "minor_title"

	// SectionMajorContent marks body text under a top-level heading.
	SectionMajorContent SectionType = "major_content"

	// SectionMinorContent marks body text under a sub-section heading.
	SectionMinorContent SectionType = "minor_content"

	// SectionStandalone marks text that belongs to no section.
	SectionStandalone SectionType = "standalone"
)

// TextBlock is a contiguous run of text on one page with a bounding box.
// Blocks are created once by layout detection and never mutated afterwards;
// a comparison run owns its blocks for the duration of the run.
type TextBlock struct {
	// Page is the zero-based page index.
	Page int

	// BBox is the union of the bounding boxes of the block's runs.
	BBox BBox

	// Text is the raw block text, lines joined with newlines.
	Text string

	// Section is an optional provenance hint used as a matching bonus.
	Section SectionType

	// Words is the block's word stream in reading order, with empty
	// normalizations already dropped.
	Words []Word
}

// Word is a single token with both its display form and the canonical form
// used for matching. Words whose normalization is empty are dropped before
// a Word value is ever created.
type Word struct {
	// Raw is the token as extracted, used for display only.
	Raw string

	// Normalized is the canonical form used for equality testing.
	Normalized string

	// Page is the zero-based page index.
	Page int

	// BBox is the bounding box of the source run the word came from.
	BBox BBox
}
