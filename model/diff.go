package model

import "sort"

// DiffKind classifies a difference between the two documents.
type DiffKind int

const (
	// KindModified means a matched block pair whose text differs.
	KindModified DiffKind = iota

	// KindDeleted means a block present only in document A.
	KindDeleted

	// KindAdded means a block present only in document B.
	KindAdded
)

// String returns a human-readable representation of the kind.
func (k DiffKind) String() string {
	switch k {
	case KindModified:
		return "modified"
	case KindDeleted:
		return "deleted"
	case KindAdded:
		return "added"
	default:
		return "unknown"
	}
}

// ColorTag identifies the highlight color for a difference.
type ColorTag int

const (
	// ColorRed highlights deletions on document A.
	ColorRed ColorTag = iota

	// ColorGreen highlights additions on document B.
	ColorGreen

	// ColorYellow highlights modified text on both documents.
	ColorYellow
)

// String returns the color name.
func (c ColorTag) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Color returns the highlight color for a diff kind. It is a pure, total
// function: deleted is red, added is green, modified is yellow.
func (k DiffKind) Color() ColorTag {
	switch k {
	case KindDeleted:
		return ColorRed
	case KindAdded:
		return ColorGreen
	default:
		return ColorYellow
	}
}

// DiffRecord describes one difference between the two documents.
type DiffRecord struct {
	// Kind classifies the difference.
	Kind DiffKind

	// IndexA is the block index in document A, or -1 for added blocks.
	IndexA int

	// IndexB is the block index in document B, or -1 for deleted blocks.
	IndexB int

	// Detail is a human-readable description of the difference,
	// suitable for tooltips.
	Detail string
}

// Highlight is one rectangle to paint on a rendered page. Coordinates are
// the original page-space bounding boxes; scaling to pixels is the
// presentation layer's concern.
type Highlight struct {
	BBox   BBox
	Color  ColorTag
	Detail string
}

// SyncMap is a partial correspondence from block indices of document A to
// block indices of document B. At most one A index maps to any B index.
// It is used to keep two views positionally aligned while scrolling.
type SyncMap map[int]int

// Get returns the B index matched to the given A index.
func (m SyncMap) Get(a int) (int, bool) {
	b, ok := m[a]
	return b, ok
}

// Len returns the number of matched pairs.
func (m SyncMap) Len() int {
	return len(m)
}

// Inverse returns the B-to-A mapping, for scroll synchronization driven
// from the right-hand view.
func (m SyncMap) Inverse() SyncMap {
	inv := make(SyncMap, len(m))
	for a, b := range m {
		inv[b] = a
	}
	return inv
}

// Pairs returns the matched (A, B) index pairs ordered by A index.
func (m SyncMap) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(m))
	for a, b := range m {
		pairs = append(pairs, [2]int{a, b})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// Result is the complete output of one comparison run. All fields are
// produced together and must not be mutated by the caller; the presentation
// layer re-derives rendering from the result on demand.
type Result struct {
	// Records are the differences in document order: matched-pair and
	// deleted records in A order, then added records in B order.
	Records []DiffRecord

	// Sync maps block indices of A to matched block indices of B.
	Sync SyncMap

	// HighlightsA maps page index to highlight rectangles for document A.
	HighlightsA map[int][]Highlight

	// HighlightsB maps page index to highlight rectangles for document B.
	HighlightsB map[int][]Highlight
}

// Counts returns the number of modified, deleted, and added records.
func (r *Result) Counts() (modified, deleted, added int) {
	for _, rec := range r.Records {
		switch rec.Kind {
		case KindModified:
			modified++
		case KindDeleted:
			deleted++
		case KindAdded:
			added++
		}
	}
	return modified, deleted, added
}
