package redline

// CompareOptions holds configuration for a comparison run.
type CompareOptions struct {
	// Block matching
	threshold    float64
	sectionBonus float64

	// Word alignment
	lookahead  int
	mergeLimit int

	// Output granularity and suppression
	wordHighlights       bool
	suppressPlaceholders bool
}

// defaultOptions returns the default comparison options.
func defaultOptions() CompareOptions {
	return CompareOptions{
		threshold:            0.8,
		sectionBonus:         0.1,
		lookahead:            5,
		mergeLimit:           5,
		wordHighlights:       false,
		suppressPlaceholders: true,
	}
}

// clone creates a copy of CompareOptions.
func (o CompareOptions) clone() CompareOptions {
	return CompareOptions{
		threshold:            o.threshold,
		sectionBonus:         o.sectionBonus,
		lookahead:            o.lookahead,
		mergeLimit:           o.mergeLimit,
		wordHighlights:       o.wordHighlights,
		suppressPlaceholders: o.suppressPlaceholders,
	}
}
