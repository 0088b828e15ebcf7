package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/redline/align"
	"github.com/tsawler/redline/model"
)

// ClassifierConfig holds configuration for diff classification.
type ClassifierConfig struct {
	// SuppressPlaceholders drops modified records whose A-side block
	// contains a placeholder pattern (default: true)
	SuppressPlaceholders bool

	// Patterns is the placeholder library; nil selects the stock set
	Patterns []*regexp.Regexp

	// Aligner configures the word aligner used for modified pairs
	Aligner align.AlignerConfig
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		SuppressPlaceholders: true,
		Patterns:             nil,
		Aligner:              align.DefaultAlignerConfig(),
	}
}

// Classifier turns block pairs and leftovers into diff records.
type Classifier struct {
	config   ClassifierConfig
	patterns []*regexp.Regexp
	aligner  *align.Aligner
}

// NewClassifier creates a new classifier with default configuration
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	patterns := config.Patterns
	if patterns == nil {
		patterns = DefaultPlaceholderPatterns()
	}
	return &Classifier{
		config:   config,
		patterns: patterns,
		aligner:  align.NewAlignerWithConfig(config.Aligner),
	}
}

// Placeholder reports whether text contains any placeholder pattern.
func (c *Classifier) Placeholder(text string) bool {
	for _, p := range c.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ClassifyPair classifies a matched block pair. The boolean reports
// whether a record was produced: identical text, equal normalized word
// streams, and suppressed placeholder fills all produce none. A produced
// record is always Modified, with word ops for highlight placement.
//
// Suppression tests only the A side: A is the template carrying the
// masked field, B the document it was filled into.
func (c *Classifier) ClassifyPair(ia, ib int, a, b model.TextBlock) (model.DiffRecord, []align.Op, bool) {
	if strings.TrimSpace(a.Text) == strings.TrimSpace(b.Text) {
		return model.DiffRecord{}, nil, false
	}

	if c.config.SuppressPlaceholders && c.Placeholder(a.Text) {
		return model.DiffRecord{}, nil, false
	}

	ops := c.aligner.Align(normalizedWords(a), normalizedWords(b))
	if len(ops) == 0 {
		return model.DiffRecord{}, nil, false
	}

	record := model.DiffRecord{
		Kind:   model.KindModified,
		IndexA: ia,
		IndexB: ib,
		Detail: detail(ops, a.Words, b.Words),
	}
	return record, ops, true
}

// ClassifyDeleted builds the record for a block present only in A.
func (c *Classifier) ClassifyDeleted(ia int, a model.TextBlock) model.DiffRecord {
	return model.DiffRecord{
		Kind:   model.KindDeleted,
		IndexA: ia,
		IndexB: -1,
		Detail: "deleted: " + collapse(a.Text),
	}
}

// ClassifyAdded builds the record for a block present only in B.
func (c *Classifier) ClassifyAdded(ib int, b model.TextBlock) model.DiffRecord {
	return model.DiffRecord{
		Kind:   model.KindAdded,
		IndexA: -1,
		IndexB: ib,
		Detail: "added: " + collapse(b.Text),
	}
}

// detail renders an edit script as a tooltip string, quoting the raw
// words removed from A and added in B. Replaces contribute to both.
func detail(ops []align.Op, wordsA, wordsB []model.Word) string {
	var removed, added []string
	for _, op := range ops {
		switch op.Kind {
		case align.OpDelete:
			removed = append(removed, wordsA[op.IndexA].Raw)
		case align.OpInsert:
			added = append(added, wordsB[op.IndexB].Raw)
		case align.OpReplace:
			removed = append(removed, wordsA[op.IndexA].Raw)
			added = append(added, wordsB[op.IndexB].Raw)
		}
	}

	switch {
	case len(removed) > 0 && len(added) > 0:
		return fmt.Sprintf("removed %q; added %q", strings.Join(removed, " "), strings.Join(added, " "))
	case len(removed) > 0:
		return fmt.Sprintf("removed %q", strings.Join(removed, " "))
	default:
		return fmt.Sprintf("added %q", strings.Join(added, " "))
	}
}

func normalizedWords(b model.TextBlock) []string {
	words := make([]string, len(b.Words))
	for i, w := range b.Words {
		words[i] = w.Normalized
	}
	return words
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
