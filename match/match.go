package match

import (
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/normalize"
)

// MatcherConfig holds configuration for block matching.
type MatcherConfig struct {
	// Threshold is the minimum similarity score that accepts a match,
	// in [0,1] (default: 0.8)
	Threshold float64

	// SectionBonus is added to the score when both blocks carry the same
	// non-empty section tag (default: 0.1)
	SectionBonus float64
}

// DefaultMatcherConfig returns sensible default configuration
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Threshold:    0.8,
		SectionBonus: 0.1,
	}
}

// Matcher pairs blocks between two documents.
type Matcher struct {
	config MatcherConfig
}

// NewMatcher creates a new matcher with default configuration
func NewMatcher() *Matcher {
	return &Matcher{
		config: DefaultMatcherConfig(),
	}
}

// NewMatcherWithConfig creates a matcher with custom configuration
func NewMatcherWithConfig(config MatcherConfig) *Matcher {
	return &Matcher{
		config: config,
	}
}

// MatchResult is the outcome of pairing two block sequences.
type MatchResult struct {
	// Sync maps A block indices to their matched B block indices
	Sync model.SyncMap

	// UnmatchedA are A block indices with no accepted match
	UnmatchedA []int

	// UnmatchedB are B block indices never claimed by an A block
	UnmatchedB []int
}

// Match pairs each A block with its best-scoring unclaimed B block.
// Blocks whose normalized text is empty never match. On equal scores the
// first-encountered B block wins. Complexity is O(|A|·|B|) similarity
// evaluations.
func (m *Matcher) Match(blocksA, blocksB []model.TextBlock) MatchResult {
	result := MatchResult{Sync: make(model.SyncMap)}

	normA := normalizeAll(blocksA)
	normB := normalizeAll(blocksB)
	claimed := make([]bool, len(blocksB))

	for i := range blocksA {
		if normA[i] == "" {
			result.UnmatchedA = append(result.UnmatchedA, i)
			continue
		}

		best := -1
		bestScore := 0.0
		for j := range blocksB {
			if claimed[j] || normB[j] == "" {
				continue
			}

			score := Similarity(normA[i], normB[j])
			if s := blocksA[i].Section; s != model.SectionNone && s == blocksB[j].Section {
				score += m.config.SectionBonus
			}
			if score > bestScore {
				best, bestScore = j, score
			}
		}

		if best >= 0 && bestScore >= m.config.Threshold {
			result.Sync[i] = best
			claimed[best] = true
		} else {
			result.UnmatchedA = append(result.UnmatchedA, i)
		}
	}

	for j := range blocksB {
		if !claimed[j] {
			result.UnmatchedB = append(result.UnmatchedB, j)
		}
	}

	return result
}

// normalizeAll precomputes each block's normalized text.
func normalizeAll(blocks []model.TextBlock) []string {
	norm := make([]string, len(blocks))
	for i := range blocks {
		norm[i] = normalize.NormalizeText(blocks[i].Text)
	}
	return norm
}

// Similarity scores two strings in [0,1] as 2·LCS(a,b)/(len(a)+len(b))
// over runes. Identical strings score 1, disjoint strings 0. Two empty
// strings score 0: there is nothing to compare.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 0
	}
	lcs := lcsLength(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with a two-row
// DP table, O(len(a)·len(b)) time and O(min-row) space.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
