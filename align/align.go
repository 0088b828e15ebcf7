package align

import "unicode/utf8"

// OpKind identifies one edit operation in an alignment script.
type OpKind int

const (
	// OpDelete marks a token present only in the first sequence
	OpDelete OpKind = iota

	// OpInsert marks a token present only in the second sequence
	OpInsert

	// OpReplace marks a positional substitution of one token for another
	OpReplace
)

// String returns a human-readable name for the op kind
func (k OpKind) String() string {
	switch k {
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Op is one edit operation. IndexA is -1 for inserts, IndexB is -1 for
// deletes; both are set for replaces.
type Op struct {
	Kind   OpKind
	IndexA int
	IndexB int
}

// AlignerConfig holds configuration for the aligner.
type AlignerConfig struct {
	// Lookahead is the resynchronization search window (default: 5)
	Lookahead int

	// MergeLimit is the maximum number of consecutive tokens the
	// merge-check may concatenate into one unit (default: 5)
	MergeLimit int
}

// DefaultAlignerConfig returns sensible default configuration
func DefaultAlignerConfig() AlignerConfig {
	return AlignerConfig{
		Lookahead:  5,
		MergeLimit: 5,
	}
}

// Aligner computes edit scripts between token sequences.
type Aligner struct {
	config AlignerConfig
}

// NewAligner creates a new aligner with default configuration
func NewAligner() *Aligner {
	return &Aligner{
		config: DefaultAlignerConfig(),
	}
}

// NewAlignerWithConfig creates an aligner with custom configuration
func NewAlignerWithConfig(config AlignerConfig) *Aligner {
	return &Aligner{
		config: config,
	}
}

// Align computes the edit script turning a into b. Equal tokens emit no
// op, merge-check recoveries emit no op, and ops come out in encounter
// order: each deletion or insertion run as soon as the walk resolves it.
func (al *Aligner) Align(a, b []string) []Op {
	var ops []Op
	i, j := 0, 0

	for i < len(a) || j < len(b) {
		// One side exhausted: drain the other.
		if i >= len(a) {
			ops = append(ops, Op{Kind: OpInsert, IndexA: -1, IndexB: j})
			j++
			continue
		}
		if j >= len(b) {
			ops = append(ops, Op{Kind: OpDelete, IndexA: i, IndexB: -1})
			i++
			continue
		}

		if a[i] == b[j] {
			i++
			j++
			continue
		}

		// Mismatch. The shorter current token's sequence may hold the
		// other token split into pieces; consuming the concatenation is
		// a match and records nothing.
		if k, ok := al.mergeSpan(a, i, b[j]); ok {
			i += k
			j++
			continue
		}
		if k, ok := al.mergeSpan(b, j, a[i]); ok {
			i++
			j += k
			continue
		}

		// Deletion run: b's current token appears ahead in a.
		if k, ok := al.findAhead(a, i, b[j]); ok {
			for idx := i; idx < i+k; idx++ {
				ops = append(ops, Op{Kind: OpDelete, IndexA: idx, IndexB: -1})
			}
			i += k
			continue
		}

		// Insertion run: a's current token appears ahead in b.
		if k, ok := al.findAhead(b, j, a[i]); ok {
			for idx := j; idx < j+k; idx++ {
				ops = append(ops, Op{Kind: OpInsert, IndexA: -1, IndexB: idx})
			}
			j += k
			continue
		}

		// Joint resync: nearest matching pair ahead on both sides.
		if k1, k2, ok := al.findJoint(a, b, i, j); ok {
			for idx := i; idx < i+k1; idx++ {
				ops = append(ops, Op{Kind: OpDelete, IndexA: idx, IndexB: -1})
			}
			for idx := j; idx < j+k2; idx++ {
				ops = append(ops, Op{Kind: OpInsert, IndexA: -1, IndexB: idx})
			}
			i += k1
			j += k2
			continue
		}

		// No resynchronization point in the window.
		ops = append(ops, Op{Kind: OpReplace, IndexA: i, IndexB: j})
		i++
		j++
	}

	return ops
}

// mergeSpan checks whether target equals the separator-free concatenation
// of tokens seq[pos:pos+k] for some k in [2, MergeLimit]. The check only
// applies when seq's current token is strictly shorter than target.
// Returns the number of tokens consumed.
func (al *Aligner) mergeSpan(seq []string, pos int, target string) (int, bool) {
	if utf8.RuneCountInString(seq[pos]) >= utf8.RuneCountInString(target) {
		return 0, false
	}

	combined := seq[pos]
	limit := al.config.MergeLimit
	if rest := len(seq) - pos; rest < limit {
		limit = rest
	}
	for k := 2; k <= limit; k++ {
		combined += seq[pos+k-1]
		if combined == target {
			return k, true
		}
		if len(combined) >= len(target) {
			break
		}
	}
	return 0, false
}

// findAhead searches seq[pos+1:] within the lookahead window for target.
// Returns the skip distance.
func (al *Aligner) findAhead(seq []string, pos int, target string) (int, bool) {
	for k := 1; k <= al.config.Lookahead && pos+k < len(seq); k++ {
		if seq[pos+k] == target {
			return k, true
		}
	}
	return 0, false
}

// findJoint searches both windows for the pair (k1, k2) with
// a[i+k1] == b[j+k2] minimizing k1+k2.
func (al *Aligner) findJoint(a, b []string, i, j int) (int, int, bool) {
	bestK1, bestK2 := 0, 0
	best := -1

	for k1 := 1; k1 <= al.config.Lookahead && i+k1 < len(a); k1++ {
		for k2 := 1; k2 <= al.config.Lookahead && j+k2 < len(b); k2++ {
			if a[i+k1] == b[j+k2] {
				if d := k1 + k2; best < 0 || d < best {
					best = d
					bestK1, bestK2 = k1, k2
				}
			}
		}
	}

	return bestK1, bestK2, best > 0
}
