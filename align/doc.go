// Package align computes word-level edit scripts between two token
// sequences using a resynchronizing two-pointer walk.
//
// Documents are long and mostly aligned, so [Align] is not a global
// edit-distance computation. It walks both sequences in step and, on a
// mismatch, tries a fixed sequence of bounded recovery moves before
// falling back to a single replace:
//
//  1. merge-check: the shorter current token's side may hold a word the
//     other side split into pieces; consuming the concatenation is a
//     match, not a difference
//  2. lookahead on the first sequence (a deletion run)
//  3. lookahead on the second sequence (an insertion run)
//  4. joint lookahead minimizing the combined skip distance
//
// Equal tokens emit nothing, so aligning a sequence with itself yields
// an empty script, and a single inserted word yields a single insert op
// rather than a cascade of replaces.
package align
