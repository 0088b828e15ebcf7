// Package match pairs text blocks from two documents by normalized-text
// similarity.
//
// For each block on the A side, in document order, [Matcher.Match] scores
// every not-yet-claimed B block with [Similarity], adds a fixed bonus when
// both blocks carry the same section tag, and accepts the best candidate
// at or above the configured threshold. A claimed B block is never reused,
// so the resulting [model.SyncMap] is injective. Ties keep the
// first-encountered B block.
package match
