// Package normalize canonicalizes extracted tokens for matching.
//
// Normalized forms are used only for equality and similarity testing,
// never for display. The pipeline filters meaningless tokens (URLs, bullet
// glyphs, page numbers), expands Korean magnitude units (조/억/만) into
// plain decimal digits, strips punctuation, collapses whitespace, and
// lowercases, in that order. [Normalize] is idempotent: normalizing an
// already-normalized token returns it unchanged.
//
// Tokens containing a comma usually hold two logically separate words that
// extraction merged; [Split] divides them first. Commas that group digits
// ("1,000") are part of the number and survive splitting so that magnitude
// expansion can see them.
package normalize
