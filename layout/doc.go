// Package layout turns raw positioned text runs into the ordered text
// blocks and word streams the comparison pipeline consumes.
//
// # Block Detection
//
// [BlockDetector] groups a page's runs into horizontal lines by Y
// proximity, then merges consecutive lines into blocks wherever the
// vertical gap between them stays under a threshold. A page boundary
// always starts a new block. Each resulting [model.TextBlock] carries
// the union bounding box of its runs, the assembled text, a section
// tag derived from marker glyphs, and the block's normalized word
// stream.
//
// # Section Tagging
//
// Blocks whose text opens with the marker glyph ◆ are tagged as major
// titles, those opening with ■ as minor titles. Blocks that follow a
// marker inherit the corresponding content tag until the next marker.
// Blocks appearing before any marker are tagged standalone.
//
// # Header and Footer Bands
//
// Runs falling inside the configured top or bottom Y bands are dropped
// before grouping, so page headers, footers, and page numbers never
// reach the matcher.
//
// # Word Streams
//
// [Words] produces a reading-order stream of normalized words straight
// from the runs, without block structure, for region-level comparison.
package layout
