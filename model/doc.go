// Package model provides the shared data types for document comparison.
//
// This package defines the structures that flow between the pipeline stages:
// positioned text runs from an extraction collaborator, the text blocks the
// layout detector builds from them, and the diff records, highlights, and
// sync map the comparison engine produces.
//
// # Coordinate Space
//
// All bounding boxes live in page coordinate space with the origin at the
// top-left corner and Y increasing downward, matching what PDF and hOCR
// word extractors report. The unit is whatever the extractor used (points
// for PDF); the comparison core never scales coordinates.
//
// # Input Types
//
// [TextRun] is the raw input: one positioned piece of text on one page.
// [TextBlock] and [Word] are produced by the layout package and consumed
// by the matcher and aligner.
//
// # Output Types
//
// A comparison run produces a [Result] holding ordered [DiffRecord] values,
// a [SyncMap] correlating block indices between the two documents, and
// per-page [Highlight] lists for each side.
package model
