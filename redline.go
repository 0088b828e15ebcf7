// Package redline provides a fluent API for comparing two paginated
// documents at block and word granularity.
//
// Basic usage:
//
//	result, warnings, err := redline.Documents(blocksA, blocksB).Run()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", redline.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := redline.Documents(blocksA, blocksB).
//	    Threshold(0.6).
//	    WordHighlights().
//	    Run()
//
// The result carries the diff records, a block sync map for lock-step
// scrolling, and per-page highlight rectangles for both sides. For
// advanced use cases the lower-level layout, match, align, and classify
// packages are also available.
package redline

import (
	"fmt"
	"strings"

	"github.com/tsawler/redline/layout"
	"github.com/tsawler/redline/model"
)

// Documents creates a Comparison over two pre-extracted block sequences,
// A on the left and B on the right. Block order is document order; the
// inputs are not mutated.
//
// Example:
//
//	result, warnings, err := redline.Documents(blocksA, blocksB).Run()
func Documents(blocksA, blocksB []model.TextBlock) *Comparison {
	return &Comparison{
		blocksA: blocksA,
		blocksB: blocksB,
		options: defaultOptions(),
	}
}

// Runs creates a Comparison straight from raw positioned text runs,
// detecting blocks on both sides with the default layout configuration.
//
// Example:
//
//	result, _, err := redline.Runs(runsA, runsB).Run()
func Runs(runsA, runsB []model.TextRun) *Comparison {
	detector := layout.NewBlockDetector()
	return Documents(detector.Detect(runsA), detector.Detect(runsB))
}

// RunsWithConfig is Runs with a custom block detection configuration.
func RunsWithConfig(runsA, runsB []model.TextRun, config layout.BlockConfig) *Comparison {
	detector := layout.NewBlockDetectorWithConfig(config)
	return Documents(detector.Detect(runsA), detector.Detect(runsB))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a call to Run() and panics if the error is non-nil.
// It discards warnings and returns just the result.
//
// Example:
//
//	result := redline.MustResult(redline.Documents(a, b).Run())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Warning represents a non-fatal issue encountered during a comparison.
// Warnings never stop the run; they flag inputs that were skipped or
// degraded.
type Warning struct {
	// Code is a stable machine-readable identifier
	Code string

	// Message is a human-readable description
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single semicolon-separated string
// for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// degenerateWarning describes a block skipped for having no usable text
// or an invalid bounding box.
func degenerateWarning(side string, index int) Warning {
	return Warning{
		Code:    "degenerate-block",
		Message: fmt.Sprintf("side %s block %d has no text or an invalid bbox; skipped", side, index),
	}
}
