// Package classify turns block matches and leftovers into typed diff
// records.
//
// Unmatched blocks become deleted or added records. A matched pair with
// identical remaining text produces no record. A matched pair that
// differs is first screened by the placeholder heuristic: when the first
// document is a template whose block contains a masked field (sentinel
// glyphs like ○○○ or x.xx%, masked dates, phone numbers, ages, amounts,
// rates, names), the difference is an expected fill-in and the record is
// suppressed. Everything else is a modified record whose detail string
// and word operations come from the [align] package.
//
// The stock pattern library is deliberately broad, matching anywhere in
// the block text the way the template workflow expects; callers that
// compare two real documents rather than template against fill should
// disable suppression or supply their own patterns.
package classify
