package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// urlFragments mark a token as a URL remnant; such tokens never carry
// comparable content.
var urlFragments = []string{
	"http", "https", "www.", ".com", ".net", ".org", ".go.kr", ".kr", "ftp://",
}

// bulletGlyphs is the closed set of enumeration and decoration glyphs
// that extraction reports as standalone tokens.
var bulletGlyphs = map[string]struct{}{
	"o": {}, "O": {},
	"•": {}, "●": {}, "○": {}, "◦": {}, "⦿": {}, "⦾": {},
	"■": {}, "□": {}, "▪": {}, "▫": {}, "◾": {}, "◽": {},
	"◆": {}, "◇": {}, "◈": {},
	"▶": {}, "▷": {}, "►": {}, "▸": {},
	"※": {}, "★": {}, "☆": {}, "✓": {}, "✔": {}, "✕": {}, "✖": {},
	"-": {}, "–": {}, "—": {}, "―": {},
	"→": {}, "←": {}, "↑": {}, "↓": {},
	"①": {}, "②": {}, "③": {}, "④": {}, "⑤": {},
	"⑥": {}, "⑦": {}, "⑧": {}, "⑨": {}, "⑩": {},
}

// magnitudePattern matches a digit group (with optional comma grouping)
// followed by a Korean magnitude unit.
var magnitudePattern = regexp.MustCompile(`[0-9][0-9,]*(조|억|만)`)

// wonPattern matches a digit run immediately followed by the currency
// marker, which carries no comparable content once the digits are kept.
var wonPattern = regexp.MustCompile(`([0-9]+)원`)

// magnitudeUnits maps each unit rune to its decimal multiplier.
var magnitudeUnits = map[string]int64{
	"조": 1_000_000_000_000,
	"억": 100_000_000,
	"만": 10_000,
}

// Meaningless reports whether a token carries no comparable content:
// URL fragments, bullet and enumeration glyphs, single symbol runes,
// and bare one or two digit numbers (page numbers).
func Meaningless(token string) bool {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return true
	}

	lower := strings.ToLower(trimmed)
	for _, frag := range urlFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}

	if _, ok := bulletGlyphs[trimmed]; ok {
		return true
	}

	runes := []rune(trimmed)
	if len(runes) == 1 {
		r := runes[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}

	if len(runes) <= 2 && isDigits(runes) {
		return true
	}

	return false
}

// Normalize canonicalizes a single token for matching. It returns the
// empty string for tokens that carry no comparable content; callers drop
// such tokens. The result contains only lowercase word characters and
// single spaces.
func Normalize(token string) string {
	tok := width.Fold.String(token)

	if Meaningless(tok) {
		return ""
	}

	// Unit expansion must run before punctuation stripping destroys the
	// grouping commas it matches on.
	tok = ExpandMagnitudes(tok)
	tok = stripSymbols(tok)
	tok = collapseWhitespace(tok)
	tok = strings.ToLower(tok)

	// Stripping can reduce a token to a bare page number or lone glyph;
	// filter again so normalization is idempotent.
	if Meaningless(tok) {
		return ""
	}
	return tok
}

// NormalizeText canonicalizes a whole block of text for similarity
// scoring: fold widths, strip symbols, collapse whitespace, lowercase.
// Unlike Normalize it never rejects its input outright.
func NormalizeText(s string) string {
	s = width.Fold.String(s)
	s = stripSymbols(s)
	s = collapseWhitespace(s)
	return strings.ToLower(s)
}

// Tokenize splits text into whitespace-delimited raw tokens.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// Split divides a token at comma boundaries into trimmed sub-tokens.
// A comma between two digits is numeric grouping ("1,000만") and is kept;
// any other comma separates two words that extraction merged. Tokens
// without a separating comma come back as a single-element slice.
func Split(token string) []string {
	if !strings.Contains(token, ",") {
		return []string{token}
	}

	runes := []rune(token)
	var parts []string
	var current []rune

	flush := func() {
		if p := strings.TrimSpace(string(current)); p != "" {
			parts = append(parts, p)
		}
		current = current[:0]
	}

	for i, r := range runes {
		if r == ',' {
			prevDigit := i > 0 && unicode.IsDigit(runes[i-1])
			nextDigit := i+1 < len(runes) && unicode.IsDigit(runes[i+1])
			if prevDigit && nextDigit {
				current = append(current, r)
				continue
			}
			flush()
			continue
		}
		current = append(current, r)
	}
	flush()

	if len(parts) == 0 {
		return []string{token}
	}
	return parts
}

// ExpandMagnitudes replaces every <digits><unit> occurrence for the units
// 조 (10^12), 억 (10^8), and 만 (10^4) with its decimal product, so that
// "1,000만" and "10000000" compare equal. Unparsable or overflowing
// numerals are left unchanged. Leftover grouping commas are removed and a
// currency 원 directly after digits is dropped.
func ExpandMagnitudes(s string) string {
	s = magnitudePattern.ReplaceAllStringFunc(s, func(m string) string {
		unit := m[len(m)-len("만"):]
		mult, ok := magnitudeUnits[unit]
		if !ok {
			return m
		}
		digits := strings.ReplaceAll(m[:len(m)-len(unit)], ",", "")
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return m
		}
		if n != 0 && mult > math.MaxInt64/n {
			return m
		}
		return strconv.FormatInt(n*mult, 10)
	})

	s = strings.ReplaceAll(s, ",", "")
	return wonPattern.ReplaceAllString(s, "$1")
}

// stripSymbols removes every rune that is not a letter, digit, underscore,
// or whitespace. Hangul syllables and jamo are letters and survive.
func stripSymbols(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// collapseWhitespace reduces all whitespace runs to single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isDigits reports whether runes is non-empty and all ASCII digits.
func isDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
