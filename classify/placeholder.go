package classify

import "regexp"

// defaultPatternSources is the stock placeholder library: sentinel
// glyphs, bracketed plan labels, and masked dates, phone numbers, ages,
// names, amounts, rates, and code fields as they appear in insurance
// template documents.
var defaultPatternSources = []string{
	`○○○`,
	`xxx`,
	`x\.xx%`,
	`××세`,
	`××××`,
	`O / O`,
	`OOOOOOOOOOOO`,
	`\[\s*보장성보험\s*\]`,
	`\[\s*표준형\s*\]`,
	`\[\s*해약환급금\s*50%\s*지급형\s*\]`,
	`\d{4}년\s*\d{2}월\s*\d{2}일\s*\d{2}:\d{2}`, // date/time stamp
	`\d{3}-\d{4}-\d{4}`,                     // phone number
	`\d{1,2}/\d{1,2}`,                       // short date
	`\d{1,2}세`,                              // age
	`[가-힣]{2,4}`,                            // Hangul name
	`\d{1,3}(,\d{3})*원`,                     // amount in won
	`\d{1,2}\.\d{2}%`,                       // rate
	`\d{1,3}(,\d{3})*\s*만원`,                 // amount in 만원
	`\d{1,3}(,\d{3})*\s*원`,                  // spaced amount
	`\d{1,2}\.\d{2}`,                        // decimal number
	`\d{1,4}`,                               // bare number
	`[A-Z]{4,6}`,                            // uppercase code
}

// DefaultPlaceholderPatterns compiles the stock placeholder library.
func DefaultPlaceholderPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(defaultPatternSources))
	for i, src := range defaultPatternSources {
		patterns[i] = regexp.MustCompile(src)
	}
	return patterns
}
