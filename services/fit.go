package services

import (
	"strings"
	"unicode/utf8"
)

// Default text fitting limits for a 70mm label cell.
const (
	DefaultCharsPerLine = 40
	DefaultMaxLines     = 6
)

// FitLabelText re-wraps a label text block so no line exceeds charsPerLine
// characters. Lines already within the budget pass through unchanged;
// longer lines are greedily word-wrapped, and a single word longer than
// the budget is emitted on its own line rather than broken mid-word.
// When the wrapped result exceeds maxLines, only the first maxLines are
// kept and the second return value reports the truncation.
func FitLabelText(text string, charsPerLine, maxLines int) (string, bool) {
	if text == "" {
		return text, false
	}
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	var result []string
	for _, line := range strings.Split(text, "\n") {
		// Budgets count characters, not bytes: diacritics are common in
		// the address data and must not eat into the line budget.
		if utf8.RuneCountInString(line) <= charsPerLine {
			result = append(result, line)
			continue
		}
		result = append(result, wrapLine(line, charsPerLine)...)
	}

	if len(result) <= maxLines {
		return strings.Join(result, "\n"), false
	}
	return strings.Join(result[:maxLines], "\n"), true
}

// wrapLine greedily packs words onto lines of at most budget characters.
func wrapLine(line string, budget int) []string {
	var lines []string
	var current strings.Builder
	currentLen := 0

	for _, word := range strings.Split(line, " ") {
		wordLen := utf8.RuneCountInString(word)
		sep := 0
		if currentLen > 0 {
			sep = 1
		}
		if currentLen+sep+wordLen <= budget {
			if sep == 1 {
				current.WriteByte(' ')
			}
			current.WriteString(word)
			currentLen += sep + wordLen
			continue
		}
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		current.WriteString(word)
		currentLen = wordLen
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
