// Package normalize cleans raw page text for display.
// It strips the marketplace's title boilerplate, truncates on word
// boundaries, and escapes characters that are significant in markdown.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// sitePrefix matches a leading "Amazon.com:" style prefix, any TLD.
	sitePrefix = regexp.MustCompile(`(?i)^amazon(?:\.[a-z.]+)?\s*:\s*`)

	// siteSuffix matches a trailing "at Amazon.com" style suffix.
	siteSuffix = regexp.MustCompile(`(?i)\s+at\s+amazon(?:\.[a-z.]+)?\.?\s*$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Title normalizes a raw page title. Empty input yields empty output.
// Steps run in fixed order: trim, strip the site-name prefix, strip the
// "at <site>" suffix, cut at the first " : " category separator, collapse
// whitespace runs, trim again.
func Title(raw string) string {
	s := strings.TrimSpace(raw)
	s = sitePrefix.ReplaceAllString(s, "")
	s = siteSuffix.ReplaceAllString(s, "")
	if idx := strings.Index(s, " : "); idx >= 0 {
		s = s[:idx]
	}
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

const ellipsis = "..."

// Truncate cuts text to at most maxLength characters, appending an ellipsis.
// After the initial cut a word boundary is preferred, but only when the last
// space sits past half of maxLength; otherwise the cut stays mid-word. The
// half-length threshold is the tie-break between a clean break and giving up
// too much of the text.
func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength || maxLength <= len(ellipsis) {
		return text
	}
	cut := text[:maxLength-len(ellipsis)]
	if idx := strings.LastIndex(cut, " "); idx > maxLength/2 {
		cut = cut[:idx]
	}
	return cut + ellipsis
}

// EscapeOptions toggles which markdown-significant characters EscapeMarkdown
// rewrites. The zero value escapes nothing useful; use DefaultEscapeOptions
// as the starting point.
type EscapeOptions struct {
	Brackets    bool
	Parens      bool
	Asterisks   bool
	Underscores bool
	Backticks   bool
}

// DefaultEscapeOptions escapes every class. Title call sites typically
// disable Parens so parenthetical variant annotations stay readable.
func DefaultEscapeOptions() EscapeOptions {
	return EscapeOptions{
		Brackets:    true,
		Parens:      true,
		Asterisks:   true,
		Underscores: true,
		Backticks:   true,
	}
}

// EscapeMarkdown backslash-escapes markdown-significant characters.
// Backslash itself is escaped first so characters introduced by later
// steps are never double-escaped.
func EscapeMarkdown(text string, opts EscapeOptions) string {
	s := strings.ReplaceAll(text, `\`, `\\`)
	if opts.Brackets {
		s = strings.ReplaceAll(s, "[", `\[`)
		s = strings.ReplaceAll(s, "]", `\]`)
	}
	if opts.Parens {
		s = strings.ReplaceAll(s, "(", `\(`)
		s = strings.ReplaceAll(s, ")", `\)`)
	}
	if opts.Asterisks {
		s = strings.ReplaceAll(s, "*", `\*`)
	}
	if opts.Underscores {
		s = strings.ReplaceAll(s, "_", `\_`)
	}
	if opts.Backticks {
		s = strings.ReplaceAll(s, "`", "\\`")
	}
	return s
}
