package markdown

import (
	"regexp"
	"strings"
)

// Placeholder is the label used for questions whose text is empty once stripped.
const Placeholder = "未命名题目"

// LabelLimit is the rune budget of admin list labels.
const LabelLimit = 32

var (
	codeSpanRe    = regexp.MustCompile("`{1,3}[^`]+`{1,3}")
	imageRe       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkRe        = regexp.MustCompile(`\[[^\]]*\]\([^)]+\)`)
	punctuationRe = regexp.MustCompile("[#>*_~`-]+")
	whitespaceRe  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// StripMarkdown reduces markdown to a single line of plain text.
// Code spans, images and links are dropped entirely, syntax markers become spaces.
// Whitespace runs, including Unicode space separators such as U+3000, collapse to one space.
func StripMarkdown(input string) string {
	s := codeSpanRe.ReplaceAllString(input, "")
	s = imageRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "")
	s = punctuationRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// Label strips input and truncates it to limit runes.
// An empty result is replaced by Placeholder.
func Label(input string, limit int) string {
	s := StripMarkdown(input)
	if limit > 0 {
		if r := []rune(s); len(r) > limit {
			s = strings.TrimSpace(string(r[:limit]))
		}
	}

	if s == "" {
		return Placeholder
	}

	return s
}
