package eventlog

import (
	"regexp"
	"strings"
)

// Tag tokens that can be attached to events and notes
const (
	TagCritical     = "#critical"
	TagTeaching     = "#teaching"
	TagComplication = "#complication"
	TagTechnique    = "#technique"
)

// AvailableTags is the fixed tag set offered in the UI, in display order
var AvailableTags = []string{TagCritical, TagTeaching, TagComplication, TagTechnique}

// spoken "tag X" phrases, stripped from the text and replaced with the token
var tagPhrases = []struct {
	phrase *regexp.Regexp
	tag    string
}{
	{regexp.MustCompile(`(?i)tag critical`), TagCritical},
	{regexp.MustCompile(`(?i)tag teaching`), TagTeaching},
	{regexp.MustCompile(`(?i)tag complication`), TagComplication},
	{regexp.MustCompile(`(?i)tag technique`), TagTechnique},
}

// keyword → tag dictionary for inferred tagging, scanned case-insensitively.
// Order is fixed so repeated runs produce identical output.
var keywordTags = []struct {
	keyword string
	tag     string
}{
	{"bleeding", TagComplication},
	{"hemorrhage", TagComplication},
	{"injury", TagComplication},
	{"suture", TagTechnique},
	{"anastomosis", TagTechnique},
	{"clip", TagTechnique},
	{"demonstrate", TagTeaching},
	{"explain", TagTeaching},
	{"student", TagTeaching},
	{"resident", TagTeaching},
}

// AutoTag rewrites a quick note: explicit "tag critical" style phrases become
// their #tag token, and trigger keywords append their tag. A given tag is
// appended at most once no matter how many of its keywords match.
func AutoTag(text string) string {
	out := text
	for _, p := range tagPhrases {
		if p.phrase.MatchString(out) {
			out = strings.TrimSpace(p.phrase.ReplaceAllString(out, "")) + " " + p.tag
		}
	}

	lower := strings.ToLower(out)
	for _, kt := range keywordTags {
		if strings.Contains(lower, kt.keyword) && !strings.Contains(out, kt.tag) {
			out += " " + kt.tag
		}
	}
	return strings.TrimSpace(out)
}

// Tags extracts the #tag tokens embedded in a notes field, in order
func Tags(notes string) []string {
	var tags []string
	for _, word := range strings.Fields(notes) {
		if strings.HasPrefix(word, "#") {
			tags = append(tags, word)
		}
	}
	return tags
}

// ApplyTags appends the selected tag tokens to a notes field, skipping any
// already present.
func ApplyTags(notes string, tags []string) string {
	out := notes
	for _, tag := range tags {
		if !strings.Contains(out, tag) {
			out = strings.TrimSpace(out + " " + tag)
		}
	}
	return out
}
