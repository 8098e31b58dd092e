package eventlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoTagExplicitPhrase(t *testing.T) {
	got := AutoTag("Tag Critical unexpected bleeding near artery")
	assert.Contains(t, got, TagCritical)
	assert.NotContains(t, strings.ToLower(got), "tag critical")
}

func TestAutoTagKeywordInference(t *testing.T) {
	got := AutoTag("minor bleeding controlled with suture")
	assert.Contains(t, got, TagComplication)
	assert.Contains(t, got, TagTechnique)
}

func TestAutoTagAppliesTagAtMostOnce(t *testing.T) {
	// Three complication keywords, one tag
	got := AutoTag("bleeding and hemorrhage from vessel injury")
	assert.Equal(t, 1, strings.Count(got, TagComplication))

	// Explicit phrase plus keyword for the same tag still yields one token
	got = AutoTag("tag complication noted bleeding")
	assert.Equal(t, 1, strings.Count(got, TagComplication))
}

func TestAutoTagCaseInsensitive(t *testing.T) {
	got := AutoTag("Resident performed ANASTOMOSIS")
	assert.Contains(t, got, TagTeaching)
	assert.Contains(t, got, TagTechnique)
}

func TestAutoTagPlainTextUntouched(t *testing.T) {
	assert.Equal(t, "routine irrigation", AutoTag("routine irrigation"))
}

func TestTagsExtraction(t *testing.T) {
	assert.Equal(t, []string{TagCritical, TagTeaching}, Tags("note #critical more #teaching"))
	assert.Nil(t, Tags("no tokens here"))
}

func TestApplyTagsSkipsDuplicates(t *testing.T) {
	got := ApplyTags("already #critical", []string{TagCritical, TagTechnique})
	assert.Equal(t, 1, strings.Count(got, TagCritical))
	assert.Contains(t, got, TagTechnique)
}
