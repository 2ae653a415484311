// ABOUTME: Tests for keyword extraction and proposal generation
// ABOUTME: Exercises stopwords, frequency ordering, template lookup and the fallback text
package proposals

import (
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/gigdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywordsOrdersByFrequency(t *testing.T) {
	got := ExtractKeywords("I need a logo design and a website design for my startup")

	assert.Equal(t, []string{"design", "logo", "website", "startup"}, got)
}

func TestExtractKeywordsDropsStopwordsAndShortWords(t *testing.T) {
	assert.Empty(t, ExtractKeywords("I am looking for you and them"))
	assert.Empty(t, ExtractKeywords("go ux ai"))
	assert.Empty(t, ExtractKeywords(""))
}

func TestExtractKeywordsCapsAtFive(t *testing.T) {
	got := ExtractKeywords("alpha bravo charlie delta echo foxtrot golf")

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, got)
}

func TestExtractKeywordsIsCaseInsensitive(t *testing.T) {
	got := ExtractKeywords("React REACT react Figma")

	assert.Equal(t, []string{"react", "figma"}, got)
}

func TestExtractKeywordsIgnoresDigitsAndPunctuation(t *testing.T) {
	got := ExtractKeywords("web3 dashboards, dashboards! e-commerce")

	assert.Equal(t, []string{"dashboards", "commerce"}, got)
}

func seedTemplates() []models.ProposalTemplate {
	return []models.ProposalTemplate{
		{ID: "1", Category: models.TemplateDesign, Name: "UI/UX Design", Template: "Design body."},
		{ID: "2", Category: models.TemplateAdmin, Name: "Virtual Assistant", Template: "Admin body."},
	}
}

func TestGenerateWithTemplateAndKeywords(t *testing.T) {
	p, err := Generate(seedTemplates(), models.TemplateDesign, "I need a logo design and a website design for my startup")
	require.NoError(t, err)

	assert.Equal(t, "I noticed you're looking for expertise in design, logo, website. Design body.", p.Text)
	assert.Equal(t, "UI/UX Design", p.TemplateName)
	assert.Equal(t, []string{"design", "logo", "website", "startup"}, p.Keywords)
	assert.Equal(t, models.TemplateDesign, p.Category)
}

func TestGenerateWithoutKeywords(t *testing.T) {
	p, err := Generate(seedTemplates(), models.TemplateAdmin, "I need you")
	require.NoError(t, err)

	assert.Equal(t, "Admin body.", p.Text)
	assert.Empty(t, p.Keywords)
}

func TestGenerateFallsBackWithoutTemplate(t *testing.T) {
	p, err := Generate(seedTemplates(), models.TemplateTutoring, "math tutoring sessions")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(p.Text, FallbackText))
	assert.True(t, strings.HasPrefix(p.Text, "I noticed you're looking for expertise in math, tutoring, sessions. "))
	assert.Empty(t, p.TemplateName)
}

func TestGenerateRejectsEmptyDescription(t *testing.T) {
	for _, desc := range []string{"", "   ", "\n\t"} {
		_, err := Generate(seedTemplates(), models.TemplateDesign, desc)
		assert.True(t, errors.Is(err, ErrEmptyDescription), "description %q", desc)
	}
}
