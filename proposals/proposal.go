// ABOUTME: Proposal text generation from a job description and a category template
// ABOUTME: Prefixes the template with a mention of the description's top keywords
package proposals

import (
	"errors"
	"strings"

	"github.com/harperreed/gigdesk/models"
)

var ErrEmptyDescription = errors.New("job description is empty")

// FallbackText is used when no template exists for the requested category.
const FallbackText = "I'm excited to work on your project. Let's discuss the details and create something amazing together!"

const mentionedKeywords = 3

type Proposal struct {
	Category     models.TemplateCategory `json:"category"`
	TemplateName string                  `json:"template_name,omitempty"`
	Keywords     []string                `json:"keywords"`
	Text         string                  `json:"text"`
}

// Generate drafts a proposal for jobDescription using the first template in category.
func Generate(templates []models.ProposalTemplate, category models.TemplateCategory, jobDescription string) (Proposal, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return Proposal{}, ErrEmptyDescription
	}

	p := Proposal{
		Category: category,
		Keywords: ExtractKeywords(jobDescription),
	}

	body := FallbackText
	for _, t := range templates {
		if t.Category == category {
			p.TemplateName = t.Name
			if t.Template != "" {
				body = t.Template
			}
			break
		}
	}

	var text strings.Builder
	if len(p.Keywords) > 0 {
		mention := p.Keywords
		if len(mention) > mentionedKeywords {
			mention = mention[:mentionedKeywords]
		}
		text.WriteString("I noticed you're looking for expertise in ")
		text.WriteString(strings.Join(mention, ", "))
		text.WriteString(". ")
	}
	text.WriteString(body)
	p.Text = text.String()

	return p, nil
}
