package usecase

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ressKim-io/barangay-ai/api-service/internal/domain/entity"
)

const dispatcherPromptTemplate = `
You are an AI dispatcher for a Philippine Barangay.
Analyze the following complaint: "%s"

Categorize it strictly into one of these Incident Types:
[%s]

And categorize it strictly into one of these Urgency Levels:
[%s]
`

// BuildPrompt embeds the complaint text verbatim into the dispatcher instructions
func BuildPrompt(text string) string {
	incidents := lo.Map(entity.IncidentTypes, func(t entity.IncidentType, _ int) string {
		return string(t)
	})
	urgencies := lo.Map(entity.UrgencyLevels, func(l entity.UrgencyLevel, _ int) string {
		return string(l)
	})

	return fmt.Sprintf(dispatcherPromptTemplate,
		text,
		strings.Join(incidents, ", "),
		strings.Join(urgencies, ", "),
	)
}
