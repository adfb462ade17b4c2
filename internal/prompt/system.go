package prompt

import (
	"fmt"
	"strings"

	"github.com/mkaneko/skills-chatbot/internal/profile"
)

// guidelines is the fixed behavioral block appended to every system prompt.
const guidelines = `Guidelines:
1. Be conversational and friendly
2. Provide specific examples from the documentation when available
3. Keep responses concise but informative
4. If asked about experience level, mention years and specific projects
5. If asked about projects, provide details from the documentation
6. If asked about technical details, explain in accessible terms
7. Always relate back to actual documented experience
8. If the knowledge base has relevant information, prioritize that over generic responses
9. Be honest about what you know and don't know
10. Suggest related topics or skills that might be relevant

Respond naturally as if you're the person who has this experience, using the documentation and reports as your source of truth.`

// BuildSystemPrompt composes the system preamble, the knowledge context, an
// optional skill profile block, and the guideline block. A nil profile is
// simply omitted.
func BuildSystemPrompt(skill *profile.SkillProfile, contextBlock string) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful assistant that explains technical skills and experience based on real documentation and reports. \n")
	sb.WriteString("You have access to detailed knowledge about the user's actual experiences and projects.\n\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n\n")

	if skill != nil {
		sb.WriteString("Additional Skill Information:\n")
		sb.WriteString(fmt.Sprintf("- Name: %s\n", skill.Name))
		sb.WriteString(fmt.Sprintf("- Level: %s\n", skill.Level))
		sb.WriteString(fmt.Sprintf("- Years of Experience: %d\n", skill.Years))
		sb.WriteString(fmt.Sprintf("- Key Projects: %s\n", strings.Join(skill.Projects, ", ")))
		sb.WriteString(fmt.Sprintf("- Experience Summary: %s\n", skill.Experience))
		sb.WriteString(fmt.Sprintf("- Keywords: %s\n", strings.Join(skill.Keywords, ", ")))
		sb.WriteString("\n")
	}

	sb.WriteString(guidelines)
	return sb.String()
}
