package extract

import "strings"

const systemPrompt = "You extract meeting scheduling information from email replies and answer with a single JSON object only."

const promptTemplate = `Analyze this email reply (it may quote earlier emails) for meeting scheduling information.
Return ONLY a JSON object, no other text, with exactly these keys:
{
  "reply_type": "acceptance" | "reschedule" | "decline" | "info_request" | "delegation",
  "proposed_time": "ISO 8601 datetime or null",
  "meeting_link": "URL or null",
  "delegate_to": "email address or null",
  "additional_notes": "string or null"
}

Email text:
`

// BuildPrompt returns the instruction sent upstream for one reply.
func BuildPrompt(emailText string) string {
	var sb strings.Builder
	sb.Grow(len(promptTemplate) + len(emailText))
	sb.WriteString(promptTemplate)
	sb.WriteString(emailText)
	return sb.String()
}
