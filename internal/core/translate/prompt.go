package translate

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a translation engine.
Translate the user's message and reply with the translation only.
Do not add quotes, notes, explanations or transliterations.
Keep numbers, punctuation and line breaks as they are.
If the text is already in the target language, return it unchanged.`

// buildPrompt returns the system and user messages for chat-style engines.
func buildPrompt(req Request) (string, string) {
	var b strings.Builder
	if req.autoSource() {
		fmt.Fprintf(&b, "Detect the source language and translate into %q.\n\n", req.Target)
	} else {
		fmt.Fprintf(&b, "Translate from %q into %q.\n\n", req.Source, req.Target)
	}
	b.WriteString(req.Text)
	return systemPrompt, b.String()
}

// cleanReply strips wrapping whitespace and code fences some models add.
func cleanReply(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
