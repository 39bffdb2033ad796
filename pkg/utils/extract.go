package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedJSONPattern matches a markdown code fence explicitly labeled as JSON
// and captures the first object or array inside it.
var fencedJSONPattern = regexp.MustCompile("(?is)```json\\s*(\\{.*?\\}|\\[.*?\\])\\s*```")

// chatterPrefixes are lead-ins models tend to add despite JSON-only instructions.
var chatterPrefixes = []string{
	"Here's the travel plan:",
	"Here is the itinerary:",
	"Here's your data:",
	"Sure! Here's your data:",
	"The travel plan is:",
	"Travel plan:",
	"Itinerary:",
}

// ExtractJSON recovers the first structured value embedded in free text.
// It tries a ```json fenced block first, then falls back to the outermost
// balanced {...} or [...] span anywhere in the text. Both candidates must
// parse; if neither does, ok is false. It never panics on any input and is
// idempotent on text that is already clean JSON.
func ExtractJSON(text string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	if json.Valid([]byte(trimmed)) && (trimmed[0] == '{' || trimmed[0] == '[') {
		return json.RawMessage(trimmed), true
	}

	if m := fencedJSONPattern.FindStringSubmatch(trimmed); m != nil {
		candidate := strings.TrimSpace(m[1])
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), true
		}
	}

	if candidate := firstBalancedSpan(CleanFences(trimmed)); candidate != "" {
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), true
		}
	}

	return nil, false
}

// CleanFences strips markdown fences and known chatter prefixes so the
// bare-span scan is not confused by fence characters.
func CleanFences(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	for _, prefix := range chatterPrefixes {
		if strings.HasPrefix(response, prefix) {
			response = strings.TrimSpace(strings.TrimPrefix(response, prefix))
			break
		}
	}

	return response
}

// firstBalancedSpan returns the outermost balanced {...} or [...] span,
// whichever opens first, or "" if no balanced span exists.
func firstBalancedSpan(s string) string {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := matchingDelimiter(s, objStart, '{', '}'); end != -1 {
			return s[objStart : end+1]
		}
		return ""
	}
	if arrStart != -1 {
		if end := matchingDelimiter(s, arrStart, '[', ']'); end != -1 {
			return s[arrStart : end+1]
		}
	}
	return ""
}

// matchingDelimiter finds the index of the closing delimiter balancing the
// opener at start, skipping delimiters inside JSON strings.
func matchingDelimiter(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
