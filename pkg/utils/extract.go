package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject locates the first balanced {...} span in text and
// unmarshals it into out. Model replies often wrap the object in markdown
// fences or prose; anything outside the span is ignored. Absence of a
// balanced span or a parse failure is a hard error, never a partial result.
func ExtractJSONObject(text string, out interface{}) error {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	if start == -1 {
		return fmt.Errorf("%w: no JSON object in reply", ErrMalformedUpstream)
	}

	end := findMatchingBrace(text, start)
	if end == -1 {
		return fmt.Errorf("%w: unbalanced JSON object in reply", ErrMalformedUpstream)
	}

	span := text[start : end+1]
	if err := json.Unmarshal([]byte(span), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedUpstream, err)
	}
	return nil
}

// findMatchingBrace finds the matching closing brace for an opening brace,
// skipping braces inside string literals.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
