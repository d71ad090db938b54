package parser

import (
	"encoding/json"
	"strings"
)

import "github.com/loglens/loglens/pkg/model"

// ExtractJSONObject returns the minimal balanced {...} substring starting at
// the first '{' in text. Nesting is tracked with a depth counter: push on
// '{', pop on '}', capture when depth returns to zero. Braces inside JSON
// string literals (including escaped quotes) do not count toward nesting.
// ok is false when text contains no '{' or the first object never closes.
func ExtractJSONObject(text string) (candidate string, ok bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// ParseAnalysisResponse turns a model reply into an AnalysisResult. A reply
// with no recoverable JSON object is not an error: the full text is wrapped
// under raw_response instead, so the caller always gets a valid document.
func ParseAnalysisResponse(raw string) model.AnalysisResult {
	candidate, ok := ExtractJSONObject(raw)
	if !ok {
		return model.NewRawFallback(raw)
	}
	if !json.Valid([]byte(candidate)) {
		return model.NewRawFallback(raw)
	}
	return model.NewStructured(json.RawMessage(candidate))
}
