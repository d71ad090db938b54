package model

import "encoding/json"

// AnalysisResult is the document produced by one analysis run. It is a
// union of two variants: Structured carries the JSON object recovered from
// the model reply, Raw carries the full reply text when no object could be
// recovered. Exactly one variant is set.
//
// The nominal structured shape (summary, errors, recommendations) is only a
// request made to the model, never a guarantee, so the recovered object is
// kept as raw bytes and emitted verbatim instead of being decoded into a
// fixed schema.
type AnalysisResult struct {
	Structured json.RawMessage
	Raw        string
}

// NewStructured wraps a recovered JSON object.
func NewStructured(obj json.RawMessage) AnalysisResult {
	return AnalysisResult{Structured: obj}
}

// NewRawFallback wraps an unparseable model reply.
func NewRawFallback(text string) AnalysisResult {
	return AnalysisResult{Raw: text}
}

// IsStructured reports whether a JSON object was recovered from the model
// reply.
func (r AnalysisResult) IsStructured() bool {
	return len(r.Structured) > 0
}

// MarshalJSON emits the recovered object byte-for-byte (key order and number
// forms untouched), or {"raw_response": <text>} for the fallback variant.
// Either way the output is valid JSON.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	if r.IsStructured() {
		return r.Structured, nil
	}
	return json.Marshal(map[string]string{"raw_response": r.Raw})
}
