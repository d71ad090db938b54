package tokens

import (
	tiktoken "github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// Characters per token assumed when no encoding is available for the model.
const fallbackCharsPerToken = 4

// ContextWarnThreshold is a conservative floor across the supported models;
// prompts estimated above it risk truncation.
const ContextWarnThreshold = 100000

// The default dictionary loader fetches encodings over HTTP and caches them
// under the temp dir. The embedded offline set replaces it, so estimation
// never leaves the process and the completion request stays the pipeline's
// only network call.
func init() {
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

// Estimate returns an approximate token count for text under the model's
// encoding. Models without a bundled encoding fall back to the chars/4
// heuristic, which overestimates slightly for typical log text.
func Estimate(text, model string) int {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return len(text) / fallbackCharsPerToken
	}
	return len(enc.Encode(text, nil, nil))
}
