package analyzer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/loglens/loglens/pkg/config"
	"github.com/loglens/loglens/pkg/llm"
	"github.com/loglens/loglens/pkg/model"
	"github.com/loglens/loglens/pkg/parser"
	"github.com/loglens/loglens/pkg/prompts"
	"github.com/loglens/loglens/pkg/tokens"
)

type Analyzer struct {
	llm llm.LLM
}

// New builds an Analyzer for cfg. The credential is validated before any
// request is made.
func New(cfg config.Config) (*Analyzer, error) {
	client, err := llm.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Analyzer{llm: client}, nil
}

// NewWithLLM wires an explicit chat client.
func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l}
}

// Analyze runs the pipeline on one log text: build the fixed instruction
// prompt, make a single chat call, recover a JSON object from the reply.
// A reply without parseable JSON is not an error; it comes back as the
// raw_response fallback variant.
func (a *Analyzer) Analyze(logText string) (model.AnalysisResult, error) {
	system, user := prompts.BuildAnalyzePrompt(logText)

	est := tokens.Estimate(system+user, a.llm.GetModel())
	log.Debug().Str("model", a.llm.GetModel()).Int("prompt_tokens", est).Msg("estimated prompt size")
	if est > tokens.ContextWarnThreshold {
		log.Warn().Int("prompt_tokens", est).Msg("log may exceed the model context window, the analysis can be truncated")
	}

	raw, err := a.llm.Chat(system, user)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("LLM chat: %w", err)
	}

	result := parser.ParseAnalysisResponse(raw)
	if !result.IsStructured() {
		log.Debug().Int("reply_bytes", len(raw)).Msg("no JSON object in reply, falling back to raw_response")
	}
	return result, nil
}
