package prompts

import "fmt"

// SystemPrompt is the fixed instruction sent with every analysis request.
// The JSON skeleton below is a request made to the model, not a schema the
// rest of the pipeline enforces.
const SystemPrompt = `You are an assistant that analyzes application error logs.

Given a log, identify the distinct error types it contains and for each one:
1. Count the occurrences
2. Provide the earliest and latest timestamp seen
3. Give one or two example messages
4. Estimate severity (low, medium, high)
5. Suggest a remediation

Return a JSON object only, with this structure:
{
  "summary": "one paragraph overview of the log",
  "errors": [
    {
      "type": "error class or message family",
      "count": 3,
      "earliest": "first timestamp seen for this type",
      "latest": "last timestamp seen for this type",
      "examples": ["one or two representative log lines"],
      "severity": "low|medium|high",
      "recommendation": "how to address this error type"
    }
  ],
  "recommendations": ["overall remediation suggestions"]
}

The JSON must include the keys 'errors' (array), 'summary' (string) and
'recommendations' (array). Do not add text outside the JSON object.`

// BuildAnalyzePrompt wraps a raw log text into the system and user messages
// for one chat exchange.
func BuildAnalyzePrompt(logText string) (system, user string) {
	return SystemPrompt, fmt.Sprintf("Analyze the following log. Output JSON only.\n\nLOG:\n%s", logText)
}
