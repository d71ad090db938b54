package llm

// LLM is a chat client for one provider/model pair. Implementations make a
// single synchronous request per call and do not retry.
type LLM interface {
	// Chat sends one system+user exchange and returns the reply text.
	Chat(system, user string) (string, error)
	// GetModel returns the model identifier requests are sent with.
	GetModel() string
}
