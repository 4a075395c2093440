package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// SkillQueryText is the canonical rendering of a free-text skill query
// handed to the embedding gateway.
func SkillQueryText(query string) string {
	return "Skills: " + query
}

// ZeroVector returns the neutral placeholder vector used when a query
// carries no semantic text. Matches of a zero-vector query never report
// a similarity score.
func ZeroVector(dim int) []float32 {
	return make([]float32, dim)
}
