package candidate

import (
	"context"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

// TextRepository is the text-store contract for candidates.
type TextRepository interface {
	IndexCandidate(ctx context.Context, c *domain.Candidate) error
	DeleteCandidate(ctx context.Context, id string) error
	SearchCandidates(ctx context.Context, q *query.TextQuery, limit int) ([]domain.Candidate, *query.Aggregates, error)
}

// VectorRepository is the vector-store contract for candidates.
type VectorRepository interface {
	UpsertCandidate(ctx context.Context, c *domain.Candidate, vec []float32) error
	GetCandidate(ctx context.Context, id string) (domain.Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
	QueryCandidates(ctx context.Context, vq *query.VectorQuery) ([]domain.CandidateMatch, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// VectorQueryBuilder composes vector-store queries from filter payloads.
type VectorQueryBuilder interface {
	Candidates(ctx context.Context, f domain.CandidateVectorFilter, topK int) (*query.VectorQuery, error)
}
