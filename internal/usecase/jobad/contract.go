package jobad

import (
	"context"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

// TextRepository is the text-store contract for job ads.
type TextRepository interface {
	IndexJobAd(ctx context.Context, j *domain.JobAd) error
	GetJobAd(ctx context.Context, id string) (domain.JobAd, error)
	DeleteJobAd(ctx context.Context, id string) error
	SearchJobAds(ctx context.Context, q *query.TextQuery, limit int) ([]domain.JobAdHit, *query.Aggregates, error)
}

// VectorRepository is the vector-store contract for job ads.
type VectorRepository interface {
	UpsertJobAd(ctx context.Context, j *domain.JobAd, vec []float32) error
	DeleteJobAd(ctx context.Context, id string) error
	QueryJobAds(ctx context.Context, vq *query.VectorQuery) ([]domain.JobAdMatch, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// VectorQueryBuilder composes vector-store queries from filter payloads.
type VectorQueryBuilder interface {
	JobAds(ctx context.Context, f domain.JobAdVectorFilter, topK int) (*query.VectorQuery, error)
}
