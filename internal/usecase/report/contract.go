package report

import (
	"context"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

// TextRepository is the text-store contract for report data.
type TextRepository interface {
	SearchCandidates(ctx context.Context, q *query.TextQuery, limit int) ([]domain.Candidate, *query.Aggregates, error)
	SearchJobAds(ctx context.Context, q *query.TextQuery, limit int) ([]domain.JobAdHit, *query.Aggregates, error)
}

// VectorRepository is the vector-store contract for matching reports.
type VectorRepository interface {
	QueryCandidates(ctx context.Context, vq *query.VectorQuery) ([]domain.CandidateMatch, error)
}

// MatchQueryBuilder builds the scored query ranking candidates against a
// job description.
type MatchQueryBuilder interface {
	CandidatesForJobText(ctx context.Context, text string, minYears *float64, topK int) (*query.VectorQuery, error)
}
