// Package vectorstore persists candidates and job ads as embedding-bearing
// hashes in the vector store and serves KNN queries with metadata
// pre-filters over them.
package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

// store is the consumer interface for the vector store (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements the vector-store side of candidate and job ad persistence.
type Repo struct {
	store store
	dim   int
}

// New creates a vector-store repository for embeddings of the given
// dimensionality.
func New(s store, dim int) *Repo {
	return &Repo{store: s, dim: dim}
}

// EnsureIndexes creates the candidate and job ad indexes if absent.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	for _, def := range []*db.IndexDefinition{candidateIndexDef(r.dim), jobAdIndexDef(r.dim)} {
		exists, err := r.store.IndexExists(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("check index %s: %w", def.Name, err)
		}
		if exists {
			continue
		}
		if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return fmt.Errorf("create index %s: %w", def.Name, err)
		}
	}
	return nil
}

// UpsertCandidate writes a candidate with its embedding.
func (r *Repo) UpsertCandidate(ctx context.Context, c *domain.Candidate, vec []float32) error {
	if len(vec) != r.dim {
		return fmt.Errorf("embedding dim %d, want %d", len(vec), r.dim)
	}
	key := candidatePrefix + c.ID
	if err := r.store.HSet(ctx, key, candidateFields(c, vec)); err != nil {
		return fmt.Errorf("%w: upsert candidate %s: %w", domain.ErrUpstreamWrite, c.ID, err)
	}
	return nil
}

// GetCandidate returns a candidate by id. The stored embedding is not
// exposed.
func (r *Repo) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	fields, err := r.store.HGetAll(ctx, candidatePrefix+id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("get candidate %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domain.Candidate{}, domain.ErrNotFound
	}
	return parseCandidate(id, fields)
}

// DeleteCandidate removes a candidate.
func (r *Repo) DeleteCandidate(ctx context.Context, id string) error {
	return r.delete(ctx, candidatePrefix+id)
}

// UpsertJobAd writes a job ad with its embedding.
func (r *Repo) UpsertJobAd(ctx context.Context, j *domain.JobAd, vec []float32) error {
	if len(vec) != r.dim {
		return fmt.Errorf("embedding dim %d, want %d", len(vec), r.dim)
	}
	key := jobAdPrefix + j.ID
	if err := r.store.HSet(ctx, key, jobAdFields(j, vec)); err != nil {
		return fmt.Errorf("%w: upsert job ad %s: %w", domain.ErrUpstreamWrite, j.ID, err)
	}
	return nil
}

// GetJobAd returns a job ad by id.
func (r *Repo) GetJobAd(ctx context.Context, id string) (domain.JobAd, error) {
	fields, err := r.store.HGetAll(ctx, jobAdPrefix+id)
	if err != nil {
		return domain.JobAd{}, fmt.Errorf("get job ad %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domain.JobAd{}, domain.ErrNotFound
	}
	return parseJobAd(id, fields), nil
}

// DeleteJobAd removes a job ad.
func (r *Repo) DeleteJobAd(ctx context.Context, id string) error {
	return r.delete(ctx, jobAdPrefix+id)
}

func (r *Repo) delete(ctx context.Context, key string) error {
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// QueryCandidates runs a KNN query over the candidate index. Matches carry
// a similarity score only for scored queries.
func (r *Repo) QueryCandidates(ctx context.Context, vq *query.VectorQuery) ([]domain.CandidateMatch, error) {
	result, err := r.knn(ctx, candidateIndex, vq, candidateReturnFields)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	matches := make([]domain.CandidateMatch, 0, len(result.Entries))
	for _, entry := range result.Entries {
		c, err := parseCandidate(strings.TrimPrefix(entry.Key, candidatePrefix), entry.Fields)
		if err != nil {
			return nil, err
		}
		matches = append(matches, domain.CandidateMatch{Candidate: c, Score: matchScore(vq, entry)})
	}
	return matches, nil
}

// QueryJobAds runs a KNN query over the job ad index.
func (r *Repo) QueryJobAds(ctx context.Context, vq *query.VectorQuery) ([]domain.JobAdMatch, error) {
	result, err := r.knn(ctx, jobAdIndex, vq, jobAdReturnFields)
	if err != nil {
		return nil, fmt.Errorf("query job ads: %w", err)
	}

	matches := make([]domain.JobAdMatch, 0, len(result.Entries))
	for _, entry := range result.Entries {
		matches = append(matches, domain.JobAdMatch{
			JobAd: parseJobAd(strings.TrimPrefix(entry.Key, jobAdPrefix), entry.Fields),
			Score: matchScore(vq, entry),
		})
	}
	return matches, nil
}

func (r *Repo) knn(ctx context.Context, index string, vq *query.VectorQuery, returnFields []string) (*db.SearchResult, error) {
	return r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    index,
		Filter:       query.RenderPredicates(vq.Predicates),
		Vector:       vq.Vector,
		K:            vq.TopK,
		ReturnFields: returnFields,
	})
}

func matchScore(vq *query.VectorQuery, entry db.SearchEntry) *float64 {
	if !vq.Scored {
		return nil
	}
	score := entry.Score
	return &score
}
