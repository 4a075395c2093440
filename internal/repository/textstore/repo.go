// Package textstore persists candidates and job ads as indexed hashes in
// the text-search store and serves boolean/full-text queries with
// aggregations over them.
package textstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

// store is the consumer interface for the text store (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	AggregateAvg(ctx context.Context, index, query, field string) (float64, bool, error)
	AggregateCountBy(ctx context.Context, index, query, field string) (map[string]int, error)
}

// Repo implements the text-store side of candidate and job ad persistence.
type Repo struct {
	store store
}

// New creates a text-store repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndexes creates the candidate and job ad indexes if absent.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	for _, def := range []*db.IndexDefinition{candidateIndexDef(), jobAdIndexDef()} {
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

// IndexCandidate creates or replaces a candidate document.
func (r *Repo) IndexCandidate(ctx context.Context, c *domain.Candidate) error {
	key := candidatePrefix + c.ID
	if err := r.store.HSet(ctx, key, candidateFields(c)); err != nil {
		return fmt.Errorf("%w: index candidate %s: %w", domain.ErrUpstreamWrite, c.ID, err)
	}
	return nil
}

// GetCandidate returns a candidate by id.
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

// IndexJobAd creates or replaces a job ad document.
func (r *Repo) IndexJobAd(ctx context.Context, j *domain.JobAd) error {
	key := jobAdPrefix + j.ID
	if err := r.store.HSet(ctx, key, jobAdFields(j)); err != nil {
		return fmt.Errorf("%w: index job ad %s: %w", domain.ErrUpstreamWrite, j.ID, err)
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

// SearchCandidates runs a composed query over the candidate index and, when
// the query requests one, the matching aggregation over the same match set.
func (r *Repo) SearchCandidates(ctx context.Context, q *query.TextQuery, limit int) ([]domain.Candidate, *query.Aggregates, error) {
	rendered := query.RenderText(q)

	result, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName: candidateIndex,
		Query:     rendered,
		SortBy:    sortField(q),
		SortDesc:  sortDesc(q),
		Limit:     limit,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("search candidates: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(result.Entries))
	for _, entry := range result.Entries {
		c, err := parseCandidate(strings.TrimPrefix(entry.Key, candidatePrefix), entry.Fields)
		if err != nil {
			return nil, nil, err
		}
		candidates = append(candidates, c)
	}

	agg, err := r.aggregate(ctx, candidateIndex, rendered, q.Agg)
	if err != nil {
		return nil, nil, err
	}
	return candidates, agg, nil
}

// SearchJobAds runs a composed query over the job ad index. Hits carry the
// relevance score unless the query imposes a field sort.
func (r *Repo) SearchJobAds(ctx context.Context, q *query.TextQuery, limit int) ([]domain.JobAdHit, *query.Aggregates, error) {
	rendered := query.RenderText(q)

	result, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName:  jobAdIndex,
		Query:      rendered,
		SortBy:     sortField(q),
		SortDesc:   sortDesc(q),
		Limit:      limit,
		WithScores: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("search job ads: %w", err)
	}

	hits := make([]domain.JobAdHit, 0, len(result.Entries))
	for _, entry := range result.Entries {
		hits = append(hits, domain.JobAdHit{
			JobAd: parseJobAd(strings.TrimPrefix(entry.Key, jobAdPrefix), entry.Fields),
			Score: entry.Score,
		})
	}

	agg, err := r.aggregate(ctx, jobAdIndex, rendered, q.Agg)
	if err != nil {
		return nil, nil, err
	}
	return hits, agg, nil
}

func (r *Repo) aggregate(ctx context.Context, index, rendered string, a *query.Aggregation) (*query.Aggregates, error) {
	if a == nil {
		return nil, nil
	}

	switch {
	case a.AvgField != "":
		avg, ok, err := r.store.AggregateAvg(ctx, index, rendered, a.AvgField)
		if err != nil {
			return nil, fmt.Errorf("aggregate avg %s: %w", a.AvgField, err)
		}
		if !ok {
			return &query.Aggregates{}, nil
		}
		return &query.Aggregates{Avg: &avg}, nil

	case a.CountByField != "":
		counts, err := r.store.AggregateCountBy(ctx, index, rendered, a.CountByField)
		if err != nil {
			return nil, fmt.Errorf("aggregate countBy %s: %w", a.CountByField, err)
		}
		return &query.Aggregates{Counts: counts}, nil
	}
	return nil, nil
}

func sortField(q *query.TextQuery) string {
	if q.Sort == nil {
		return ""
	}
	return q.Sort.Field
}

func sortDesc(q *query.TextQuery) bool {
	return q.Sort != nil && q.Sort.Desc
}
