// Package candidate implements candidate workflows: dual-store writes,
// vector-store reads with re-embedding on update, text-store searches with
// aggregations and semantic filtering.
package candidate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

const (
	searchLimit = 100
	filterTopK  = 200
)

// Service coordinates candidate operations across both stores.
type Service struct {
	text     TextRepository
	vector   VectorRepository
	embedder Embedder
	builder  VectorQueryBuilder
	logger   *zap.Logger
}

// New creates a candidate service.
func New(text TextRepository, vector VectorRepository, embedder Embedder, builder VectorQueryBuilder, logger *zap.Logger) *Service {
	return &Service{text: text, vector: vector, embedder: embedder, builder: builder, logger: logger}
}

// Create validates, embeds and writes the candidate to both stores. Unlike
// job ad creation there is no compensation: a failure between the two
// writes leaves a single-store copy.
func (s *Service) Create(ctx context.Context, c *domain.Candidate) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	c.ID = uuid.NewString()

	emb, err := s.embedder.Embed(ctx, c.EmbeddingText())
	if err != nil {
		return "", fmt.Errorf("embed candidate: %w", err)
	}
	if err := s.vector.UpsertCandidate(ctx, c, emb.Embedding); err != nil {
		return "", err
	}
	if err := s.text.IndexCandidate(ctx, c); err != nil {
		s.logger.Error("Candidate text write failed after vector write",
			zap.String("candidate_id", c.ID), zap.Error(err))
		return "", err
	}
	return c.ID, nil
}

// Get reads a candidate from the vector store.
func (s *Service) Get(ctx context.Context, id string) (domain.Candidate, error) {
	return s.vector.GetCandidate(ctx, id)
}

// Update merges the patch over the current snapshot, re-embeds it and
// rewrites both stores.
func (s *Service) Update(ctx context.Context, id string, p *domain.CandidatePatch) (domain.Candidate, error) {
	if p.IsEmpty() {
		return domain.Candidate{}, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return domain.Candidate{}, err
	}

	c, err := s.vector.GetCandidate(ctx, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	p.Apply(&c)

	emb, err := s.embedder.Embed(ctx, c.EmbeddingText())
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("embed candidate: %w", err)
	}
	if err := s.vector.UpsertCandidate(ctx, &c, emb.Embedding); err != nil {
		return domain.Candidate{}, err
	}
	if err := s.text.IndexCandidate(ctx, &c); err != nil {
		return domain.Candidate{}, err
	}
	return c, nil
}

// Delete removes the candidate from both stores. The vector store decides
// whether the id exists; a missing text copy is tolerated.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.vector.DeleteCandidate(ctx, id); err != nil {
		return err
	}
	if err := s.text.DeleteCandidate(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("Text store delete failed, copy is orphaned",
			zap.String("candidate_id", id), zap.Error(err))
	}
	return nil
}

// SearchByExperienceCity runs the minimum-experience + city search and
// returns the hits with the average experience of the full match set. The
// average is nil when nothing matched.
func (s *Service) SearchByExperienceCity(ctx context.Context, f domain.CandidateExperienceCityFilter) ([]domain.Candidate, *float64, error) {
	q, err := query.CandidateExperienceCity(f)
	if err != nil {
		return nil, nil, err
	}

	candidates, agg, err := s.text.SearchCandidates(ctx, q, searchLimit)
	if err != nil {
		return nil, nil, err
	}

	var avg *float64
	if agg != nil {
		avg = agg.Avg
	}
	return candidates, avg, nil
}

// SearchBySkillsEducation runs the skills + education search and returns
// the hits with the education-level distribution of the full match set.
func (s *Service) SearchBySkillsEducation(ctx context.Context, f domain.CandidateSkillsEducationFilter) ([]domain.Candidate, map[string]int, error) {
	q, err := query.CandidateSkillsEducation(f)
	if err != nil {
		return nil, nil, err
	}

	candidates, agg, err := s.text.SearchCandidates(ctx, q, searchLimit)
	if err != nil {
		return nil, nil, err
	}

	stats := map[string]int{}
	if agg != nil && agg.Counts != nil {
		stats = agg.Counts
	}
	return candidates, stats, nil
}

// Filter runs semantic/metadata filtering over the vector store with a
// pagination window. The returned count is the total match count, not the
// page length.
func (s *Service) Filter(ctx context.Context, f domain.CandidateVectorFilter, page domain.PageRequest) ([]domain.CandidateMatch, int, error) {
	vq, err := s.builder.Candidates(ctx, f, filterTopK)
	if err != nil {
		return nil, 0, err
	}

	matches, err := s.vector.QueryCandidates(ctx, vq)
	if err != nil {
		return nil, 0, err
	}

	total := len(matches)
	lo, hi := page.Bounds(total)
	return matches[lo:hi], total, nil
}
