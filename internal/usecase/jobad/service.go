// Package jobad implements job advertisement workflows: the dual-write
// creation saga, store-local reads and updates, keyword search over the
// text store and semantic filtering over the vector store.
package jobad

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

const (
	searchLimit = 100
	filterTopK  = 200
)

// Service coordinates job ad operations across both stores.
type Service struct {
	saga    *Saga
	text    TextRepository
	vector  VectorRepository
	builder VectorQueryBuilder
	logger  *zap.Logger
}

// New creates a job ad service.
func New(saga *Saga, text TextRepository, vector VectorRepository, builder VectorQueryBuilder, logger *zap.Logger) *Service {
	return &Service{saga: saga, text: text, vector: vector, builder: builder, logger: logger}
}

// Create runs the dual-write saga, optionally with an injected fault.
func (s *Service) Create(ctx context.Context, ad *domain.JobAd, fault Fault) (string, error) {
	return s.saga.Create(ctx, ad, fault)
}

// Get reads a job ad from the text store.
func (s *Service) Get(ctx context.Context, id string) (domain.JobAd, error) {
	return s.text.GetJobAd(ctx, id)
}

// Update applies a partial update to the text-store copy. The vector-store
// mirror is left untouched, so the two copies diverge until the ad is
// recreated.
func (s *Service) Update(ctx context.Context, id string, p *domain.JobAdPatch) (domain.JobAd, error) {
	if p.IsEmpty() {
		return domain.JobAd{}, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return domain.JobAd{}, err
	}

	ad, err := s.text.GetJobAd(ctx, id)
	if err != nil {
		return domain.JobAd{}, err
	}
	p.Apply(&ad)

	if err := s.text.IndexJobAd(ctx, &ad); err != nil {
		return domain.JobAd{}, err
	}
	s.logger.Warn("Job ad updated in text store only, vector copy is now stale",
		zap.String("job_ad_id", id))
	return ad, nil
}

// Delete removes the job ad from both stores. The text store decides
// whether the id exists; a missing vector copy is tolerated.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.text.DeleteJobAd(ctx, id); err != nil {
		return err
	}
	if err := s.vector.DeleteJobAd(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("Vector store delete failed, copy is orphaned",
			zap.String("job_ad_id", id), zap.Error(err))
	}
	return nil
}

// Search runs the keyword + filter search over the text store and returns
// the hits with the per-city counts of the full match set.
func (s *Service) Search(ctx context.Context, f domain.JobAdSearchFilter) ([]domain.JobAdHit, map[string]int, error) {
	q, err := query.JobAdSearch(f)
	if err != nil {
		return nil, nil, err
	}

	hits, agg, err := s.text.SearchJobAds(ctx, q, searchLimit)
	if err != nil {
		return nil, nil, err
	}

	cities := map[string]int{}
	if agg != nil && agg.Counts != nil {
		cities = agg.Counts
	}
	return hits, cities, nil
}

// Filter runs semantic/metadata filtering over the vector store with a
// pagination window. The returned count is the total match count, not the
// page length.
func (s *Service) Filter(ctx context.Context, f domain.JobAdVectorFilter, page domain.PageRequest) ([]domain.JobAdMatch, int, error) {
	vq, err := s.builder.JobAds(ctx, f, filterTopK)
	if err != nil {
		return nil, 0, err
	}

	matches, err := s.vector.QueryJobAds(ctx, vq)
	if err != nil {
		return nil, 0, err
	}

	total := len(matches)
	lo, hi := page.Bounds(total)
	return matches[lo:hi], total, nil
}
