package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

// VectorBuilder composes vector-store queries. It needs an embedder for
// payloads that carry semantic query text; payloads without one get a zero
// vector of the configured dimensionality and an unscored query.
type VectorBuilder struct {
	embedder domain.Embedder
	dim      int
}

// NewVectorBuilder creates a vector query builder.
func NewVectorBuilder(embedder domain.Embedder, dim int) *VectorBuilder {
	return &VectorBuilder{embedder: embedder, dim: dim}
}

// Candidates builds the vector query for candidate filtering: an optional
// semantic skill query plus education and experience predicates.
func (b *VectorBuilder) Candidates(ctx context.Context, f domain.CandidateVectorFilter, topK int) (*VectorQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &VectorQuery{TopK: topK}
	if f.EducationLevel != nil {
		q.Predicates = append(q.Predicates, Eq(FieldEducationLevel, string(*f.EducationLevel)))
	}
	if f.MinYearsExperience != nil {
		q.Predicates = append(q.Predicates, AtLeast(FieldYearsExperience, *f.MinYearsExperience))
	}

	if f.SkillQuery != nil && *f.SkillQuery != "" {
		if err := b.embed(ctx, domain.SkillQueryText(*f.SkillQuery), q); err != nil {
			return nil, err
		}
	} else {
		q.Vector = domain.ZeroVector(b.dim)
	}
	return q, nil
}

// JobAds builds the vector query for job ad filtering: an optional semantic
// description query plus categorical equality predicates.
func (b *VectorBuilder) JobAds(ctx context.Context, f domain.JobAdVectorFilter, topK int) (*VectorQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &VectorQuery{TopK: topK}
	if f.RequiredExperienceLevel != nil {
		q.Predicates = append(q.Predicates, Eq(FieldRequiredExperienceLevel, string(*f.RequiredExperienceLevel)))
	}
	if f.JobType != nil {
		q.Predicates = append(q.Predicates, Eq(FieldJobType, string(*f.JobType)))
	}
	if f.WorkMode != nil {
		q.Predicates = append(q.Predicates, Eq(FieldWorkMode, string(*f.WorkMode)))
	}
	if f.City != nil {
		q.Predicates = append(q.Predicates, Eq(FieldCity, *f.City))
	}

	if f.DescriptionQuery != nil && *f.DescriptionQuery != "" {
		if err := b.embed(ctx, *f.DescriptionQuery, q); err != nil {
			return nil, err
		}
	} else {
		q.Vector = domain.ZeroVector(b.dim)
	}
	return q, nil
}

// CandidatesForJobText builds the scored vector query ranking candidates
// against a job description, optionally floored by years of experience.
func (b *VectorBuilder) CandidatesForJobText(ctx context.Context, text string, minYears *float64, topK int) (*VectorQuery, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: job description text is required", domain.ErrValidation)
	}
	if minYears != nil && *minYears < 0 {
		return nil, fmt.Errorf("%w: min_years_experience must be non-negative, got %s",
			domain.ErrValidation, strconv.FormatFloat(*minYears, 'g', -1, 64))
	}

	q := &VectorQuery{TopK: topK}
	if minYears != nil {
		q.Predicates = append(q.Predicates, AtLeast(FieldYearsExperience, *minYears))
	}
	if err := b.embed(ctx, text, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (b *VectorBuilder) embed(ctx context.Context, text string, q *VectorQuery) error {
	res, err := b.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed query text: %w", err)
	}
	q.Vector = res.Embedding
	q.Scored = true
	return nil
}
