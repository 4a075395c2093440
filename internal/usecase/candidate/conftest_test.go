package candidate

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

type mockTextRepo struct {
	indexFn  func(ctx context.Context, c *domain.Candidate) error
	deleteFn func(ctx context.Context, id string) error
	searchFn func(ctx context.Context, q *query.TextQuery, limit int) ([]domain.Candidate, *query.Aggregates, error)

	indexed []domain.Candidate
	deleted []string
}

func (m *mockTextRepo) IndexCandidate(ctx context.Context, c *domain.Candidate) error {
	m.indexed = append(m.indexed, *c)
	if m.indexFn != nil {
		return m.indexFn(ctx, c)
	}
	return nil
}

func (m *mockTextRepo) DeleteCandidate(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTextRepo) SearchCandidates(ctx context.Context, q *query.TextQuery, limit int) ([]domain.Candidate, *query.Aggregates, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q, limit)
	}
	return nil, nil, nil
}

type mockVectorRepo struct {
	upsertFn func(ctx context.Context, c *domain.Candidate, vec []float32) error
	getFn    func(ctx context.Context, id string) (domain.Candidate, error)
	deleteFn func(ctx context.Context, id string) error
	queryFn  func(ctx context.Context, vq *query.VectorQuery) ([]domain.CandidateMatch, error)

	upserted []domain.Candidate
	deleted  []string
}

func (m *mockVectorRepo) UpsertCandidate(ctx context.Context, c *domain.Candidate, vec []float32) error {
	m.upserted = append(m.upserted, *c)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, c, vec)
	}
	return nil
}

func (m *mockVectorRepo) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domain.Candidate{}, domain.ErrNotFound
}

func (m *mockVectorRepo) DeleteCandidate(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVectorRepo) QueryCandidates(ctx context.Context, vq *query.VectorQuery) ([]domain.CandidateMatch, error) {
	if m.queryFn != nil {
		return m.queryFn(ctx, vq)
	}
	return nil, nil
}

type mockEmbedder struct {
	vec      []float32
	err      error
	called   bool
	lastText string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.called = true
	m.lastText = text
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}

type mockBuilder struct {
	candidatesFn func(ctx context.Context, f domain.CandidateVectorFilter, topK int) (*query.VectorQuery, error)
}

func (m *mockBuilder) Candidates(ctx context.Context, f domain.CandidateVectorFilter, topK int) (*query.VectorQuery, error) {
	if m.candidatesFn != nil {
		return m.candidatesFn(ctx, f, topK)
	}
	return &query.VectorQuery{Vector: []float32{0}, TopK: topK}, nil
}

func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		Firstname:       "Ana",
		Lastname:        "Petrovic",
		EducationLevel:  domain.EducationMaster,
		YearsExperience: 4,
		Skills:          []string{"Python", "Docker"},
		City:            "Belgrade",
		Country:         "Serbia",
	}
}

func newTestService(t *testing.T) (*Service, *mockTextRepo, *mockVectorRepo, *mockEmbedder, *mockBuilder) {
	t.Helper()
	text := &mockTextRepo{}
	vector := &mockVectorRepo{}
	embed := &mockEmbedder{vec: []float32{0.1}}
	builder := &mockBuilder{}
	svc := New(text, vector, embed, builder, zap.NewNop())
	return svc, text, vector, embed, builder
}
