package jobad

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

type mockTextRepo struct {
	indexFn  func(ctx context.Context, j *domain.JobAd) error
	getFn    func(ctx context.Context, id string) (domain.JobAd, error)
	deleteFn func(ctx context.Context, id string) error
	searchFn func(ctx context.Context, q *query.TextQuery, limit int) ([]domain.JobAdHit, *query.Aggregates, error)

	indexed []domain.JobAd
	deleted []string
}

func (m *mockTextRepo) IndexJobAd(ctx context.Context, j *domain.JobAd) error {
	m.indexed = append(m.indexed, *j)
	if m.indexFn != nil {
		return m.indexFn(ctx, j)
	}
	return nil
}

func (m *mockTextRepo) GetJobAd(ctx context.Context, id string) (domain.JobAd, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domain.JobAd{}, domain.ErrNotFound
}

func (m *mockTextRepo) DeleteJobAd(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTextRepo) SearchJobAds(ctx context.Context, q *query.TextQuery, limit int) ([]domain.JobAdHit, *query.Aggregates, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q, limit)
	}
	return nil, nil, nil
}

type mockVectorRepo struct {
	upsertFn func(ctx context.Context, j *domain.JobAd, vec []float32) error
	deleteFn func(ctx context.Context, id string) error
	queryFn  func(ctx context.Context, vq *query.VectorQuery) ([]domain.JobAdMatch, error)

	upserted []domain.JobAd
	deleted  []string
}

func (m *mockVectorRepo) UpsertJobAd(ctx context.Context, j *domain.JobAd, vec []float32) error {
	m.upserted = append(m.upserted, *j)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, j, vec)
	}
	return nil
}

func (m *mockVectorRepo) DeleteJobAd(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVectorRepo) QueryJobAds(ctx context.Context, vq *query.VectorQuery) ([]domain.JobAdMatch, error) {
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
	jobAdsFn func(ctx context.Context, f domain.JobAdVectorFilter, topK int) (*query.VectorQuery, error)
}

func (m *mockBuilder) JobAds(ctx context.Context, f domain.JobAdVectorFilter, topK int) (*query.VectorQuery, error) {
	if m.jobAdsFn != nil {
		return m.jobAdsFn(ctx, f, topK)
	}
	return &query.VectorQuery{Vector: []float32{0}, TopK: topK}, nil
}

func validJobAd() *domain.JobAd {
	return &domain.JobAd{
		Title:                   "Backend Engineer",
		Description:             "Build services",
		RequiredExperienceLevel: domain.ExperienceSenior,
		JobType:                 domain.JobFullTime,
		WorkMode:                domain.WorkRemote,
		City:                    "Belgrade",
		Country:                 "Serbia",
	}
}

func newTestSaga(t *testing.T) (*Saga, *mockTextRepo, *mockVectorRepo, *mockEmbedder) {
	t.Helper()
	text := &mockTextRepo{}
	vector := &mockVectorRepo{}
	embed := &mockEmbedder{vec: []float32{0.1, 0.2}}
	saga := NewSaga(text, vector, embed, nil, zap.NewNop())
	return saga, text, vector, embed
}

func newTestService(t *testing.T) (*Service, *mockTextRepo, *mockVectorRepo, *mockBuilder) {
	t.Helper()
	text := &mockTextRepo{}
	vector := &mockVectorRepo{}
	embed := &mockEmbedder{vec: []float32{0.1}}
	builder := &mockBuilder{}
	saga := NewSaga(text, vector, embed, nil, zap.NewNop())
	return New(saga, text, vector, builder, zap.NewNop()), text, vector, builder
}
