package httpapi

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	healthuc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/health"
	jobaduc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/jobad"
)

// --- Mocks ---

type mockJobAdService struct {
	createFn func(ctx context.Context, ad *domain.JobAd, fault jobaduc.Fault) (string, error)
	getFn    func(ctx context.Context, id string) (domain.JobAd, error)
	updateFn func(ctx context.Context, id string, p *domain.JobAdPatch) (domain.JobAd, error)
	deleteFn func(ctx context.Context, id string) error
	searchFn func(ctx context.Context, f domain.JobAdSearchFilter) ([]domain.JobAdHit, map[string]int, error)
	filterFn func(ctx context.Context, f domain.JobAdVectorFilter, page domain.PageRequest) ([]domain.JobAdMatch, int, error)
}

func (m *mockJobAdService) Create(ctx context.Context, ad *domain.JobAd, fault jobaduc.Fault) (string, error) {
	return m.createFn(ctx, ad, fault)
}

func (m *mockJobAdService) Get(ctx context.Context, id string) (domain.JobAd, error) {
	return m.getFn(ctx, id)
}

func (m *mockJobAdService) Update(ctx context.Context, id string, p *domain.JobAdPatch) (domain.JobAd, error) {
	return m.updateFn(ctx, id, p)
}

func (m *mockJobAdService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockJobAdService) Search(ctx context.Context, f domain.JobAdSearchFilter) ([]domain.JobAdHit, map[string]int, error) {
	return m.searchFn(ctx, f)
}

func (m *mockJobAdService) Filter(ctx context.Context, f domain.JobAdVectorFilter, page domain.PageRequest) ([]domain.JobAdMatch, int, error) {
	return m.filterFn(ctx, f, page)
}

type mockCandidateService struct {
	createFn       func(ctx context.Context, c *domain.Candidate) (string, error)
	getFn          func(ctx context.Context, id string) (domain.Candidate, error)
	updateFn       func(ctx context.Context, id string, p *domain.CandidatePatch) (domain.Candidate, error)
	deleteFn       func(ctx context.Context, id string) error
	byExperienceFn func(ctx context.Context, f domain.CandidateExperienceCityFilter) ([]domain.Candidate, *float64, error)
	bySkillsFn     func(ctx context.Context, f domain.CandidateSkillsEducationFilter) ([]domain.Candidate, map[string]int, error)
	filterFn       func(ctx context.Context, f domain.CandidateVectorFilter, page domain.PageRequest) ([]domain.CandidateMatch, int, error)
}

func (m *mockCandidateService) Create(ctx context.Context, c *domain.Candidate) (string, error) {
	return m.createFn(ctx, c)
}

func (m *mockCandidateService) Get(ctx context.Context, id string) (domain.Candidate, error) {
	return m.getFn(ctx, id)
}

func (m *mockCandidateService) Update(ctx context.Context, id string, p *domain.CandidatePatch) (domain.Candidate, error) {
	return m.updateFn(ctx, id, p)
}

func (m *mockCandidateService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCandidateService) SearchByExperienceCity(ctx context.Context, f domain.CandidateExperienceCityFilter) ([]domain.Candidate, *float64, error) {
	return m.byExperienceFn(ctx, f)
}

func (m *mockCandidateService) SearchBySkillsEducation(ctx context.Context, f domain.CandidateSkillsEducationFilter) ([]domain.Candidate, map[string]int, error) {
	return m.bySkillsFn(ctx, f)
}

func (m *mockCandidateService) Filter(ctx context.Context, f domain.CandidateVectorFilter, page domain.PageRequest) ([]domain.CandidateMatch, int, error) {
	return m.filterFn(ctx, f, page)
}

type mockReportService struct {
	candidatesFn        func(ctx context.Context, f domain.CandidateReportFilter) ([]byte, error)
	jobAdsFn            func(ctx context.Context, f domain.JobAdReportFilter) ([]byte, error)
	complexJobAdsFn     func(ctx context.Context, f domain.JobAdSearchFilter) ([]byte, error)
	complexCandidatesFn func(ctx context.Context, description string, minYears *float64) ([]byte, error)
}

func (m *mockReportService) Candidates(ctx context.Context, f domain.CandidateReportFilter) ([]byte, error) {
	return m.candidatesFn(ctx, f)
}

func (m *mockReportService) JobAds(ctx context.Context, f domain.JobAdReportFilter) ([]byte, error) {
	return m.jobAdsFn(ctx, f)
}

func (m *mockReportService) ComplexJobAds(ctx context.Context, f domain.JobAdSearchFilter) ([]byte, error) {
	return m.complexJobAdsFn(ctx, f)
}

func (m *mockReportService) ComplexCandidates(ctx context.Context, description string, minYears *float64) ([]byte, error) {
	return m.complexCandidatesFn(ctx, description, minYears)
}

type mockHealthService struct {
	report healthuc.Report
}

func (m *mockHealthService) Check(_ context.Context) healthuc.Report {
	return m.report
}

// --- Fixtures ---

type testServer struct {
	jobAds     *mockJobAdService
	candidates *mockCandidateService
	reports    *mockReportService
	health     *mockHealthService
	router     chi.Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		jobAds:     &mockJobAdService{},
		candidates: &mockCandidateService{},
		reports:    &mockReportService{},
		health: &mockHealthService{
			report: healthuc.Report{Status: healthuc.Healthy, Checks: map[string]healthuc.CheckResult{}},
		},
	}
	srv := NewServer(ts.jobAds, ts.candidates, ts.reports, ts.health, zap.NewNop())
	ts.router = chi.NewRouter()
	srv.Routes(ts.router)
	return ts
}
