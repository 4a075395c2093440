// Package httpapi exposes the job matcher over a chi HTTP router.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	healthuc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/health"
	jobaduc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/jobad"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// JobAdService is the job ad use case contract consumed by the handlers.
type JobAdService interface {
	Create(ctx context.Context, ad *domain.JobAd, fault jobaduc.Fault) (string, error)
	Get(ctx context.Context, id string) (domain.JobAd, error)
	Update(ctx context.Context, id string, p *domain.JobAdPatch) (domain.JobAd, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, f domain.JobAdSearchFilter) ([]domain.JobAdHit, map[string]int, error)
	Filter(ctx context.Context, f domain.JobAdVectorFilter, page domain.PageRequest) ([]domain.JobAdMatch, int, error)
}

// CandidateService is the candidate use case contract consumed by the handlers.
type CandidateService interface {
	Create(ctx context.Context, c *domain.Candidate) (string, error)
	Get(ctx context.Context, id string) (domain.Candidate, error)
	Update(ctx context.Context, id string, p *domain.CandidatePatch) (domain.Candidate, error)
	Delete(ctx context.Context, id string) error
	SearchByExperienceCity(ctx context.Context, f domain.CandidateExperienceCityFilter) ([]domain.Candidate, *float64, error)
	SearchBySkillsEducation(ctx context.Context, f domain.CandidateSkillsEducationFilter) ([]domain.Candidate, map[string]int, error)
	Filter(ctx context.Context, f domain.CandidateVectorFilter, page domain.PageRequest) ([]domain.CandidateMatch, int, error)
}

// ReportService renders PDF reports.
type ReportService interface {
	Candidates(ctx context.Context, f domain.CandidateReportFilter) ([]byte, error)
	JobAds(ctx context.Context, f domain.JobAdReportFilter) ([]byte, error)
	ComplexJobAds(ctx context.Context, f domain.JobAdSearchFilter) ([]byte, error)
	ComplexCandidates(ctx context.Context, description string, minYears *float64) ([]byte, error)
}

// HealthService aggregates dependency health checks.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server holds the HTTP handlers.
type Server struct {
	jobAds        JobAdService
	candidates    CandidateService
	reports       ReportService
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	jobAds JobAdService,
	candidates CandidateService,
	reports ReportService,
	health HealthService,
	logger *zap.Logger,
) *Server {
	return &Server{
		jobAds:        jobAds,
		candidates:    candidates,
		reports:       reports,
		health:        health,
		logger:        logger,
		errorHandlers: domainErrorHandlers(),
	}
}

// Routes mounts all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/job_ads", func(r chi.Router) {
		r.Post("/", s.createJobAd)
		r.Post("/simulation", s.createJobAdSimulation)
		r.Post("/search", s.searchJobAds)
		r.Get("/filter", s.filterJobAds)
		r.Get("/report", s.jobAdsReport)
		r.Get("/complex_report", s.complexJobAdsReport)
		r.Get("/{id}", s.getJobAd)
		r.Put("/{id}", s.updateJobAd)
		r.Delete("/{id}", s.deleteJobAd)
	})

	r.Route("/candidates", func(r chi.Router) {
		r.Post("/", s.createCandidate)
		r.Post("/search/by-experience-city", s.searchCandidatesByExperienceCity)
		r.Post("/search/by-skills-education", s.searchCandidatesBySkillsEducation)
		r.Get("/filter", s.filterCandidates)
		r.Get("/report", s.candidatesReport)
		r.Get("/complex-report", s.complexCandidatesReport)
		r.Get("/{id}", s.getCandidate)
		r.Put("/{id}", s.updateCandidate)
		r.Delete("/{id}", s.deleteCandidate)
	})

	r.Get("/health", s.healthCheck)
	r.Get("/metrics", s.metrics)
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// metrics handles GET /metrics.
func (s *Server) metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writePDF(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
