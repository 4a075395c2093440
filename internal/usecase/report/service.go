// Package report assembles filtered record sets into rendered PDF reports.
package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
	pdfreport "github.com/helendjordjevic/NAISProject-JobMatcher/internal/report"
)

const (
	// textReportLimit caps how many records a text-store report fetches.
	textReportLimit = 1000
	// matchTopK caps the candidates ranked against a job description.
	matchTopK = 10
)

// Service builds the four report types.
type Service struct {
	text    TextRepository
	vector  VectorRepository
	builder MatchQueryBuilder
	now     func() time.Time
}

// New creates a report service.
func New(text TextRepository, vector VectorRepository, builder MatchQueryBuilder) *Service {
	return &Service{text: text, vector: vector, builder: builder, now: time.Now}
}

// Candidates renders the plain candidates report scoped by education level
// and minimum experience.
func (s *Service) Candidates(ctx context.Context, f domain.CandidateReportFilter) ([]byte, error) {
	q, err := query.CandidateReport(f)
	if err != nil {
		return nil, err
	}

	candidates, _, err := s.text.SearchCandidates(ctx, q, textReportLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates match the report filter", domain.ErrNotFound)
	}

	doc := &pdfreport.Document{
		Title:       "Candidates Report",
		GeneratedAt: s.now(),
		Sections:    candidateSections(f),
	}
	for i := range candidates {
		doc.Blocks = append(doc.Blocks, pdfreport.CandidateBlock(&candidates[i]))
	}
	return pdfreport.Render(doc)
}

// JobAds renders the plain job ads report scoped by job type and
// experience level.
func (s *Service) JobAds(ctx context.Context, f domain.JobAdReportFilter) ([]byte, error) {
	q, err := query.JobAdReport(f)
	if err != nil {
		return nil, err
	}

	hits, _, err := s.text.SearchJobAds(ctx, q, textReportLimit)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("%w: no job ads match the report filter", domain.ErrNotFound)
	}

	doc := &pdfreport.Document{
		Title:       "Job Ads Report",
		GeneratedAt: s.now(),
		Sections:    jobAdSections(f),
	}
	for i := range hits {
		doc.Blocks = append(doc.Blocks, pdfreport.JobAdBlock(&hits[i].JobAd))
	}
	return pdfreport.Render(doc)
}

// ComplexJobAds renders the keyword + work mode job ads report.
func (s *Service) ComplexJobAds(ctx context.Context, f domain.JobAdSearchFilter) ([]byte, error) {
	q, err := query.JobAdSearch(f)
	if err != nil {
		return nil, err
	}

	hits, _, err := s.text.SearchJobAds(ctx, q, textReportLimit)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("%w: no job ads match the report filter", domain.ErrNotFound)
	}

	doc := &pdfreport.Document{
		Title:       "Complex Job Ads Report",
		GeneratedAt: s.now(),
		Sections:    jobAdSearchSections(f),
	}
	for i := range hits {
		doc.Blocks = append(doc.Blocks, pdfreport.JobAdBlock(&hits[i].JobAd))
	}
	return pdfreport.Render(doc)
}

// ComplexCandidates renders the top candidates for a job description,
// ranked by similarity.
func (s *Service) ComplexCandidates(ctx context.Context, description string, minYears *float64) ([]byte, error) {
	vq, err := s.builder.CandidatesForJobText(ctx, description, minYears, matchTopK)
	if err != nil {
		return nil, err
	}

	matches, err := s.vector.QueryCandidates(ctx, vq)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no candidates match the job description", domain.ErrNotFound)
	}

	doc := &pdfreport.Document{
		Title:       "Top Candidates Report",
		GeneratedAt: s.now(),
		Sections:    matchSections(description, minYears),
	}
	for i := range matches {
		doc.Blocks = append(doc.Blocks, pdfreport.CandidateMatchBlock(&matches[i]))
	}
	return pdfreport.Render(doc)
}

func candidateSections(f domain.CandidateReportFilter) []string {
	var out []string
	if f.EducationLevel != nil {
		out = append(out, "education_level="+string(*f.EducationLevel))
	}
	if f.MinYearsExperience != nil {
		out = append(out, "min_years_experience="+formatFloat(*f.MinYearsExperience))
	}
	return sectionsOrAll(out)
}

func jobAdSections(f domain.JobAdReportFilter) []string {
	var out []string
	if f.JobType != nil {
		out = append(out, "job_type="+string(*f.JobType))
	}
	if f.ExperienceLevel != nil {
		out = append(out, "experience_level="+string(*f.ExperienceLevel))
	}
	return sectionsOrAll(out)
}

func jobAdSearchSections(f domain.JobAdSearchFilter) []string {
	var out []string
	if f.Query != nil && *f.Query != "" {
		out = append(out, "keyword="+*f.Query)
	}
	if f.RequiredExperienceLevel != nil {
		out = append(out, "experience_level="+string(*f.RequiredExperienceLevel))
	}
	for _, wm := range f.WorkModes {
		out = append(out, "work_mode="+string(wm))
	}
	if f.City != nil {
		out = append(out, "city="+*f.City)
	}
	return sectionsOrAll(out)
}

func matchSections(description string, minYears *float64) []string {
	out := []string{"job_description=" + description}
	if minYears != nil {
		out = append(out, "min_years_experience="+formatFloat(*minYears))
	}
	return out
}

func sectionsOrAll(sections []string) []string {
	if len(sections) == 0 {
		return []string{"all records"}
	}
	return sections
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
