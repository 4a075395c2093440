package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	healthuc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/health"
	jobaduc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/jobad"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(data)
}

func TestCreateJobAd_Created(t *testing.T) {
	ts := newTestServer(t)
	ts.jobAds.createFn = func(_ context.Context, ad *domain.JobAd, fault jobaduc.Fault) (string, error) {
		if fault != jobaduc.FaultNone {
			t.Errorf("expected no fault on the plain create route, got %v", fault)
		}
		if ad.Title != "Go developer" {
			t.Errorf("unexpected title %q", ad.Title)
		}
		return "ad-1", nil
	}

	body := jsonBody(t, map[string]any{
		"title":                     "Go developer",
		"description":               "Backend role",
		"required_experience_level": "mid",
		"job_type":                  "full-time",
		"work_mode":                 "remote",
		"city":                      "Belgrade",
		"country":                   "Serbia",
	})
	req := httptest.NewRequest("POST", "/job_ads/", body)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp jobAdCreatedResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JobID != "ad-1" {
		t.Errorf("expected id ad-1, got %q", resp.JobID)
	}
}

func TestCreateJobAd_ValidationError400(t *testing.T) {
	ts := newTestServer(t)
	ts.jobAds.createFn = func(_ context.Context, _ *domain.JobAd, _ jobaduc.Fault) (string, error) {
		return "", fmt.Errorf("%w: work mode \"office\" not allowed", domain.ErrValidation)
	}

	req := httptest.NewRequest("POST", "/job_ads/", jsonBody(t, map[string]any{"work_mode": "office"}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != codeValidationFailed {
		t.Errorf("expected code %s, got %s", codeValidationFailed, resp.Code)
	}
}

func TestCreateJobAdSimulation_FaultFlag(t *testing.T) {
	ts := newTestServer(t)
	var gotFault jobaduc.Fault
	ts.jobAds.createFn = func(_ context.Context, _ *domain.JobAd, fault jobaduc.Fault) (string, error) {
		gotFault = fault
		return "", fmt.Errorf("rolled back: %w", domain.ErrUpstreamWrite)
	}

	req := httptest.NewRequest("POST", "/job_ads/simulation?simulate_pinecone_fail=true",
		jsonBody(t, map[string]any{"title": "x"}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if gotFault != jobaduc.FaultVectorWrite {
		t.Errorf("expected the injected vector-write fault, got %v", gotFault)
	}
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestCreateJobAdSimulation_BadFlag400(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest("POST", "/job_ads/simulation?simulate_pinecone_fail=yep",
		jsonBody(t, map[string]any{}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateJobAd_CompensationFailure502(t *testing.T) {
	ts := newTestServer(t)
	ts.jobAds.createFn = func(_ context.Context, _ *domain.JobAd, _ jobaduc.Fault) (string, error) {
		cause := fmt.Errorf("write refused: %w", domain.ErrUpstreamWrite)
		return "", fmt.Errorf("%w for job ad x: %w", domain.ErrCompensationFailed, cause)
	}

	req := httptest.NewRequest("POST", "/job_ads/", jsonBody(t, map[string]any{"title": "x"}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != codeCompensationFailed {
		t.Errorf("compensation must win over the wrapped upstream cause, got %s", resp.Code)
	}
}

func TestGetJobAd_NotFound404(t *testing.T) {
	ts := newTestServer(t)
	ts.jobAds.getFn = func(_ context.Context, id string) (domain.JobAd, error) {
		return domain.JobAd{}, fmt.Errorf("%w: job ad %s", domain.ErrNotFound, id)
	}

	req := httptest.NewRequest("GET", "/job_ads/missing", http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteJobAd_NoContent(t *testing.T) {
	ts := newTestServer(t)
	var deleted string
	ts.jobAds.deleteFn = func(_ context.Context, id string) error {
		deleted = id
		return nil
	}

	req := httptest.NewRequest("DELETE", "/job_ads/ad-1", http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if deleted != "ad-1" {
		t.Errorf("expected delete of ad-1, got %q", deleted)
	}
}

func TestSearchJobAds_CountAndCities(t *testing.T) {
	ts := newTestServer(t)
	ts.jobAds.searchFn = func(_ context.Context, f domain.JobAdSearchFilter) ([]domain.JobAdHit, map[string]int, error) {
		if f.Query == nil || *f.Query != "golang" {
			t.Errorf("expected the keyword to reach the service, got %+v", f.Query)
		}
		return []domain.JobAdHit{
				{JobAd: domain.JobAd{ID: "a1", City: "Belgrade"}, Score: 1.5},
				{JobAd: domain.JobAd{ID: "a2", City: "Novi Sad"}, Score: 0.7},
			},
			map[string]int{"Belgrade": 1, "Novi Sad": 1}, nil
	}

	req := httptest.NewRequest("POST", "/job_ads/search", jsonBody(t, map[string]any{"query": "golang"}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp jobAdSearchResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
	if resp.Cities["Belgrade"] != 1 {
		t.Errorf("expected city counts in the response, got %v", resp.Cities)
	}
}

func TestFilterCandidates_QueryParamsAndPaging(t *testing.T) {
	ts := newTestServer(t)
	score := 0.9
	ts.candidates.filterFn = func(_ context.Context, f domain.CandidateVectorFilter, page domain.PageRequest) ([]domain.CandidateMatch, int, error) {
		if f.SkillQuery == nil || *f.SkillQuery != "Python and Docker" {
			t.Errorf("expected skill_query to be parsed, got %+v", f.SkillQuery)
		}
		if f.MinYearsExperience == nil || *f.MinYearsExperience != 3 {
			t.Errorf("expected min_years_experience 3, got %+v", f.MinYearsExperience)
		}
		if page.Page != 2 || page.Size != 5 {
			t.Errorf("expected page 2 size 5, got %+v", page)
		}
		return []domain.CandidateMatch{
			{Candidate: domain.Candidate{ID: "c6"}, Score: &score},
		}, 11, nil
	}

	req := httptest.NewRequest("GET",
		"/candidates/filter?skill_query=Python+and+Docker&min_years_experience=3&page=2&page_size=5",
		http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp pageResponse[candidateMatchJSON]
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 11 {
		t.Errorf("count must be the total match count, got %d", resp.Count)
	}
	if resp.Page != 2 || resp.PageSize != 5 {
		t.Errorf("expected the normalized window echoed back, got page %d size %d", resp.Page, resp.PageSize)
	}
	if len(resp.Results) != 1 || resp.Results[0].Score == nil {
		t.Errorf("expected one scored result, got %+v", resp.Results)
	}
}

func TestFilterCandidates_BadNumber400(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest("GET", "/candidates/filter?min_years_experience=lots", http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSearchByExperienceCity_NullAvg(t *testing.T) {
	ts := newTestServer(t)
	ts.candidates.byExperienceFn = func(_ context.Context, _ domain.CandidateExperienceCityFilter) ([]domain.Candidate, *float64, error) {
		return nil, nil, nil
	}

	req := httptest.NewRequest("POST", "/candidates/search/by-experience-city",
		jsonBody(t, map[string]any{"city": "Nowhere"}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"avg_experience":null`) {
		t.Errorf("expected a null average for an empty match set, got %s", rr.Body.String())
	}
}

func TestCandidatesReport_PDFContentType(t *testing.T) {
	ts := newTestServer(t)
	ts.reports.candidatesFn = func(_ context.Context, f domain.CandidateReportFilter) ([]byte, error) {
		if f.EducationLevel == nil || *f.EducationLevel != domain.EducationMaster {
			t.Errorf("expected education_level to scope the report, got %+v", f.EducationLevel)
		}
		return []byte("%PDF-1.3 stub"), nil
	}

	req := httptest.NewRequest("GET", "/candidates/report?education_level=master", http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
}

func TestJobAdsReport_Empty404(t *testing.T) {
	ts := newTestServer(t)
	ts.reports.jobAdsFn = func(_ context.Context, _ domain.JobAdReportFilter) ([]byte, error) {
		return nil, fmt.Errorf("%w: no job ads match the report filter", domain.ErrNotFound)
	}

	req := httptest.NewRequest("GET", "/job_ads/report", http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an empty report, got %d", rr.Code)
	}
}

func TestComplexCandidatesReport_ParamsForwarded(t *testing.T) {
	ts := newTestServer(t)
	ts.reports.complexCandidatesFn = func(_ context.Context, description string, minYears *float64) ([]byte, error) {
		if description != "Senior Go engineer" {
			t.Errorf("unexpected description %q", description)
		}
		if minYears == nil || *minYears != 5 {
			t.Errorf("expected min years 5, got %+v", minYears)
		}
		return []byte("%PDF-1.3 stub"), nil
	}

	req := httptest.NewRequest("GET",
		"/candidates/complex-report?job_description=Senior+Go+engineer&min_years_experience=5",
		http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestHealth_Degraded503(t *testing.T) {
	ts := newTestServer(t)
	ts.health.report = healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{
			"text_store":   healthuc.CheckOK,
			"vector_store": healthuc.CheckError,
		},
	}

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Checks["vector_store"] != "error" {
		t.Errorf("expected the failing store in checks, got %v", resp.Checks)
	}
}

func TestEmbeddingProviderError_502(t *testing.T) {
	ts := newTestServer(t)
	ts.candidates.createFn = func(_ context.Context, _ *domain.Candidate) (string, error) {
		return "", fmt.Errorf("embed candidate: %w", domain.ErrEmbeddingProviderError)
	}

	req := httptest.NewRequest("POST", "/candidates/", jsonBody(t, map[string]any{"firstname": "Ana"}))
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != codeEmbeddingProviderError {
		t.Errorf("expected code %s, got %s", codeEmbeddingProviderError, resp.Code)
	}
}
