package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

// createCandidate handles POST /candidates/.
func (s *Server) createCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidateJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	c := req.toDomain()
	id, err := s.candidates.Create(r.Context(), &c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, candidateCreatedResponse{
		CandidateID: id,
		Message:     "Candidate created successfully",
	})
}

// getCandidate handles GET /candidates/{id}.
func (s *Server) getCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := s.candidates.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidateToJSON(&c))
}

// updateCandidate handles PUT /candidates/{id}.
func (s *Server) updateCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidatePatchJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p := req.toDomain()
	c, err := s.candidates.Update(r.Context(), chi.URLParam(r, "id"), &p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidateToJSON(&c))
}

// deleteCandidate handles DELETE /candidates/{id}.
func (s *Server) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := s.candidates.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// searchCandidatesByExperienceCity handles POST /candidates/search/by-experience-city.
func (s *Server) searchCandidatesByExperienceCity(w http.ResponseWriter, r *http.Request) {
	var req experienceCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	f := domain.CandidateExperienceCityFilter{
		MinYearsExperience: req.MinYearsExperience,
		City:               req.City,
	}
	candidates, avg, err := s.candidates.SearchByExperienceCity(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]candidateJSON, len(candidates))
	for i := range candidates {
		results[i] = candidateToJSON(&candidates[i])
	}
	writeJSON(w, http.StatusOK, experienceCityResponse{
		Results:       results,
		AvgExperience: avg,
	})
}

// searchCandidatesBySkillsEducation handles POST /candidates/search/by-skills-education.
func (s *Server) searchCandidatesBySkillsEducation(w http.ResponseWriter, r *http.Request) {
	var req skillsEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	candidates, stats, err := s.candidates.SearchBySkillsEducation(r.Context(), req.toDomain())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]candidateJSON, len(candidates))
	for i := range candidates {
		results[i] = candidateToJSON(&candidates[i])
	}
	writeJSON(w, http.StatusOK, skillsEducationResponse{
		Results:        results,
		EducationStats: stats,
	})
}

// filterCandidates handles GET /candidates/filter.
func (s *Server) filterCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.CandidateVectorFilter{
		SkillQuery: optString(q, "skill_query"),
	}
	if v := optString(q, "education_level"); v != nil {
		lvl := domain.EducationLevel(*v)
		f.EducationLevel = &lvl
	}
	minYears, err := optFloat(q, "min_years_experience")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	f.MinYearsExperience = minYears

	page, err := pageFromQuery(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	matches, total, err := s.candidates.Filter(r.Context(), f, page)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]candidateMatchJSON, len(matches))
	for i := range matches {
		results[i] = candidateMatchToJSON(&matches[i])
	}
	writeJSON(w, http.StatusOK, pageResponse[candidateMatchJSON]{
		Count:    total,
		Page:     page.Page,
		PageSize: page.Size,
		Results:  results,
	})
}

// candidatesReport handles GET /candidates/report.
func (s *Server) candidatesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f domain.CandidateReportFilter
	if v := optString(q, "education_level"); v != nil {
		lvl := domain.EducationLevel(*v)
		f.EducationLevel = &lvl
	}
	minYears, err := optFloat(q, "min_years_experience")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	f.MinYearsExperience = minYears

	data, err := s.reports.Candidates(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writePDF(w, data)
}

// complexCandidatesReport handles GET /candidates/complex-report.
func (s *Server) complexCandidatesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	description := q.Get("job_description")
	minYears, err := optFloat(q, "min_years_experience")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	data, err := s.reports.ComplexCandidates(r.Context(), description, minYears)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writePDF(w, data)
}
