package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	jobaduc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/jobad"
)

// createJobAd handles POST /job_ads/.
func (s *Server) createJobAd(w http.ResponseWriter, r *http.Request) {
	s.runJobAdCreation(w, r, jobaduc.FaultNone)
}

// createJobAdSimulation handles POST /job_ads/simulation. The
// simulate_pinecone_fail query flag injects a vector-store failure so the
// compensation path can be exercised against live stores.
func (s *Server) createJobAdSimulation(w http.ResponseWriter, r *http.Request) {
	fault := jobaduc.FaultNone
	if v := r.URL.Query().Get("simulate_pinecone_fail"); v != "" {
		fail, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "simulate_pinecone_fail must be a boolean")
			return
		}
		if fail {
			fault = jobaduc.FaultVectorWrite
		}
	}
	s.runJobAdCreation(w, r, fault)
}

func (s *Server) runJobAdCreation(w http.ResponseWriter, r *http.Request, fault jobaduc.Fault) {
	var req jobAdJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ad := req.toDomain()
	id, err := s.jobAds.Create(r.Context(), &ad, fault)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, jobAdCreatedResponse{
		JobID:   id,
		Message: "Job ad created successfully",
	})
}

// getJobAd handles GET /job_ads/{id}.
func (s *Server) getJobAd(w http.ResponseWriter, r *http.Request) {
	ad, err := s.jobAds.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobAdToJSON(&ad))
}

// updateJobAd handles PUT /job_ads/{id}.
func (s *Server) updateJobAd(w http.ResponseWriter, r *http.Request) {
	var req jobAdPatchJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p := req.toDomain()
	ad, err := s.jobAds.Update(r.Context(), chi.URLParam(r, "id"), &p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobAdToJSON(&ad))
}

// deleteJobAd handles DELETE /job_ads/{id}.
func (s *Server) deleteJobAd(w http.ResponseWriter, r *http.Request) {
	if err := s.jobAds.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// searchJobAds handles POST /job_ads/search.
func (s *Server) searchJobAds(w http.ResponseWriter, r *http.Request) {
	var req jobAdSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hits, cities, err := s.jobAds.Search(r.Context(), req.toDomain())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]jobAdHitJSON, len(hits))
	for i := range hits {
		results[i] = jobAdHitToJSON(&hits[i])
	}
	writeJSON(w, http.StatusOK, jobAdSearchResponse{
		Count:   len(results),
		Results: results,
		Cities:  cities,
	})
}

// filterJobAds handles GET /job_ads/filter.
func (s *Server) filterJobAds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.JobAdVectorFilter{
		DescriptionQuery: optString(q, "description_query"),
		City:             optString(q, "city"),
	}
	if v := optString(q, "experience_level"); v != nil {
		lvl := domain.ExperienceLevel(*v)
		f.RequiredExperienceLevel = &lvl
	}
	if v := optString(q, "job_type"); v != nil {
		jt := domain.JobType(*v)
		f.JobType = &jt
	}
	if v := optString(q, "work_mode"); v != nil {
		wm := domain.WorkMode(*v)
		f.WorkMode = &wm
	}

	page, err := pageFromQuery(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	matches, total, err := s.jobAds.Filter(r.Context(), f, page)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]jobAdMatchJSON, len(matches))
	for i := range matches {
		results[i] = jobAdMatchToJSON(&matches[i])
	}
	writeJSON(w, http.StatusOK, pageResponse[jobAdMatchJSON]{
		Count:    total,
		Page:     page.Page,
		PageSize: page.Size,
		Results:  results,
	})
}

// jobAdsReport handles GET /job_ads/report.
func (s *Server) jobAdsReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f domain.JobAdReportFilter
	if v := optString(q, "job_type"); v != nil {
		jt := domain.JobType(*v)
		f.JobType = &jt
	}
	if v := optString(q, "experience_level"); v != nil {
		lvl := domain.ExperienceLevel(*v)
		f.ExperienceLevel = &lvl
	}

	data, err := s.reports.JobAds(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writePDF(w, data)
}

// complexJobAdsReport handles GET /job_ads/complex_report.
func (s *Server) complexJobAdsReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.JobAdSearchFilter{
		Query: optString(q, "query"),
		City:  optString(q, "city"),
	}
	if v := optString(q, "experience_level"); v != nil {
		lvl := domain.ExperienceLevel(*v)
		f.RequiredExperienceLevel = &lvl
	}
	for _, wm := range q["work_mode"] {
		if wm != "" {
			f.WorkModes = append(f.WorkModes, domain.WorkMode(wm))
		}
	}

	data, err := s.reports.ComplexJobAds(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writePDF(w, data)
}
