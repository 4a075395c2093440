package httpapi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

type candidateJSON struct {
	ID              string   `json:"id,omitempty"`
	Firstname       string   `json:"firstname"`
	Lastname        string   `json:"lastname"`
	EducationLevel  string   `json:"education_level"`
	YearsExperience float64  `json:"years_experience"`
	Skills          []string `json:"skills"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
}

func candidateToJSON(c *domain.Candidate) candidateJSON {
	return candidateJSON{
		ID:              c.ID,
		Firstname:       c.Firstname,
		Lastname:        c.Lastname,
		EducationLevel:  string(c.EducationLevel),
		YearsExperience: c.YearsExperience,
		Skills:          c.Skills,
		City:            c.City,
		Country:         c.Country,
	}
}

func (j *candidateJSON) toDomain() domain.Candidate {
	return domain.Candidate{
		Firstname:       j.Firstname,
		Lastname:        j.Lastname,
		EducationLevel:  domain.EducationLevel(j.EducationLevel),
		YearsExperience: j.YearsExperience,
		Skills:          j.Skills,
		City:            j.City,
		Country:         j.Country,
	}
}

type candidatePatchJSON struct {
	Firstname       *string  `json:"firstname"`
	Lastname        *string  `json:"lastname"`
	EducationLevel  *string  `json:"education_level"`
	YearsExperience *float64 `json:"years_experience"`
	Skills          []string `json:"skills"`
	City            *string  `json:"city"`
	Country         *string  `json:"country"`
}

func (j *candidatePatchJSON) toDomain() domain.CandidatePatch {
	p := domain.CandidatePatch{
		Firstname:       j.Firstname,
		Lastname:        j.Lastname,
		YearsExperience: j.YearsExperience,
		Skills:          j.Skills,
		City:            j.City,
		Country:         j.Country,
	}
	if j.EducationLevel != nil {
		lvl := domain.EducationLevel(*j.EducationLevel)
		p.EducationLevel = &lvl
	}
	return p
}

type candidateMatchJSON struct {
	candidateJSON
	Score *float64 `json:"score,omitempty"`
}

func candidateMatchToJSON(m *domain.CandidateMatch) candidateMatchJSON {
	return candidateMatchJSON{
		candidateJSON: candidateToJSON(&m.Candidate),
		Score:         m.Score,
	}
}

type jobAdJSON struct {
	ID                      string `json:"id,omitempty"`
	Title                   string `json:"title"`
	Description             string `json:"description"`
	RequiredExperienceLevel string `json:"required_experience_level"`
	JobType                 string `json:"job_type"`
	WorkMode                string `json:"work_mode"`
	City                    string `json:"city"`
	Country                 string `json:"country"`
}

func jobAdToJSON(ad *domain.JobAd) jobAdJSON {
	return jobAdJSON{
		ID:                      ad.ID,
		Title:                   ad.Title,
		Description:             ad.Description,
		RequiredExperienceLevel: string(ad.RequiredExperienceLevel),
		JobType:                 string(ad.JobType),
		WorkMode:                string(ad.WorkMode),
		City:                    ad.City,
		Country:                 ad.Country,
	}
}

func (j *jobAdJSON) toDomain() domain.JobAd {
	return domain.JobAd{
		Title:                   j.Title,
		Description:             j.Description,
		RequiredExperienceLevel: domain.ExperienceLevel(j.RequiredExperienceLevel),
		JobType:                 domain.JobType(j.JobType),
		WorkMode:                domain.WorkMode(j.WorkMode),
		City:                    j.City,
		Country:                 j.Country,
	}
}

type jobAdPatchJSON struct {
	Title                   *string `json:"title"`
	Description             *string `json:"description"`
	RequiredExperienceLevel *string `json:"required_experience_level"`
	JobType                 *string `json:"job_type"`
	WorkMode                *string `json:"work_mode"`
	City                    *string `json:"city"`
	Country                 *string `json:"country"`
}

func (j *jobAdPatchJSON) toDomain() domain.JobAdPatch {
	p := domain.JobAdPatch{
		Title:       j.Title,
		Description: j.Description,
		City:        j.City,
		Country:     j.Country,
	}
	if j.RequiredExperienceLevel != nil {
		lvl := domain.ExperienceLevel(*j.RequiredExperienceLevel)
		p.RequiredExperienceLevel = &lvl
	}
	if j.JobType != nil {
		jt := domain.JobType(*j.JobType)
		p.JobType = &jt
	}
	if j.WorkMode != nil {
		wm := domain.WorkMode(*j.WorkMode)
		p.WorkMode = &wm
	}
	return p
}

type jobAdHitJSON struct {
	jobAdJSON
	Score float64 `json:"score"`
}

func jobAdHitToJSON(h *domain.JobAdHit) jobAdHitJSON {
	return jobAdHitJSON{
		jobAdJSON: jobAdToJSON(&h.JobAd),
		Score:     h.Score,
	}
}

type jobAdMatchJSON struct {
	jobAdJSON
	Score *float64 `json:"score,omitempty"`
}

func jobAdMatchToJSON(m *domain.JobAdMatch) jobAdMatchJSON {
	return jobAdMatchJSON{
		jobAdJSON: jobAdToJSON(&m.JobAd),
		Score:     m.Score,
	}
}

// --- Search request payloads ---

type jobAdSearchRequest struct {
	Query                   *string  `json:"query"`
	RequiredExperienceLevel *string  `json:"required_experience_level"`
	WorkModes               []string `json:"work_modes"`
	City                    *string  `json:"city"`
}

func (r *jobAdSearchRequest) toDomain() domain.JobAdSearchFilter {
	f := domain.JobAdSearchFilter{
		Query: r.Query,
		City:  r.City,
	}
	if r.RequiredExperienceLevel != nil {
		lvl := domain.ExperienceLevel(*r.RequiredExperienceLevel)
		f.RequiredExperienceLevel = &lvl
	}
	for _, wm := range r.WorkModes {
		f.WorkModes = append(f.WorkModes, domain.WorkMode(wm))
	}
	return f
}

type experienceCityRequest struct {
	MinYearsExperience *float64 `json:"min_years_experience"`
	City               *string  `json:"city"`
}

type skillsEducationRequest struct {
	Skills         []string `json:"skills"`
	EducationLevel *string  `json:"education_level"`
}

func (r *skillsEducationRequest) toDomain() domain.CandidateSkillsEducationFilter {
	f := domain.CandidateSkillsEducationFilter{Skills: r.Skills}
	if r.EducationLevel != nil {
		lvl := domain.EducationLevel(*r.EducationLevel)
		f.EducationLevel = &lvl
	}
	return f
}

// --- Response payloads ---

type jobAdCreatedResponse struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

type candidateCreatedResponse struct {
	CandidateID string `json:"candidate_id"`
	Message     string `json:"message"`
}

type jobAdSearchResponse struct {
	Count   int            `json:"count"`
	Results []jobAdHitJSON `json:"results"`
	Cities  map[string]int `json:"cities"`
}

type experienceCityResponse struct {
	Results       []candidateJSON `json:"results"`
	AvgExperience *float64        `json:"avg_experience"`
}

type skillsEducationResponse struct {
	Results        []candidateJSON `json:"results"`
	EducationStats map[string]int  `json:"education_stats"`
}

type pageResponse[T any] struct {
	Count    int `json:"count"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Results  []T `json:"results"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// --- Query-parameter parsing ---

func optString(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func optFloat(q url.Values, key string) (*float64, error) {
	s := optString(q, key)
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &v, nil
}

func optInt(q url.Values, key string) (int, error) {
	s := optString(q, key)
	if s == nil {
		return 0, nil
	}
	v, err := strconv.Atoi(*s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

func pageFromQuery(q url.Values) (domain.PageRequest, error) {
	page, err := optInt(q, "page")
	if err != nil {
		return domain.PageRequest{}, err
	}
	size, err := optInt(q, "page_size")
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.PageRequest{Page: page, Size: size}.Normalize(defaultPageSize, maxPageSize), nil
}
