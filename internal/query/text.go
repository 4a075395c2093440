package query

import (
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

// CandidateExperienceCity builds the text query for the
// minimum-experience + city candidate search. The average years of
// experience over the matched set is always aggregated; when the
// experience bound is present the hits are ranked by experience
// descending instead of relevance.
func CandidateExperienceCity(f domain.CandidateExperienceCityFilter) (*TextQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &TextQuery{Agg: &Aggregation{AvgField: FieldYearsExperience}}
	if f.MinYearsExperience != nil {
		q.Clauses = append(q.Clauses, GTE(FieldYearsExperience, *f.MinYearsExperience))
		q.Sort = &Sort{Field: FieldYearsExperience, Desc: true}
	}
	if f.City != nil {
		q.Clauses = append(q.Clauses, Term(FieldCity, *f.City))
	}
	if len(q.Clauses) == 0 {
		q.MatchAll = true
	}
	return q, nil
}

// CandidateSkillsEducation builds the text query for the skills + education
// candidate search. Each requested skill must be present (AND semantics);
// the education-level distribution of the matched set is aggregated.
func CandidateSkillsEducation(f domain.CandidateSkillsEducationFilter) (*TextQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &TextQuery{Agg: &Aggregation{CountByField: FieldEducationLevel}}
	for _, skill := range f.Skills {
		q.Clauses = append(q.Clauses, Term(FieldSkills, skill))
	}
	if f.EducationLevel != nil {
		q.Clauses = append(q.Clauses, Term(FieldEducationLevel, string(*f.EducationLevel)))
	}
	if len(q.Clauses) == 0 {
		q.MatchAll = true
	}
	return q, nil
}

// JobAdSearch builds the text query for the job ad keyword search: an
// optional full-text match over title and description combined with
// categorical filters, plus a per-city count of the matched set. Hits
// rank by relevance.
func JobAdSearch(f domain.JobAdSearchFilter) (*TextQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &TextQuery{Agg: &Aggregation{CountByField: FieldCity}}
	if f.Query != nil && *f.Query != "" {
		q.Match = &Match{Fields: []string{FieldTitle, FieldDescription}, Query: *f.Query}
	}
	if f.RequiredExperienceLevel != nil {
		q.Clauses = append(q.Clauses, Term(FieldRequiredExperienceLevel, string(*f.RequiredExperienceLevel)))
	}
	if len(f.WorkModes) > 0 {
		values := make([]string, len(f.WorkModes))
		for i, wm := range f.WorkModes {
			values[i] = string(wm)
		}
		q.Clauses = append(q.Clauses, Terms(FieldWorkMode, values))
	}
	if f.City != nil {
		q.Clauses = append(q.Clauses, Term(FieldCity, *f.City))
	}
	if q.Match == nil && len(q.Clauses) == 0 {
		q.MatchAll = true
	}
	return q, nil
}

// JobAdReport builds the text query scoping the plain job ads report.
func JobAdReport(f domain.JobAdReportFilter) (*TextQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &TextQuery{}
	if f.JobType != nil {
		q.Clauses = append(q.Clauses, Term(FieldJobType, string(*f.JobType)))
	}
	if f.ExperienceLevel != nil {
		q.Clauses = append(q.Clauses, Term(FieldRequiredExperienceLevel, string(*f.ExperienceLevel)))
	}
	if len(q.Clauses) == 0 {
		q.MatchAll = true
	}
	return q, nil
}

// CandidateReport builds the text query scoping the plain candidates report.
func CandidateReport(f domain.CandidateReportFilter) (*TextQuery, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	q := &TextQuery{}
	if f.EducationLevel != nil {
		q.Clauses = append(q.Clauses, Term(FieldEducationLevel, string(*f.EducationLevel)))
	}
	if f.MinYearsExperience != nil {
		q.Clauses = append(q.Clauses, GTE(FieldYearsExperience, *f.MinYearsExperience))
	}
	if len(q.Clauses) == 0 {
		q.MatchAll = true
	}
	return q, nil
}
